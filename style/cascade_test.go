package style

import (
	"testing"

	"go.uber.org/zap/zaptest"

	"pcss/css"
	"pcss/dom"
)

func newTestEngine(t *testing.T, sheets ...string) *Engine {
	t.Helper()
	e := NewEngine(Options{
		Viewport:     css.Viewport{Width: 800, Height: 600, Media: css.MediaTypePrint},
		HTML:         true,
		SkipDefaults: true,
	}, zaptest.NewLogger(t))
	for _, sheet := range sheets {
		e.AddStylesheet([]byte(sheet), css.OriginAuthor)
	}
	return e
}

// styleFor resolves styles along the ancestor chain so inheritance
// works the way the engine is driven by a layout tree builder.
func styleFor(e *Engine, el dom.Element) *Style {
	if el == nil {
		return nil
	}
	var parent *Style
	if p := el.Parent(); p != nil {
		parent = styleFor(e, p)
	}
	return e.StyleForElement(el, parent)
}

func colorOf(s *Style) css.RGBA { return s.Color() }

func TestCascadeSpecificityWins(t *testing.T) {
	e := newTestEngine(t, `
		p { color: red }
		p.note { color: green }
		p#main { color: blue }
	`)
	root := parseDoc(t, `<body><p id="main" class="note">x</p></body>`)
	s := styleFor(e, findFirst(t, root, "p"))
	if colorOf(s) != (css.RGBA{R: 0, G: 0, B: 255, A: 255}) {
		t.Errorf("id selector should win, got %+v", colorOf(s))
	}
}

func TestCascadePositionBreaksTies(t *testing.T) {
	e := newTestEngine(t, `
		p { color: red }
		p { color: green }
	`)
	root := parseDoc(t, `<body><p>x</p></body>`)
	s := styleFor(e, findFirst(t, root, "p"))
	if colorOf(s) != (css.RGBA{R: 0, G: 128, B: 0, A: 255}) {
		t.Errorf("later declaration should win, got %+v", colorOf(s))
	}
}

func TestCascadeImportantAuthorBeatsInline(t *testing.T) {
	e := newTestEngine(t, `p { color: blue !important }`)
	root := parseDoc(t, `<body><p style="color:red">x</p></body>`)
	s := styleFor(e, findFirst(t, root, "p"))
	if colorOf(s) != (css.RGBA{R: 0, G: 0, B: 255, A: 255}) {
		t.Errorf("important author declaration should beat inline, got %+v", colorOf(s))
	}
}

func TestCascadeInlineBeatsNormalAuthor(t *testing.T) {
	e := newTestEngine(t, `p { color: blue }`)
	root := parseDoc(t, `<body><p style="color:red">x</p></body>`)
	s := styleFor(e, findFirst(t, root, "p"))
	if colorOf(s) != (css.RGBA{R: 255, G: 0, B: 0, A: 255}) {
		t.Errorf("inline should beat a normal author declaration, got %+v", colorOf(s))
	}
}

func TestCascadeUserOrigins(t *testing.T) {
	e := newTestEngine(t)
	e.AddStylesheet([]byte(`p { color: green }`), css.OriginUser)
	e.AddStylesheet([]byte(`p { color: blue }`), css.OriginAuthor)
	root := parseDoc(t, `<body><p>x</p></body>`)
	s := styleFor(e, findFirst(t, root, "p"))
	if colorOf(s) != (css.RGBA{R: 0, G: 0, B: 255, A: 255}) {
		t.Errorf("author should beat user, got %+v", colorOf(s))
	}

	e = newTestEngine(t)
	e.AddStylesheet([]byte(`p { color: green !important }`), css.OriginUser)
	e.AddStylesheet([]byte(`p { color: blue !important }`), css.OriginAuthor)
	s = styleFor(e, findFirst(t, parseDoc(t, `<body><p>x</p></body>`), "p"))
	if colorOf(s) != (css.RGBA{R: 0, G: 128, B: 0, A: 255}) {
		t.Errorf("important user should beat important author, got %+v", colorOf(s))
	}
}

func TestInheritance(t *testing.T) {
	e := newTestEngine(t, `div { color: red; border-top-style: solid }`)
	root := parseDoc(t, `<body><div><p>x</p></div></body>`)
	s := styleFor(e, findFirst(t, root, "p"))
	if colorOf(s) != (css.RGBA{R: 255, G: 0, B: 0, A: 255}) {
		t.Errorf("color should inherit, got %+v", colorOf(s))
	}
	if s.Get(css.PropBorderTopStyle) != nil {
		t.Error("border style must not inherit")
	}
}

func TestWideKeywordApplication(t *testing.T) {
	e := newTestEngine(t, `
		div { color: red; float: left }
		p { color: initial }
		p { float: inherit }
	`)
	root := parseDoc(t, `<body><div><p>x</p></div></body>`)
	s := styleFor(e, findFirst(t, root, "p"))
	if colorOf(s) != (css.RGBA{A: 255}) {
		t.Errorf("initial should reset color to black, got %+v", colorOf(s))
	}
	if s.Float() != "left" {
		t.Errorf("inherit should copy the parent float, got %s", s.Float())
	}
}

func TestUnsetKeyword(t *testing.T) {
	e := newTestEngine(t, `
		div { color: red; float: left }
		p { color: unset; float: unset }
	`)
	root := parseDoc(t, `<body><div><p>x</p></div></body>`)
	s := styleFor(e, findFirst(t, root, "p"))
	if colorOf(s) != (css.RGBA{R: 255, G: 0, B: 0, A: 255}) {
		t.Errorf("unset behaves as inherit for inherited properties, got %+v", colorOf(s))
	}
	if s.Float() != "none" {
		t.Errorf("unset behaves as initial for non-inherited properties, got %s", s.Float())
	}
}

func TestVariableResolution(t *testing.T) {
	e := newTestEngine(t, `
		:root { --x: 10px }
		p { width: calc(var(--x) * 2) }
	`)
	root := parseDoc(t, `<body><p>x</p></body>`)
	s := styleFor(e, findFirst(t, root, "p"))
	w, ok := s.Length(css.PropWidth)
	if !ok || w != 20 {
		t.Errorf("expected width 20px, got %v %v", w, ok)
	}
}

func TestVariableCycleFallsBackToInitial(t *testing.T) {
	e := newTestEngine(t, `
		:root { --a: var(--b); --b: var(--a) }
		p { color: var(--a) }
	`)
	root := parseDoc(t, `<body><p>x</p></body>`)
	s := styleFor(e, findFirst(t, root, "p"))
	if s.Get(css.PropColor) != nil {
		t.Errorf("cyclic variable should leave the property at initial, got %+v", s.Get(css.PropColor))
	}
}

func TestVariableFallbackValue(t *testing.T) {
	e := newTestEngine(t, `p { width: var(--missing, 7px) }`)
	root := parseDoc(t, `<body><p>x</p></body>`)
	s := styleFor(e, findFirst(t, root, "p"))
	w, ok := s.Length(css.PropWidth)
	if !ok || w != 7 {
		t.Errorf("expected fallback 7px, got %v %v", w, ok)
	}
}

func TestVariableShorthandResolution(t *testing.T) {
	e := newTestEngine(t, `
		:root { --m: 4px }
		p { margin: var(--m) 8px }
	`)
	root := parseDoc(t, `<body><p>x</p></body>`)
	s := styleFor(e, findFirst(t, root, "p"))
	top, _ := s.Length(css.PropMarginTop)
	right, _ := s.Length(css.PropMarginRight)
	if top != 4 || right != 8 {
		t.Errorf("expected margins 4px 8px, got %v %v", top, right)
	}
}

func TestFontRelativeLengths(t *testing.T) {
	e := newTestEngine(t, `
		html { font-size: 20px }
		div { font-size: 10px; width: 2em; height: 1rem }
	`)
	root := parseDoc(t, `<body><div>x</div></body>`)
	s := styleFor(e, findFirst(t, root, "div"))
	if w, _ := s.Length(css.PropWidth); w != 20 {
		t.Errorf("2em at 10px font should be 20px, got %v", w)
	}
	if h, _ := s.Length(css.PropHeight); h != 20 {
		t.Errorf("1rem against the 20px root should be 20px, got %v", h)
	}
}

func TestFontSizeKeywordsAndRelative(t *testing.T) {
	e := newTestEngine(t, `
		div { font-size: 20px }
		p { font-size: smaller }
		span { font-size: 150% }
	`)
	root := parseDoc(t, `<body><div><p><span>x</span></p></div></body>`)
	p := styleFor(e, findFirst(t, root, "p"))
	if got := p.FontSize(); got < 16.6 || got > 16.7 {
		t.Errorf("smaller of 20px should be about 16.67, got %v", got)
	}
	span := styleFor(e, findFirst(t, root, "span"))
	if got, want := span.FontSize(), p.FontSize()*1.5; got != want {
		t.Errorf("150%% of parent: expected %v, got %v", want, got)
	}
}

func TestZIndexResetOnStaticPosition(t *testing.T) {
	e := newTestEngine(t, `
		p { z-index: 3 }
		q { z-index: 3; position: relative }
	`)
	root := parseDoc(t, `<body><p>x</p><q>y</q></body>`)
	p := styleFor(e, findFirst(t, root, "p"))
	if p.Get(css.PropZIndex) != nil {
		t.Error("z-index must reset on static boxes")
	}
	q := styleFor(e, findFirst(t, root, "q"))
	if q.Get(css.PropZIndex) == nil {
		t.Error("z-index must survive on positioned boxes")
	}
}

func TestDisplayBlockificationForFloats(t *testing.T) {
	e := newTestEngine(t, `span { float: left; display: inline }`)
	root := parseDoc(t, `<body><span>x</span></body>`)
	s := styleFor(e, findFirst(t, root, "span"))
	if s.Display() != "block" {
		t.Errorf("floated inline should blockify, got %s", s.Display())
	}
}

func TestFloatClearedOnPositioned(t *testing.T) {
	e := newTestEngine(t, `div { float: left; position: absolute }`)
	root := parseDoc(t, `<body><div>x</div></body>`)
	s := styleFor(e, findFirst(t, root, "div"))
	if s.Float() != "none" {
		t.Errorf("positioned boxes must not float, got %s", s.Float())
	}
}

func TestDefaultStylesWithoutDeclarations(t *testing.T) {
	e := newTestEngine(t)
	root := parseDoc(t, `<body><p>x</p></body>`)
	if s := styleFor(e, root); s.Display() != "block" {
		t.Errorf("root default display should be block, got %s", s.Display())
	}
	p := findFirst(t, root, "p")
	if s := styleFor(e, p); s.Display() != "inline" {
		t.Errorf("non-root default display should be inline, got %s", s.Display())
	}
}

func TestPseudoStyles(t *testing.T) {
	e := newTestEngine(t, `p::before { content: "x"; color: red }`)
	root := parseDoc(t, `<body><p>y</p></body>`)
	p := findFirst(t, root, "p")
	parent := styleFor(e, p)

	before := e.PseudoStyleForElement(p, css.PseudoBefore, parent)
	if before == nil {
		t.Fatal("expected before style")
	}
	if colorOf(before) != (css.RGBA{R: 255, G: 0, B: 0, A: 255}) {
		t.Errorf("before color wrong: %+v", colorOf(before))
	}
	if after := e.PseudoStyleForElement(p, css.PseudoAfter, parent); after != nil {
		t.Error("after with no rules should yield nil")
	}
	if marker := e.PseudoStyleForElement(p, css.PseudoMarker, parent); marker == nil {
		t.Error("marker with no rules still yields a style")
	}
}

func TestPresentationAttributes(t *testing.T) {
	e := newTestEngine(t)
	root := parseDoc(t, `<body><table width="400" bgcolor="red"><tr><td>x</td></tr></table></body>`)
	table := findFirst(t, root, "table")
	s := styleFor(e, table)
	if w, _ := s.Length(css.PropWidth); w != 400 {
		t.Errorf("width attribute should map to 400px, got %v", w)
	}
	if s.Get(css.PropBackgroundColor) == nil {
		t.Error("bgcolor attribute should map to background-color")
	}
}

func TestPresentationAttributeBeatsAuthorNormal(t *testing.T) {
	e := newTestEngine(t, `table { width: 100px }`)
	root := parseDoc(t, `<body><table width="400"><tr><td>x</td></tr></table></body>`)
	s := styleFor(e, findFirst(t, root, "table"))
	if w, _ := s.Length(css.PropWidth); w != 400 {
		t.Errorf("presentation origin outranks author normal declarations, got %v", w)
	}
}

func TestUserAgentDefaults(t *testing.T) {
	e := NewEngine(Options{
		Viewport: css.Viewport{Width: 800, Height: 600, Media: css.MediaTypePrint},
		HTML:     true,
	}, nil)
	root := parseDoc(t, `<head><title>t</title></head><body><ul><li>x</li></ul></body>`)
	body := findFirst(t, root, "body")
	if s := styleFor(e, body); s.Display() != "block" {
		t.Errorf("body should be block, got %s", s.Display())
	}
	li := findFirst(t, root, "li")
	if s := styleFor(e, li); s.Display() != "list-item" {
		t.Errorf("li should be list-item, got %s", s.Display())
	}
	if s := styleFor(e, li); s.ListStyleType() != "disc" {
		t.Errorf("default ul list style should be disc, got %s", s.ListStyleType())
	}
	head := findFirst(t, root, "head")
	if s := styleFor(e, head); s.Display() != "none" {
		t.Errorf("head should be display none, got %s", s.Display())
	}
}

func TestCustomPropertiesInherit(t *testing.T) {
	e := newTestEngine(t, `
		div { --accent: red }
		p { color: var(--accent) }
	`)
	root := parseDoc(t, `<body><div><p>x</p></div></body>`)
	s := styleFor(e, findFirst(t, root, "p"))
	if colorOf(s) != (css.RGBA{R: 255, G: 0, B: 0, A: 255}) {
		t.Errorf("custom properties should inherit into children, got %+v", colorOf(s))
	}
}
