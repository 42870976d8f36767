package style

import (
	"go.uber.org/zap"

	"pcss/counters"
	"pcss/css"
	"pcss/dom"
)

// Options configure a style engine for one document build.
type Options struct {
	Viewport css.Viewport
	BaseURL  string
	HTML     bool
	Loader   Loader

	// SkipDefaults leaves the built-in element defaults out, which
	// keeps tests that assert on raw cascade output independent of
	// them.
	SkipDefaults bool
}

// Engine indexes the document's stylesheets and answers style queries
// for elements, pseudo elements and pages. It is single-threaded
// within one document build; only the font cache takes a lock.
type Engine struct {
	log  *zap.Logger
	opts Options

	index  *ruleIndex
	parser *css.Parser

	fonts    *FontFaceCache
	counters *counters.Map

	rootSize float64
	prepared bool
}

// NewEngine creates an engine over an empty stylesheet set; the user
// agent defaults are installed first so author sheets override them.
func NewEngine(opts Options, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	e := &Engine{
		log:   log.Named("style"),
		opts:  opts,
		index: newRuleIndex(log),
		fonts: NewFontFaceCache(),
	}
	if !opts.SkipDefaults {
		e.AddStylesheet([]byte(userAgentSheet), css.OriginUserAgent)
	}
	return e
}

// AddStylesheet parses and indexes one stylesheet at the given origin.
func (e *Engine) AddStylesheet(data []byte, origin css.Origin) {
	rules := e.parse(data, origin)
	e.index.addSheet(rules, e.opts.Viewport, e.opts.Loader, e.parse, 0)
	e.prepared = false
}

func (e *Engine) parse(data []byte, origin css.Origin) []css.Rule {
	parser := css.NewParser(css.ParserContext{
		Origin:  origin,
		BaseURL: e.opts.BaseURL,
		HTML:    e.opts.HTML,
	}, e.log)
	return parser.ParseSheet(data)
}

// prepare finalizes the derived state once all sheets are indexed: the
// counter style map and the font face cache.
func (e *Engine) prepare() {
	if e.prepared {
		return
	}
	e.prepared = true
	e.counters = counters.NewMap(e.index.counterStyles, counters.UserAgentMap(), e.log)
	e.fonts = NewFontFaceCache()
	for _, ff := range e.index.fontFaces {
		e.fonts.Add(ff)
	}
	if e.parser == nil {
		e.parser = css.NewParser(css.ParserContext{
			Origin:  css.OriginAuthor,
			BaseURL: e.opts.BaseURL,
			HTML:    e.opts.HTML,
		}, e.log)
	}
}

func (e *Engine) reparse(id css.PropertyID, tokens []css.Token) ([]css.Property, bool) {
	return e.parser.ReparseDeclaration(id, tokens)
}

func (e *Engine) parseInline(text string, svg bool) []css.Property {
	e.prepare()
	return e.parser.ParseStyleAttribute(text, svg)
}

func (e *Engine) parsePresentation(text string, svg bool) []css.Property {
	e.prepare()
	return e.parser.ParsePresentationAttributes(text, svg)
}

// rootFontSize is the rem basis: the root element's resolved font
// size, or 16 before the root is styled.
func (e *Engine) rootFontSize() float64 {
	if e.rootSize > 0 {
		return e.rootSize
	}
	return mediumFontSize
}

func (e *Engine) noteRootStyle(isRoot bool, s *Style) {
	if isRoot && s != nil {
		e.rootSize = s.Font.Size
	}
}

// StyleForElement resolves the style of an element. parent may be nil
// for the root.
func (e *Engine) StyleForElement(el dom.Element, parent *Style) *Style {
	return e.styleForElement(el, css.PseudoNone, parent)
}

// PseudoStyleForElement resolves a pseudo element style; nil means the
// pseudo element generates no box.
func (e *Engine) PseudoStyleForElement(el dom.Element, pseudo css.PseudoType, parent *Style) *Style {
	return e.styleForElement(el, pseudo, parent)
}

// CounterText renders a counter value in a list style.
func (e *Engine) CounterText(value int, listType string) string {
	e.prepare()
	return e.counters.CounterText(value, listType)
}

// MarkerText renders a list marker for a counter value.
func (e *Engine) MarkerText(value int, listType string) string {
	e.prepare()
	return e.counters.MarkerText(value, listType)
}

// FontFaces exposes the font face cache for the renderer.
func (e *Engine) FontFaces() *FontFaceCache {
	e.prepare()
	return e.fonts
}

// userAgentSheet carries the element defaults of the host document
// language needed for sensible print output.
const userAgentSheet = `
html { display: block; }
head, style, script, link, meta, title, template { display: none; }
body { display: block; margin: 8px; }
address, article, aside, blockquote, div, dl, dd, dt, fieldset, figure,
figcaption, footer, form, header, hgroup, main, nav, section, summary,
details, pre, p, h1, h2, h3, h4, h5, h6, ol, ul, menu, dir, hr, table { display: block; }
p, dl { margin: 1em 0; }
blockquote, figure { margin: 1em 40px; }
dd { margin-left: 40px; }
h1 { font-size: 2em; margin: 0.67em 0; font-weight: bold; }
h2 { font-size: 1.5em; margin: 0.83em 0; font-weight: bold; }
h3 { font-size: 1.17em; margin: 1em 0; font-weight: bold; }
h4 { margin: 1.33em 0; font-weight: bold; }
h5 { font-size: 0.83em; margin: 1.67em 0; font-weight: bold; }
h6 { font-size: 0.67em; margin: 2.33em 0; font-weight: bold; }
b, strong { font-weight: bolder; }
i, em, cite, var, dfn { font-style: italic; }
tt, code, kbd, samp, pre { font-family: monospace; }
pre { margin: 1em 0; white-space: pre; }
small { font-size: smaller; }
big { font-size: larger; }
sub { vertical-align: sub; font-size: smaller; }
sup { vertical-align: super; font-size: smaller; }
s, strike, del { text-decoration: line-through; }
u, ins { text-decoration: underline; }
a { color: blue; text-decoration: underline; }
ol, ul, menu, dir { margin: 1em 0; padding-left: 40px; }
ol { list-style-type: decimal; }
ul, menu, dir { list-style-type: disc; }
li { display: list-item; }
table { border-collapse: separate; border-spacing: 2px; }
thead { display: table-header-group; }
tbody { display: table-row-group; }
tfoot { display: table-footer-group; }
tr { display: table-row; }
td, th { display: table-cell; padding: 1px; }
th { font-weight: bold; text-align: center; }
caption { display: table-caption; text-align: center; }
col { display: table-column; }
colgroup { display: table-column-group; }
hr { border: 1px inset; margin: 0.5em auto; }
center { display: block; text-align: center; }
`
