package css

// Origin identifies where a declaration came from; it is the major key
// of the cascade.
type Origin uint8

const (
	OriginUserAgent Origin = iota
	OriginUser
	OriginAuthor
	OriginInline
	OriginPresentation
)

func (o Origin) String() string {
	switch o {
	case OriginUserAgent:
		return "user-agent"
	case OriginUser:
		return "user"
	case OriginAuthor:
		return "author"
	case OriginInline:
		return "inline"
	case OriginPresentation:
		return "presentation"
	}
	return "unknown"
}

// Property is one parsed declaration.
type Property struct {
	ID        PropertyID
	Origin    Origin
	Important bool
	Value     *Value
}

// Precedence folds origin and importance into the cascade's major key.
// Normal declarations rank user-agent < user < author < inline <
// presentation; important declarations rank above all of those with the
// user-agent/user pair inverted over author/inline.
func (p Property) Precedence() int {
	if !p.Important {
		return int(p.Origin)
	}
	switch p.Origin {
	case OriginAuthor:
		return 5
	case OriginInline:
		return 6
	case OriginUser:
		return 7
	case OriginUserAgent:
		return 8
	}
	return int(p.Origin)
}

// StyleRule is a qualified rule: selectors and declarations.
type StyleRule struct {
	Selectors  []Selector
	Properties []Property
}

// ImportRule records an @import with its gating media queries.
type ImportRule struct {
	Origin Origin
	Href   string
	Media  MediaQueryList
}

// NamespaceRule records an @namespace mapping.
type NamespaceRule struct {
	Prefix string
	URI    string
}

// MediaRule is an @media block; the queries are evaluated at
// application time against the document viewport.
type MediaRule struct {
	Queries MediaQueryList
	Rules   []Rule
}

// FontFaceRule is an @font-face descriptor set.
type FontFaceRule struct {
	Properties []Property
}

// CounterStyleRule is an @counter-style descriptor set.
type CounterStyleRule struct {
	Name       string
	Properties []Property
}

// PageMarginType identifies one of the sixteen page margin boxes.
type PageMarginType uint8

const (
	PageMarginNone PageMarginType = iota
	PageMarginTopLeftCorner
	PageMarginTopLeft
	PageMarginTopCenter
	PageMarginTopRight
	PageMarginTopRightCorner
	PageMarginBottomLeftCorner
	PageMarginBottomLeft
	PageMarginBottomCenter
	PageMarginBottomRight
	PageMarginBottomRightCorner
	PageMarginLeftTop
	PageMarginLeftMiddle
	PageMarginLeftBottom
	PageMarginRightTop
	PageMarginRightMiddle
	PageMarginRightBottom
)

var pageMarginNames = map[string]PageMarginType{
	"top-left-corner":     PageMarginTopLeftCorner,
	"top-left":            PageMarginTopLeft,
	"top-center":          PageMarginTopCenter,
	"top-right":           PageMarginTopRight,
	"top-right-corner":    PageMarginTopRightCorner,
	"bottom-left-corner":  PageMarginBottomLeftCorner,
	"bottom-left":         PageMarginBottomLeft,
	"bottom-center":       PageMarginBottomCenter,
	"bottom-right":        PageMarginBottomRight,
	"bottom-right-corner": PageMarginBottomRightCorner,
	"left-top":            PageMarginLeftTop,
	"left-middle":         PageMarginLeftMiddle,
	"left-bottom":         PageMarginLeftBottom,
	"right-top":           PageMarginRightTop,
	"right-middle":        PageMarginRightMiddle,
	"right-bottom":        PageMarginRightBottom,
}

// PageMarginTypeByName resolves a margin at-rule name like
// "top-center".
func PageMarginTypeByName(name string) (PageMarginType, bool) {
	mt, ok := pageMarginNames[lowerASCII(name)]
	return mt, ok
}

// PageMarginRule is a margin box rule nested in @page.
type PageMarginRule struct {
	Margin     PageMarginType
	Properties []Property
}

// PageRule is an @page rule with its margin boxes.
type PageRule struct {
	Selectors  []PageSelector
	Margins    []PageMarginRule
	Properties []Property
}

// PageSelector matches a page by name, the first/left/right/blank
// pseudo classes and :nth(An+B) patterns over the 1-based page index.
type PageSelector struct {
	Name    string // empty matches every page
	Pseudos []PseudoType
	Nths    [][2]int
}

// Specificity of a page selector: named pages dominate, then :first,
// then :left/:right/:blank.
func (ps PageSelector) Specificity() uint32 {
	var spec uint32
	if ps.Name != "" {
		spec += 0x10000
	}
	for _, p := range ps.Pseudos {
		switch p {
		case PseudoFirstPage:
			spec += 0x100
		default:
			spec += 0x1
		}
	}
	spec += uint32(len(ps.Nths)) * 0x100
	return spec
}

// Rule is a tagged stylesheet item; exactly one field is non-nil.
type Rule struct {
	Style        *StyleRule
	Import       *ImportRule
	Namespace    *NamespaceRule
	Media        *MediaRule
	FontFace     *FontFaceRule
	CounterStyle *CounterStyleRule
	Page         *PageRule
}
