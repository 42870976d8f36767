package style

import "pcss/css"

// Page style resolution. Page selectors match on the page name, the
// 0-based page index and the page pseudo type; margin boxes get their
// alignment presets before the cascade applies.

// matchPageSelector evaluates one @page selector.
func matchPageSelector(sel css.PageSelector, name string, index uint32, pseudo css.PseudoType) bool {
	if sel.Name != "" && sel.Name != name {
		return false
	}
	for _, p := range sel.Pseudos {
		switch p {
		case css.PseudoFirstPage:
			if index != 0 {
				return false
			}
		case css.PseudoLeftPage:
			// The first page is a right page; parity alternates.
			if index%2 == 0 {
				return false
			}
		case css.PseudoRightPage:
			if index%2 != 0 {
				return false
			}
		case css.PseudoBlankPage:
			if pseudo != css.PseudoBlankPage {
				return false
			}
		}
	}
	for _, nth := range sel.Nths {
		ss := css.SimpleSelector{A: nth[0], B: nth[1]}
		if !ss.MatchesNth(int(index) + 1) {
			return false
		}
	}
	return true
}

// StyleForPage resolves the style of a page box.
func (e *Engine) StyleForPage(name string, index uint32, pseudo css.PseudoType) *Style {
	e.prepare()
	b := newStyleBuilder(e, e.pageParentStyle(), pseudo)
	for _, data := range e.index.pages {
		if matchPageSelector(data.Selector, name, index, pseudo) {
			b.merge(data.Specificity, data.Position, data.Rule.Properties)
		}
	}
	s := b.build()
	s.set(css.PropDisplay, css.Ident("block"))
	return s
}

// StyleForPageMargin resolves the style of one margin box of a page;
// nil means the box has no declarations and is not generated.
func (e *Engine) StyleForPageMargin(name string, index uint32, margin css.PageMarginType, pageStyle *Style) *Style {
	e.prepare()
	b := newStyleBuilder(e, pageStyle, css.PseudoNone)
	for _, data := range e.index.pages {
		if !matchPageSelector(data.Selector, name, index, css.PseudoNone) {
			continue
		}
		for _, mr := range data.Rule.Margins {
			if mr.Margin == margin {
				b.merge(data.Specificity, data.Position, mr.Properties)
			}
		}
	}
	if b.empty() {
		return nil
	}
	s := b.build()
	presetMarginAlignment(s, margin)
	s.set(css.PropDisplay, css.Ident("block"))
	s.set(css.PropPosition, css.Ident("static"))
	s.set(css.PropFloat, css.Ident("none"))
	return s
}

func (e *Engine) pageParentStyle() *Style {
	return NewDefaultStyle()
}

// presetMarginAlignment applies the per-box alignment defaults unless
// the cascade set them explicitly.
func presetMarginAlignment(s *Style, margin css.PageMarginType) {
	textAlign, verticalAlign := marginBoxAlignment(margin)
	if s.Get(css.PropTextAlign) == nil && textAlign != "" {
		s.set(css.PropTextAlign, css.Ident(textAlign))
	}
	if s.Get(css.PropVerticalAlign) == nil && verticalAlign != "" {
		s.set(css.PropVerticalAlign, css.Ident(verticalAlign))
	}
}

func marginBoxAlignment(margin css.PageMarginType) (textAlign, verticalAlign string) {
	switch margin {
	case css.PageMarginTopLeftCorner:
		return "right", "middle"
	case css.PageMarginTopLeft:
		return "left", "middle"
	case css.PageMarginTopCenter:
		return "center", "middle"
	case css.PageMarginTopRight:
		return "right", "middle"
	case css.PageMarginTopRightCorner:
		return "left", "middle"
	case css.PageMarginRightTop:
		return "center", "top"
	case css.PageMarginRightMiddle:
		return "center", "middle"
	case css.PageMarginRightBottom:
		return "center", "bottom"
	case css.PageMarginBottomRightCorner:
		return "left", "middle"
	case css.PageMarginBottomRight:
		return "right", "middle"
	case css.PageMarginBottomCenter:
		return "center", "middle"
	case css.PageMarginBottomLeft:
		return "left", "middle"
	case css.PageMarginBottomLeftCorner:
		return "right", "middle"
	case css.PageMarginLeftTop:
		return "center", "top"
	case css.PageMarginLeftMiddle:
		return "center", "middle"
	case css.PageMarginLeftBottom:
		return "center", "bottom"
	}
	return "", ""
}
