package style

import (
	"testing"

	"pcss/css"
)

func TestPageSelectorMatching(t *testing.T) {
	e := newTestEngine(t, `
		@page { margin-top: 10px }
		@page :first { margin-top: 20px }
		@page chapter { margin-top: 30px }
	`)

	s := e.StyleForPage("", 1, css.PseudoNone)
	if v, _ := s.Length(css.PropMarginTop); v != 10 {
		t.Errorf("plain page should get the universal rule, got %v", v)
	}

	s = e.StyleForPage("", 0, css.PseudoNone)
	if v, _ := s.Length(css.PropMarginTop); v != 20 {
		t.Errorf(":first should win on the first page, got %v", v)
	}

	s = e.StyleForPage("chapter", 1, css.PseudoNone)
	if v, _ := s.Length(css.PropMarginTop); v != 30 {
		t.Errorf("named page rule should win, got %v", v)
	}
}

func TestPageLeftRightParity(t *testing.T) {
	e := newTestEngine(t, `
		@page :left { margin-left: 40px }
		@page :right { margin-left: 50px }
	`)
	// The first page (index 0) is a right page.
	s := e.StyleForPage("", 0, css.PseudoNone)
	if v, _ := s.Length(css.PropMarginLeft); v != 50 {
		t.Errorf("page 0 is a right page, got %v", v)
	}
	s = e.StyleForPage("", 1, css.PseudoNone)
	if v, _ := s.Length(css.PropMarginLeft); v != 40 {
		t.Errorf("page 1 is a left page, got %v", v)
	}
}

func TestPageNthMatching(t *testing.T) {
	e := newTestEngine(t, `@page :nth(3) { margin-top: 70px }`)
	s := e.StyleForPage("", 2, css.PseudoNone) // 1-based third page
	if v, _ := s.Length(css.PropMarginTop); v != 70 {
		t.Errorf(":nth(3) should hit page index 2, got %v", v)
	}
	s = e.StyleForPage("", 3, css.PseudoNone)
	if _, ok := s.Length(css.PropMarginTop); ok {
		t.Error(":nth(3) must not hit other pages")
	}
}

func TestPageMarginBoxes(t *testing.T) {
	e := newTestEngine(t, `
		@page {
			@top-center { content: "Header" }
			@bottom-left { content: counter(page); text-align: right }
		}
	`)
	page := e.StyleForPage("", 0, css.PseudoNone)

	tc := e.StyleForPageMargin("", 0, css.PageMarginTopCenter, page)
	if tc == nil {
		t.Fatal("expected top-center style")
	}
	if v := tc.Get(css.PropContent); v == nil {
		t.Error("content declaration lost")
	}
	if !tc.Get(css.PropTextAlign).IsIdent("center") {
		t.Error("top-center preset text-align should be center")
	}
	if !tc.Get(css.PropVerticalAlign).IsIdent("middle") {
		t.Error("top-center preset vertical-align should be middle")
	}

	bl := e.StyleForPageMargin("", 0, css.PageMarginBottomLeft, page)
	if bl == nil {
		t.Fatal("expected bottom-left style")
	}
	if !bl.Get(css.PropTextAlign).IsIdent("right") {
		t.Error("cascaded text-align must override the preset")
	}

	if missing := e.StyleForPageMargin("", 0, css.PageMarginRightTop, page); missing != nil {
		t.Error("margin boxes without declarations yield nil")
	}
}

func TestPageSpecificityOrdering(t *testing.T) {
	e := newTestEngine(t, `
		@page chapter:first { margin-top: 1px }
		@page chapter { margin-top: 2px }
		@page :first { margin-top: 3px }
	`)
	s := e.StyleForPage("chapter", 0, css.PseudoNone)
	if v, _ := s.Length(css.PropMarginTop); v != 1 {
		t.Errorf("named first page should win, got %v", v)
	}
	s = e.StyleForPage("other", 0, css.PseudoNone)
	if v, _ := s.Length(css.PropMarginTop); v != 3 {
		t.Errorf("unnamed :first applies to other pages, got %v", v)
	}
}
