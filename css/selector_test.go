package css

import "testing"

func parseSelectors(t *testing.T, text string) []Selector {
	t.Helper()
	list, ok := ParseSelectorText(text, true)
	if !ok {
		t.Fatalf("%q: expected selector list to parse", text)
	}
	return list
}

func TestParseCompoundStructure(t *testing.T) {
	list := parseSelectors(t, "div#main.note[data-x=on]:first-child::before")
	if len(list) != 1 || len(list[0]) != 1 {
		t.Fatalf("expected one compound, got %+v", list)
	}
	compound := list[0][0].Compound
	var matches []MatchType
	for i := range compound {
		matches = append(matches, compound[i].Match)
	}
	want := []MatchType{MatchTag, MatchID, MatchClass, MatchAttributeEquals,
		MatchPseudoClassFirstChild, MatchPseudoElementBefore}
	if len(matches) != len(want) {
		t.Fatalf("expected %v, got %v", want, matches)
	}
	for i := range want {
		if matches[i] != want[i] {
			t.Errorf("part %d: expected %v, got %v", i, want[i], matches[i])
		}
	}
}

func TestParseCombinators(t *testing.T) {
	list := parseSelectors(t, "ul > li + li ~ em span")
	sel := list[0]
	if len(sel) != 5 {
		t.Fatalf("expected 5 units, got %d", len(sel))
	}
	want := []Combinator{CombinatorNone, CombinatorChild, CombinatorDirectAdjacent,
		CombinatorIndirectAdjacent, CombinatorDescendant}
	for i := range want {
		if sel[i].Combinator != want[i] {
			t.Errorf("unit %d: expected %v, got %v", i, want[i], sel[i].Combinator)
		}
	}
}

func TestParseSelectorListCommaSeparated(t *testing.T) {
	list := parseSelectors(t, "h1, h2 , h3")
	if len(list) != 3 {
		t.Fatalf("expected 3 selectors, got %d", len(list))
	}
}

func TestMalformedSelectorFailsWholeList(t *testing.T) {
	if _, ok := ParseSelectorText("h1, ::bogus", true); ok {
		t.Error("unknown pseudo element must fail the list")
	}
	if _, ok := ParseSelectorText("h1,", true); ok {
		t.Error("trailing comma must fail the list")
	}
	if _, ok := ParseSelectorText("", true); ok {
		t.Error("empty selector must fail")
	}
}

func TestHTMLNameFolding(t *testing.T) {
	list := parseSelectors(t, "DIV[Data-X=Value]")
	compound := list[0][0].Compound
	if compound[0].Name != "div" {
		t.Errorf("tag should fold, got %q", compound[0].Name)
	}
	if compound[1].Name != "data-x" {
		t.Errorf("attribute name should fold, got %q", compound[1].Name)
	}
	if compound[1].Value != "Value" {
		t.Errorf("attribute value must preserve case, got %q", compound[1].Value)
	}

	xml, ok := ParseSelectorText("DIV", false)
	if !ok || xml[0][0].Compound[0].Name != "DIV" {
		t.Error("non-HTML tag names must preserve case")
	}
}

func TestAttributeSelectorOperators(t *testing.T) {
	ops := map[string]MatchType{
		"[a]":     MatchAttributeHas,
		"[a=b]":   MatchAttributeEquals,
		"[a~=b]":  MatchAttributeIncludes,
		"[a|=b]":  MatchAttributeDashEquals,
		"[a^=b]":  MatchAttributeStartsWith,
		"[a$=b]":  MatchAttributeEndsWith,
		"[a*=b]":  MatchAttributeContains,
		`[a="b"]`: MatchAttributeEquals,
	}
	for text, want := range ops {
		list := parseSelectors(t, text)
		got := list[0][0].Compound[0]
		if got.Match != want {
			t.Errorf("%s: expected %v, got %v", text, want, got.Match)
		}
	}
	list := parseSelectors(t, "[a=b i]")
	if !list[0][0].Compound[0].CaseInsensitive {
		t.Error("i flag lost")
	}
	list = parseSelectors(t, "[a=b s]")
	if list[0][0].Compound[0].CaseInsensitive {
		t.Error("s flag must stay case-sensitive")
	}
}

func TestFunctionalPseudoClasses(t *testing.T) {
	list := parseSelectors(t, ":is(h1, h2):not(.skip):has(> b)")
	compound := list[0][0].Compound
	if compound[0].Match != MatchPseudoClassIs || len(compound[0].Sub) != 2 {
		t.Errorf("is: got %+v", compound[0])
	}
	if compound[1].Match != MatchPseudoClassNot || len(compound[1].Sub) != 1 {
		t.Errorf("not: got %+v", compound[1])
	}
	has := compound[2]
	if has.Match != MatchPseudoClassHas || len(has.Sub) != 1 {
		t.Fatalf("has: got %+v", has)
	}
	if has.Sub[0][0].Combinator != CombinatorChild {
		t.Errorf("has leading combinator lost: %+v", has.Sub[0][0])
	}
}

func TestLegacyPseudoElementAliases(t *testing.T) {
	for _, text := range []string{":before", "::before"} {
		list := parseSelectors(t, "p"+text)
		compound := list[0][0].Compound
		if compound[len(compound)-1].Match != MatchPseudoElementBefore {
			t.Errorf("%s: expected before pseudo element", text)
		}
	}
}

func TestNthSelectors(t *testing.T) {
	list := parseSelectors(t, "li:nth-child(2n+1)")
	ss := list[0][0].Compound[1]
	if ss.Match != MatchPseudoClassNthChild || ss.A != 2 || ss.B != 1 {
		t.Errorf("got %+v", ss)
	}
	list = parseSelectors(t, "li:nth-last-of-type(odd)")
	ss = list[0][0].Compound[1]
	if ss.Match != MatchPseudoClassNthLastOfType || ss.A != 2 || ss.B != 1 {
		t.Errorf("got %+v", ss)
	}
}

func TestSpecificity(t *testing.T) {
	tests := []struct {
		selector string
		want     uint32
	}{
		{"*", 0},
		{"p", 0x1},
		{"p::before", 0x2},
		{".note", 0x100},
		{"[href]", 0x100},
		{":first-child", 0x100},
		{"#main", 0x10000},
		{"div p.note", 0x102},
		{"#a .b c", 0x10101},
		{":is(#a, .b)", 0x10000},
		{":not(.b, span)", 0x100},
		{":where(#a, .b)", 0},
		{":has(> .b)", 0x100},
		{"li:nth-child(2n)", 0x101},
	}
	for _, tc := range tests {
		list := parseSelectors(t, tc.selector)
		if got := list[0].Specificity(); got != tc.want {
			t.Errorf("%s: expected %#x, got %#x", tc.selector, tc.want, got)
		}
	}
}

func TestNthMatchesPattern(t *testing.T) {
	matches := func(a, b, n int) bool {
		ss := SimpleSelector{A: a, B: b}
		return ss.MatchesNth(n)
	}
	// 2n+1 selects odd indices.
	for n := 1; n <= 9; n++ {
		if matches(2, 1, n) != (n%2 == 1) {
			t.Errorf("2n+1 at %d wrong", n)
		}
	}
	// -n+3 selects the first three.
	for n := 1; n <= 6; n++ {
		if matches(-1, 3, n) != (n <= 3) {
			t.Errorf("-n+3 at %d wrong", n)
		}
	}
	// a=0 matches exactly b.
	if !matches(0, 4, 4) || matches(0, 4, 5) {
		t.Error("0n+4 wrong")
	}
}
