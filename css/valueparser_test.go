package css

import (
	"testing"

	"go.uber.org/zap"
)

// parseDecl parses a single declaration through the stylesheet parser
// and returns the resulting longhands.
func parseDecl(t *testing.T, name, value string) []Property {
	t.Helper()
	rules := styleRules(parseSheet(t, "x { "+name+": "+value+" }"))
	if len(rules) == 0 {
		return nil
	}
	return rules[0].Properties
}

func parseOne(t *testing.T, name, value string) *Value {
	t.Helper()
	props := parseDecl(t, name, value)
	if len(props) != 1 {
		t.Fatalf("%s: %s: expected 1 property, got %d", name, value, len(props))
	}
	return props[0].Value
}

func TestParseLengths(t *testing.T) {
	tests := []struct {
		value string
		num   float64
		unit  Unit
	}{
		{"10px", 10, UnitPx},
		{"1.5em", 1.5, UnitEm},
		{"2rem", 2, UnitRem},
		{"10vw", 10, UnitVw},
		{"0", 0, UnitNone},
		{"1cm", 1, UnitCm},
	}
	for _, tc := range tests {
		v := parseOne(t, "width", tc.value)
		if v.Kind != ValueLength || v.Number != tc.num || v.Unit != tc.unit {
			t.Errorf("width: %s: got %+v", tc.value, v)
		}
	}
}

func TestParseLengthRejections(t *testing.T) {
	// Bare non-zero numbers and negative widths are invalid.
	for _, bad := range []string{"10", "-5px", "10deg"} {
		if props := parseDecl(t, "width", bad); len(props) != 0 {
			t.Errorf("width: %s: expected rejection, got %v", bad, props)
		}
	}
	// Negative margins are fine.
	v := parseOne(t, "margin-left", "-5px")
	if v.Number != -5 {
		t.Errorf("margin-left: -5px: got %+v", v)
	}
}

func TestParsePercent(t *testing.T) {
	v := parseOne(t, "width", "50%")
	if v.Kind != ValuePercent || v.Number != 50 {
		t.Errorf("got %+v", v)
	}
}

func TestParseKeywords(t *testing.T) {
	v := parseOne(t, "display", "inline-BLOCK")
	if !v.IsIdent("inline-block") {
		t.Errorf("expected folded keyword, got %+v", v)
	}
	if props := parseDecl(t, "display", "bogus"); len(props) != 0 {
		t.Error("unknown keyword should reject the declaration")
	}
}

func TestParseZIndex(t *testing.T) {
	v := parseOne(t, "z-index", "-3")
	if v.Kind != ValueInteger || v.Int != -3 {
		t.Errorf("got %+v", v)
	}
	if props := parseDecl(t, "z-index", "1.5"); len(props) != 0 {
		t.Error("fractional z-index should be rejected")
	}
}

func TestParseContent(t *testing.T) {
	v := parseOne(t, "content", `"(" counter(section, upper-roman) ") " attr(data-note, "!") leader(".")`)
	if v.Kind != ValueList || len(v.Items) != 5 {
		t.Fatalf("expected 5 content items, got %+v", v)
	}
	counter := v.Items[1]
	if counter.Kind != ValueFunction || counter.Text != "counter" || len(counter.Items) != 2 {
		t.Errorf("unexpected counter() value %+v", counter)
	}
	attr := v.Items[3]
	if attr.Kind != ValueFunction || attr.Text != "attr" || len(attr.Items) != 2 {
		t.Errorf("unexpected attr() value %+v", attr)
	}
	leader := v.Items[4]
	if leader.Kind != ValueFunction || leader.Text != "leader" {
		t.Errorf("unexpected leader() value %+v", leader)
	}
}

func TestParseContentQuotes(t *testing.T) {
	v := parseOne(t, "content", "open-quote no-close-quote")
	if v.Kind != ValueList || len(v.Items) != 2 || !v.Items[0].IsIdent("open-quote") {
		t.Errorf("got %+v", v)
	}
}

func TestParseCounterOps(t *testing.T) {
	v := parseOne(t, "counter-increment", "chapter section 2")
	if v.Kind != ValueList || len(v.Items) != 2 {
		t.Fatalf("got %+v", v)
	}
	if v.Items[0].Second.Int != 1 {
		t.Errorf("default increment should be 1, got %d", v.Items[0].Second.Int)
	}
	if v.Items[1].Second.Int != 2 {
		t.Errorf("explicit increment lost, got %d", v.Items[1].Second.Int)
	}

	v = parseOne(t, "counter-reset", "page")
	if v.Items[0].Second.Int != 0 {
		t.Errorf("default reset should be 0, got %d", v.Items[0].Second.Int)
	}
}

func TestParseFontFamilyList(t *testing.T) {
	v := parseOne(t, "font-family", `"Noto Serif", Times New Roman, serif`)
	if v.Kind != ValueList || len(v.Items) != 3 {
		t.Fatalf("got %+v", v)
	}
	if v.Items[1].Text != "Times New Roman" {
		t.Errorf("expected joined identifier family, got %q", v.Items[1].Text)
	}
}

func TestParseFontFeatureSettings(t *testing.T) {
	v := parseOne(t, "font-feature-settings", `"liga" off, "smcp", "kern" 2`)
	if v.Kind != ValueList || len(v.Items) != 3 {
		t.Fatalf("got %+v", v)
	}
	if v.Items[0].Int != 0 || v.Items[1].Int != 1 || v.Items[2].Int != 2 {
		t.Errorf("unexpected feature values %+v", v.Items)
	}
	if props := parseDecl(t, "font-feature-settings", `"toolong" 1`); len(props) != 0 {
		t.Error("tags must be four characters")
	}
}

func TestParseFontVariantDuplicatesRejected(t *testing.T) {
	if props := parseDecl(t, "font-variant-numeric", "lining-nums lining-nums"); len(props) != 0 {
		t.Error("duplicate keyword in one group must reject the value")
	}
	v := parseOne(t, "font-variant-numeric", "lining-nums tabular-nums")
	if v.Kind != ValueList || len(v.Items) != 2 {
		t.Errorf("got %+v", v)
	}
}

func TestParseNthPatternForms(t *testing.T) {
	tests := []struct {
		input string
		a, b  int
	}{
		{"odd", 2, 1},
		{"even", 2, 0},
		{"7", 0, 7},
		{"2n", 2, 0},
		{"2n+1", 2, 1},
		{"2n + 1", 2, 1},
		{"2n - 3", 2, -3},
		{"-n+3", -1, 3},
		{"n", 1, 0},
		{"3n-1", 3, -1},
	}
	for _, tc := range tests {
		s := stream(tc.input)
		a, b, ok := parseNthPattern(s)
		if !ok {
			t.Errorf("%q: expected parse success", tc.input)
			continue
		}
		if a != tc.a || b != tc.b {
			t.Errorf("%q: expected (%d,%d), got (%d,%d)", tc.input, tc.a, tc.b, a, b)
		}
	}
	if _, _, ok := parseNthPattern(stream("2.5n")); ok {
		t.Error("fractional coefficient must fail")
	}
}

func TestParseBorderRadiusCorner(t *testing.T) {
	v := parseOne(t, "border-top-left-radius", "1px 2px")
	if v.Kind != ValuePair || v.First.Number != 1 || v.Second.Number != 2 {
		t.Errorf("got %+v", v)
	}
	v = parseOne(t, "border-top-left-radius", "3px")
	if v.First.Number != 3 || v.Second.Number != 3 {
		t.Errorf("single radius should mirror, got %+v", v)
	}
}

func TestParsePageSize(t *testing.T) {
	v := parseOne(t, "size", "a4 landscape")
	if v.Kind != ValuePair || !v.First.IsIdent("a4") || !v.Second.IsIdent("landscape") {
		t.Errorf("got %+v", v)
	}
	v = parseOne(t, "size", "10cm 20cm")
	if v.Kind != ValuePair || v.First.Unit != UnitCm {
		t.Errorf("got %+v", v)
	}
}

func TestParseClipRect(t *testing.T) {
	v := parseOne(t, "clip", "rect(1px, 2px, auto, 4px)")
	if v.Kind != ValueRect || len(v.Items) != 4 {
		t.Fatalf("got %+v", v)
	}
	if !v.Items[2].IsIdent("auto") {
		t.Errorf("expected auto third side, got %+v", v.Items[2])
	}
}

func TestParseVariableHelpers(t *testing.T) {
	if !IsCustomPropertyName("--x") {
		t.Error("--x is a valid custom property name")
	}
	for _, bad := range []string{"--", "-x", "-- x", "x"} {
		if IsCustomPropertyName(bad) {
			t.Errorf("%q should not be a custom property name", bad)
		}
	}
	toks := Tokenize([]byte("calc(var(--a) * 2)"))
	if !containsVarReference(toks) {
		t.Error("nested var() must be detected")
	}
}

func TestIdentInterning(t *testing.T) {
	if Ident("Auto") != Ident("auto") {
		t.Error("keyword values must intern case-insensitively")
	}
	if Initial() != Initial() {
		t.Error("initial must be a singleton")
	}
}

func TestReparseDeclaration(t *testing.T) {
	p := NewParser(ParserContext{Origin: OriginAuthor}, zap.NewNop())
	props, ok := p.ReparseDeclaration(PropWidth, Tokenize([]byte("10px")))
	if !ok || len(props) != 1 || props[0].Value.Number != 10 {
		t.Fatalf("got %v %v", props, ok)
	}
	if _, ok := p.ReparseDeclaration(PropWidth, Tokenize([]byte("10px 20px"))); ok {
		t.Error("residual tokens must reject the declaration")
	}
}
