package counters_test

import (
	"testing"

	"go.uber.org/zap"

	"pcss/counters"
	"pcss/css"
)

func buildMap(t *testing.T, sheet string) *counters.Map {
	t.Helper()
	parser := css.NewParser(css.ParserContext{Origin: css.OriginAuthor}, zap.NewNop())
	var rules []*css.CounterStyleRule
	for _, r := range parser.ParseSheet([]byte(sheet)) {
		if r.CounterStyle != nil {
			rules = append(rules, r.CounterStyle)
		}
	}
	return counters.NewMap(rules, counters.UserAgentMap(), zap.NewNop())
}

func TestDecimal(t *testing.T) {
	m := counters.UserAgentMap()
	tests := map[int]string{0: "0", 1: "1", 9: "9", 10: "10", 42: "42", -7: "-7", 1234: "1234"}
	for value, want := range tests {
		if got := m.CounterText(value, "decimal"); got != want {
			t.Errorf("decimal %d: expected %q, got %q", value, want, got)
		}
	}
}

func TestDecimalLeadingZero(t *testing.T) {
	m := counters.UserAgentMap()
	// The negative sign counts toward the pad length, so -3 is already
	// two code points wide.
	tests := map[int]string{1: "01", 9: "09", 10: "10", 100: "100", -3: "-3"}
	for value, want := range tests {
		if got := m.CounterText(value, "decimal-leading-zero"); got != want {
			t.Errorf("decimal-leading-zero %d: expected %q, got %q", value, want, got)
		}
	}
}

func TestAlphabetic(t *testing.T) {
	m := counters.UserAgentMap()
	tests := map[int]string{1: "a", 2: "b", 26: "z", 27: "aa", 28: "ab", 703: "aaa"}
	for value, want := range tests {
		if got := m.CounterText(value, "lower-alpha"); got != want {
			t.Errorf("lower-alpha %d: expected %q, got %q", value, want, got)
		}
	}
	if got := m.CounterText(3, "upper-latin"); got != "C" {
		t.Errorf("upper-latin 3: expected C, got %q", got)
	}
}

func TestRoman(t *testing.T) {
	m := counters.UserAgentMap()
	tests := map[int]string{
		1: "i", 2: "ii", 3: "iii", 4: "iv", 5: "v", 9: "ix",
		14: "xiv", 40: "xl", 90: "xc", 400: "cd", 1990: "mcmxc", 3999: "mmmcmxcix",
	}
	for value, want := range tests {
		if got := m.CounterText(value, "lower-roman"); got != want {
			t.Errorf("lower-roman %d: expected %q, got %q", value, want, got)
		}
	}
	if got := m.CounterText(4, "upper-roman"); got != "IV" {
		t.Errorf("upper-roman 4: expected IV, got %q", got)
	}
	// Out of the 1-3999 range the style falls back to decimal.
	if got := m.CounterText(4000, "lower-roman"); got != "4000" {
		t.Errorf("lower-roman 4000: expected decimal fallback, got %q", got)
	}
	if got := m.CounterText(0, "lower-roman"); got != "0" {
		t.Errorf("lower-roman 0: expected decimal fallback, got %q", got)
	}
}

func TestCyclicMarkers(t *testing.T) {
	m := counters.UserAgentMap()
	for _, value := range []int{1, 2, 17} {
		if got := m.CounterText(value, "disc"); got != "•" {
			t.Errorf("disc %d: expected bullet, got %q", value, got)
		}
	}
	if got := m.MarkerText(1, "disc"); got != "• " {
		t.Errorf("disc marker: expected bullet plus space, got %q", got)
	}
	if got := m.MarkerText(2, "decimal"); got != "2. " {
		t.Errorf("decimal marker: expected default suffix, got %q", got)
	}
}

func TestNoneListType(t *testing.T) {
	m := counters.UserAgentMap()
	if got := m.CounterText(3, "none"); got != "" {
		t.Errorf("none: expected empty, got %q", got)
	}
	if got := m.MarkerText(3, ""); got != "" {
		t.Errorf("empty: expected empty, got %q", got)
	}
}

func TestFixedSystem(t *testing.T) {
	m := buildMap(t, `@counter-style keys { system: fixed 3; symbols: "x" "y" "z" }`)
	tests := map[int]string{3: "x", 4: "y", 5: "z", 6: "6", 2: "2"}
	for value, want := range tests {
		if got := m.CounterText(value, "keys"); got != want {
			t.Errorf("keys %d: expected %q, got %q", value, want, got)
		}
	}
}

func TestSymbolicSystem(t *testing.T) {
	m := buildMap(t, `@counter-style stars { system: symbolic; symbols: "*" "+" }`)
	tests := map[int]string{1: "*", 2: "+", 3: "**", 4: "++", 5: "***"}
	for value, want := range tests {
		if got := m.CounterText(value, "stars"); got != want {
			t.Errorf("stars %d: expected %q, got %q", value, want, got)
		}
	}
}

func TestAdditiveZeroWeightSymbol(t *testing.T) {
	m := buildMap(t, `@counter-style w { system: additive; additive-symbols: 5 "V", 1 "I", 0 "Z"; range: 0 infinite }`)
	if got := m.CounterText(0, "w"); got != "Z" {
		t.Errorf("0: expected zero symbol, got %q", got)
	}
	if got := m.CounterText(7, "w"); got != "VII" {
		t.Errorf("7: expected VII, got %q", got)
	}
}

func TestNegativeDescriptor(t *testing.T) {
	m := buildMap(t, `@counter-style neg { system: numeric; symbols: "0" "1" "2"; negative: "(" ")" }`)
	if got := m.CounterText(-4, "neg"); got != "(11)" {
		t.Errorf("expected (11), got %q", got)
	}
	if got := m.CounterText(4, "neg"); got != "11" {
		t.Errorf("expected 11, got %q", got)
	}
}

func TestPadCountsCodePoints(t *testing.T) {
	m := buildMap(t, `@counter-style padded { system: extends decimal; pad: 3 "•" }`)
	if got := m.CounterText(7, "padded"); got != "••7" {
		t.Errorf("expected ••7, got %q", got)
	}
	if got := m.CounterText(1234, "padded"); got != "1234" {
		t.Errorf("longer representations are not padded, got %q", got)
	}
	if got := m.CounterText(-7, "padded"); got != "-•7" {
		t.Errorf("padding goes between the sign and the digits, got %q", got)
	}
}

func TestPrefixSuffix(t *testing.T) {
	m := buildMap(t, `@counter-style sec { system: extends decimal; prefix: "§"; suffix: ": " }`)
	if got := m.MarkerText(2, "sec"); got != "§2: " {
		t.Errorf("expected §2: , got %q", got)
	}
}

func TestExtendsInheritsUnsetDescriptors(t *testing.T) {
	m := buildMap(t, `
		@counter-style base { system: numeric; symbols: "0" "1"; suffix: "~" }
		@counter-style derived { system: extends base; prefix: ">" }
	`)
	if got := m.MarkerText(2, "derived"); got != ">10~" {
		t.Errorf("expected >10~, got %q", got)
	}
}

func TestExtendsChain(t *testing.T) {
	m := buildMap(t, `
		@counter-style a { system: extends b }
		@counter-style b { system: extends c }
		@counter-style c { system: symbolic; symbols: "#" }
	`)
	if got := m.CounterText(2, "a"); got != "##" {
		t.Errorf("chain should resolve transitively, got %q", got)
	}
}

func TestExtendsCycleFallsBackToDecimal(t *testing.T) {
	m := buildMap(t, `
		@counter-style a { system: extends b }
		@counter-style b { system: extends c }
		@counter-style c { system: extends a }
	`)
	for _, name := range []string{"a", "b", "c"} {
		if got := m.CounterText(5, name); got != "5" {
			t.Errorf("%s: cycle participants must render decimal, got %q", name, got)
		}
	}
}

func TestExtendsMissingTargetUsesDecimal(t *testing.T) {
	m := buildMap(t, `@counter-style a { system: extends nonesuch }`)
	if got := m.CounterText(12, "a"); got != "12" {
		t.Errorf("missing target extends decimal, got %q", got)
	}
}

func TestFallbackChain(t *testing.T) {
	m := buildMap(t, `
		@counter-style narrow { system: fixed; symbols: "x"; fallback: wide }
		@counter-style wide { system: fixed 2; symbols: "y"; fallback: narrow }
	`)
	if got := m.CounterText(1, "narrow"); got != "x" {
		t.Errorf("in-range value renders directly, got %q", got)
	}
	if got := m.CounterText(2, "narrow"); got != "y" {
		t.Errorf("out-of-range value uses the fallback, got %q", got)
	}
	// 3 is representable by neither; the fallback cycle guard ends the
	// recursion at the default style.
	if got := m.CounterText(3, "narrow"); got != "3" {
		t.Errorf("fallback cycle must terminate at decimal, got %q", got)
	}
}

func TestUnknownListTypeUsesDecimal(t *testing.T) {
	m := counters.UserAgentMap()
	if got := m.CounterText(8, "no-such-style"); got != "8" {
		t.Errorf("unknown styles use decimal, got %q", got)
	}
}
