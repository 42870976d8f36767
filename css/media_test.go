package css

import "testing"

func TestMediaQueryEvaluation(t *testing.T) {
	print600 := Viewport{Width: 600, Height: 800, Media: MediaTypePrint}
	print500 := Viewport{Width: 500, Height: 400, Media: MediaTypePrint}
	screen := Viewport{Width: 1024, Height: 768, Media: MediaTypeScreen}

	tests := []struct {
		query string
		vp    Viewport
		want  bool
	}{
		{"", print600, true},
		{"all", print600, true},
		{"print", print600, true},
		{"print", screen, false},
		{"screen", screen, true},
		{"not print", print600, false},
		{"not print", screen, true},
		{"only print", print600, true},
		{"(min-width: 600px)", print600, true},
		{"(min-width: 600px)", print500, false},
		{"(max-width: 600px)", print600, true},
		{"(max-width: 599px)", print600, false},
		{"(width: 600px)", print600, true},
		{"(width: 601px)", print600, false},
		{"(min-height: 700px) and (max-height: 900px)", print600, true},
		{"print and (min-width: 600px)", print600, true},
		{"print and (min-width: 700px)", print600, false},
		{"not print and (min-width: 700px)", print600, true},
		{"(orientation: portrait)", print600, true},
		{"(orientation: landscape)", print600, false},
		{"(orientation: landscape)", screen, true},
		{"(min-width: 10cm)", print600, true}, // 10cm ≈ 378px
		{"screen, print", print600, true},
		{"screen, (min-width: 700px)", print500, false},
	}
	for _, tc := range tests {
		list := ParseMediaQueryList(tc.query)
		if got := list.Matches(tc.vp); got != tc.want {
			t.Errorf("%q against %+v: expected %v, got %v", tc.query, tc.vp, tc.want, got)
		}
	}
}

func TestMalformedMediaQueryNeverMatches(t *testing.T) {
	list := ParseMediaQueryList("(bogus-feature: 3) , print")
	vp := Viewport{Width: 600, Height: 800, Media: MediaTypePrint}
	if !list.Matches(vp) {
		t.Error("valid query in the list should still match")
	}
	list = ParseMediaQueryList("(bogus-feature: 3)")
	if list.Matches(vp) {
		t.Error("malformed query alone must not match")
	}
}
