package css

import "testing"

func parseColorValue(t *testing.T, text string) *Value {
	t.Helper()
	v, ok := ParseColorString(text)
	if !ok {
		t.Fatalf("%q: expected color to parse", text)
	}
	return v
}

func TestParseHexColors(t *testing.T) {
	tests := []struct {
		input string
		want  RGBA
	}{
		{"#fff", RGBA{255, 255, 255, 255}},
		{"#f00", RGBA{255, 0, 0, 255}},
		{"#f008", RGBA{255, 0, 0, 136}},
		{"#ff0000", RGBA{255, 0, 0, 255}},
		{"#ff000080", RGBA{255, 0, 0, 128}},
		{"#AbCdEf", RGBA{171, 205, 239, 255}},
	}
	for _, tc := range tests {
		v := parseColorValue(t, tc.input)
		if v.ColorOf() != tc.want {
			t.Errorf("%s: expected %+v, got %+v", tc.input, tc.want, v.ColorOf())
		}
	}
	for _, bad := range []string{"#ff", "#fffff", "#ggg"} {
		if _, ok := ParseColorString(bad); ok {
			t.Errorf("%s: expected rejection", bad)
		}
	}
}

func TestParseRGBFunctions(t *testing.T) {
	tests := []struct {
		input string
		want  RGBA
	}{
		{"rgb(255, 0, 0)", RGBA{255, 0, 0, 255}},
		{"rgba(255, 0, 0, 0.5)", RGBA{255, 0, 0, 128}},
		{"rgb(100%, 0%, 50%)", RGBA{255, 0, 128, 255}},
		{"rgb(255 0 0)", RGBA{255, 0, 0, 255}},
		{"rgb(255 0 0 / 50%)", RGBA{255, 0, 0, 128}},
		{"rgb(300, -5, 0)", RGBA{255, 0, 0, 255}},
	}
	for _, tc := range tests {
		v := parseColorValue(t, tc.input)
		if v.ColorOf() != tc.want {
			t.Errorf("%s: expected %+v, got %+v", tc.input, tc.want, v.ColorOf())
		}
	}
}

func TestParseRGBMixedComponentsRejected(t *testing.T) {
	for _, bad := range []string{
		"rgb(255, 0%, 0)",
		"rgb(0%, 0, 0%)",
		"rgb(255 0, 0)",
		"rgb(255, 0 0)",
	} {
		if _, ok := ParseColorString(bad); ok {
			t.Errorf("%s: expected rejection", bad)
		}
	}
}

func TestParseHSL(t *testing.T) {
	tests := []struct {
		input string
		want  RGBA
	}{
		{"hsl(120 100% 50%)", RGBA{0, 255, 0, 255}},
		{"hsl(120, 100%, 50%)", RGBA{0, 255, 0, 255}},
		{"hsl(0 100% 50%)", RGBA{255, 0, 0, 255}},
		{"hsl(240 100% 50%)", RGBA{0, 0, 255, 255}},
		{"hsl(0 0% 100%)", RGBA{255, 255, 255, 255}},
		{"hsl(480 100% 50%)", RGBA{0, 255, 0, 255}},
		{"hsla(120, 100%, 50%, 0.5)", RGBA{0, 255, 0, 128}},
		{"hsl(0.25turn 100% 50%)", RGBA{128, 255, 0, 255}},
	}
	for _, tc := range tests {
		v := parseColorValue(t, tc.input)
		if v.ColorOf() != tc.want {
			t.Errorf("%s: expected %+v, got %+v", tc.input, tc.want, v.ColorOf())
		}
	}
}

func TestParseHWB(t *testing.T) {
	v := parseColorValue(t, "hwb(0 0% 0%)")
	if v.ColorOf() != (RGBA{255, 0, 0, 255}) {
		t.Errorf("hwb red: got %+v", v.ColorOf())
	}
	v = parseColorValue(t, "hwb(0 100% 100%)")
	c := v.ColorOf()
	if c.R != c.G || c.G != c.B {
		t.Errorf("hwb with w+b>1 must normalize to gray, got %+v", c)
	}
}

func TestParseNamedColors(t *testing.T) {
	v := parseColorValue(t, "rebeccapurple")
	if v.ColorOf() != (RGBA{102, 51, 153, 255}) {
		t.Errorf("got %+v", v.ColorOf())
	}
	v = parseColorValue(t, "transparent")
	if v.ColorOf() != (RGBA{}) {
		t.Errorf("transparent: got %+v", v.ColorOf())
	}
	v = parseColorValue(t, "currentcolor")
	if !v.IsIdent("currentcolor") {
		t.Errorf("currentcolor should stay symbolic, got %+v", v)
	}
}
