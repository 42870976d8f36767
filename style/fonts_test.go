package style

import (
	"testing"

	"go.uber.org/zap"

	"pcss/css"
)

func parseFontFaceRules(t *testing.T, sheet string) []*css.FontFaceRule {
	t.Helper()
	parser := css.NewParser(css.ParserContext{Origin: css.OriginAuthor}, zap.NewNop())
	var out []*css.FontFaceRule
	for _, r := range parser.ParseSheet([]byte(sheet)) {
		if r.FontFace != nil {
			out = append(out, r.FontFace)
		}
	}
	return out
}

func TestFontFaceCacheRegistration(t *testing.T) {
	cache := NewFontFaceCache()
	for _, ff := range parseFontFaceRules(t, `
		@font-face { font-family: "Body"; src: url(body.woff2) format("woff2") }
		@font-face { font-family: "Body"; src: url(body-bold.woff2); font-weight: bold }
		@font-face { src: url(nameless.woff2) }
		@font-face { font-family: "NoSrc" }
	`) {
		cache.Add(ff)
	}
	desc := DefaultFontDescription()
	if face := cache.Match("body", desc); face == nil {
		t.Fatal("family lookup should be case-insensitive")
	}
	if face := cache.Match("missing", desc); face != nil {
		t.Error("unknown family must miss")
	}
	if face := cache.Match("nosrc", desc); face != nil {
		t.Error("faces without src are not registered")
	}
}

func TestFontFaceWeightSelection(t *testing.T) {
	cache := NewFontFaceCache()
	for _, ff := range parseFontFaceRules(t, `
		@font-face { font-family: F; src: url(r.woff2); font-weight: 400 }
		@font-face { font-family: F; src: url(m.woff2); font-weight: 500 }
		@font-face { font-family: F; src: url(b.woff2); font-weight: 700 }
	`) {
		cache.Add(ff)
	}
	desc := DefaultFontDescription()

	desc.Weight = 400
	if face := cache.Match("f", desc); face.Sources[0].URL != "r.woff2" {
		t.Errorf("weight 400 should pick the regular face, got %s", face.Sources[0].URL)
	}
	desc.Weight = 700
	if face := cache.Match("f", desc); face.Sources[0].URL != "b.woff2" {
		t.Errorf("weight 700 should pick the bold face, got %s", face.Sources[0].URL)
	}
	// In the 400-500 region the search goes up to 500 before falling
	// down, so 450 lands on the 500 face.
	desc.Weight = 450
	if face := cache.Match("f", desc); face.Sources[0].URL != "m.woff2" {
		t.Errorf("weight 450 should prefer the 500 face, got %s", face.Sources[0].URL)
	}
}

func TestFontFaceSlopeSelection(t *testing.T) {
	cache := NewFontFaceCache()
	for _, ff := range parseFontFaceRules(t, `
		@font-face { font-family: F; src: url(upright.woff2) }
		@font-face { font-family: F; src: url(italic.woff2); font-style: italic }
	`) {
		cache.Add(ff)
	}
	desc := DefaultFontDescription()
	desc.Slope = slopeItalic
	if face := cache.Match("f", desc); face.Sources[0].URL != "italic.woff2" {
		t.Errorf("italic request should pick the italic face, got %s", face.Sources[0].URL)
	}
	desc.Slope = slopeNormal
	if face := cache.Match("f", desc); face.Sources[0].URL != "upright.woff2" {
		t.Errorf("normal request should pick the upright face, got %s", face.Sources[0].URL)
	}
}

func variantEnv(decls map[css.PropertyID]string) func(css.PropertyID) *css.Value {
	parser := css.NewParser(css.ParserContext{Origin: css.OriginAuthor}, nil)
	values := map[css.PropertyID]*css.Value{}
	for id, text := range decls {
		if props, ok := parser.ReparseDeclaration(id, css.Tokenize([]byte(text))); ok {
			values[id] = props[0].Value
		}
	}
	return func(id css.PropertyID) *css.Value { return values[id] }
}

func hasFeature(features []FontFeatureSetting, tag string, value int) bool {
	for _, f := range features {
		if f.Tag == tag && f.Value == value {
			return true
		}
	}
	return false
}

func TestFeatureSynthesis(t *testing.T) {
	features := synthesizeFeatures(variantEnv(map[css.PropertyID]string{
		css.PropFontVariantLigatures: "common-ligatures",
		css.PropFontVariantCaps:      "all-small-caps",
		css.PropFontVariantNumeric:   "oldstyle-nums tabular-nums",
		css.PropFontVariantEastAsian: "jis78 ruby",
		css.PropFontKerning:          "none",
	}))
	want := []struct {
		tag   string
		value int
	}{
		{"liga", 1}, {"clig", 1},
		{"c2sc", 1}, {"smcp", 1},
		{"onum", 1}, {"tnum", 1},
		{"jp78", 1}, {"ruby", 1},
		{"kern", 0},
	}
	for _, w := range want {
		if !hasFeature(features, w.tag, w.value) {
			t.Errorf("expected %s=%d in %v", w.tag, w.value, features)
		}
	}
}

func TestFeatureSynthesisExplicitSettingsAppended(t *testing.T) {
	features := synthesizeFeatures(variantEnv(map[css.PropertyID]string{
		css.PropFontVariantCaps:     "small-caps",
		css.PropFontFeatureSettings: `"smcp" 0`,
	}))
	// Explicit settings come after synthesized ones so they win when a
	// consumer applies them in order.
	last := features[len(features)-1]
	if last.Tag != "smcp" || last.Value != 0 {
		t.Errorf("explicit setting should be last, got %v", features)
	}
}

func TestBolderLighter(t *testing.T) {
	if bolderWeight(400) != 700 || bolderWeight(100) != 400 || bolderWeight(700) != 900 {
		t.Error("bolder mapping wrong")
	}
	if lighterWeight(400) != 100 || lighterWeight(700) != 400 || lighterWeight(900) != 700 {
		t.Error("lighter mapping wrong")
	}
}
