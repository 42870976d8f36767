package style

import (
	"math"
	"strings"
	"sync"

	"pcss/css"
)

// Font selection values use the CSS Fonts scales: weight 1-1000 with
// normal 400, stretch as a percentage with normal 100, slope as an
// oblique angle with italic at 14 degrees.
const (
	weightNormal  = 400.0
	weightBold    = 700.0
	stretchNormal = 100.0
	slopeNormal   = 0.0
	slopeItalic   = 14.0
)

// FontFeatureSetting is one OpenType feature tag with its value.
type FontFeatureSetting struct {
	Tag   string
	Value int
}

// FontVariationSetting is one variable font axis setting.
type FontVariationSetting struct {
	Tag   string
	Value float64
}

// FontDescription is the resolved font request of an element; the em
// and ex units and font selection key off it.
type FontDescription struct {
	Families   []string
	Size       float64
	Weight     float64
	Stretch    float64
	Slope      float64
	Variations []FontVariationSetting
	Features   []FontFeatureSetting
}

// DefaultFontDescription is the document default: 16px serif.
func DefaultFontDescription() FontDescription {
	return FontDescription{
		Families: []string{"serif"},
		Size:     mediumFontSize,
		Weight:   weightNormal,
		Stretch:  stretchNormal,
		Slope:    slopeNormal,
	}
}

var absoluteFontSizes = map[string]float64{
	"xx-small": mediumFontSize * 3 / 5,
	"x-small":  mediumFontSize * 3 / 4,
	"small":    mediumFontSize * 8 / 9,
	"medium":   mediumFontSize,
	"large":    mediumFontSize * 6 / 5,
	"x-large":  mediumFontSize * 3 / 2,
	"xx-large": mediumFontSize * 2,
}

var stretchKeywords = map[string]float64{
	"ultra-condensed": 50,
	"extra-condensed": 62.5,
	"condensed":       75,
	"semi-condensed":  87.5,
	"normal":          100,
	"semi-expanded":   112.5,
	"expanded":        125,
	"extra-expanded":  150,
	"ultra-expanded":  200,
}

// FontSelectionRange is an inclusive range on one selection axis.
type FontSelectionRange struct {
	Min, Max float64
}

func exactRange(v float64) FontSelectionRange { return FontSelectionRange{Min: v, Max: v} }

func (r FontSelectionRange) clamp(v float64) float64 {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

// FontSelectionDescription keys a segmented face by its capability
// ranges.
type FontSelectionDescription struct {
	Weight  FontSelectionRange
	Stretch FontSelectionRange
	Slope   FontSelectionRange
}

// FontFaceSource is one src entry of a face: an external url with an
// optional format, or a local reference.
type FontFaceSource struct {
	URL    string
	Format string
	Local  bool
}

// SegmentedFontFace is an @font-face entry registered in the cache.
type SegmentedFontFace struct {
	Family        string
	Selection     FontSelectionDescription
	Sources       []FontFaceSource
	UnicodeRanges [][2]uint32
	Features      []FontFeatureSetting
	Variations    []FontVariationSetting
}

// FontFaceCache stores faces per family. It is safe for concurrent
// lookup; registration and matching take the cache mutex.
type FontFaceCache struct {
	mu    sync.Mutex
	table map[string][]*SegmentedFontFace
}

// NewFontFaceCache creates an empty cache.
func NewFontFaceCache() *FontFaceCache {
	return &FontFaceCache{table: make(map[string][]*SegmentedFontFace)}
}

// Add registers an @font-face rule. Rules without a family or src are
// ignored.
func (c *FontFaceCache) Add(rule *css.FontFaceRule) {
	face := buildFontFace(rule)
	if face == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	key := strings.ToLower(face.Family)
	c.table[key] = append(c.table[key], face)
}

func buildFontFace(rule *css.FontFaceRule) *SegmentedFontFace {
	face := &SegmentedFontFace{
		Selection: FontSelectionDescription{
			Weight:  exactRange(weightNormal),
			Stretch: exactRange(stretchNormal),
			Slope:   exactRange(slopeNormal),
		},
	}
	for _, prop := range rule.Properties {
		v := prop.Value
		switch prop.ID {
		case css.PropFontFamily:
			if v.Kind == css.ValueList && len(v.Items) > 0 {
				face.Family = v.Items[0].Text
			}
		case css.PropSrc:
			for _, item := range v.Items {
				switch item.Kind {
				case css.ValueLocalURL:
					face.Sources = append(face.Sources, FontFaceSource{URL: item.Text, Local: true})
				case css.ValueURL:
					face.Sources = append(face.Sources, FontFaceSource{URL: item.Text})
				case css.ValuePair:
					face.Sources = append(face.Sources, FontFaceSource{
						URL:    item.First.Text,
						Format: item.Second.Text,
					})
				}
			}
		case css.PropFontWeight:
			face.Selection.Weight = fontWeightRange(v)
		case css.PropFontStretch:
			face.Selection.Stretch = fontStretchRange(v)
		case css.PropFontStyle:
			face.Selection.Slope = fontSlopeRange(v)
		case css.PropUnicodeRange:
			for _, item := range v.Items {
				face.UnicodeRanges = append(face.UnicodeRanges, [2]uint32{item.RangeFrom, item.RangeTo})
			}
		case css.PropFontFeatureSettings:
			if v.Kind == css.ValueList {
				for _, item := range v.Items {
					face.Features = append(face.Features, FontFeatureSetting{Tag: item.Text, Value: item.Int})
				}
			}
		case css.PropFontVariationSettings:
			if v.Kind == css.ValueList {
				for _, item := range v.Items {
					face.Variations = append(face.Variations, FontVariationSetting{Tag: item.Text, Value: item.Number})
				}
			}
		}
	}
	if face.Family == "" || len(face.Sources) == 0 {
		return nil
	}
	return face
}

func fontWeightRange(v *css.Value) FontSelectionRange {
	switch v.Kind {
	case css.ValueNumber, css.ValueInteger:
		return exactRange(v.Number)
	case css.ValueIdent:
		switch v.Ident {
		case "bold":
			return exactRange(weightBold)
		}
	}
	return exactRange(weightNormal)
}

func fontStretchRange(v *css.Value) FontSelectionRange {
	switch v.Kind {
	case css.ValuePercent:
		return exactRange(v.Number)
	case css.ValueIdent:
		if s, ok := stretchKeywords[v.Ident]; ok {
			return exactRange(s)
		}
	}
	return exactRange(stretchNormal)
}

func fontSlopeRange(v *css.Value) FontSelectionRange {
	if v.IsIdent("italic") || v.IsIdent("oblique") {
		return exactRange(slopeItalic)
	}
	return exactRange(slopeNormal)
}

// Match picks the best face for the description: minimal stretch
// distance, then slope distance, then weight distance.
func (c *FontFaceCache) Match(family string, desc FontDescription) *SegmentedFontFace {
	c.mu.Lock()
	defer c.mu.Unlock()
	faces := c.table[strings.ToLower(family)]
	var best *SegmentedFontFace
	var bestKey [3]float64
	for _, face := range faces {
		key := [3]float64{
			stretchDistance(face.Selection.Stretch, desc.Stretch),
			slopeDistance(face.Selection.Slope, desc.Slope),
			weightDistance(face.Selection.Weight, desc.Weight),
		}
		if best == nil || lessKey(key, bestKey) {
			best = face
			bestKey = key
		}
	}
	return best
}

func lessKey(a, b [3]float64) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// stretchDistance is asymmetric around normal: a request at or above
// normal prefers wider faces, below normal prefers narrower ones.
func stretchDistance(r FontSelectionRange, want float64) float64 {
	if want >= r.Min && want <= r.Max {
		return 0
	}
	if want >= stretchNormal {
		if r.Min > want {
			return r.Min - want
		}
		return (want - r.Max) + 1000
	}
	if r.Max < want {
		return want - r.Max
	}
	return (r.Min - want) + 1000
}

// slopeDistance prefers more oblique faces for italic requests and
// upright faces for normal requests.
func slopeDistance(r FontSelectionRange, want float64) float64 {
	if want >= r.Min && want <= r.Max {
		return 0
	}
	if want >= slopeItalic/2 {
		if r.Min > want {
			return r.Min - want
		}
		return (want - r.Max) + 1000
	}
	if want >= 0 {
		if r.Max < want {
			return want - r.Max
		}
		return (r.Min - want) + 1000
	}
	if r.Max < want {
		return want - r.Max
	}
	return (r.Min - want) + 1000
}

// weightDistance implements the 400-500 preference region: requests in
// it search upward to 500, then downward, then upward again.
func weightDistance(r FontSelectionRange, want float64) float64 {
	if want >= r.Min && want <= r.Max {
		return 0
	}
	if want >= 400 && want <= 500 {
		if r.Min > want && r.Min <= 500 {
			return r.Min - want
		}
		if r.Max < want {
			return (want - r.Max) + 100
		}
		return (r.Min - want) + 600
	}
	if want < 400 {
		if r.Max < want {
			return want - r.Max
		}
		return (r.Min - want) + 1000
	}
	if r.Min > want {
		return r.Min - want
	}
	return (want - r.Max) + 1000
}

// featureSynthesis maps each font-variant keyword to the OpenType
// features it turns on or off.
var featureSynthesis = map[string][]FontFeatureSetting{
	"common-ligatures":           {{"liga", 1}, {"clig", 1}},
	"no-common-ligatures":        {{"liga", 0}, {"clig", 0}},
	"discretionary-ligatures":    {{"dlig", 1}},
	"no-discretionary-ligatures": {{"dlig", 0}},
	"historical-ligatures":       {{"hlig", 1}},
	"no-historical-ligatures":    {{"hlig", 0}},
	"contextual":                 {{"calt", 1}},
	"no-contextual":              {{"calt", 0}},

	"small-caps":      {{"smcp", 1}},
	"all-small-caps":  {{"c2sc", 1}, {"smcp", 1}},
	"petite-caps":     {{"pcap", 1}},
	"all-petite-caps": {{"c2pc", 1}, {"pcap", 1}},
	"unicase":         {{"unic", 1}},
	"titling-caps":    {{"titl", 1}},

	"lining-nums":        {{"lnum", 1}},
	"oldstyle-nums":      {{"onum", 1}},
	"proportional-nums":  {{"pnum", 1}},
	"tabular-nums":       {{"tnum", 1}},
	"diagonal-fractions": {{"frac", 1}},
	"stacked-fractions":  {{"afrc", 1}},
	"ordinal":            {{"ordn", 1}},
	"slashed-zero":       {{"zero", 1}},

	"jis78":              {{"jp78", 1}},
	"jis83":              {{"jp83", 1}},
	"jis90":              {{"jp90", 1}},
	"jis04":              {{"jp04", 1}},
	"simplified":         {{"smpl", 1}},
	"traditional":        {{"trad", 1}},
	"full-width":         {{"fwid", 1}},
	"proportional-width": {{"pwid", 1}},
	"ruby":               {{"ruby", 1}},

	"sub":   {{"subs", 1}},
	"super": {{"sups", 1}},
}

// synthesizeFeatures builds the feature list from the cascaded
// font-variant longhands, font-kerning and explicit
// font-feature-settings (which win over synthesized ones).
func synthesizeFeatures(get func(css.PropertyID) *css.Value) []FontFeatureSetting {
	var features []FontFeatureSetting
	addKeyword := func(name string) {
		features = append(features, featureSynthesis[name]...)
	}
	variantIDs := []css.PropertyID{
		css.PropFontVariantLigatures, css.PropFontVariantCaps,
		css.PropFontVariantNumeric, css.PropFontVariantEastAsian,
		css.PropFontVariantPosition,
	}
	for _, id := range variantIDs {
		v := get(id)
		if v == nil {
			continue
		}
		switch v.Kind {
		case css.ValueIdent:
			if v.Ident == "none" && id == css.PropFontVariantLigatures {
				features = append(features,
					FontFeatureSetting{"liga", 0}, FontFeatureSetting{"clig", 0},
					FontFeatureSetting{"dlig", 0}, FontFeatureSetting{"hlig", 0},
					FontFeatureSetting{"calt", 0})
				continue
			}
			addKeyword(v.Ident)
		case css.ValueList:
			for _, item := range v.Items {
				addKeyword(item.Ident)
			}
		}
	}
	if v := get(css.PropFontKerning); v != nil {
		switch {
		case v.IsIdent("normal"):
			features = append(features, FontFeatureSetting{"kern", 1})
		case v.IsIdent("none"):
			features = append(features, FontFeatureSetting{"kern", 0})
		}
	}
	if v := get(css.PropFontFeatureSettings); v != nil && v.Kind == css.ValueList {
		for _, item := range v.Items {
			features = append(features, FontFeatureSetting{Tag: item.Text, Value: item.Int})
		}
	}
	return features
}

// buildFontDescription resolves the cascaded font properties against
// the parent's description.
func buildFontDescription(parent FontDescription, get func(css.PropertyID) *css.Value, rootFontSize float64, vp css.Viewport) FontDescription {
	desc := parent
	desc.Features = nil

	if v := get(css.PropFontFamily); v != nil && v.Kind == css.ValueList {
		var families []string
		for _, item := range v.Items {
			families = append(families, item.Text)
		}
		if len(families) > 0 {
			desc.Families = families
		}
	}

	if v := get(css.PropFontSize); v != nil {
		parentResolver := LengthResolver{Font: &parent, RootFontSize: rootFontSize, Viewport: vp}
		switch v.Kind {
		case css.ValueIdent:
			if size, ok := absoluteFontSizes[v.Ident]; ok {
				desc.Size = size
			} else if v.Ident == "smaller" {
				desc.Size = parent.Size / 1.2
			} else if v.Ident == "larger" {
				desc.Size = parent.Size * 1.2
			}
		case css.ValuePercent:
			desc.Size = parent.Size * v.Number / 100
		case css.ValueLength, css.ValueCalc:
			desc.Size = parentResolver.ResolveLength(v)
		}
		if desc.Size < 0 || math.IsNaN(desc.Size) {
			desc.Size = parent.Size
		}
	}

	if v := get(css.PropFontWeight); v != nil {
		switch v.Kind {
		case css.ValueNumber, css.ValueInteger:
			desc.Weight = v.Number
		case css.ValueIdent:
			switch v.Ident {
			case "normal":
				desc.Weight = weightNormal
			case "bold":
				desc.Weight = weightBold
			case "bolder":
				desc.Weight = bolderWeight(parent.Weight)
			case "lighter":
				desc.Weight = lighterWeight(parent.Weight)
			}
		}
	}

	if v := get(css.PropFontStretch); v != nil {
		switch v.Kind {
		case css.ValuePercent:
			desc.Stretch = v.Number
		case css.ValueIdent:
			if s, ok := stretchKeywords[v.Ident]; ok {
				desc.Stretch = s
			}
		}
	}

	if v := get(css.PropFontStyle); v != nil {
		switch {
		case v.IsIdent("italic"), v.IsIdent("oblique"):
			desc.Slope = slopeItalic
		case v.IsIdent("normal"):
			desc.Slope = slopeNormal
		}
	}

	if v := get(css.PropFontVariationSettings); v != nil {
		desc.Variations = nil
		if v.Kind == css.ValueList {
			for _, item := range v.Items {
				desc.Variations = append(desc.Variations, FontVariationSetting{Tag: item.Text, Value: item.Number})
			}
		}
	}

	desc.Features = synthesizeFeatures(get)
	return desc
}

func bolderWeight(w float64) float64 {
	switch {
	case w < 350:
		return 400
	case w < 550:
		return 700
	case w < 900:
		return 900
	}
	return w
}

func lighterWeight(w float64) float64 {
	switch {
	case w >= 750:
		return 700
	case w >= 550:
		return 400
	case w >= 350:
		return 100
	}
	return w
}
