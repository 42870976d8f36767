package css

// PropertyID names a CSS property. Custom properties use their own
// "--name" as the id.
type PropertyID string

const (
	PropAlignContent          PropertyID = "align-content"
	PropAlignItems            PropertyID = "align-items"
	PropAlignSelf             PropertyID = "align-self"
	PropBackgroundAttach      PropertyID = "background-attachment"
	PropBackgroundClip        PropertyID = "background-clip"
	PropBackgroundColor       PropertyID = "background-color"
	PropBackgroundImage       PropertyID = "background-image"
	PropBackgroundOrigin      PropertyID = "background-origin"
	PropBackgroundPosition    PropertyID = "background-position"
	PropBackgroundRepeat      PropertyID = "background-repeat"
	PropBackgroundSize        PropertyID = "background-size"
	PropBorderCollapse        PropertyID = "border-collapse"
	PropBorderSpacing         PropertyID = "border-spacing"
	PropBorderBottomColor     PropertyID = "border-bottom-color"
	PropBorderBottomStyle     PropertyID = "border-bottom-style"
	PropBorderBottomWidth     PropertyID = "border-bottom-width"
	PropBorderLeftColor       PropertyID = "border-left-color"
	PropBorderLeftStyle       PropertyID = "border-left-style"
	PropBorderLeftWidth       PropertyID = "border-left-width"
	PropBorderRightColor      PropertyID = "border-right-color"
	PropBorderRightStyle      PropertyID = "border-right-style"
	PropBorderRightWidth      PropertyID = "border-right-width"
	PropBorderTopColor        PropertyID = "border-top-color"
	PropBorderTopStyle        PropertyID = "border-top-style"
	PropBorderTopWidth        PropertyID = "border-top-width"
	PropBorderTLRadius        PropertyID = "border-top-left-radius"
	PropBorderTRRadius        PropertyID = "border-top-right-radius"
	PropBorderBRRadius        PropertyID = "border-bottom-right-radius"
	PropBorderBLRadius        PropertyID = "border-bottom-left-radius"
	PropBottom                PropertyID = "bottom"
	PropBoxSizing             PropertyID = "box-sizing"
	PropBreakAfter            PropertyID = "break-after"
	PropBreakBefore           PropertyID = "break-before"
	PropBreakInside           PropertyID = "break-inside"
	PropCaptionSide           PropertyID = "caption-side"
	PropClear                 PropertyID = "clear"
	PropClip                  PropertyID = "clip"
	PropColor                 PropertyID = "color"
	PropColumnCount           PropertyID = "column-count"
	PropColumnFill            PropertyID = "column-fill"
	PropColumnGap             PropertyID = "column-gap"
	PropColumnRuleColor       PropertyID = "column-rule-color"
	PropColumnRuleStyle       PropertyID = "column-rule-style"
	PropColumnRuleWidth       PropertyID = "column-rule-width"
	PropColumnSpan            PropertyID = "column-span"
	PropColumnWidth           PropertyID = "column-width"
	PropContent               PropertyID = "content"
	PropCounterIncrement      PropertyID = "counter-increment"
	PropCounterReset          PropertyID = "counter-reset"
	PropCounterSet            PropertyID = "counter-set"
	PropDirection             PropertyID = "direction"
	PropDisplay               PropertyID = "display"
	PropEmptyCells            PropertyID = "empty-cells"
	PropFlexBasis             PropertyID = "flex-basis"
	PropFlexDirection         PropertyID = "flex-direction"
	PropFlexGrow              PropertyID = "flex-grow"
	PropFlexShrink            PropertyID = "flex-shrink"
	PropFlexWrap              PropertyID = "flex-wrap"
	PropFloat                 PropertyID = "float"
	PropFontFamily            PropertyID = "font-family"
	PropFontFeatureSettings   PropertyID = "font-feature-settings"
	PropFontKerning           PropertyID = "font-kerning"
	PropFontSize              PropertyID = "font-size"
	PropFontStretch           PropertyID = "font-stretch"
	PropFontStyle             PropertyID = "font-style"
	PropFontVariantCaps       PropertyID = "font-variant-caps"
	PropFontVariantEastAsian  PropertyID = "font-variant-east-asian"
	PropFontVariantLigatures  PropertyID = "font-variant-ligatures"
	PropFontVariantNumeric    PropertyID = "font-variant-numeric"
	PropFontVariantPosition   PropertyID = "font-variant-position"
	PropFontVariationSettings PropertyID = "font-variation-settings"
	PropFontWeight            PropertyID = "font-weight"
	PropHeight                PropertyID = "height"
	PropHyphens               PropertyID = "hyphens"
	PropJustifyContent        PropertyID = "justify-content"
	PropLeft                  PropertyID = "left"
	PropLetterSpacing         PropertyID = "letter-spacing"
	PropLineHeight            PropertyID = "line-height"
	PropListStyleImage        PropertyID = "list-style-image"
	PropListStylePosition     PropertyID = "list-style-position"
	PropListStyleType         PropertyID = "list-style-type"
	PropMarginBottom          PropertyID = "margin-bottom"
	PropMarginLeft            PropertyID = "margin-left"
	PropMarginRight           PropertyID = "margin-right"
	PropMarginTop             PropertyID = "margin-top"
	PropMarkerEnd             PropertyID = "marker-end"
	PropMarkerMid             PropertyID = "marker-mid"
	PropMarkerStart           PropertyID = "marker-start"
	PropMaxHeight             PropertyID = "max-height"
	PropMaxWidth              PropertyID = "max-width"
	PropMinHeight             PropertyID = "min-height"
	PropMinWidth              PropertyID = "min-width"
	PropOrder                 PropertyID = "order"
	PropOrphans               PropertyID = "orphans"
	PropOutlineColor          PropertyID = "outline-color"
	PropOutlineOffset         PropertyID = "outline-offset"
	PropOutlineStyle          PropertyID = "outline-style"
	PropOutlineWidth          PropertyID = "outline-width"
	PropOverflow              PropertyID = "overflow"
	PropOverflowWrap          PropertyID = "overflow-wrap"
	PropPaddingBottom         PropertyID = "padding-bottom"
	PropPaddingLeft           PropertyID = "padding-left"
	PropPaddingRight          PropertyID = "padding-right"
	PropPaddingTop            PropertyID = "padding-top"
	PropPage                  PropertyID = "page"
	PropPosition              PropertyID = "position"
	PropQuotes                PropertyID = "quotes"
	PropRight                 PropertyID = "right"
	PropRowGap                PropertyID = "row-gap"
	PropSize                  PropertyID = "size"
	PropTabSize               PropertyID = "tab-size"
	PropTableLayout           PropertyID = "table-layout"
	PropTextAlign             PropertyID = "text-align"
	PropTextDecorationColor   PropertyID = "text-decoration-color"
	PropTextDecorationLine    PropertyID = "text-decoration-line"
	PropTextDecorationStyle   PropertyID = "text-decoration-style"
	PropTextIndent            PropertyID = "text-indent"
	PropTextOverflow          PropertyID = "text-overflow"
	PropTextTransform         PropertyID = "text-transform"
	PropTop                   PropertyID = "top"
	PropUnicodeBidi           PropertyID = "unicode-bidi"
	PropVerticalAlign         PropertyID = "vertical-align"
	PropVisibility            PropertyID = "visibility"
	PropWhiteSpace            PropertyID = "white-space"
	PropWidows                PropertyID = "widows"
	PropWidth                 PropertyID = "width"
	PropWordBreak             PropertyID = "word-break"
	PropWordSpacing           PropertyID = "word-spacing"
	PropWritingMode           PropertyID = "writing-mode"
	PropZIndex                PropertyID = "z-index"

	// @font-face descriptors.
	PropSrc          PropertyID = "src"
	PropUnicodeRange PropertyID = "unicode-range"

	// @counter-style descriptors.
	PropSystem          PropertyID = "system"
	PropNegative        PropertyID = "negative"
	PropPrefix          PropertyID = "prefix"
	PropSuffix          PropertyID = "suffix"
	PropRange           PropertyID = "range"
	PropPad             PropertyID = "pad"
	PropFallback        PropertyID = "fallback"
	PropSymbols         PropertyID = "symbols"
	PropAdditiveSymbols PropertyID = "additive-symbols"
)

// IsCustom reports whether the id names a custom property.
func (id PropertyID) IsCustom() bool { return IsCustomPropertyName(string(id)) }

type propType uint16

const (
	tLength propType = 1 << iota
	tPercent
	tNumber
	tInteger
	tColor
	tString
	tImage
	tCustomIdent
)

type propDef struct {
	inherited bool
	keywords  []string
	types     propType
	negative  bool
}

var borderStyleKeywords = []string{
	"none", "hidden", "dotted", "dashed", "solid", "double",
	"groove", "ridge", "inset", "outset",
}

var propTable = map[PropertyID]propDef{
	PropAlignContent:      {keywords: []string{"stretch", "flex-start", "flex-end", "center", "space-between", "space-around", "space-evenly"}},
	PropAlignItems:        {keywords: []string{"stretch", "flex-start", "flex-end", "center", "baseline"}},
	PropAlignSelf:         {keywords: []string{"auto", "stretch", "flex-start", "flex-end", "center", "baseline"}},
	PropBackgroundAttach:  {keywords: []string{"scroll", "fixed", "local"}},
	PropBackgroundClip:    {keywords: []string{"border-box", "padding-box", "content-box"}},
	PropBackgroundColor:   {types: tColor},
	PropBackgroundImage:   {keywords: []string{"none"}, types: tImage},
	PropBackgroundOrigin:  {keywords: []string{"border-box", "padding-box", "content-box"}},
	PropBackgroundRepeat:  {keywords: []string{"repeat", "repeat-x", "repeat-y", "no-repeat"}},
	PropBorderCollapse:    {inherited: true, keywords: []string{"collapse", "separate"}},
	PropBorderBottomColor: {types: tColor},
	PropBorderBottomStyle: {keywords: borderStyleKeywords},
	PropBorderLeftColor:   {types: tColor},
	PropBorderLeftStyle:   {keywords: borderStyleKeywords},
	PropBorderRightColor:  {types: tColor},
	PropBorderRightStyle:  {keywords: borderStyleKeywords},
	PropBorderTopColor:    {types: tColor},
	PropBorderTopStyle:    {keywords: borderStyleKeywords},
	PropBottom:            {keywords: []string{"auto"}, types: tLength | tPercent, negative: true},
	PropBoxSizing:         {keywords: []string{"content-box", "border-box"}},
	PropBreakAfter:        {keywords: []string{"auto", "avoid", "avoid-page", "avoid-column", "page", "left", "right", "recto", "verso", "column", "always"}},
	PropBreakBefore:       {keywords: []string{"auto", "avoid", "avoid-page", "avoid-column", "page", "left", "right", "recto", "verso", "column", "always"}},
	PropBreakInside:       {keywords: []string{"auto", "avoid", "avoid-page", "avoid-column"}},
	PropCaptionSide:       {inherited: true, keywords: []string{"top", "bottom"}},
	PropClear:             {keywords: []string{"none", "left", "right", "both"}},
	PropColor:             {inherited: true, types: tColor},
	PropColumnCount:       {keywords: []string{"auto"}, types: tInteger},
	PropColumnFill:        {keywords: []string{"auto", "balance"}},
	PropColumnGap:         {keywords: []string{"normal"}, types: tLength | tPercent},
	PropColumnRuleColor:   {types: tColor},
	PropColumnRuleStyle:   {keywords: borderStyleKeywords},
	PropColumnSpan:        {keywords: []string{"none", "all"}},
	PropColumnWidth:       {keywords: []string{"auto"}, types: tLength},
	PropDirection:         {inherited: true, keywords: []string{"ltr", "rtl"}},
	PropDisplay: {keywords: []string{
		"inline", "block", "inline-block", "flex", "inline-flex", "list-item",
		"table", "inline-table", "table-caption", "table-cell", "table-column",
		"table-column-group", "table-header-group", "table-footer-group",
		"table-row", "table-row-group", "none",
	}},
	PropEmptyCells:    {inherited: true, keywords: []string{"show", "hide"}},
	PropFlexBasis:     {keywords: []string{"auto", "content"}, types: tLength | tPercent},
	PropFlexDirection: {keywords: []string{"row", "row-reverse", "column", "column-reverse"}},
	PropFlexGrow:      {types: tNumber},
	PropFlexShrink:    {types: tNumber},
	PropFlexWrap:      {keywords: []string{"nowrap", "wrap", "wrap-reverse"}},
	PropFloat:         {keywords: []string{"left", "right", "none"}},
	PropFontKerning:   {inherited: true, keywords: []string{"auto", "normal", "none"}},
	PropFontStretch: {inherited: true, keywords: []string{
		"normal", "ultra-condensed", "extra-condensed", "condensed",
		"semi-condensed", "semi-expanded", "expanded", "extra-expanded",
		"ultra-expanded",
	}, types: tPercent},
	PropFontStyle:           {inherited: true, keywords: []string{"normal", "italic", "oblique"}},
	PropHeight:              {keywords: []string{"auto", "min-content", "max-content", "fit-content"}, types: tLength | tPercent},
	PropHyphens:             {inherited: true, keywords: []string{"none", "manual", "auto"}},
	PropJustifyContent:      {keywords: []string{"flex-start", "flex-end", "center", "space-between", "space-around", "space-evenly", "start", "end", "left", "right"}},
	PropLeft:                {keywords: []string{"auto"}, types: tLength | tPercent, negative: true},
	PropLetterSpacing:       {inherited: true, keywords: []string{"normal"}, types: tLength, negative: true},
	PropListStyleImage:      {inherited: true, keywords: []string{"none"}, types: tImage},
	PropListStylePosition:   {inherited: true, keywords: []string{"inside", "outside"}},
	PropListStyleType:       {inherited: true, keywords: []string{"none"}, types: tString | tCustomIdent},
	PropMarginBottom:        {keywords: []string{"auto"}, types: tLength | tPercent, negative: true},
	PropMarginLeft:          {keywords: []string{"auto"}, types: tLength | tPercent, negative: true},
	PropMarginRight:         {keywords: []string{"auto"}, types: tLength | tPercent, negative: true},
	PropMarginTop:           {keywords: []string{"auto"}, types: tLength | tPercent, negative: true},
	PropMaxHeight:           {keywords: []string{"none"}, types: tLength | tPercent},
	PropMaxWidth:            {keywords: []string{"none"}, types: tLength | tPercent},
	PropMinHeight:           {keywords: []string{"auto"}, types: tLength | tPercent},
	PropMinWidth:            {keywords: []string{"auto"}, types: tLength | tPercent},
	PropOrder:               {types: tInteger, negative: true},
	PropOrphans:             {inherited: true, types: tInteger},
	PropOutlineColor:        {types: tColor},
	PropOutlineOffset:       {types: tLength, negative: true},
	PropOutlineStyle:        {keywords: append([]string{"auto"}, borderStyleKeywords...)},
	PropOverflow:            {keywords: []string{"visible", "hidden", "scroll", "auto"}},
	PropOverflowWrap:        {inherited: true, keywords: []string{"normal", "break-word", "anywhere"}},
	PropPaddingBottom:       {types: tLength | tPercent},
	PropPaddingLeft:         {types: tLength | tPercent},
	PropPaddingRight:        {types: tLength | tPercent},
	PropPaddingTop:          {types: tLength | tPercent},
	PropPage:                {keywords: []string{"auto"}, types: tCustomIdent},
	PropPosition:            {keywords: []string{"static", "relative", "absolute", "fixed"}},
	PropRight:               {keywords: []string{"auto"}, types: tLength | tPercent, negative: true},
	PropRowGap:              {keywords: []string{"normal"}, types: tLength | tPercent},
	PropTabSize:             {inherited: true, types: tNumber | tLength},
	PropTableLayout:         {keywords: []string{"auto", "fixed"}},
	PropTextAlign:           {inherited: true, keywords: []string{"left", "right", "center", "justify", "start", "end"}},
	PropTextDecorationColor: {types: tColor},
	PropTextDecorationStyle: {keywords: []string{"solid", "double", "dotted", "dashed", "wavy"}},
	PropTextIndent:          {inherited: true, types: tLength | tPercent, negative: true},
	PropTextOverflow:        {keywords: []string{"clip", "ellipsis"}},
	PropTextTransform:       {inherited: true, keywords: []string{"none", "capitalize", "uppercase", "lowercase"}},
	PropTop:                 {keywords: []string{"auto"}, types: tLength | tPercent, negative: true},
	PropUnicodeBidi:         {keywords: []string{"normal", "embed", "bidi-override", "isolate", "isolate-override", "plaintext"}},
	PropVisibility:          {inherited: true, keywords: []string{"visible", "hidden", "collapse"}},
	PropWhiteSpace:          {inherited: true, keywords: []string{"normal", "pre", "nowrap", "pre-wrap", "pre-line", "break-spaces"}},
	PropWidows:              {inherited: true, types: tInteger},
	PropWidth:               {keywords: []string{"auto", "min-content", "max-content", "fit-content"}, types: tLength | tPercent},
	PropWordBreak:           {inherited: true, keywords: []string{"normal", "break-all", "keep-all", "break-word"}},
	PropWordSpacing:         {inherited: true, keywords: []string{"normal"}, types: tLength, negative: true},
	PropWritingMode:         {inherited: true, keywords: []string{"horizontal-tb", "vertical-rl", "vertical-lr"}},
	PropZIndex:              {keywords: []string{"auto"}, types: tInteger, negative: true},
	PropFallback:            {types: tCustomIdent},
	PropPrefix:              {types: tString | tCustomIdent},
	PropSuffix:              {types: tString | tCustomIdent},
}

// inheritedExtra lists inherited properties whose grammar is handled in
// the dispatcher rather than the generic table.
var inheritedExtra = map[PropertyID]bool{
	PropBorderSpacing:         true,
	PropColor:                 true,
	PropFontFamily:            true,
	PropFontFeatureSettings:   true,
	PropFontSize:              true,
	PropFontVariantCaps:       true,
	PropFontVariantEastAsian:  true,
	PropFontVariantLigatures:  true,
	PropFontVariantNumeric:    true,
	PropFontVariantPosition:   true,
	PropFontVariationSettings: true,
	PropFontWeight:            true,
	PropLineHeight:            true,
	PropQuotes:                true,
}

// IsInherited reports whether the property inherits by default. Custom
// properties always inherit.
func IsInherited(id PropertyID) bool {
	if id.IsCustom() {
		return true
	}
	if def, ok := propTable[id]; ok && def.inherited {
		return true
	}
	return inheritedExtra[id]
}

// IsKnownProperty reports whether the name is a longhand, a shorthand
// or a descriptor the engine understands.
func IsKnownProperty(id PropertyID) bool {
	if _, ok := propTable[id]; ok {
		return true
	}
	if _, ok := shorthands[id]; ok {
		return true
	}
	switch id {
	case PropBackgroundPosition, PropBackgroundSize, PropBorderSpacing,
		PropBorderTopWidth, PropBorderRightWidth, PropBorderBottomWidth, PropBorderLeftWidth,
		PropBorderTLRadius, PropBorderTRRadius, PropBorderBRRadius, PropBorderBLRadius,
		PropClip, PropColumnRuleWidth, PropContent, PropCounterIncrement,
		PropCounterReset, PropCounterSet, PropFontFamily, PropFontFeatureSettings,
		PropFontSize, PropFontVariantCaps, PropFontVariantEastAsian,
		PropFontVariantLigatures, PropFontVariantNumeric, PropFontVariantPosition,
		PropFontVariationSettings, PropFontWeight, PropLineHeight,
		PropMarkerStart, PropMarkerMid, PropMarkerEnd, PropOutlineWidth,
		PropQuotes, PropSize, PropSrc, PropUnicodeRange, PropVerticalAlign,
		PropSystem, PropNegative, PropRange, PropPad, PropSymbols,
		PropAdditiveSymbols, PropTextDecorationLine:
		return true
	}
	return false
}

// parseLonghand consumes exactly one value of the property's grammar
// from s, or returns nil with the stream position unspecified; callers
// guard with a Mark.
func (vp *valueParser) parseLonghand(id PropertyID, s *TokenStream) *Value {
	switch id {
	case PropBackgroundPosition:
		return vp.consumeBackgroundPosition(s)
	case PropBackgroundSize:
		return vp.consumeBackgroundSize(s)
	case PropBorderSpacing:
		first := vp.consumeLength(s, false)
		if first == nil {
			return nil
		}
		second := vp.consumeLength(s, false)
		if second == nil {
			second = first
		}
		return Pair(first, second)
	case PropBorderTopWidth, PropBorderRightWidth, PropBorderBottomWidth,
		PropBorderLeftWidth, PropColumnRuleWidth, PropOutlineWidth:
		return vp.consumeLineWidth(s)
	case PropBorderTLRadius, PropBorderTRRadius, PropBorderBRRadius, PropBorderBLRadius:
		return vp.consumeRadiusCorner(s)
	case PropClip:
		return vp.consumeClip(s)
	case PropContent:
		return vp.consumeContent(s)
	case PropCounterIncrement:
		return consumeCounterOps(s, 1)
	case PropCounterReset, PropCounterSet:
		return consumeCounterOps(s, 0)
	case PropFontFamily:
		return consumeFontFamily(s)
	case PropFontFeatureSettings:
		return consumeFontFeatureSettings(s)
	case PropFontSize:
		return vp.consumeFontSize(s)
	case PropFontVariantCaps, PropFontVariantEastAsian, PropFontVariantLigatures,
		PropFontVariantNumeric, PropFontVariantPosition:
		return consumeFontVariantLonghand(id, s)
	case PropFontVariationSettings:
		return consumeFontVariationSettings(s)
	case PropFontWeight:
		return vp.consumeFontWeight(s)
	case PropLineHeight:
		return vp.consumeLineHeight(s)
	case PropMarkerStart, PropMarkerMid, PropMarkerEnd:
		return consumeMarkerRef(s)
	case PropQuotes:
		return consumeQuotes(s)
	case PropSize:
		return vp.consumePageSize(s)
	case PropSrc:
		return consumeFontSrc(s)
	case PropTextDecorationLine:
		return consumeTextDecorationLine(s)
	case PropUnicodeRange:
		return consumeUnicodeRangeList(s)
	case PropVerticalAlign:
		return vp.consumeVerticalAlign(s)
	case PropSystem:
		return consumeCounterSystem(s)
	case PropNegative:
		return consumeCounterNegative(s)
	case PropRange:
		return consumeCounterRange(s)
	case PropPad:
		return consumeCounterPad(s)
	case PropSymbols:
		return consumeCounterSymbols(s)
	case PropAdditiveSymbols:
		return consumeCounterAdditiveSymbols(s)
	}
	def, ok := propTable[id]
	if !ok {
		return nil
	}
	return vp.consumeGeneric(s, def)
}

func (vp *valueParser) consumeGeneric(s *TokenStream, def propDef) *Value {
	if len(def.keywords) > 0 {
		if v := consumeIdentAmong(s, def.keywords...); v != nil {
			return v
		}
	}
	if def.types&tColor != 0 {
		if v := vp.consumeColor(s); v != nil {
			return v
		}
	}
	if def.types&tInteger != 0 {
		if v := consumeIntegerValue(s, def.negative); v != nil {
			return v
		}
	}
	if def.types&(tLength|tPercent) != 0 {
		var v *Value
		if def.types&tPercent != 0 {
			v = vp.consumeLengthOrPercent(s, def.negative)
		} else {
			v = vp.consumeLength(s, def.negative)
		}
		if v != nil {
			return v
		}
	}
	if def.types&tNumber != 0 {
		if v := consumeNumberValue(s, def.negative); v != nil {
			return v
		}
	}
	if def.types&tString != 0 {
		if v := consumeStringValue(s); v != nil {
			return v
		}
	}
	if def.types&tImage != 0 {
		if v := consumeImageValue(s); v != nil {
			return v
		}
	}
	if def.types&tCustomIdent != 0 {
		if v := consumeCustomIdentValue(s); v != nil {
			return v
		}
	}
	return nil
}

// consumeTextDecorationLine parses none or any combination of the line
// keywords.
func consumeTextDecorationLine(s *TokenStream) *Value {
	if v := consumeIdentAmong(s, "none"); v != nil {
		return v
	}
	seen := map[string]bool{}
	var items []*Value
	for {
		v := consumeIdentAmong(s, "underline", "overline", "line-through", "blink")
		if v == nil {
			break
		}
		if seen[v.Ident] {
			return nil
		}
		seen[v.Ident] = true
		items = append(items, v)
	}
	if len(items) == 0 {
		return nil
	}
	return List(items)
}
