package css

import "strings"

// valueParser holds the context a property grammar needs while
// consuming component values.
type valueParser struct {
	unitless bool // bare numbers act as pixel lengths (SVG elements)
}

// consumeIdentAmong consumes an identifier when it is one of the given
// lower-case keywords.
func consumeIdentAmong(s *TokenStream, keywords ...string) *Value {
	t := s.Peek()
	if t.Kind != TokenIdent {
		return nil
	}
	name := lowerASCII(t.Data)
	for _, kw := range keywords {
		if name == kw {
			s.ConsumeIncludingWhitespace()
			return Ident(name)
		}
	}
	return nil
}

// consumeLength accepts a dimension with a length unit, a bare zero, or
// a bare number in unitless contexts. Calc expressions are accepted
// wherever a length is.
func (vp *valueParser) consumeLength(s *TokenStream, negative bool) *Value {
	if v := vp.parseCalcFunction(s, negative); v != nil {
		s.ConsumeWhitespace()
		return v
	}
	t := s.Peek()
	switch t.Kind {
	case TokenNumber:
		if t.Value != 0 && !vp.unitless {
			return nil
		}
		if t.Value < 0 && !negative {
			return nil
		}
		s.ConsumeIncludingWhitespace()
		return Length(t.Value, UnitNone)
	case TokenDimension:
		unit, ok := lengthUnits[t.Unit]
		if !ok {
			return nil
		}
		if t.Value < 0 && !negative {
			return nil
		}
		s.ConsumeIncludingWhitespace()
		return Length(t.Value, unit)
	}
	return nil
}

// consumeLengthOrPercent additionally accepts a percentage.
func (vp *valueParser) consumeLengthOrPercent(s *TokenStream, negative bool) *Value {
	t := s.Peek()
	if t.Kind == TokenPercentage {
		if t.Value < 0 && !negative {
			return nil
		}
		s.ConsumeIncludingWhitespace()
		return Percent(t.Value)
	}
	return vp.consumeLength(s, negative)
}

func consumeNumberValue(s *TokenStream, negative bool) *Value {
	t := s.Peek()
	if t.Kind != TokenNumber || (t.Value < 0 && !negative) {
		return nil
	}
	s.ConsumeIncludingWhitespace()
	if t.NumType == NumberInteger {
		return Integer(int(t.Value))
	}
	return Number(t.Value)
}

func consumeIntegerValue(s *TokenStream, negative bool) *Value {
	t := s.Peek()
	if t.Kind != TokenNumber || t.NumType != NumberInteger {
		return nil
	}
	if t.Value < 0 && !negative {
		return nil
	}
	s.ConsumeIncludingWhitespace()
	return Integer(int(t.Value))
}

func consumePercentValue(s *TokenStream, negative bool) *Value {
	t := s.Peek()
	if t.Kind != TokenPercentage || (t.Value < 0 && !negative) {
		return nil
	}
	s.ConsumeIncludingWhitespace()
	return Percent(t.Value)
}

func consumeAngleValue(s *TokenStream) *Value {
	t := s.Peek()
	if t.Kind != TokenDimension {
		return nil
	}
	unit, ok := angleUnits[t.Unit]
	if !ok {
		return nil
	}
	s.ConsumeIncludingWhitespace()
	return Angle(t.Value, unit)
}

func consumeStringValue(s *TokenStream) *Value {
	t := s.Peek()
	if t.Kind != TokenString {
		return nil
	}
	s.ConsumeIncludingWhitespace()
	return String(t.Data)
}

// consumeCustomIdentValue accepts an identifier that is not a wide
// keyword (those are reserved) and not "default".
func consumeCustomIdentValue(s *TokenStream) *Value {
	t := s.Peek()
	if t.Kind != TokenIdent {
		return nil
	}
	switch lowerASCII(t.Data) {
	case "initial", "inherit", "unset", "default":
		return nil
	}
	s.ConsumeIncludingWhitespace()
	return CustomIdent(t.Data)
}

// consumeURLText consumes url(...) in either of its token forms and
// returns the referenced address.
func consumeURLText(s *TokenStream) (string, bool) {
	t := s.Peek()
	switch {
	case t.Kind == TokenURL:
		s.ConsumeIncludingWhitespace()
		return t.Data, true
	case t.MatchesFunction("url"):
		m := s.Mark()
		defer m.Restore()
		block := s.ConsumeBlock()
		block.ConsumeWhitespace()
		str := block.Peek()
		if str.Kind != TokenString {
			return "", false
		}
		block.ConsumeIncludingWhitespace()
		if !block.Empty() {
			return "", false
		}
		m.Release()
		s.ConsumeWhitespace()
		return str.Data, true
	}
	return "", false
}

func consumeImageValue(s *TokenStream) *Value {
	if u, ok := consumeURLText(s); ok {
		return Image(u)
	}
	return nil
}

// consumeVarFunction parses one var(--name[, fallback-tokens]) group.
// Used by the substitution machinery; the rule parser only detects the
// presence of var() and defers.
func consumeVarFunction(s *TokenStream) (name string, fallback []Token, ok bool) {
	t := s.Peek()
	if !t.MatchesFunction("var") {
		return "", nil, false
	}
	m := s.Mark()
	defer m.Restore()
	block := s.ConsumeBlock()
	block.ConsumeWhitespace()
	nameTok := block.Peek()
	if nameTok.Kind != TokenIdent || !IsCustomPropertyName(nameTok.Data) {
		return "", nil, false
	}
	block.ConsumeIncludingWhitespace()
	if block.ConsumeCommaIncludingWhitespace() {
		fallback = block.Remaining()
	} else if !block.Empty() {
		return "", nil, false
	}
	m.Release()
	return nameTok.Data, fallback, true
}

// IsCustomPropertyName reports whether name is a valid custom property
// name: two dashes followed by at least one non-space character.
func IsCustomPropertyName(name string) bool {
	return len(name) > 2 && strings.HasPrefix(name, "--") && !strings.ContainsAny(name, " \t\r\n\f")
}

// containsVarReference reports whether any var( function appears in the
// token list, at any nesting depth. Function tokens carry their name so
// a flat scan is sufficient.
func containsVarReference(tokens []Token) bool {
	for i := range tokens {
		if tokens[i].Kind == TokenFunction && equalIgnoreCase(tokens[i].Data, "var") {
			return true
		}
	}
	return false
}

// consumeFontFamily parses a comma-separated family list. Each entry is
// a quoted string or a space-joined identifier sequence.
func consumeFontFamily(s *TokenStream) *Value {
	var families []*Value
	for {
		s.ConsumeWhitespace()
		if v := consumeStringValue(s); v != nil {
			families = append(families, v)
		} else {
			var parts []string
			for s.Peek().Kind == TokenIdent {
				parts = append(parts, s.Consume().Data)
				s.ConsumeWhitespace()
			}
			if len(parts) == 0 {
				return nil
			}
			families = append(families, CustomIdent(strings.Join(parts, " ")))
		}
		if !s.ConsumeCommaIncludingWhitespace() {
			break
		}
	}
	return List(families)
}

// consumeFontSize accepts the absolute and relative keywords plus
// length-percentages.
func (vp *valueParser) consumeFontSize(s *TokenStream) *Value {
	if v := consumeIdentAmong(s, "xx-small", "x-small", "small", "medium",
		"large", "x-large", "xx-large", "smaller", "larger"); v != nil {
		return v
	}
	return vp.consumeLengthOrPercent(s, false)
}

func (vp *valueParser) consumeFontWeight(s *TokenStream) *Value {
	if v := consumeIdentAmong(s, "normal", "bold", "bolder", "lighter"); v != nil {
		return v
	}
	t := s.Peek()
	if t.Kind == TokenNumber && t.Value >= 1 && t.Value <= 1000 {
		s.ConsumeIncludingWhitespace()
		return Number(t.Value)
	}
	return nil
}

func (vp *valueParser) consumeLineHeight(s *TokenStream) *Value {
	if v := consumeIdentAmong(s, "normal"); v != nil {
		return v
	}
	if v := consumeNumberValue(s, false); v != nil {
		return v
	}
	return vp.consumeLengthOrPercent(s, false)
}

func (vp *valueParser) consumeLineWidth(s *TokenStream) *Value {
	if v := consumeIdentAmong(s, "thin", "medium", "thick"); v != nil {
		return v
	}
	return vp.consumeLength(s, false)
}

func (vp *valueParser) consumeVerticalAlign(s *TokenStream) *Value {
	if v := consumeIdentAmong(s, "baseline", "sub", "super", "top",
		"text-top", "middle", "bottom", "text-bottom"); v != nil {
		return v
	}
	return vp.consumeLengthOrPercent(s, true)
}

// consumeRadiusCorner parses one or two length-percentages into a pair
// of horizontal and vertical radii.
func (vp *valueParser) consumeRadiusCorner(s *TokenStream) *Value {
	first := vp.consumeLengthOrPercent(s, false)
	if first == nil {
		return nil
	}
	second := vp.consumeLengthOrPercent(s, false)
	if second == nil {
		second = first
	}
	return Pair(first, second)
}

// consumeBackgroundPosition parses a one- or two-component position.
func (vp *valueParser) consumeBackgroundPosition(s *TokenStream) *Value {
	component := func() *Value {
		if v := consumeIdentAmong(s, "left", "right", "top", "bottom", "center"); v != nil {
			return v
		}
		return vp.consumeLengthOrPercent(s, true)
	}
	first := component()
	if first == nil {
		return nil
	}
	second := component()
	if second == nil {
		second = Ident("center")
	}
	return Pair(first, second)
}

func (vp *valueParser) consumeBackgroundSize(s *TokenStream) *Value {
	if v := consumeIdentAmong(s, "cover", "contain"); v != nil {
		return v
	}
	component := func() *Value {
		if v := consumeIdentAmong(s, "auto"); v != nil {
			return v
		}
		return vp.consumeLengthOrPercent(s, false)
	}
	first := component()
	if first == nil {
		return nil
	}
	second := component()
	if second == nil {
		second = Ident("auto")
	}
	return Pair(first, second)
}

// consumeQuotes parses none, auto, or open/close string pairs.
func consumeQuotes(s *TokenStream) *Value {
	if v := consumeIdentAmong(s, "none", "auto"); v != nil {
		return v
	}
	var items []*Value
	for {
		open := consumeStringValue(s)
		if open == nil {
			break
		}
		closeQ := consumeStringValue(s)
		if closeQ == nil {
			return nil
		}
		items = append(items, Pair(open, closeQ))
	}
	if len(items) == 0 {
		return nil
	}
	return List(items)
}

// consumeCounterOps parses counter-increment/-reset/-set: none or a
// sequence of counter names with optional integer deltas.
func consumeCounterOps(s *TokenStream, defaultDelta int) *Value {
	if v := consumeIdentAmong(s, "none"); v != nil {
		return v
	}
	var items []*Value
	for {
		name := consumeCustomIdentValue(s)
		if name == nil {
			break
		}
		delta := consumeIntegerValue(s, true)
		if delta == nil {
			delta = Integer(defaultDelta)
		}
		items = append(items, Pair(name, delta))
	}
	if len(items) == 0 {
		return nil
	}
	return List(items)
}

// consumeContent parses the content property: normal, none, or a
// sequence of strings, images, quotes keywords and generator functions.
func (vp *valueParser) consumeContent(s *TokenStream) *Value {
	if v := consumeIdentAmong(s, "normal", "none"); v != nil {
		return v
	}
	var items []*Value
	for {
		s.ConsumeWhitespace()
		t := s.Peek()
		var v *Value
		switch {
		case t.Kind == TokenString:
			v = consumeStringValue(s)
		case t.Kind == TokenIdent:
			v = consumeIdentAmong(s, "open-quote", "close-quote", "no-open-quote", "no-close-quote")
		case t.Kind == TokenURL || t.MatchesFunction("url"):
			v = consumeImageValue(s)
		case t.Kind == TokenFunction:
			v = vp.consumeContentFunction(s)
		}
		if v == nil {
			break
		}
		items = append(items, v)
	}
	if len(items) == 0 {
		return nil
	}
	return List(items)
}

// consumeContentFunction parses the generator functions usable inside
// content: attr, counter, counters, target-counter, target-counters,
// leader, element and -pcss-qrcode.
func (vp *valueParser) consumeContentFunction(s *TokenStream) *Value {
	t := s.Peek()
	name := lowerASCII(t.Data)
	m := s.Mark()
	defer m.Restore()
	block := s.ConsumeBlock()
	block.ConsumeWhitespace()
	var args []*Value
	switch name {
	case "attr":
		attr := consumeCustomIdentValue(block)
		if attr == nil {
			return nil
		}
		args = append(args, attr)
		if block.ConsumeCommaIncludingWhitespace() {
			fallback := consumeStringValue(block)
			if fallback == nil {
				return nil
			}
			args = append(args, fallback)
		}
	case "counter":
		ident := consumeCustomIdentValue(block)
		if ident == nil {
			return nil
		}
		args = append(args, ident)
		if block.ConsumeCommaIncludingWhitespace() {
			style := consumeCustomIdentValue(block)
			if style == nil {
				return nil
			}
			args = append(args, style)
		}
	case "counters":
		ident := consumeCustomIdentValue(block)
		if ident == nil || !block.ConsumeCommaIncludingWhitespace() {
			return nil
		}
		sep := consumeStringValue(block)
		if sep == nil {
			return nil
		}
		args = append(args, ident, sep)
		if block.ConsumeCommaIncludingWhitespace() {
			style := consumeCustomIdentValue(block)
			if style == nil {
				return nil
			}
			args = append(args, style)
		}
	case "target-counter", "target-counters":
		var target *Value
		if u, ok := consumeURLText(block); ok {
			target = URL(u)
		} else if str := consumeStringValue(block); str != nil {
			target = str
		} else if fn := block.Peek(); fn.MatchesFunction("attr") {
			target = vp.consumeContentFunction(block)
		}
		if target == nil || !block.ConsumeCommaIncludingWhitespace() {
			return nil
		}
		ident := consumeCustomIdentValue(block)
		if ident == nil {
			return nil
		}
		args = append(args, target, ident)
		if name == "target-counters" {
			if !block.ConsumeCommaIncludingWhitespace() {
				return nil
			}
			sep := consumeStringValue(block)
			if sep == nil {
				return nil
			}
			args = append(args, sep)
		}
		if block.ConsumeCommaIncludingWhitespace() {
			style := consumeCustomIdentValue(block)
			if style == nil {
				return nil
			}
			args = append(args, style)
		}
	case "leader":
		if v := consumeIdentAmong(block, "dotted", "solid", "space"); v != nil {
			args = append(args, v)
		} else if str := consumeStringValue(block); str != nil {
			args = append(args, str)
		} else {
			return nil
		}
	case "element":
		ident := consumeCustomIdentValue(block)
		if ident == nil {
			return nil
		}
		args = append(args, ident)
	case "-pcss-qrcode":
		text := consumeStringValue(block)
		if text == nil {
			if fn := block.Peek(); fn.MatchesFunction("attr") {
				text = vp.consumeContentFunction(block)
			}
		}
		if text == nil {
			return nil
		}
		args = append(args, text)
		if block.ConsumeCommaIncludingWhitespace() {
			color := vp.consumeColor(block)
			if color == nil {
				return nil
			}
			args = append(args, color)
		}
	default:
		return nil
	}
	block.ConsumeWhitespace()
	if !block.Empty() {
		return nil
	}
	m.Release()
	s.ConsumeWhitespace()
	return Function(name, args)
}

// consumeFontFeatureSettings parses normal or a comma list of quoted
// four-character tags with an optional integer or on/off flag.
func consumeFontFeatureSettings(s *TokenStream) *Value {
	if v := consumeIdentAmong(s, "normal"); v != nil {
		return v
	}
	var items []*Value
	for {
		tag := s.Peek()
		if tag.Kind != TokenString || len(tag.Data) != 4 {
			return nil
		}
		s.ConsumeIncludingWhitespace()
		val := 1
		if n := consumeIntegerValue(s, false); n != nil {
			val = n.Int
		} else if kw := consumeIdentAmong(s, "on", "off"); kw != nil {
			if kw.Ident == "off" {
				val = 0
			}
		}
		items = append(items, FontFeature(tag.Data, val))
		if !s.ConsumeCommaIncludingWhitespace() {
			break
		}
	}
	return List(items)
}

// consumeFontVariationSettings parses normal or a comma list of quoted
// axis tags with a number.
func consumeFontVariationSettings(s *TokenStream) *Value {
	if v := consumeIdentAmong(s, "normal"); v != nil {
		return v
	}
	var items []*Value
	for {
		tag := s.Peek()
		if tag.Kind != TokenString || len(tag.Data) != 4 {
			return nil
		}
		s.ConsumeIncludingWhitespace()
		num := s.Peek()
		if num.Kind != TokenNumber {
			return nil
		}
		s.ConsumeIncludingWhitespace()
		items = append(items, FontVariation(tag.Data, num.Value))
		if !s.ConsumeCommaIncludingWhitespace() {
			break
		}
	}
	return List(items)
}

// fontVariantKeywords lists the mutually duplicating keyword groups for
// the font-variant longhands; a repeated keyword from the same group
// rejects the value.
var fontVariantKeywords = map[PropertyID][]string{
	PropFontVariantLigatures: {
		"common-ligatures", "no-common-ligatures",
		"discretionary-ligatures", "no-discretionary-ligatures",
		"historical-ligatures", "no-historical-ligatures",
		"contextual", "no-contextual",
	},
	PropFontVariantCaps: {
		"small-caps", "all-small-caps", "petite-caps", "all-petite-caps",
		"unicase", "titling-caps",
	},
	PropFontVariantNumeric: {
		"lining-nums", "oldstyle-nums", "proportional-nums", "tabular-nums",
		"diagonal-fractions", "stacked-fractions", "ordinal", "slashed-zero",
	},
	PropFontVariantEastAsian: {
		"jis78", "jis83", "jis90", "jis04", "simplified", "traditional",
		"full-width", "proportional-width", "ruby",
	},
	PropFontVariantPosition: {"sub", "super"},
}

// variantGroupOf returns which font-variant longhand a keyword belongs
// to.
func variantGroupOf(name string) (PropertyID, bool) {
	for id, kws := range fontVariantKeywords {
		for _, kw := range kws {
			if kw == name {
				return id, true
			}
		}
	}
	return "", false
}

// consumeFontVariantLonghand parses one font-variant-* longhand as a
// keyword list, rejecting duplicates within the group.
func consumeFontVariantLonghand(id PropertyID, s *TokenStream) *Value {
	if v := consumeIdentAmong(s, "normal"); v != nil {
		return v
	}
	if id == PropFontVariantCaps || id == PropFontVariantPosition {
		return consumeIdentAmong(s, fontVariantKeywords[id]...)
	}
	if id == PropFontVariantEastAsian || id == PropFontVariantLigatures ||
		id == PropFontVariantNumeric {
		seen := map[string]bool{}
		var items []*Value
		for {
			v := consumeIdentAmong(s, fontVariantKeywords[id]...)
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
	return nil
}

// consumeFontSrc parses the @font-face src descriptor: a comma list of
// url(...) with optional format(...), or local(...) references.
func consumeFontSrc(s *TokenStream) *Value {
	var items []*Value
	for {
		s.ConsumeWhitespace()
		t := s.Peek()
		switch {
		case t.MatchesFunction("local"):
			block := s.ConsumeBlock()
			block.ConsumeWhitespace()
			var name string
			if str := block.Peek(); str.Kind == TokenString {
				name = str.Data
				block.ConsumeIncludingWhitespace()
			} else {
				var parts []string
				for block.Peek().Kind == TokenIdent {
					parts = append(parts, block.Consume().Data)
					block.ConsumeWhitespace()
				}
				if len(parts) == 0 {
					return nil
				}
				name = strings.Join(parts, " ")
			}
			if !block.Empty() {
				return nil
			}
			items = append(items, LocalURL(name))
		default:
			u, ok := consumeURLText(s)
			if !ok {
				return nil
			}
			entry := URL(u)
			s.ConsumeWhitespace()
			if fn := s.Peek(); fn.MatchesFunction("format") {
				block := s.ConsumeBlock()
				block.ConsumeWhitespace()
				var format *Value
				if str := block.Peek(); str.Kind == TokenString {
					format = String(str.Data)
					block.ConsumeIncludingWhitespace()
				} else if id := consumeCustomIdentValue(block); id != nil {
					format = id
				}
				if format == nil || !block.Empty() {
					return nil
				}
				entry = Pair(entry, format)
			}
			items = append(items, entry)
		}
		if !s.ConsumeCommaIncludingWhitespace() {
			break
		}
	}
	if len(items) == 0 {
		return nil
	}
	return List(items)
}

// consumeUnicodeRangeList parses the @font-face unicode-range
// descriptor.
func consumeUnicodeRangeList(s *TokenStream) *Value {
	var items []*Value
	for {
		s.ConsumeWhitespace()
		t := s.Peek()
		if t.Kind != TokenUnicodeRange {
			return nil
		}
		s.ConsumeIncludingWhitespace()
		items = append(items, UnicodeRange(t.RangeFrom, t.RangeTo))
		if !s.ConsumeCommaIncludingWhitespace() {
			break
		}
	}
	return List(items)
}

// Counter-style descriptor grammars.

func consumeCounterSymbol(s *TokenStream) *Value {
	if v := consumeStringValue(s); v != nil {
		return v
	}
	return consumeCustomIdentValue(s)
}

func consumeCounterSystem(s *TokenStream) *Value {
	if v := consumeIdentAmong(s, "cyclic", "symbolic", "alphabetic", "numeric", "additive"); v != nil {
		return v
	}
	if v := consumeIdentAmong(s, "fixed"); v != nil {
		first := consumeIntegerValue(s, true)
		if first == nil {
			first = Integer(1)
		}
		return Pair(v, first)
	}
	if v := consumeIdentAmong(s, "extends"); v != nil {
		target := consumeCustomIdentValue(s)
		if target == nil {
			return nil
		}
		return Pair(v, target)
	}
	return nil
}

func consumeCounterNegative(s *TokenStream) *Value {
	prefix := consumeCounterSymbol(s)
	if prefix == nil {
		return nil
	}
	if suffix := consumeCounterSymbol(s); suffix != nil {
		return Pair(prefix, suffix)
	}
	return prefix
}

func consumeCounterSymbols(s *TokenStream) *Value {
	var items []*Value
	for {
		v := consumeCounterSymbol(s)
		if v == nil {
			break
		}
		items = append(items, v)
	}
	if len(items) == 0 {
		return nil
	}
	return List(items)
}

func consumeCounterAdditiveSymbols(s *TokenStream) *Value {
	var items []*Value
	for {
		weight := consumeIntegerValue(s, false)
		if weight == nil {
			return nil
		}
		symbol := consumeCounterSymbol(s)
		if symbol == nil {
			return nil
		}
		items = append(items, Pair(weight, symbol))
		if !s.ConsumeCommaIncludingWhitespace() {
			break
		}
	}
	return List(items)
}

func consumeCounterRange(s *TokenStream) *Value {
	if v := consumeIdentAmong(s, "auto"); v != nil {
		return v
	}
	bound := func() *Value {
		if v := consumeIdentAmong(s, "infinite"); v != nil {
			return v
		}
		return consumeIntegerValue(s, true)
	}
	var items []*Value
	for {
		lo := bound()
		if lo == nil {
			return nil
		}
		hi := bound()
		if hi == nil {
			return nil
		}
		items = append(items, Pair(lo, hi))
		if !s.ConsumeCommaIncludingWhitespace() {
			break
		}
	}
	return List(items)
}

func consumeCounterPad(s *TokenStream) *Value {
	count := consumeIntegerValue(s, false)
	if count != nil {
		symbol := consumeCounterSymbol(s)
		if symbol == nil {
			return nil
		}
		return Pair(count, symbol)
	}
	symbol := consumeCounterSymbol(s)
	if symbol == nil {
		return nil
	}
	count = consumeIntegerValue(s, false)
	if count == nil {
		return nil
	}
	return Pair(count, symbol)
}

// consumePageSize parses the @page size property: auto, paper names
// with an optional orientation, an orientation alone, or one or two
// lengths.
func (vp *valueParser) consumePageSize(s *TokenStream) *Value {
	if v := consumeIdentAmong(s, "auto"); v != nil {
		return v
	}
	paper := consumeIdentAmong(s, "a3", "a4", "a5", "b4", "b5", "letter", "legal", "ledger")
	orientation := consumeIdentAmong(s, "portrait", "landscape")
	if paper == nil && orientation != nil {
		paper = consumeIdentAmong(s, "a3", "a4", "a5", "b4", "b5", "letter", "legal", "ledger")
	}
	switch {
	case paper != nil && orientation != nil:
		return Pair(paper, orientation)
	case paper != nil:
		return paper
	case orientation != nil:
		return orientation
	}
	first := vp.consumeLength(s, false)
	if first == nil {
		return nil
	}
	second := vp.consumeLength(s, false)
	if second == nil {
		second = first
	}
	return Pair(first, second)
}

// consumeClip parses rect(top, right, bottom, left) or auto.
func (vp *valueParser) consumeClip(s *TokenStream) *Value {
	if v := consumeIdentAmong(s, "auto"); v != nil {
		return v
	}
	t := s.Peek()
	if !t.MatchesFunction("rect") {
		return nil
	}
	m := s.Mark()
	defer m.Restore()
	block := s.ConsumeBlock()
	var sides [4]*Value
	for i := 0; i < 4; i++ {
		block.ConsumeWhitespace()
		if v := consumeIdentAmong(block, "auto"); v != nil {
			sides[i] = v
		} else if v := vp.consumeLength(block, true); v != nil {
			sides[i] = v
		} else {
			return nil
		}
		if i < 3 && !block.ConsumeCommaIncludingWhitespace() {
			// Legacy space-separated form is also accepted.
			block.ConsumeWhitespace()
		}
	}
	block.ConsumeWhitespace()
	if !block.Empty() {
		return nil
	}
	m.Release()
	s.ConsumeWhitespace()
	return Rect(sides[0], sides[1], sides[2], sides[3])
}

// consumeMarkerRef parses none or a url reference for the SVG marker
// longhands.
func consumeMarkerRef(s *TokenStream) *Value {
	if v := consumeIdentAmong(s, "none"); v != nil {
		return v
	}
	if u, ok := consumeURLText(s); ok {
		return URL(u)
	}
	return nil
}
