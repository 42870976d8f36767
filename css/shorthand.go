package css

// Shorthand expansion. Every shorthand expands into the full longhand
// list; components missing from the declared value are set to initial
// unless the shorthand defines another default (flex: none).

var marginLonghands = []PropertyID{PropMarginTop, PropMarginRight, PropMarginBottom, PropMarginLeft}
var paddingLonghands = []PropertyID{PropPaddingTop, PropPaddingRight, PropPaddingBottom, PropPaddingLeft}
var borderWidthLonghands = []PropertyID{PropBorderTopWidth, PropBorderRightWidth, PropBorderBottomWidth, PropBorderLeftWidth}
var borderStyleLonghands = []PropertyID{PropBorderTopStyle, PropBorderRightStyle, PropBorderBottomStyle, PropBorderLeftStyle}
var borderColorLonghands = []PropertyID{PropBorderTopColor, PropBorderRightColor, PropBorderBottomColor, PropBorderLeftColor}
var radiusLonghands = []PropertyID{PropBorderTLRadius, PropBorderTRRadius, PropBorderBRRadius, PropBorderBLRadius}

var fontVariantLonghands = []PropertyID{
	PropFontVariantLigatures, PropFontVariantCaps, PropFontVariantNumeric,
	PropFontVariantEastAsian, PropFontVariantPosition,
}

// shorthands maps each shorthand to its longhand expansion, used both
// for wide-keyword fan-out and for variable-reference deferral.
var shorthands = map[PropertyID][]PropertyID{
	"background": {
		PropBackgroundColor, PropBackgroundImage, PropBackgroundRepeat,
		PropBackgroundAttach, PropBackgroundPosition, PropBackgroundSize,
		PropBackgroundOrigin, PropBackgroundClip,
	},
	"border": {
		PropBorderTopWidth, PropBorderRightWidth, PropBorderBottomWidth, PropBorderLeftWidth,
		PropBorderTopStyle, PropBorderRightStyle, PropBorderBottomStyle, PropBorderLeftStyle,
		PropBorderTopColor, PropBorderRightColor, PropBorderBottomColor, PropBorderLeftColor,
	},
	"border-top":    {PropBorderTopWidth, PropBorderTopStyle, PropBorderTopColor},
	"border-right":  {PropBorderRightWidth, PropBorderRightStyle, PropBorderRightColor},
	"border-bottom": {PropBorderBottomWidth, PropBorderBottomStyle, PropBorderBottomColor},
	"border-left":   {PropBorderLeftWidth, PropBorderLeftStyle, PropBorderLeftColor},
	"border-width":  marginToSlice(borderWidthLonghands),
	"border-style":  marginToSlice(borderStyleLonghands),
	"border-color":  marginToSlice(borderColorLonghands),
	"border-radius": marginToSlice(radiusLonghands),
	"columns":       {PropColumnWidth, PropColumnCount},
	"column-rule":   {PropColumnRuleWidth, PropColumnRuleStyle, PropColumnRuleColor},
	"flex":          {PropFlexGrow, PropFlexShrink, PropFlexBasis},
	"flex-flow":     {PropFlexDirection, PropFlexWrap},
	"font": {
		PropFontStyle, PropFontVariantCaps, PropFontWeight, PropFontStretch,
		PropFontSize, PropLineHeight, PropFontFamily,
	},
	"font-variant": marginToSlice(fontVariantLonghands),
	"gap":          {PropRowGap, PropColumnGap},
	"list-style":   {PropListStyleType, PropListStylePosition, PropListStyleImage},
	"margin":       marginToSlice(marginLonghands),
	"marker":       {PropMarkerStart, PropMarkerMid, PropMarkerEnd},
	"outline":      {PropOutlineColor, PropOutlineStyle, PropOutlineWidth},
	"padding":      marginToSlice(paddingLonghands),
	"text-decoration": {
		PropTextDecorationLine, PropTextDecorationStyle, PropTextDecorationColor,
	},
	"page-break-before": {PropBreakBefore},
	"page-break-after":  {PropBreakAfter},
	"page-break-inside": {PropBreakInside},
}

func marginToSlice(ids []PropertyID) []PropertyID {
	out := make([]PropertyID, len(ids))
	copy(out, ids)
	return out
}

// IsShorthand reports whether the property expands to longhands.
func IsShorthand(id PropertyID) bool {
	_, ok := shorthands[id]
	return ok
}

// ShorthandLonghands returns the expansion list of a shorthand.
func ShorthandLonghands(id PropertyID) []PropertyID {
	return shorthands[id]
}

type assignment struct {
	id    PropertyID
	value *Value
}

// expandWith fills every longhand of the shorthand with initial and
// overlays the parsed assignments.
func expandWith(id PropertyID, assigns []assignment) []Property {
	out := make([]Property, 0, len(shorthands[id]))
	for _, longhand := range shorthands[id] {
		v := Initial()
		for _, a := range assigns {
			if a.id == longhand {
				v = a.value
				break
			}
		}
		out = append(out, Property{ID: longhand, Value: v})
	}
	return out
}

// parseShorthand parses the shorthand grammar, returning the longhand
// expansion or nil when the value is malformed.
func (vp *valueParser) parseShorthand(id PropertyID, s *TokenStream) []Property {
	switch id {
	case "margin":
		return vp.parseBox4(id, s, marginLonghands, func(s *TokenStream) *Value {
			if v := consumeIdentAmong(s, "auto"); v != nil {
				return v
			}
			return vp.consumeLengthOrPercent(s, true)
		})
	case "padding":
		return vp.parseBox4(id, s, paddingLonghands, func(s *TokenStream) *Value {
			return vp.consumeLengthOrPercent(s, false)
		})
	case "border-width":
		return vp.parseBox4(id, s, borderWidthLonghands, vp.consumeLineWidth)
	case "border-style":
		return vp.parseBox4(id, s, borderStyleLonghands, func(s *TokenStream) *Value {
			return consumeIdentAmong(s, borderStyleKeywords...)
		})
	case "border-color":
		return vp.parseBox4(id, s, borderColorLonghands, vp.consumeColor)
	case "border":
		return vp.parseBorder(s)
	case "border-top", "border-right", "border-bottom", "border-left":
		return vp.parseBorderSide(id, s)
	case "border-radius":
		return vp.parseBorderRadius(s)
	case "columns":
		return vp.parseColumns(s)
	case "column-rule":
		return vp.parseColumnRule(s)
	case "flex":
		return vp.parseFlex(s)
	case "flex-flow":
		return vp.parseFlexFlow(s)
	case "font":
		return vp.parseFont(s)
	case "font-variant":
		return vp.parseFontVariant(s)
	case "gap":
		return vp.parseGap(s)
	case "list-style":
		return vp.parseListStyle(s)
	case "marker":
		return vp.parseMarker(s)
	case "outline":
		return vp.parseOutline(s)
	case "background":
		return vp.parseBackground(s)
	case "text-decoration":
		return vp.parseTextDecoration(s)
	case "page-break-before", "page-break-after", "page-break-inside":
		return vp.parsePageBreakAlias(id, s)
	}
	return nil
}

// parseBox4 handles the classic one-to-four value pattern: top,
// right, bottom, left with missing sides mirrored.
func (vp *valueParser) parseBox4(id PropertyID, s *TokenStream, longhands []PropertyID, consume func(*TokenStream) *Value) []Property {
	var vals []*Value
	for len(vals) < 4 {
		v := consume(s)
		if v == nil {
			break
		}
		vals = append(vals, v)
	}
	switch len(vals) {
	case 0:
		return nil
	case 1:
		vals = []*Value{vals[0], vals[0], vals[0], vals[0]}
	case 2:
		vals = []*Value{vals[0], vals[1], vals[0], vals[1]}
	case 3:
		vals = append(vals, vals[1])
	}
	out := make([]Property, 4)
	for i, longhand := range longhands {
		out[i] = Property{ID: longhand, Value: vals[i]}
	}
	return out
}

// parseBorder parses width || style || color and applies them to all
// four sides.
func (vp *valueParser) parseBorder(s *TokenStream) []Property {
	var width, style, color *Value
	for !s.EmptyAfterWhitespace() {
		switch {
		case style == nil && consumePeekIdent(s, borderStyleKeywords):
			style = consumeIdentAmong(s, borderStyleKeywords...)
		case width == nil && vp.peekLineWidth(s):
			width = vp.consumeLineWidth(s)
		case color == nil:
			if color = vp.consumeColor(s); color == nil {
				return nil
			}
		default:
			return nil
		}
	}
	if width == nil && style == nil && color == nil {
		return nil
	}
	var assigns []assignment
	for i := range borderWidthLonghands {
		if width != nil {
			assigns = append(assigns, assignment{borderWidthLonghands[i], width})
		}
		if style != nil {
			assigns = append(assigns, assignment{borderStyleLonghands[i], style})
		}
		if color != nil {
			assigns = append(assigns, assignment{borderColorLonghands[i], color})
		}
	}
	return expandWith("border", assigns)
}

func consumePeekIdent(s *TokenStream, keywords []string) bool {
	t := s.Peek()
	if t.Kind != TokenIdent {
		return false
	}
	name := lowerASCII(t.Data)
	for _, kw := range keywords {
		if kw == name {
			return true
		}
	}
	return false
}

func (vp *valueParser) peekLineWidth(s *TokenStream) bool {
	t := s.Peek()
	switch t.Kind {
	case TokenIdent:
		name := lowerASCII(t.Data)
		return name == "thin" || name == "medium" || name == "thick"
	case TokenDimension:
		_, ok := lengthUnits[t.Unit]
		return ok
	case TokenNumber:
		return t.Value == 0 || vp.unitless
	case TokenFunction:
		name := lowerASCII(t.Data)
		return name == "calc" || name == "min" || name == "max" || name == "clamp"
	}
	return false
}

func (vp *valueParser) parseBorderSide(id PropertyID, s *TokenStream) []Property {
	longhands := shorthands[id]
	var width, style, color *Value
	for !s.EmptyAfterWhitespace() {
		switch {
		case style == nil && consumePeekIdent(s, borderStyleKeywords):
			style = consumeIdentAmong(s, borderStyleKeywords...)
		case width == nil && vp.peekLineWidth(s):
			width = vp.consumeLineWidth(s)
		case color == nil:
			if color = vp.consumeColor(s); color == nil {
				return nil
			}
		default:
			return nil
		}
	}
	if width == nil && style == nil && color == nil {
		return nil
	}
	var assigns []assignment
	if width != nil {
		assigns = append(assigns, assignment{longhands[0], width})
	}
	if style != nil {
		assigns = append(assigns, assignment{longhands[1], style})
	}
	if color != nil {
		assigns = append(assigns, assignment{longhands[2], color})
	}
	return expandWith(id, assigns)
}

// parseBorderRadius parses the slash form: horizontal radii, optional
// "/" vertical radii, one to four values each, corner order top-left,
// top-right, bottom-right, bottom-left.
func (vp *valueParser) parseBorderRadius(s *TokenStream) []Property {
	readFour := func() []*Value {
		var vals []*Value
		for len(vals) < 4 {
			v := vp.consumeLengthOrPercent(s, false)
			if v == nil {
				break
			}
			vals = append(vals, v)
		}
		switch len(vals) {
		case 0:
			return nil
		case 1:
			return []*Value{vals[0], vals[0], vals[0], vals[0]}
		case 2:
			return []*Value{vals[0], vals[1], vals[0], vals[1]}
		case 3:
			return append(vals, vals[1])
		}
		return vals
	}
	horizontal := readFour()
	if horizontal == nil {
		return nil
	}
	vertical := horizontal
	s.ConsumeWhitespace()
	if s.Peek().MatchesDelim('/') {
		s.ConsumeIncludingWhitespace()
		if vertical = readFour(); vertical == nil {
			return nil
		}
	}
	out := make([]Property, 4)
	for i, longhand := range radiusLonghands {
		out[i] = Property{ID: longhand, Value: Pair(horizontal[i], vertical[i])}
	}
	return out
}

func (vp *valueParser) parseColumns(s *TokenStream) []Property {
	var width, count *Value
	for !s.EmptyAfterWhitespace() {
		if v := consumeIdentAmong(s, "auto"); v != nil {
			// auto fills whichever component is still open.
			if width == nil {
				width = v
			} else if count == nil {
				count = v
			} else {
				return nil
			}
			continue
		}
		if count == nil {
			if v := consumeIntegerValue(s, false); v != nil {
				count = v
				continue
			}
		}
		if width == nil {
			if v := vp.consumeLength(s, false); v != nil {
				width = v
				continue
			}
		}
		return nil
	}
	if width == nil && count == nil {
		return nil
	}
	var assigns []assignment
	if width != nil {
		assigns = append(assigns, assignment{PropColumnWidth, width})
	}
	if count != nil {
		assigns = append(assigns, assignment{PropColumnCount, count})
	}
	return expandWith("columns", assigns)
}

func (vp *valueParser) parseColumnRule(s *TokenStream) []Property {
	var width, style, color *Value
	for !s.EmptyAfterWhitespace() {
		switch {
		case style == nil && consumePeekIdent(s, borderStyleKeywords):
			style = consumeIdentAmong(s, borderStyleKeywords...)
		case width == nil && vp.peekLineWidth(s):
			width = vp.consumeLineWidth(s)
		case color == nil:
			if color = vp.consumeColor(s); color == nil {
				return nil
			}
		default:
			return nil
		}
	}
	if width == nil && style == nil && color == nil {
		return nil
	}
	var assigns []assignment
	if width != nil {
		assigns = append(assigns, assignment{PropColumnRuleWidth, width})
	}
	if style != nil {
		assigns = append(assigns, assignment{PropColumnRuleStyle, style})
	}
	if color != nil {
		assigns = append(assigns, assignment{PropColumnRuleColor, color})
	}
	return expandWith("column-rule", assigns)
}

// parseFlex handles none (0 0 auto), a bare basis, and the
// grow/shrink/basis combinations.
func (vp *valueParser) parseFlex(s *TokenStream) []Property {
	if v := consumeIdentAmong(s, "none"); v != nil && s.EmptyAfterWhitespace() {
		return []Property{
			{ID: PropFlexGrow, Value: Number(0)},
			{ID: PropFlexShrink, Value: Number(0)},
			{ID: PropFlexBasis, Value: Ident("auto")},
		}
	} else if v != nil {
		return nil
	}
	var grow, shrink, basis *Value
	for !s.EmptyAfterWhitespace() {
		if grow == nil && s.Peek().Kind == TokenNumber {
			grow = consumeNumberValue(s, false)
			if grow == nil {
				return nil
			}
			if shrink == nil && s.Peek().Kind == TokenNumber {
				if shrink = consumeNumberValue(s, false); shrink == nil {
					return nil
				}
			}
			continue
		}
		if basis == nil {
			if v := consumeIdentAmong(s, "auto", "content"); v != nil {
				basis = v
				continue
			}
			if v := vp.consumeLengthOrPercent(s, false); v != nil {
				basis = v
				continue
			}
		}
		return nil
	}
	if grow == nil && basis == nil {
		return nil
	}
	if grow == nil {
		grow = Number(1)
	}
	if shrink == nil {
		shrink = Number(1)
	}
	if basis == nil {
		basis = Percent(0)
	}
	return []Property{
		{ID: PropFlexGrow, Value: grow},
		{ID: PropFlexShrink, Value: shrink},
		{ID: PropFlexBasis, Value: basis},
	}
}

func (vp *valueParser) parseFlexFlow(s *TokenStream) []Property {
	var direction, wrap *Value
	for !s.EmptyAfterWhitespace() {
		if direction == nil {
			if v := consumeIdentAmong(s, "row", "row-reverse", "column", "column-reverse"); v != nil {
				direction = v
				continue
			}
		}
		if wrap == nil {
			if v := consumeIdentAmong(s, "nowrap", "wrap", "wrap-reverse"); v != nil {
				wrap = v
				continue
			}
		}
		return nil
	}
	if direction == nil && wrap == nil {
		return nil
	}
	var assigns []assignment
	if direction != nil {
		assigns = append(assigns, assignment{PropFlexDirection, direction})
	}
	if wrap != nil {
		assigns = append(assigns, assignment{PropFlexWrap, wrap})
	}
	return expandWith("flex-flow", assigns)
}

// parseFont parses [style || small-caps || weight || stretch] size
// [/ line-height] family.
func (vp *valueParser) parseFont(s *TokenStream) []Property {
	var style, caps, weight, stretch *Value
	for i := 0; i < 4; i++ {
		s.ConsumeWhitespace()
		if v := consumeIdentAmong(s, "normal"); v != nil {
			continue
		}
		if style == nil {
			if v := consumeIdentAmong(s, "italic", "oblique"); v != nil {
				style = v
				continue
			}
		}
		if caps == nil {
			if v := consumeIdentAmong(s, "small-caps"); v != nil {
				caps = v
				continue
			}
		}
		if weight == nil {
			if v := vp.consumeFontWeight(s); v != nil {
				weight = v
				continue
			}
		}
		if stretch == nil {
			if v := consumeIdentAmong(s, "ultra-condensed", "extra-condensed",
				"condensed", "semi-condensed", "semi-expanded", "expanded",
				"extra-expanded", "ultra-expanded"); v != nil {
				stretch = v
				continue
			}
		}
		break
	}
	size := vp.consumeFontSize(s)
	if size == nil {
		return nil
	}
	var lineHeight *Value
	s.ConsumeWhitespace()
	if s.Peek().MatchesDelim('/') {
		s.ConsumeIncludingWhitespace()
		if lineHeight = vp.consumeLineHeight(s); lineHeight == nil {
			return nil
		}
	}
	family := consumeFontFamily(s)
	if family == nil || !s.EmptyAfterWhitespace() {
		return nil
	}
	var assigns []assignment
	if style != nil {
		assigns = append(assigns, assignment{PropFontStyle, style})
	}
	if caps != nil {
		assigns = append(assigns, assignment{PropFontVariantCaps, caps})
	}
	if weight != nil {
		assigns = append(assigns, assignment{PropFontWeight, weight})
	}
	if stretch != nil {
		assigns = append(assigns, assignment{PropFontStretch, stretch})
	}
	assigns = append(assigns,
		assignment{PropFontSize, size},
		assignment{PropFontFamily, family})
	if lineHeight != nil {
		assigns = append(assigns, assignment{PropLineHeight, lineHeight})
	}
	return expandWith("font", assigns)
}

// parseFontVariant distributes variant keywords to the five longhands.
func (vp *valueParser) parseFontVariant(s *TokenStream) []Property {
	if v := consumeIdentAmong(s, "normal"); v != nil && s.EmptyAfterWhitespace() {
		return expandWith("font-variant", nil)
	} else if v != nil {
		return nil
	}
	if v := consumeIdentAmong(s, "none"); v != nil && s.EmptyAfterWhitespace() {
		return expandWith("font-variant", []assignment{{PropFontVariantLigatures, Ident("none")}})
	} else if v != nil {
		return nil
	}
	groups := map[PropertyID][]*Value{}
	for !s.EmptyAfterWhitespace() {
		t := s.Peek()
		if t.Kind != TokenIdent {
			return nil
		}
		name := lowerASCII(t.Data)
		id, ok := variantGroupOf(name)
		if !ok {
			return nil
		}
		for _, prev := range groups[id] {
			if prev.Ident == name {
				return nil
			}
		}
		s.ConsumeIncludingWhitespace()
		groups[id] = append(groups[id], Ident(name))
	}
	if len(groups) == 0 {
		return nil
	}
	var assigns []assignment
	for id, vals := range groups {
		switch id {
		case PropFontVariantCaps, PropFontVariantPosition:
			if len(vals) > 1 {
				return nil
			}
			assigns = append(assigns, assignment{id, vals[0]})
		default:
			assigns = append(assigns, assignment{id, List(vals)})
		}
	}
	return expandWith("font-variant", assigns)
}

func (vp *valueParser) parseGap(s *TokenStream) []Property {
	gapValue := func() *Value {
		if v := consumeIdentAmong(s, "normal"); v != nil {
			return v
		}
		return vp.consumeLengthOrPercent(s, false)
	}
	row := gapValue()
	if row == nil {
		return nil
	}
	column := gapValue()
	if column == nil {
		column = row
	}
	return []Property{
		{ID: PropRowGap, Value: row},
		{ID: PropColumnGap, Value: column},
	}
}

// parseListStyle resolves the none ambiguity: a single none clears both
// the type and the image.
func (vp *valueParser) parseListStyle(s *TokenStream) []Property {
	var typ, position, image *Value
	nones := 0
	for !s.EmptyAfterWhitespace() {
		if v := consumeIdentAmong(s, "none"); v != nil {
			nones++
			continue
		}
		if position == nil {
			if v := consumeIdentAmong(s, "inside", "outside"); v != nil {
				position = v
				continue
			}
		}
		if image == nil {
			if v := consumeImageValue(s); v != nil {
				image = v
				continue
			}
		}
		if typ == nil {
			if v := consumeStringValue(s); v != nil {
				typ = v
				continue
			}
			if v := consumeCustomIdentValue(s); v != nil {
				typ = v
				continue
			}
		}
		return nil
	}
	if nones > 2 || (nones == 2 && (typ != nil || image != nil)) {
		return nil
	}
	if nones > 0 {
		if typ == nil {
			typ = Ident("none")
		} else if image == nil {
			image = Ident("none")
		} else {
			return nil
		}
	}
	if typ == nil && position == nil && image == nil {
		return nil
	}
	var assigns []assignment
	if typ != nil {
		assigns = append(assigns, assignment{PropListStyleType, typ})
	}
	if position != nil {
		assigns = append(assigns, assignment{PropListStylePosition, position})
	}
	if image != nil {
		assigns = append(assigns, assignment{PropListStyleImage, image})
	}
	return expandWith("list-style", assigns)
}

func (vp *valueParser) parseMarker(s *TokenStream) []Property {
	v := consumeMarkerRef(s)
	if v == nil || !s.EmptyAfterWhitespace() {
		return nil
	}
	return []Property{
		{ID: PropMarkerStart, Value: v},
		{ID: PropMarkerMid, Value: v},
		{ID: PropMarkerEnd, Value: v},
	}
}

func (vp *valueParser) parseOutline(s *TokenStream) []Property {
	outlineStyles := append([]string{"auto"}, borderStyleKeywords...)
	var width, style, color *Value
	for !s.EmptyAfterWhitespace() {
		switch {
		case style == nil && consumePeekIdent(s, outlineStyles):
			style = consumeIdentAmong(s, outlineStyles...)
		case width == nil && vp.peekLineWidth(s):
			width = vp.consumeLineWidth(s)
		case color == nil:
			if color = vp.consumeColor(s); color == nil {
				return nil
			}
		default:
			return nil
		}
	}
	if width == nil && style == nil && color == nil {
		return nil
	}
	var assigns []assignment
	if color != nil {
		assigns = append(assigns, assignment{PropOutlineColor, color})
	}
	if style != nil {
		assigns = append(assigns, assignment{PropOutlineStyle, style})
	}
	if width != nil {
		assigns = append(assigns, assignment{PropOutlineWidth, width})
	}
	return expandWith("outline", assigns)
}

// parseBackground parses a single background layer: color, image,
// repeat, attachment, position with optional /size, origin and clip
// boxes in any order.
func (vp *valueParser) parseBackground(s *TokenStream) []Property {
	var color, image, repeat, attachment, position, size *Value
	var boxes []*Value
	for !s.EmptyAfterWhitespace() {
		if repeat == nil {
			if v := consumeIdentAmong(s, "repeat", "repeat-x", "repeat-y", "no-repeat"); v != nil {
				repeat = v
				continue
			}
		}
		if attachment == nil {
			if v := consumeIdentAmong(s, "scroll", "fixed", "local"); v != nil {
				attachment = v
				continue
			}
		}
		if len(boxes) < 2 {
			if v := consumeIdentAmong(s, "border-box", "padding-box", "content-box"); v != nil {
				boxes = append(boxes, v)
				continue
			}
		}
		if position == nil {
			if v := vp.consumeBackgroundPosition(s); v != nil {
				position = v
				s.ConsumeWhitespace()
				if s.Peek().MatchesDelim('/') {
					s.ConsumeIncludingWhitespace()
					if size = vp.consumeBackgroundSize(s); size == nil {
						return nil
					}
				}
				continue
			}
		}
		if image == nil {
			if v := consumeImageValue(s); v != nil {
				image = v
				continue
			}
			if v := consumeIdentAmong(s, "none"); v != nil {
				image = v
				continue
			}
		}
		if color == nil {
			if v := vp.consumeColor(s); v != nil {
				color = v
				continue
			}
		}
		return nil
	}
	if color == nil && image == nil && repeat == nil && attachment == nil &&
		position == nil && size == nil && len(boxes) == 0 {
		return nil
	}
	var assigns []assignment
	add := func(id PropertyID, v *Value) {
		if v != nil {
			assigns = append(assigns, assignment{id, v})
		}
	}
	add(PropBackgroundColor, color)
	add(PropBackgroundImage, image)
	add(PropBackgroundRepeat, repeat)
	add(PropBackgroundAttach, attachment)
	add(PropBackgroundPosition, position)
	add(PropBackgroundSize, size)
	// One box keyword sets both origin and clip; two set them in order.
	if len(boxes) >= 1 {
		add(PropBackgroundOrigin, boxes[0])
		clip := boxes[0]
		if len(boxes) == 2 {
			clip = boxes[1]
		}
		add(PropBackgroundClip, clip)
	}
	return expandWith("background", assigns)
}

func (vp *valueParser) parseTextDecoration(s *TokenStream) []Property {
	var line, style, color *Value
	for !s.EmptyAfterWhitespace() {
		if style == nil {
			if v := consumeIdentAmong(s, "solid", "double", "dotted", "dashed", "wavy"); v != nil {
				style = v
				continue
			}
		}
		if line == nil {
			if v := consumeTextDecorationLine(s); v != nil {
				line = v
				continue
			}
		}
		if color == nil {
			if v := vp.consumeColor(s); v != nil {
				color = v
				continue
			}
		}
		return nil
	}
	if line == nil && style == nil && color == nil {
		return nil
	}
	var assigns []assignment
	if line != nil {
		assigns = append(assigns, assignment{PropTextDecorationLine, line})
	}
	if style != nil {
		assigns = append(assigns, assignment{PropTextDecorationStyle, style})
	}
	if color != nil {
		assigns = append(assigns, assignment{PropTextDecorationColor, color})
	}
	return expandWith("text-decoration", assigns)
}

// parsePageBreakAlias maps the legacy page-break properties onto the
// break-* longhands; always becomes page.
func (vp *valueParser) parsePageBreakAlias(id PropertyID, s *TokenStream) []Property {
	target := shorthands[id][0]
	var allowed []string
	if id == "page-break-inside" {
		allowed = []string{"auto", "avoid"}
	} else {
		allowed = []string{"auto", "always", "avoid", "left", "right"}
	}
	v := consumeIdentAmong(s, allowed...)
	if v == nil || !s.EmptyAfterWhitespace() {
		return nil
	}
	if v.Ident == "always" {
		v = Ident("page")
	}
	return []Property{{ID: target, Value: v}}
}
