package css

import "testing"

func propValue(t *testing.T, props []Property, id PropertyID) *Value {
	t.Helper()
	p, ok := findProperty(props, id)
	if !ok {
		t.Fatalf("expected property %s", id)
	}
	return p.Value
}

func TestMarginShorthand(t *testing.T) {
	props := parseDecl(t, "margin", "1px 2px 3px")
	if len(props) != 4 {
		t.Fatalf("expected 4 longhands, got %d", len(props))
	}
	if propValue(t, props, PropMarginTop).Number != 1 ||
		propValue(t, props, PropMarginRight).Number != 2 ||
		propValue(t, props, PropMarginBottom).Number != 3 ||
		propValue(t, props, PropMarginLeft).Number != 2 {
		t.Errorf("wrong side distribution: %+v", props)
	}
}

func TestBorderShorthand(t *testing.T) {
	props := parseDecl(t, "border", "1px solid red")
	if len(props) != 12 {
		t.Fatalf("expected 12 longhands, got %d", len(props))
	}
	if !propValue(t, props, PropBorderLeftStyle).IsIdent("solid") {
		t.Error("style not distributed to all sides")
	}
	if propValue(t, props, PropBorderBottomWidth).Number != 1 {
		t.Error("width not distributed to all sides")
	}
}

func TestBorderShorthandPartial(t *testing.T) {
	// Missing components expand to initial.
	props := parseDecl(t, "border", "solid")
	if propValue(t, props, PropBorderTopWidth).Kind != ValueInitial {
		t.Error("missing width should be initial")
	}
	if !propValue(t, props, PropBorderTopStyle).IsIdent("solid") {
		t.Error("style lost")
	}
}

func TestFlexShorthand(t *testing.T) {
	props := parseDecl(t, "flex", "none")
	if propValue(t, props, PropFlexGrow).Number != 0 ||
		propValue(t, props, PropFlexShrink).Number != 0 ||
		!propValue(t, props, PropFlexBasis).IsIdent("auto") {
		t.Errorf("flex none expansion wrong: %+v", props)
	}

	props = parseDecl(t, "flex", "2")
	if propValue(t, props, PropFlexGrow).Number != 2 ||
		propValue(t, props, PropFlexShrink).Number != 1 {
		t.Errorf("flex 2 expansion wrong: %+v", props)
	}
	basis := propValue(t, props, PropFlexBasis)
	if basis.Kind != ValuePercent || basis.Number != 0 {
		t.Errorf("flex 2 basis should be 0%%, got %+v", basis)
	}

	props = parseDecl(t, "flex", "1 0 auto")
	if propValue(t, props, PropFlexShrink).Number != 0 ||
		!propValue(t, props, PropFlexBasis).IsIdent("auto") {
		t.Errorf("flex 1 0 auto expansion wrong: %+v", props)
	}
}

func TestFontShorthand(t *testing.T) {
	props := parseDecl(t, "font", `italic bold 12pt/1.5 "Noto Serif", serif`)
	if !propValue(t, props, PropFontStyle).IsIdent("italic") {
		t.Error("style lost")
	}
	if !propValue(t, props, PropFontWeight).IsIdent("bold") {
		t.Error("weight lost")
	}
	size := propValue(t, props, PropFontSize)
	if size.Kind != ValueLength || size.Number != 12 || size.Unit != UnitPt {
		t.Errorf("size wrong: %+v", size)
	}
	lh := propValue(t, props, PropLineHeight)
	if lh.Kind != ValueNumber || lh.Number != 1.5 {
		t.Errorf("line-height wrong: %+v", lh)
	}
	family := propValue(t, props, PropFontFamily)
	if family.Kind != ValueList || len(family.Items) != 2 {
		t.Errorf("family wrong: %+v", family)
	}
	// Unset shorthand components reset.
	if propValue(t, props, PropFontVariantCaps).Kind != ValueInitial {
		t.Error("variant caps should be initial")
	}
}

func TestFontShorthandRequiresSizeAndFamily(t *testing.T) {
	if props := parseDecl(t, "font", "bold"); len(props) != 0 {
		t.Error("font without size/family must be rejected")
	}
}

func TestListStyleShorthand(t *testing.T) {
	props := parseDecl(t, "list-style", "square inside")
	if propValue(t, props, PropListStyleType).Text != "square" &&
		!propValue(t, props, PropListStyleType).IsIdent("square") {
		t.Errorf("type wrong: %+v", propValue(t, props, PropListStyleType))
	}
	if !propValue(t, props, PropListStylePosition).IsIdent("inside") {
		t.Error("position lost")
	}

	props = parseDecl(t, "list-style", "none")
	if !propValue(t, props, PropListStyleType).IsIdent("none") {
		t.Error("single none should clear the type")
	}
}

func TestBorderRadiusShorthand(t *testing.T) {
	props := parseDecl(t, "border-radius", "1px 2px / 3px")
	tl := propValue(t, props, PropBorderTLRadius)
	if tl.First.Number != 1 || tl.Second.Number != 3 {
		t.Errorf("top-left corner wrong: %+v", tl)
	}
	tr := propValue(t, props, PropBorderTRRadius)
	if tr.First.Number != 2 || tr.Second.Number != 3 {
		t.Errorf("top-right corner wrong: %+v", tr)
	}
}

func TestGapShorthand(t *testing.T) {
	props := parseDecl(t, "gap", "10px 20px")
	if propValue(t, props, PropRowGap).Number != 10 ||
		propValue(t, props, PropColumnGap).Number != 20 {
		t.Errorf("gap wrong: %+v", props)
	}
	props = parseDecl(t, "gap", "5px")
	if propValue(t, props, PropColumnGap).Number != 5 {
		t.Error("single gap should mirror")
	}
}

func TestBackgroundShorthand(t *testing.T) {
	props := parseDecl(t, "background", "red url(bg.png) no-repeat fixed center / cover padding-box")
	if propValue(t, props, PropBackgroundColor).Kind != ValueColor {
		t.Error("color lost")
	}
	if propValue(t, props, PropBackgroundImage).Kind != ValueImage {
		t.Error("image lost")
	}
	if !propValue(t, props, PropBackgroundRepeat).IsIdent("no-repeat") {
		t.Error("repeat lost")
	}
	if !propValue(t, props, PropBackgroundAttach).IsIdent("fixed") {
		t.Error("attachment lost")
	}
	if !propValue(t, props, PropBackgroundSize).IsIdent("cover") {
		t.Error("size lost")
	}
	if !propValue(t, props, PropBackgroundOrigin).IsIdent("padding-box") {
		t.Error("origin lost")
	}
	if !propValue(t, props, PropBackgroundClip).IsIdent("padding-box") {
		t.Error("single box keyword should set clip too")
	}
}

func TestTextDecorationShorthand(t *testing.T) {
	props := parseDecl(t, "text-decoration", "underline wavy red")
	line := propValue(t, props, PropTextDecorationLine)
	if line.Kind != ValueList || !line.Items[0].IsIdent("underline") {
		t.Errorf("line wrong: %+v", line)
	}
	if !propValue(t, props, PropTextDecorationStyle).IsIdent("wavy") {
		t.Error("style lost")
	}
}

func TestFontVariantShorthand(t *testing.T) {
	props := parseDecl(t, "font-variant", "small-caps lining-nums")
	if !propValue(t, props, PropFontVariantCaps).IsIdent("small-caps") {
		t.Error("caps lost")
	}
	numeric := propValue(t, props, PropFontVariantNumeric)
	if numeric.Kind != ValueList || !numeric.Items[0].IsIdent("lining-nums") {
		t.Errorf("numeric wrong: %+v", numeric)
	}
	if props := parseDecl(t, "font-variant", "small-caps small-caps"); len(props) != 0 {
		t.Error("duplicate variant keyword must reject the value")
	}
}

func TestPageBreakAliases(t *testing.T) {
	props := parseDecl(t, "page-break-before", "always")
	if len(props) != 1 || props[0].ID != PropBreakBefore || !props[0].Value.IsIdent("page") {
		t.Errorf("always should translate to page, got %+v", props)
	}
	props = parseDecl(t, "page-break-inside", "avoid")
	if len(props) != 1 || props[0].ID != PropBreakInside {
		t.Errorf("got %+v", props)
	}
}

func TestColumnsShorthand(t *testing.T) {
	props := parseDecl(t, "columns", "12em 3")
	if propValue(t, props, PropColumnWidth).Number != 12 {
		t.Error("width lost")
	}
	if propValue(t, props, PropColumnCount).Int != 3 {
		t.Error("count lost")
	}
}
