package style

import (
	"pcss/css"
	"pcss/dom"
)

// Style is the resolved style of one element or pseudo element.
// Properties absent from the map are at their initial value; accessors
// supply the defaults.
type Style struct {
	props  map[css.PropertyID]*css.Value
	custom map[string][]css.Token

	Font   FontDescription
	Pseudo css.PseudoType
}

// NewDefaultStyle is the style of the imaginary parent of the root
// element.
func NewDefaultStyle() *Style {
	return &Style{
		props:  make(map[css.PropertyID]*css.Value),
		custom: make(map[string][]css.Token),
		Font:   DefaultFontDescription(),
	}
}

// newStyleFrom creates a child style, copying the inherited property
// subset, the custom property environment and the font from the
// parent before the cascade runs.
func newStyleFrom(parent *Style, pseudo css.PseudoType) *Style {
	s := &Style{
		props:  make(map[css.PropertyID]*css.Value),
		custom: make(map[string][]css.Token, len(parent.custom)),
		Font:   parent.Font,
		Pseudo: pseudo,
	}
	for id, v := range parent.props {
		if css.IsInherited(id) {
			s.props[id] = v
		}
	}
	for name, tokens := range parent.custom {
		s.custom[name] = tokens
	}
	return s
}

// Get returns the resolved value of a property, or nil when it is at
// its initial value.
func (s *Style) Get(id css.PropertyID) *css.Value {
	return s.props[id]
}

// CustomProperty returns the raw token list of a custom property.
func (s *Style) CustomProperty(name string) ([]css.Token, bool) {
	tokens, ok := s.custom[name]
	return tokens, ok
}

func (s *Style) set(id css.PropertyID, v *css.Value) {
	s.props[id] = v
}

func (s *Style) reset(id css.PropertyID) {
	delete(s.props, id)
}

// keyword returns the property's keyword value or the given default.
func (s *Style) keyword(id css.PropertyID, deflt string) string {
	if v := s.props[id]; v != nil && v.Kind == css.ValueIdent {
		return v.Ident
	}
	return deflt
}

// Display returns the display keyword; the initial value is inline.
func (s *Style) Display() string { return s.keyword(css.PropDisplay, "inline") }

// Position returns the position keyword.
func (s *Style) Position() string { return s.keyword(css.PropPosition, "static") }

// Float returns the float keyword.
func (s *Style) Float() string { return s.keyword(css.PropFloat, "none") }

// Visibility returns the visibility keyword.
func (s *Style) Visibility() string { return s.keyword(css.PropVisibility, "visible") }

// ListStyleType returns the list style name; the initial value is
// disc.
func (s *Style) ListStyleType() string {
	if v := s.props[css.PropListStyleType]; v != nil {
		switch v.Kind {
		case css.ValueIdent:
			return v.Ident
		case css.ValueCustomIdent:
			return v.Text
		}
	}
	return "disc"
}

// FontSize returns the used font size in pixels.
func (s *Style) FontSize() float64 { return s.Font.Size }

// Color returns the used color; the initial value is black.
func (s *Style) Color() css.RGBA {
	if v := s.props[css.PropColor]; v != nil && v.Kind == css.ValueColor {
		return v.ColorOf()
	}
	return css.RGBA{A: 255}
}

// Length returns a resolved length property in pixels.
func (s *Style) Length(id css.PropertyID) (float64, bool) {
	v := s.props[id]
	if v == nil || v.Kind != css.ValueLength {
		return 0, false
	}
	return v.Number, true
}

// IsFloating reports whether the element generates a float.
func (s *Style) IsFloating() bool { return s.Float() != "none" }

// IsPositioned reports whether the element is absolutely or relatively
// positioned.
func (s *Style) IsPositioned() bool { return s.Position() != "static" }

// IsDisplayFlex reports whether children lay out as flex items.
func (s *Style) IsDisplayFlex() bool {
	d := s.Display()
	return d == "flex" || d == "inline-flex"
}

// propertyData is one cascade entry: a declaration plus its sort keys.
type propertyData struct {
	css.Property
	specificity uint32
	position    uint32
}

// lessThan orders entries by the precedence tuple: origin+importance,
// then specificity, then declaration position.
func (d propertyData) lessThan(other propertyData) bool {
	if p, q := d.Precedence(), other.Precedence(); p != q {
		return p < q
	}
	if d.specificity != other.specificity {
		return d.specificity < other.specificity
	}
	return d.position < other.position
}

// styleBuilder collects matching declarations and collapses them per
// property by the precedence tuple.
type styleBuilder struct {
	engine  *Engine
	parent  *Style
	pseudo  css.PseudoType
	entries map[css.PropertyID]propertyData
}

func newStyleBuilder(e *Engine, parent *Style, pseudo css.PseudoType) *styleBuilder {
	if parent == nil {
		parent = NewDefaultStyle()
	}
	return &styleBuilder{
		engine:  e,
		parent:  parent,
		pseudo:  pseudo,
		entries: make(map[css.PropertyID]propertyData),
	}
}

func (b *styleBuilder) merge(specificity, position uint32, props []css.Property) {
	for _, p := range props {
		data := propertyData{Property: p, specificity: specificity, position: position}
		existing, ok := b.entries[p.ID]
		if !ok || !data.lessThan(existing) {
			b.entries[p.ID] = data
		}
	}
}

func (b *styleBuilder) empty() bool { return len(b.entries) == 0 }

// fontValue extracts a font property's cascaded value for the
// description builder: wide keywords and unresolved references defer
// to the parent, initial resets to the document default.
func (b *styleBuilder) fontValue(id css.PropertyID) *css.Value {
	data, ok := b.entries[id]
	if !ok {
		return nil
	}
	switch data.Value.Kind {
	case css.ValueInherit, css.ValueUnset, css.ValueVariableReference:
		return nil
	case css.ValueInitial:
		return initialFontValue(id)
	}
	return data.Value
}

func initialFontValue(id css.PropertyID) *css.Value {
	switch id {
	case css.PropFontFamily:
		return css.List([]*css.Value{css.CustomIdent("serif")})
	case css.PropFontSize:
		return css.Ident("medium")
	default:
		return css.Ident("normal")
	}
}

// fontSkipList holds the properties consumed by the font description;
// they are not stored in the property map.
var fontSkipList = map[css.PropertyID]bool{
	css.PropFontFamily:            true,
	css.PropFontSize:              true,
	css.PropFontWeight:            true,
	css.PropFontStretch:           true,
	css.PropFontStyle:             true,
	css.PropFontVariationSettings: true,
}

// build runs the final phase of the cascade: custom property
// publication, variable resolution, font construction, and value
// application with wide-keyword and length handling.
func (b *styleBuilder) build() *Style {
	s := newStyleFrom(b.parent, b.pseudo)

	// Publish custom properties first so var() resolution sees the
	// complete environment of this element.
	for id, data := range b.entries {
		if data.Value.Kind == css.ValueCustomProperty {
			s.custom[string(id)] = data.Value.Tokens
		}
	}

	// Resolve deferred declarations against the environment; resolved
	// longhands re-enter the cascade with their original keys.
	var deferred []propertyData
	for _, data := range b.entries {
		if data.Value.Kind == css.ValueVariableReference {
			deferred = append(deferred, data)
		}
	}
	lookup := func(name string) ([]css.Token, bool) {
		tokens, ok := s.custom[name]
		return tokens, ok
	}
	for _, data := range deferred {
		ref := data.Value.VarRef
		tokens, ok := css.SubstituteVariables(ref.Tokens, lookup, nil)
		if !ok {
			b.engine.log.Debug("Dropping declaration with failed variable substitution")
			continue
		}
		props, ok := b.engine.reparse(ref.Property, tokens)
		if !ok {
			continue
		}
		for i := range props {
			props[i].Origin = data.Origin
			props[i].Important = ref.Important
		}
		b.merge(data.specificity, data.position, props)
	}

	// Inherited font properties that no declaration touched still feed
	// the description through the parent's resolved values.
	fontGet := func(id css.PropertyID) *css.Value {
		if v := b.fontValue(id); v != nil {
			return v
		}
		if css.IsInherited(id) {
			return b.parent.Get(id)
		}
		return nil
	}
	s.Font = buildFontDescription(b.parent.Font, fontGet,
		b.engine.rootFontSize(), b.engine.opts.Viewport)

	resolver := LengthResolver{
		Font:         &s.Font,
		RootFontSize: b.engine.rootFontSize(),
		Viewport:     b.engine.opts.Viewport,
	}
	for id, data := range b.entries {
		if fontSkipList[id] {
			continue
		}
		v := data.Value
		switch v.Kind {
		case css.ValueCustomProperty, css.ValueVariableReference, css.ValueUnset:
			// Unset resolves through the inheritance copy already done.
			continue
		case css.ValueInitial:
			s.reset(id)
			continue
		case css.ValueInherit:
			if pv := b.parent.Get(id); pv != nil {
				s.set(id, pv)
			} else {
				s.reset(id)
			}
			continue
		case css.ValueLength, css.ValueCalc:
			v = resolver.ResolveValue(v)
		}
		s.set(id, v)
	}
	return s
}

// styleForElement assembles the style of an element or one of its
// pseudo elements.
func (e *Engine) styleForElement(el dom.Element, pseudo css.PseudoType, parent *Style) *Style {
	e.prepare()
	b := newStyleBuilder(e, parent, pseudo)

	for _, data := range e.candidateRules(el, pseudo) {
		if MatchSelector(el, pseudo, data.Selector) {
			b.merge(data.Specificity, data.Position, data.Rule.Properties)
		}
	}

	if pseudo == css.PseudoNone {
		if text := el.PresentationStyle(); text != "" {
			b.merge(0, 0, e.parsePresentation(text, el.IsSVG()))
		}
		if text := el.InlineStyle(); text != "" {
			b.merge(0, 0, e.parseInline(text, el.IsSVG()))
		}
	}

	isRoot := el.Parent() == nil
	parentStyle := b.parent

	if b.empty() {
		switch {
		case pseudo == css.PseudoNone:
			s := newStyleFrom(parentStyle, pseudo)
			if isRoot || parentStyle.IsDisplayFlex() {
				s.set(css.PropDisplay, css.Ident("block"))
			}
			e.noteRootStyle(isRoot, s)
			return s
		case pseudo == css.PseudoMarker:
			return newStyleFrom(parentStyle, pseudo)
		default:
			return nil
		}
	}

	s := b.build()
	e.noteRootStyle(isRoot && pseudo == css.PseudoNone, s)
	if s.Display() == "none" {
		return s
	}

	if s.Position() == "static" && !parentStyle.IsDisplayFlex() {
		s.reset(css.PropZIndex)
	}

	if pseudo == css.PseudoFirstLetter {
		s.set(css.PropPosition, css.Ident("static"))
		if s.IsFloating() {
			s.set(css.PropDisplay, css.Ident("block"))
		} else {
			s.set(css.PropDisplay, css.Ident("inline"))
		}
	}

	if s.IsFloating() || s.IsPositioned() || isRoot || parentStyle.IsDisplayFlex() {
		switch s.Display() {
		case "inline", "inline-block":
			s.set(css.PropDisplay, css.Ident("block"))
		case "inline-table":
			s.set(css.PropDisplay, css.Ident("table"))
		case "inline-flex":
			s.set(css.PropDisplay, css.Ident("flex"))
		case "table-caption", "table-cell", "table-column", "table-column-group",
			"table-footer-group", "table-header-group", "table-row", "table-row-group":
			s.set(css.PropDisplay, css.Ident("block"))
		}
	}

	if s.IsPositioned() || parentStyle.IsDisplayFlex() {
		s.set(css.PropFloat, css.Ident("none"))
	}
	return s
}

// candidateRules queries the index buckets an element can appear in.
func (e *Engine) candidateRules(el dom.Element, pseudo css.PseudoType) []RuleData {
	var out []RuleData
	ix := e.index
	if pseudo != css.PseudoNone {
		return ix.pseudo
	}
	if id := el.ID(); id != "" {
		out = append(out, ix.id[id]...)
	}
	for _, class := range el.ClassNames() {
		out = append(out, ix.class[class]...)
	}
	for name := range ix.attribute {
		if _, ok := el.FindAttribute(name, !el.IsCaseSensitive()); ok {
			out = append(out, ix.attribute[name]...)
		}
	}
	out = append(out, ix.tag[el.TagName()]...)
	out = append(out, ix.universal...)
	return out
}
