package css

import (
	"go.uber.org/zap"
)

// ParserContext fixes the interpretation of a stylesheet: where its
// declarations rank in the cascade, the base URL imports resolve
// against, and whether selector names fold for an HTML document.
type ParserContext struct {
	Origin  Origin
	BaseURL string
	HTML    bool
}

// Parser parses CSS text into rules. A parser carries the namespace
// table accumulated from @namespace rules, so one instance parses one
// stylesheet.
type Parser struct {
	log *zap.Logger
	ctx ParserContext

	defaultNamespace string
	namespaces       map[string]string
}

// NewParser creates a stylesheet parser.
func NewParser(ctx ParserContext, log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{
		log:        log.Named("css-parser"),
		ctx:        ctx,
		namespaces: make(map[string]string),
	}
}

func (p *Parser) selectorContext() *selectorContext {
	return &selectorContext{
		defaultNamespace: p.defaultNamespace,
		namespaces:       p.namespaces,
		html:             p.ctx.HTML,
	}
}

// ParseSheet parses a whole stylesheet. Parsing never fails: malformed
// constructs are dropped and their neighbors survive.
func (p *Parser) ParseSheet(data []byte) []Rule {
	s := NewTokenStream(Tokenize(data))
	return p.parseRuleList(s, true)
}

func (p *Parser) parseRuleList(s *TokenStream, topLevel bool) []Rule {
	var rules []Rule
	for {
		t := s.Peek()
		switch t.Kind {
		case TokenEOF:
			return rules
		case TokenWhitespace:
			s.Consume()
		case TokenCDO, TokenCDC:
			if !topLevel {
				p.skipQualifiedRule(s)
			} else {
				s.Consume()
			}
		case TokenAtKeyword:
			if r, ok := p.parseAtRule(s); ok {
				rules = append(rules, r)
			}
		default:
			if r, ok := p.parseQualifiedRule(s); ok {
				rules = append(rules, r)
			}
		}
	}
}

// skipQualifiedRule drops everything up to and including the next
// top-level block or semicolon-free EOF.
func (p *Parser) skipQualifiedRule(s *TokenStream) {
	for {
		t := s.Peek()
		switch t.Kind {
		case TokenEOF:
			return
		case TokenLeftBrace:
			s.ConsumeBlock()
			return
		default:
			s.ConsumeComponent()
		}
	}
}

// preludeUntilBlock collects the prelude of a rule: everything before
// the opening brace or terminating semicolon.
func (p *Parser) preludeUntilBlock(s *TokenStream) (prelude *TokenStream, block *TokenStream, hadBlock bool) {
	start := s.pos
	for {
		t := s.Peek()
		switch t.Kind {
		case TokenEOF:
			return NewTokenStream(s.tokens[start:s.pos]), nil, false
		case TokenSemicolon:
			pre := s.tokens[start:s.pos]
			s.Consume()
			return NewTokenStream(pre), nil, false
		case TokenLeftBrace:
			pre := s.tokens[start:s.pos]
			return NewTokenStream(pre), s.ConsumeBlock(), true
		default:
			s.ConsumeComponent()
		}
	}
}

func (p *Parser) parseQualifiedRule(s *TokenStream) (Rule, bool) {
	prelude, block, hadBlock := p.preludeUntilBlock(s)
	if !hadBlock {
		p.log.Debug("Dropping rule without block")
		return Rule{}, false
	}
	prelude.ConsumeWhitespace()
	selectors, ok := parseSelectorList(prelude, p.selectorContext())
	if !ok {
		p.log.Debug("Dropping rule with malformed selector list")
		return Rule{}, false
	}
	props := p.parseDeclarations(block, blockStyle)
	return Rule{Style: &StyleRule{Selectors: selectors, Properties: props}}, true
}

func (p *Parser) parseAtRule(s *TokenStream) (Rule, bool) {
	name := lowerASCII(s.Consume().Data)
	prelude, block, hadBlock := p.preludeUntilBlock(s)
	prelude.ConsumeWhitespace()

	switch name {
	case "import":
		if hadBlock {
			return Rule{}, false
		}
		return p.parseImportRule(prelude)
	case "namespace":
		if hadBlock {
			return Rule{}, false
		}
		return p.parseNamespaceRule(prelude)
	case "media":
		if !hadBlock {
			return Rule{}, false
		}
		queries := parseMediaQueryList(prelude)
		rules := p.parseRuleList(block, false)
		return Rule{Media: &MediaRule{Queries: queries, Rules: rules}}, true
	case "font-face":
		if !hadBlock {
			return Rule{}, false
		}
		props := p.parseDeclarations(block, blockFontFace)
		return Rule{FontFace: &FontFaceRule{Properties: props}}, true
	case "counter-style":
		if !hadBlock {
			return Rule{}, false
		}
		nameTok := prelude.Peek()
		if nameTok.Kind != TokenIdent || !prelude.PeekIsLastMeaningful() {
			p.log.Debug("Dropping @counter-style with malformed name")
			return Rule{}, false
		}
		styleName := nameTok.Data
		if equalIgnoreCase(styleName, "none") {
			p.log.Debug("Dropping @counter-style named none")
			return Rule{}, false
		}
		props := p.parseDeclarations(block, blockCounterStyle)
		return Rule{CounterStyle: &CounterStyleRule{Name: styleName, Properties: props}}, true
	case "page":
		if !hadBlock {
			return Rule{}, false
		}
		selectors, ok := parsePageSelectorList(prelude)
		if !ok {
			p.log.Debug("Dropping @page with malformed selector")
			return Rule{}, false
		}
		page := &PageRule{Selectors: selectors}
		p.parsePageBlock(block, page)
		return Rule{Page: page}, true
	default:
		p.log.Debug("Skipping unknown at-rule", zap.String("rule", "@"+name))
		return Rule{}, false
	}
}

// PeekIsLastMeaningful reports whether the current token is the last
// non-whitespace one in the stream.
func (s *TokenStream) PeekIsLastMeaningful() bool {
	if s.Peek().Kind == TokenEOF {
		return false
	}
	for i := 1; ; i++ {
		t := s.PeekAt(i)
		if t.Kind == TokenWhitespace {
			continue
		}
		return t.Kind == TokenEOF
	}
}

func (p *Parser) parseImportRule(prelude *TokenStream) (Rule, bool) {
	var href string
	if u, ok := consumeURLText(prelude); ok {
		href = u
	} else if str := prelude.Peek(); str.Kind == TokenString {
		href = str.Data
		prelude.ConsumeIncludingWhitespace()
	} else {
		p.log.Debug("Dropping @import without url")
		return Rule{}, false
	}
	media := parseMediaQueryList(prelude)
	return Rule{Import: &ImportRule{Origin: p.ctx.Origin, Href: href, Media: media}}, true
}

func (p *Parser) parseNamespaceRule(prelude *TokenStream) (Rule, bool) {
	prefix := ""
	if t := prelude.Peek(); t.Kind == TokenIdent {
		prefix = t.Data
		prelude.ConsumeIncludingWhitespace()
	}
	var uri string
	if u, ok := consumeURLText(prelude); ok {
		uri = u
	} else if str := prelude.Peek(); str.Kind == TokenString {
		uri = str.Data
		prelude.ConsumeIncludingWhitespace()
	} else {
		return Rule{}, false
	}
	if !prelude.EmptyAfterWhitespace() {
		return Rule{}, false
	}
	if prefix == "" {
		p.defaultNamespace = uri
	} else {
		p.namespaces[prefix] = uri
	}
	return Rule{Namespace: &NamespaceRule{Prefix: prefix, URI: uri}}, true
}

// parsePageBlock parses declarations interleaved with margin box
// at-rules.
func (p *Parser) parsePageBlock(block *TokenStream, page *PageRule) {
	for {
		t := block.Peek()
		switch t.Kind {
		case TokenEOF:
			return
		case TokenWhitespace, TokenSemicolon:
			block.Consume()
		case TokenAtKeyword:
			name := lowerASCII(t.Data)
			block.Consume()
			_, marginBlock, hadBlock := p.preludeUntilBlock(block)
			mt, known := PageMarginTypeByName(name)
			if !hadBlock || !known {
				p.log.Debug("Dropping page margin rule", zap.String("rule", "@"+name))
				continue
			}
			props := p.parseDeclarations(marginBlock, blockStyle)
			page.Margins = append(page.Margins, PageMarginRule{Margin: mt, Properties: props})
		default:
			if prop, ok := p.parseOneDeclaration(block, blockStyle, &valueParser{}); ok {
				page.Properties = append(page.Properties, prop...)
			}
		}
	}
}

// blockKind restricts which declarations a block accepts.
type blockKind uint8

const (
	blockStyle blockKind = iota
	blockFontFace
	blockCounterStyle
)

var fontFaceDescriptors = map[PropertyID]bool{
	PropFontFamily:            true,
	PropSrc:                   true,
	PropFontStyle:             true,
	PropFontWeight:            true,
	PropFontStretch:           true,
	PropUnicodeRange:          true,
	PropFontFeatureSettings:   true,
	PropFontVariationSettings: true,
}

var counterStyleDescriptors = map[PropertyID]bool{
	PropSystem:          true,
	PropNegative:        true,
	PropPrefix:          true,
	PropSuffix:          true,
	PropRange:           true,
	PropPad:             true,
	PropFallback:        true,
	PropSymbols:         true,
	PropAdditiveSymbols: true,
}

// parseDeclarations parses a declaration list out of a block stream.
func (p *Parser) parseDeclarations(block *TokenStream, kind blockKind) []Property {
	return p.parseDeclarationsWith(block, kind, &valueParser{})
}

func (p *Parser) parseDeclarationsWith(block *TokenStream, kind blockKind, vp *valueParser) []Property {
	var props []Property
	for {
		t := block.Peek()
		switch t.Kind {
		case TokenEOF:
			return props
		case TokenWhitespace, TokenSemicolon:
			block.Consume()
		default:
			if prop, ok := p.parseOneDeclaration(block, kind, vp); ok {
				props = append(props, prop...)
			}
		}
	}
}

// parseOneDeclaration parses ident : value [!important] up to the next
// semicolon. On any grammar violation the declaration alone is dropped.
func (p *Parser) parseOneDeclaration(block *TokenStream, kind blockKind, vp *valueParser) ([]Property, bool) {
	nameTok := block.Peek()
	if nameTok.Kind != TokenIdent {
		p.skipToSemicolon(block)
		return nil, false
	}
	block.ConsumeIncludingWhitespace()
	if block.Peek().Kind != TokenColon {
		p.log.Debug("Dropping declaration without colon", zap.String("property", nameTok.Data))
		p.skipToSemicolon(block)
		return nil, false
	}
	block.ConsumeIncludingWhitespace()

	value := p.collectDeclarationValue(block)
	important := trimImportantFlag(&value)

	name := nameTok.Data
	if IsCustomPropertyName(name) {
		if kind != blockStyle {
			return nil, false
		}
		return []Property{{
			ID:        PropertyID(name),
			Origin:    p.ctx.Origin,
			Important: important,
			Value:     &Value{Kind: ValueCustomProperty, Text: name, Tokens: value},
		}}, true
	}

	id := PropertyID(lowerASCII(name))
	if important && kind != blockStyle {
		p.log.Debug("Dropping important declaration in descriptor block", zap.String("property", string(id)))
		return nil, false
	}
	switch kind {
	case blockFontFace:
		if !fontFaceDescriptors[id] {
			return nil, false
		}
	case blockCounterStyle:
		if !counterStyleDescriptors[id] {
			return nil, false
		}
	default:
		if !IsKnownProperty(id) {
			p.log.Debug("Dropping unknown property", zap.String("property", string(id)))
			return nil, false
		}
	}

	if kind == blockStyle && containsVarReference(value) {
		return []Property{{
			ID:        id,
			Origin:    p.ctx.Origin,
			Important: important,
			Value: &Value{Kind: ValueVariableReference, VarRef: &VariableReference{
				Property:  id,
				Important: important,
				Tokens:    value,
			}},
		}}, true
	}

	props, ok := p.parseDeclarationValue(id, value, vp)
	if !ok {
		p.log.Debug("Dropping malformed declaration", zap.String("property", string(id)))
		return nil, false
	}
	for i := range props {
		props[i].Origin = p.ctx.Origin
		props[i].Important = important
	}
	return props, true
}

// parseDeclarationValue parses a known property's value tokens into one
// or more longhand properties.
func (p *Parser) parseDeclarationValue(id PropertyID, value []Token, vp *valueParser) ([]Property, bool) {
	s := NewTokenStream(value)
	s.ConsumeWhitespace()
	if s.Empty() {
		return nil, false
	}

	// Wide keywords apply to every property and fan out over shorthands.
	if t := s.Peek(); t.Kind == TokenIdent && s.PeekIsLastMeaningful() {
		var wide *Value
		switch lowerASCII(t.Data) {
		case "initial":
			wide = Initial()
		case "inherit":
			wide = Inherit()
		case "unset":
			wide = Unset()
		}
		if wide != nil {
			if longhands := ShorthandLonghands(id); longhands != nil {
				props := make([]Property, 0, len(longhands))
				for _, lh := range longhands {
					props = append(props, Property{ID: lh, Value: wide})
				}
				return props, true
			}
			return []Property{{ID: id, Value: wide}}, true
		}
	}

	if IsShorthand(id) {
		props := vp.parseShorthand(id, s)
		if props == nil || !s.EmptyAfterWhitespace() {
			return nil, false
		}
		return props, true
	}

	v := vp.parseLonghand(id, s)
	if v == nil || !s.EmptyAfterWhitespace() {
		return nil, false
	}
	return []Property{{ID: id, Value: v}}, true
}

// collectDeclarationValue gathers the value tokens up to the
// terminating semicolon at the current nesting level.
func (p *Parser) collectDeclarationValue(block *TokenStream) []Token {
	start := block.pos
	for {
		t := block.Peek()
		if t.Kind == TokenEOF || t.Kind == TokenSemicolon {
			break
		}
		block.ConsumeComponent()
	}
	value := block.tokens[start:block.pos]
	if block.Peek().Kind == TokenSemicolon {
		block.Consume()
	}
	return value
}

func (p *Parser) skipToSemicolon(block *TokenStream) {
	for {
		t := block.Peek()
		if t.Kind == TokenEOF {
			return
		}
		if t.Kind == TokenSemicolon {
			block.Consume()
			return
		}
		block.ConsumeComponent()
	}
}

// trimImportantFlag strips a trailing "! important" from the value
// tokens, reporting whether it was present.
func trimImportantFlag(value *[]Token) bool {
	toks := *value
	end := len(toks)
	for end > 0 && toks[end-1].Kind == TokenWhitespace {
		end--
	}
	if end < 2 || toks[end-1].Kind != TokenIdent || !equalIgnoreCase(toks[end-1].Data, "important") {
		return false
	}
	i := end - 2
	for i >= 0 && toks[i].Kind == TokenWhitespace {
		i--
	}
	if i < 0 || !toks[i].MatchesDelim('!') {
		return false
	}
	*value = toks[:i]
	return true
}

// ParseStyleAttribute parses an inline style="" attribute into
// inline-origin declarations. svg enables unitless lengths.
func (p *Parser) ParseStyleAttribute(text string, svg bool) []Property {
	block := NewTokenStream(Tokenize([]byte(text)))
	saved := p.ctx.Origin
	p.ctx.Origin = OriginInline
	defer func() { p.ctx.Origin = saved }()
	return p.parseDeclarationsWith(block, blockStyle, &valueParser{unitless: svg})
}

// ParsePresentationAttributes parses attribute-derived declarations at
// presentation origin.
func (p *Parser) ParsePresentationAttributes(text string, svg bool) []Property {
	block := NewTokenStream(Tokenize([]byte(text)))
	saved := p.ctx.Origin
	p.ctx.Origin = OriginPresentation
	defer func() { p.ctx.Origin = saved }()
	return p.parseDeclarationsWith(block, blockStyle, &valueParser{unitless: svg})
}

// ReparseDeclaration re-parses a property's value tokens, used after
// variable substitution produced a concrete token list.
func (p *Parser) ReparseDeclaration(id PropertyID, value []Token) ([]Property, bool) {
	props, ok := p.parseDeclarationValue(id, value, &valueParser{})
	if !ok {
		return nil, false
	}
	for i := range props {
		props[i].Origin = p.ctx.Origin
	}
	return props, true
}
