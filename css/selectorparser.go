package css

import (
	"strconv"
	"strings"
)

// selectorContext carries the state selector parsing needs: the
// namespace table of the enclosing stylesheet and whether names should
// be folded for an HTML document.
type selectorContext struct {
	defaultNamespace string
	namespaces       map[string]string
	html             bool
}

func (ctx *selectorContext) foldName(name string) string {
	if ctx.html {
		return lowerASCII(name)
	}
	return name
}

// ParseSelectorText parses a standalone selector list, for callers
// outside stylesheet parsing (tests, query tools). html selects HTML
// name folding.
func ParseSelectorText(text string, html bool) ([]Selector, bool) {
	s := NewTokenStream(Tokenize([]byte(text)))
	s.ConsumeWhitespace()
	return parseSelectorList(s, &selectorContext{html: html, namespaces: map[string]string{}})
}

var pseudoClassNames = map[string]MatchType{
	"root":          MatchPseudoClassRoot,
	"scope":         MatchPseudoClassScope,
	"empty":         MatchPseudoClassEmpty,
	"first-child":   MatchPseudoClassFirstChild,
	"last-child":    MatchPseudoClassLastChild,
	"only-child":    MatchPseudoClassOnlyChild,
	"first-of-type": MatchPseudoClassFirstOfType,
	"last-of-type":  MatchPseudoClassLastOfType,
	"only-of-type":  MatchPseudoClassOnlyOfType,
	"link":          MatchPseudoClassLink,
	"any-link":      MatchPseudoClassAnyLink,
	"local-link":    MatchPseudoClassLocalLink,
	"active":        MatchPseudoClassActive,
	"checked":       MatchPseudoClassChecked,
	"disabled":      MatchPseudoClassDisabled,
	"enabled":       MatchPseudoClassEnabled,
	"focus":         MatchPseudoClassFocus,
	"focus-visible": MatchPseudoClassFocusVisible,
	"focus-within":  MatchPseudoClassFocusWithin,
	"hover":         MatchPseudoClassHover,
	"target":        MatchPseudoClassTarget,
	"target-within": MatchPseudoClassTargetWithin,
	"visited":       MatchPseudoClassVisited,
}

var pseudoElementNames = map[string]MatchType{
	"before":       MatchPseudoElementBefore,
	"after":        MatchPseudoElementAfter,
	"marker":       MatchPseudoElementMarker,
	"first-letter": MatchPseudoElementFirstLetter,
	"first-line":   MatchPseudoElementFirstLine,
}

// parseSelectorList parses a comma-separated selector list. One
// malformed selector invalidates the whole list, which drops the rule.
func parseSelectorList(s *TokenStream, ctx *selectorContext) ([]Selector, bool) {
	var list []Selector
	for {
		sel, ok := parseComplexSelector(s, ctx, false)
		if !ok {
			return nil, false
		}
		list = append(list, sel)
		s.ConsumeWhitespace()
		if s.Peek().Kind != TokenComma {
			break
		}
		s.ConsumeIncludingWhitespace()
	}
	if !s.EmptyAfterWhitespace() {
		return nil, false
	}
	return list, true
}

// parseComplexSelector parses compound selectors joined by combinators.
// A leading combinator is accepted only for :has sub-selectors.
func parseComplexSelector(s *TokenStream, ctx *selectorContext, allowLeading bool) (Selector, bool) {
	var sel Selector
	s.ConsumeWhitespace()
	leading := CombinatorNone
	if allowLeading {
		if c, ok := peekCombinator(s); ok {
			leading = c
			s.ConsumeIncludingWhitespace()
		}
	}
	compound, ok := parseCompoundSelector(s, ctx)
	if !ok {
		return nil, false
	}
	sel = append(sel, ComplexUnit{Combinator: leading, Compound: compound})
	for {
		comb, ok := consumeCombinator(s)
		if !ok {
			return sel, true
		}
		compound, ok := parseCompoundSelector(s, ctx)
		if !ok {
			return nil, false
		}
		sel = append(sel, ComplexUnit{Combinator: comb, Compound: compound})
	}
}

func peekCombinator(s *TokenStream) (Combinator, bool) {
	t := s.Peek()
	switch {
	case t.MatchesDelim('>'):
		return CombinatorChild, true
	case t.MatchesDelim('+'):
		return CombinatorDirectAdjacent, true
	case t.MatchesDelim('~'):
		return CombinatorIndirectAdjacent, true
	}
	return CombinatorNone, false
}

// consumeCombinator reads the combinator between two compounds:
// explicit >, + or ~, or whitespace as the descendant combinator. The
// combinator is attached to the compound on its right during matching,
// describing its relation leftward.
func consumeCombinator(s *TokenStream) (Combinator, bool) {
	sawSpace := s.Peek().Kind == TokenWhitespace
	s.ConsumeWhitespace()
	if c, ok := peekCombinator(s); ok {
		s.ConsumeIncludingWhitespace()
		return c, true
	}
	if !sawSpace {
		return CombinatorNone, false
	}
	if startsCompound(s.Peek()) {
		return CombinatorDescendant, true
	}
	return CombinatorNone, false
}

func startsCompound(t *Token) bool {
	switch t.Kind {
	case TokenIdent, TokenHash, TokenColon, TokenLeftBracket:
		return true
	case TokenDelim:
		return t.Delim == '.' || t.Delim == '*' || t.Delim == '|'
	}
	return false
}

// parseCompoundSelector parses a type/universal part followed by any
// number of simple parts.
func parseCompoundSelector(s *TokenStream, ctx *selectorContext) (CompoundSelector, bool) {
	var compound CompoundSelector
	if parts, ok, present := parseTagPart(s, ctx); present {
		if !ok {
			return nil, false
		}
		compound = append(compound, parts...)
	}
	for {
		t := s.Peek()
		switch {
		case t.Kind == TokenHash:
			if t.Hash != HashIdentifier {
				return nil, false
			}
			s.Consume()
			compound = append(compound, SimpleSelector{Match: MatchID, Value: t.Data})
		case t.MatchesDelim('.'):
			s.Consume()
			name := s.Peek()
			if name.Kind != TokenIdent {
				return nil, false
			}
			s.Consume()
			compound = append(compound, SimpleSelector{Match: MatchClass, Value: name.Data})
		case t.Kind == TokenLeftBracket:
			ss, ok := parseAttributeSelector(s, ctx)
			if !ok {
				return nil, false
			}
			compound = append(compound, ss)
		case t.Kind == TokenColon:
			ss, ok := parsePseudoSelector(s, ctx)
			if !ok {
				return nil, false
			}
			compound = append(compound, ss)
		default:
			if len(compound) == 0 {
				return nil, false
			}
			return compound, true
		}
	}
}

// parseTagPart handles name, *, ns|name, ns|*, |name and *|name.
// present reports whether a tag part was attempted at all.
func parseTagPart(s *TokenStream, ctx *selectorContext) (parts []SimpleSelector, ok, present bool) {
	t := s.Peek()
	var prefix string
	hasPrefix := false
	anyNamespace := false

	switch {
	case t.Kind == TokenIdent:
		// Could be a namespace prefix or the tag name itself.
		if s.PeekAt(1).MatchesDelim('|') && !s.PeekAt(2).MatchesDelim('=') {
			prefix = t.Data
			hasPrefix = true
			s.Consume()
			s.Consume()
		}
	case t.MatchesDelim('*'):
		if s.PeekAt(1).MatchesDelim('|') && !s.PeekAt(2).MatchesDelim('=') {
			anyNamespace = true
			hasPrefix = true
			s.Consume()
			s.Consume()
		}
	case t.MatchesDelim('|'):
		hasPrefix = true
		s.Consume()
	default:
	}

	t = s.Peek()
	switch {
	case t.Kind == TokenIdent:
		s.Consume()
		if !hasPrefix {
			if ctx.defaultNamespace != "" {
				parts = append(parts, SimpleSelector{Match: MatchNamespace, Name: ctx.defaultNamespace})
			}
		} else if anyNamespace {
			// any namespace: no constraint
		} else if prefix != "" {
			uri, found := ctx.namespaces[prefix]
			if !found {
				return nil, false, true
			}
			parts = append(parts, SimpleSelector{Match: MatchNamespace, Name: uri})
		} else {
			// |name: no namespace
			parts = append(parts, SimpleSelector{Match: MatchNamespace, Name: ""})
		}
		parts = append(parts, SimpleSelector{Match: MatchTag, Name: ctx.foldName(t.Data)})
		return parts, true, true
	case t.MatchesDelim('*'):
		s.Consume()
		if hasPrefix && !anyNamespace && prefix != "" {
			uri, found := ctx.namespaces[prefix]
			if !found {
				return nil, false, true
			}
			parts = append(parts, SimpleSelector{Match: MatchNamespace, Name: uri})
		}
		parts = append(parts, SimpleSelector{Match: MatchUniversal})
		return parts, true, true
	default:
		if hasPrefix {
			return nil, false, true
		}
		return nil, true, false
	}
}

// parseAttributeSelector parses [name], [name op value] with the
// optional trailing i flag.
func parseAttributeSelector(s *TokenStream, ctx *selectorContext) (SimpleSelector, bool) {
	block := s.ConsumeBlock()
	block.ConsumeWhitespace()
	name := block.Peek()
	if name.Kind != TokenIdent {
		return SimpleSelector{}, false
	}
	block.ConsumeIncludingWhitespace()
	ss := SimpleSelector{Match: MatchAttributeHas, Name: ctx.foldName(name.Data)}
	if block.Empty() {
		return ss, true
	}

	op := block.Peek()
	match := MatchAttributeEquals
	if op.MatchesDelim('=') {
		block.Consume()
	} else {
		switch {
		case op.MatchesDelim('~'):
			match = MatchAttributeIncludes
		case op.MatchesDelim('|'):
			match = MatchAttributeDashEquals
		case op.MatchesDelim('^'):
			match = MatchAttributeStartsWith
		case op.MatchesDelim('$'):
			match = MatchAttributeEndsWith
		case op.MatchesDelim('*'):
			match = MatchAttributeContains
		default:
			return SimpleSelector{}, false
		}
		block.Consume()
		if !block.Peek().MatchesDelim('=') {
			return SimpleSelector{}, false
		}
		block.Consume()
	}
	block.ConsumeWhitespace()

	val := block.Peek()
	if val.Kind != TokenIdent && val.Kind != TokenString {
		return SimpleSelector{}, false
	}
	block.ConsumeIncludingWhitespace()
	ss.Match = match
	ss.Value = val.Data

	if flag := block.Peek(); flag.Kind == TokenIdent {
		switch lowerASCII(flag.Data) {
		case "i":
			ss.CaseInsensitive = true
		case "s":
		default:
			return SimpleSelector{}, false
		}
		block.ConsumeIncludingWhitespace()
	}
	if !block.Empty() {
		return SimpleSelector{}, false
	}
	return ss, true
}

// parsePseudoSelector parses pseudo-classes and pseudo-elements,
// including the legacy one-colon aliases of before/after/marker/
// first-letter/first-line.
func parsePseudoSelector(s *TokenStream, ctx *selectorContext) (SimpleSelector, bool) {
	s.Consume() // colon
	element := false
	if s.Peek().Kind == TokenColon {
		s.Consume()
		element = true
	}
	t := s.Peek()
	switch t.Kind {
	case TokenIdent:
		s.Consume()
		name := lowerASCII(t.Data)
		if mt, ok := pseudoElementNames[name]; ok {
			return SimpleSelector{Match: mt}, true
		}
		if element {
			return SimpleSelector{}, false
		}
		if mt, ok := pseudoClassNames[name]; ok {
			return SimpleSelector{Match: mt}, true
		}
		return SimpleSelector{}, false
	case TokenFunction:
		if element {
			return SimpleSelector{}, false
		}
		name := lowerASCII(t.Data)
		block := s.ConsumeBlock()
		block.ConsumeWhitespace()
		switch name {
		case "is", "not", "where", "has":
			var mt MatchType
			switch name {
			case "is":
				mt = MatchPseudoClassIs
			case "not":
				mt = MatchPseudoClassNot
			case "where":
				mt = MatchPseudoClassWhere
			case "has":
				mt = MatchPseudoClassHas
			}
			sub, ok := parseSubSelectorList(block, ctx, name == "has")
			if !ok {
				return SimpleSelector{}, false
			}
			return SimpleSelector{Match: mt, Sub: sub}, true
		case "lang":
			lang := block.Peek()
			if lang.Kind != TokenIdent {
				return SimpleSelector{}, false
			}
			block.ConsumeIncludingWhitespace()
			if !block.Empty() {
				return SimpleSelector{}, false
			}
			return SimpleSelector{Match: MatchPseudoClassLang, Value: lang.Data}, true
		case "nth-child", "nth-last-child", "nth-of-type", "nth-last-of-type":
			a, b, ok := parseNthPattern(block)
			if !ok || !block.EmptyAfterWhitespace() {
				return SimpleSelector{}, false
			}
			var mt MatchType
			switch name {
			case "nth-child":
				mt = MatchPseudoClassNthChild
			case "nth-last-child":
				mt = MatchPseudoClassNthLastChild
			case "nth-of-type":
				mt = MatchPseudoClassNthOfType
			case "nth-last-of-type":
				mt = MatchPseudoClassNthLastOfType
			}
			return SimpleSelector{Match: mt, A: a, B: b}, true
		}
		return SimpleSelector{}, false
	}
	return SimpleSelector{}, false
}

func parseSubSelectorList(s *TokenStream, ctx *selectorContext, allowLeading bool) ([]Selector, bool) {
	var list []Selector
	for {
		sel, ok := parseComplexSelector(s, ctx, allowLeading)
		if !ok {
			return nil, false
		}
		list = append(list, sel)
		s.ConsumeWhitespace()
		if s.Peek().Kind != TokenComma {
			break
		}
		s.ConsumeIncludingWhitespace()
	}
	if !s.EmptyAfterWhitespace() {
		return nil, false
	}
	return list, true
}

// parseNthPattern parses odd, even, an integer, or the An+B forms as
// they come out of the tokenizer (dimensions with n-units, bare n
// identifiers, signed numbers).
func parseNthPattern(s *TokenStream) (a, b int, ok bool) {
	s.ConsumeWhitespace()
	t := s.Peek()
	switch t.Kind {
	case TokenIdent:
		name := lowerASCII(t.Data)
		switch name {
		case "odd":
			s.ConsumeIncludingWhitespace()
			return 2, 1, true
		case "even":
			s.ConsumeIncludingWhitespace()
			return 2, 0, true
		}
		if an, rest, valid := splitNIdent(name); valid {
			s.ConsumeIncludingWhitespace()
			return finishNth(s, an, rest)
		}
		return 0, 0, false
	case TokenNumber:
		if t.NumType != NumberInteger {
			return 0, 0, false
		}
		s.ConsumeIncludingWhitespace()
		return 0, int(t.Value), true
	case TokenDimension:
		if t.NumType != NumberInteger {
			return 0, 0, false
		}
		unit := lowerASCII(t.Unit)
		if unit == "n" {
			s.ConsumeIncludingWhitespace()
			return finishNth(s, int(t.Value), "")
		}
		if strings.HasPrefix(unit, "n-") {
			rest := unit[1:]
			s.ConsumeIncludingWhitespace()
			return finishNth(s, int(t.Value), rest)
		}
		return 0, 0, false
	case TokenDelim:
		if t.Delim == '+' {
			s.Consume()
			id := s.Peek()
			if id.Kind != TokenIdent {
				return 0, 0, false
			}
			name := lowerASCII(id.Data)
			if an, rest, valid := splitNIdent(name); valid && an == 1 {
				s.ConsumeIncludingWhitespace()
				return finishNth(s, 1, rest)
			}
			return 0, 0, false
		}
	}
	return 0, 0, false
}

// splitNIdent recognizes "n", "-n", "n-<digits>" and "-n-<digits>"
// identifier forms, returning the coefficient sign and any attached
// "-<digits>" suffix.
func splitNIdent(name string) (a int, rest string, ok bool) {
	sign := 1
	if strings.HasPrefix(name, "-") {
		sign = -1
		name = name[1:]
	}
	if name == "n" {
		return sign, "", true
	}
	if strings.HasPrefix(name, "n-") {
		return sign, name[1:], true
	}
	return 0, "", false
}

// finishNth parses the optional B part after the An term. rest carries
// a "-<digits>" suffix glued to the n by the tokenizer.
func finishNth(s *TokenStream, a int, rest string) (int, int, bool) {
	if rest != "" {
		b, err := strconv.Atoi(rest)
		if err != nil {
			return 0, 0, false
		}
		return a, b, true
	}
	s.ConsumeWhitespace()
	t := s.Peek()
	switch {
	case t.MatchesDelim('+') || t.MatchesDelim('-'):
		sign := 1
		if t.Delim == '-' {
			sign = -1
		}
		s.ConsumeIncludingWhitespace()
		num := s.Peek()
		if num.Kind != TokenNumber || num.NumType != NumberInteger || num.HasSign {
			return 0, 0, false
		}
		s.ConsumeIncludingWhitespace()
		return a, sign * int(num.Value), true
	case t.Kind == TokenNumber && t.NumType == NumberInteger && t.HasSign:
		s.ConsumeIncludingWhitespace()
		return a, int(t.Value), true
	}
	return a, 0, true
}

// parsePageSelectorList parses @page preludes: an optional page name
// with :first/:left/:right/:blank and :nth(An+B) pseudo classes.
func parsePageSelectorList(s *TokenStream) ([]PageSelector, bool) {
	var list []PageSelector
	s.ConsumeWhitespace()
	if s.Empty() {
		return []PageSelector{{}}, true
	}
	for {
		var ps PageSelector
		matched := false
		if t := s.Peek(); t.Kind == TokenIdent {
			ps.Name = t.Data
			s.Consume()
			matched = true
		}
		for s.Peek().Kind == TokenColon {
			s.Consume()
			t := s.Peek()
			switch {
			case t.Kind == TokenIdent:
				s.Consume()
				switch lowerASCII(t.Data) {
				case "first":
					ps.Pseudos = append(ps.Pseudos, PseudoFirstPage)
				case "left":
					ps.Pseudos = append(ps.Pseudos, PseudoLeftPage)
				case "right":
					ps.Pseudos = append(ps.Pseudos, PseudoRightPage)
				case "blank":
					ps.Pseudos = append(ps.Pseudos, PseudoBlankPage)
				default:
					return nil, false
				}
				matched = true
			case t.MatchesFunction("nth"):
				block := s.ConsumeBlock()
				a, b, ok := parseNthPattern(block)
				if !ok || !block.EmptyAfterWhitespace() {
					return nil, false
				}
				ps.Nths = append(ps.Nths, [2]int{a, b})
				matched = true
			default:
				return nil, false
			}
		}
		if !matched {
			return nil, false
		}
		list = append(list, ps)
		s.ConsumeWhitespace()
		if s.Peek().Kind != TokenComma {
			break
		}
		s.ConsumeIncludingWhitespace()
	}
	if !s.EmptyAfterWhitespace() {
		return nil, false
	}
	return list, true
}
