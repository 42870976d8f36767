package css

// Custom property substitution. A declaration whose tokens contain
// var() is re-parsed at cascade time once the custom property
// environment is known; this walk expands every reference, using the
// fallback for missing names and failing on cycles.

// VariableLookup resolves a custom property name to its raw tokens.
type VariableLookup func(name string) ([]Token, bool)

// SubstituteVariables expands every var(--name[, fallback]) group in
// tokens. visited carries the names already being expanded on this
// path; re-entering one is a cycle and fails the whole substitution,
// which drops the owning property.
func SubstituteVariables(tokens []Token, lookup VariableLookup, visited map[string]bool) ([]Token, bool) {
	if visited == nil {
		visited = make(map[string]bool)
	}
	s := NewTokenStream(tokens)
	out := make([]Token, 0, len(tokens))
	ok := substituteStream(s, lookup, visited, &out)
	if !ok {
		return nil, false
	}
	return out, true
}

func substituteStream(s *TokenStream, lookup VariableLookup, visited map[string]bool, out *[]Token) bool {
	for {
		t := s.Peek()
		switch {
		case t.Kind == TokenEOF:
			return true
		case t.MatchesFunction("var"):
			name, fallback, ok := consumeVarFunction(s)
			if !ok {
				return false
			}
			if visited[name] {
				return false
			}
			replacement, found := lookup(name)
			if found {
				visited[name] = true
				ok = substituteStream(NewTokenStream(replacement), lookup, visited, out)
				delete(visited, name)
				if !ok {
					return false
				}
				continue
			}
			if fallback == nil {
				return false
			}
			if !substituteStream(NewTokenStream(fallback), lookup, visited, out) {
				return false
			}
		case isOpenKind(t.Kind):
			// Rebuild the block around the substituted interior.
			open := *s.Consume()
			*out = append(*out, open)
			inner := blockInterior(s, open.Kind)
			if !substituteStream(inner, lookup, visited, out) {
				return false
			}
			*out = append(*out, Token{Kind: closerFor(open.Kind), Lexeme: closerLexeme(open.Kind)})
		default:
			*out = append(*out, *s.Consume())
		}
	}
}

// blockInterior consumes the interior of a block whose opener was
// already consumed, up to and including the matching closer.
func blockInterior(s *TokenStream, open TokenKind) *TokenStream {
	want := closerFor(open)
	start := s.pos
	for {
		t := s.Peek()
		switch {
		case t.Kind == TokenEOF:
			return NewTokenStream(s.tokens[start:s.pos])
		case t.Kind == want:
			inner := s.tokens[start:s.pos]
			s.Consume()
			return NewTokenStream(inner)
		case isOpenKind(t.Kind):
			s.ConsumeBlock()
		default:
			s.Consume()
		}
	}
}

func closerLexeme(open TokenKind) string {
	switch open {
	case TokenLeftParen, TokenFunction:
		return ")"
	case TokenLeftBracket:
		return "]"
	case TokenLeftBrace:
		return "}"
	}
	return ""
}
