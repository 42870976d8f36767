package css

import "testing"

func lexemes(tokens []Token) string {
	var out string
	for _, t := range tokens {
		out += t.Lexeme
	}
	return out
}

func envLookup(env map[string]string) VariableLookup {
	return func(name string) ([]Token, bool) {
		text, ok := env[name]
		if !ok {
			return nil, false
		}
		toks := Tokenize([]byte(text))
		return toks[:len(toks)-1], true
	}
}

func TestSubstituteSimple(t *testing.T) {
	toks := Tokenize([]byte("var(--x)"))
	out, ok := SubstituteVariables(toks[:len(toks)-1], envLookup(map[string]string{"--x": "10px"}), nil)
	if !ok {
		t.Fatal("expected substitution to succeed")
	}
	if lexemes(out) != "10px" {
		t.Errorf("got %q", lexemes(out))
	}
}

func TestSubstituteInsideFunction(t *testing.T) {
	toks := Tokenize([]byte("calc(var(--x) * 2)"))
	out, ok := SubstituteVariables(toks[:len(toks)-1], envLookup(map[string]string{"--x": "10px"}), nil)
	if !ok {
		t.Fatal("expected substitution to succeed")
	}
	s := NewTokenStream(out)
	if !s.Peek().MatchesFunction("calc") {
		t.Fatalf("expected calc function head, got %s", s.Peek().Kind)
	}
	inner := s.ConsumeBlock()
	inner.ConsumeWhitespace()
	if tok := inner.Peek(); tok.Kind != TokenDimension || tok.Value != 10 {
		t.Errorf("expected substituted 10px, got %s %v", tok.Kind, tok.Value)
	}
}

func TestSubstituteFallback(t *testing.T) {
	toks := Tokenize([]byte("var(--missing, 4px)"))
	out, ok := SubstituteVariables(toks[:len(toks)-1], envLookup(nil), nil)
	if !ok {
		t.Fatal("expected fallback to apply")
	}
	if lexemes(out) != "4px" {
		t.Errorf("got %q", lexemes(out))
	}
}

func TestSubstituteMissingWithoutFallback(t *testing.T) {
	toks := Tokenize([]byte("var(--missing)"))
	if _, ok := SubstituteVariables(toks[:len(toks)-1], envLookup(nil), nil); ok {
		t.Error("expected failure for missing variable")
	}
}

func TestSubstituteNested(t *testing.T) {
	env := map[string]string{"--a": "var(--b)", "--b": "3px"}
	toks := Tokenize([]byte("var(--a)"))
	out, ok := SubstituteVariables(toks[:len(toks)-1], envLookup(env), nil)
	if !ok {
		t.Fatal("expected nested substitution to succeed")
	}
	if lexemes(out) != "3px" {
		t.Errorf("got %q", lexemes(out))
	}
}

func TestSubstituteCycleFails(t *testing.T) {
	env := map[string]string{"--a": "var(--b)", "--b": "var(--a)"}
	toks := Tokenize([]byte("var(--a)"))
	if _, ok := SubstituteVariables(toks[:len(toks)-1], envLookup(env), nil); ok {
		t.Error("expected cycle to fail substitution")
	}

	// Self reference is the smallest cycle.
	env = map[string]string{"--a": "var(--a)"}
	if _, ok := SubstituteVariables(toks[:len(toks)-1], envLookup(env), nil); ok {
		t.Error("expected self cycle to fail")
	}
}

func TestSubstituteSiblingUseIsNotACycle(t *testing.T) {
	env := map[string]string{"--a": "1px", "--b": "var(--a) var(--a)"}
	toks := Tokenize([]byte("var(--b)"))
	out, ok := SubstituteVariables(toks[:len(toks)-1], envLookup(env), nil)
	if !ok {
		t.Fatal("repeated sibling references must not trip the cycle guard")
	}
	if lexemes(out) != "1px 1px" {
		t.Errorf("got %q", lexemes(out))
	}
}
