package css

import "testing"

func stream(input string) *TokenStream {
	return NewTokenStream(Tokenize([]byte(input)))
}

func TestStreamPeekPastEOF(t *testing.T) {
	s := stream("a")
	s.Consume()
	for i := 0; i < 3; i++ {
		if !s.Peek().IsEOF() {
			t.Fatalf("expected stable EOF at read %d", i)
		}
		s.Consume()
	}
}

func TestConsumeBlockBalance(t *testing.T) {
	tests := []struct {
		input string
		next  TokenKind // token right after the block in the outer stream
	}{
		{"( a [ b ] c ) x", TokenIdent},
		{"[ ( { } ) ] x", TokenIdent},
		{"( unterminated", TokenEOF},
		{"( a ) )", TokenWhitespace},
	}
	for _, tc := range tests {
		s := stream(tc.input)
		s.ConsumeBlock()
		s2 := s.Peek()
		if tc.next == TokenIdent {
			s.ConsumeWhitespace()
			s2 = s.Peek()
		}
		if s2.Kind != tc.next {
			t.Errorf("%q: expected %s after block, got %s", tc.input, tc.next, s2.Kind)
		}
	}
}

func TestConsumeBlockInterior(t *testing.T) {
	s := stream("func(a, b) tail")
	inner := s.ConsumeBlock()
	var idents []string
	for !inner.Empty() {
		tok := inner.Consume()
		if tok.Kind == TokenIdent {
			idents = append(idents, tok.Data)
		}
	}
	if len(idents) != 2 || idents[0] != "a" || idents[1] != "b" {
		t.Errorf("expected interior idents [a b], got %v", idents)
	}
	s.ConsumeWhitespace()
	if tok := s.Peek(); tok.Kind != TokenIdent || tok.Data != "tail" {
		t.Errorf("outer stream not positioned past block: %s %q", tok.Kind, tok.Data)
	}
}

func TestConsumeComponentSkipsBlocks(t *testing.T) {
	s := stream("rgb(1,2,3) next")
	s.ConsumeComponent()
	s.ConsumeWhitespace()
	if tok := s.Peek(); tok.Kind != TokenIdent || tok.Data != "next" {
		t.Errorf("expected cursor on 'next', got %s %q", tok.Kind, tok.Data)
	}
}

func TestMarkRestore(t *testing.T) {
	s := stream("a b c")
	m := s.Mark()
	s.Consume()
	s.Consume()
	m.Restore()
	if tok := s.Peek(); tok.Data != "a" {
		t.Errorf("expected restore to rewind to 'a', got %q", tok.Data)
	}

	m = s.Mark()
	s.Consume()
	m.Release()
	m.Restore()
	if tok := s.Peek(); tok.Kind != TokenWhitespace {
		t.Errorf("expected released mark to keep position, got %s", tok.Kind)
	}
}

func TestConsumeCommaIncludingWhitespace(t *testing.T) {
	s := stream("a , b")
	s.Consume()
	if !s.ConsumeCommaIncludingWhitespace() {
		t.Fatal("expected comma to be consumed")
	}
	if tok := s.Peek(); tok.Data != "b" {
		t.Errorf("expected cursor on 'b', got %q", tok.Data)
	}
	if s.ConsumeCommaIncludingWhitespace() {
		t.Error("expected no second comma")
	}
}
