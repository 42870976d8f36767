package css

import (
	"strconv"
	"strings"
	"unicode/utf8"

	parse "github.com/tdewolff/parse/v2"
	tdcss "github.com/tdewolff/parse/v2/css"
)

// Tokenize turns a UTF-8 byte slice into a token vector terminated by a
// synthetic EOF token. Comments are dropped. The underlying lexing is
// done by tdewolff's CSS lexer; this layer reshapes its output into the
// token taxonomy the parsers work with: composite match tokens become
// delimiter pairs, string-form url() becomes a function token followed
// by a string, hash tokens are split into identifier/unrestricted, and
// numeric tokens keep their sign and integer-vs-number form.
func Tokenize(data []byte) []Token {
	lexer := tdcss.NewLexer(parse.NewInputBytes(data))
	tokens := make([]Token, 0, len(data)/4+1)
	for {
		tt, raw := lexer.Next()
		if tt == tdcss.ErrorToken {
			break
		}
		tokens = appendToken(tokens, tt, string(raw))
	}
	return append(tokens, Token{Kind: TokenEOF})
}

func appendToken(tokens []Token, tt tdcss.TokenType, raw string) []Token {
	switch tt {
	case tdcss.CommentToken:
		return tokens
	case tdcss.WhitespaceToken:
		return append(tokens, Token{Kind: TokenWhitespace, Lexeme: raw, Data: " "})
	case tdcss.IdentToken, tdcss.CustomPropertyNameToken:
		return append(tokens, Token{Kind: TokenIdent, Lexeme: raw, Data: decodeName(raw)})
	case tdcss.FunctionToken:
		name := decodeName(strings.TrimSuffix(raw, "("))
		return append(tokens, Token{Kind: TokenFunction, Lexeme: raw, Data: name})
	case tdcss.AtKeywordToken:
		return append(tokens, Token{Kind: TokenAtKeyword, Lexeme: raw, Data: decodeName(raw[1:])})
	case tdcss.HashToken:
		hash := HashUnrestricted
		if startsIdentSequence(raw[1:]) {
			hash = HashIdentifier
		}
		return append(tokens, Token{Kind: TokenHash, Lexeme: raw, Data: decodeName(raw[1:]), Hash: hash})
	case tdcss.StringToken:
		return append(tokens, Token{Kind: TokenString, Lexeme: raw, Data: decodeString(raw)})
	case tdcss.BadStringToken:
		return append(tokens, Token{Kind: TokenBadString, Lexeme: raw})
	case tdcss.URLToken:
		return appendURL(tokens, raw, false)
	case tdcss.BadURLToken:
		return appendURL(tokens, raw, true)
	case tdcss.NumberToken:
		tok := Token{Kind: TokenNumber, Lexeme: raw}
		tok.Value, tok.NumType, tok.HasSign = decodeNumber(raw)
		return append(tokens, tok)
	case tdcss.PercentageToken:
		tok := Token{Kind: TokenPercentage, Lexeme: raw}
		tok.Value, tok.NumType, tok.HasSign = decodeNumber(strings.TrimSuffix(raw, "%"))
		return append(tokens, tok)
	case tdcss.DimensionToken:
		num, unit := splitDimension(raw)
		tok := Token{Kind: TokenDimension, Lexeme: raw, Unit: lowerASCII(decodeName(unit))}
		tok.Value, tok.NumType, tok.HasSign = decodeNumber(num)
		return append(tokens, tok)
	case tdcss.UnicodeRangeToken:
		tok := Token{Kind: TokenUnicodeRange, Lexeme: raw}
		tok.RangeFrom, tok.RangeTo = decodeUnicodeRange(raw)
		return append(tokens, tok)
	case tdcss.CDOToken:
		return append(tokens, Token{Kind: TokenCDO, Lexeme: raw})
	case tdcss.CDCToken:
		return append(tokens, Token{Kind: TokenCDC, Lexeme: raw})
	case tdcss.ColonToken:
		return append(tokens, Token{Kind: TokenColon, Lexeme: raw})
	case tdcss.SemicolonToken:
		return append(tokens, Token{Kind: TokenSemicolon, Lexeme: raw})
	case tdcss.CommaToken:
		return append(tokens, Token{Kind: TokenComma, Lexeme: raw})
	case tdcss.LeftParenthesisToken:
		return append(tokens, Token{Kind: TokenLeftParen, Lexeme: raw})
	case tdcss.RightParenthesisToken:
		return append(tokens, Token{Kind: TokenRightParen, Lexeme: raw})
	case tdcss.LeftBracketToken:
		return append(tokens, Token{Kind: TokenLeftBracket, Lexeme: raw})
	case tdcss.RightBracketToken:
		return append(tokens, Token{Kind: TokenRightBracket, Lexeme: raw})
	case tdcss.LeftBraceToken:
		return append(tokens, Token{Kind: TokenLeftBrace, Lexeme: raw})
	case tdcss.RightBraceToken:
		return append(tokens, Token{Kind: TokenRightBrace, Lexeme: raw})
	case tdcss.IncludeMatchToken, tdcss.DashMatchToken, tdcss.PrefixMatchToken,
		tdcss.SuffixMatchToken, tdcss.SubstringMatchToken, tdcss.ColumnToken:
		// The selector grammar works on single delimiters.
		for _, c := range raw {
			tokens = append(tokens, Token{Kind: TokenDelim, Lexeme: string(c), Delim: c})
		}
		return tokens
	}
	c, _ := utf8.DecodeRuneInString(raw)
	return append(tokens, Token{Kind: TokenDelim, Lexeme: raw, Delim: c})
}

// appendURL reshapes a lexed url(...) token. The string form url("...")
// is kept as a function token followed by a string token and a closing
// parenthesis so downstream grammars see one shape for every quoted
// function argument; the unquoted form stays a single url token.
func appendURL(tokens []Token, raw string, bad bool) []Token {
	body := raw
	if i := strings.IndexByte(body, '('); i >= 0 {
		body = body[i+1:]
	}
	closed := strings.HasSuffix(body, ")")
	body = strings.TrimSuffix(body, ")")
	trimmed := strings.TrimSpace(body)
	if len(trimmed) > 0 && (trimmed[0] == '"' || trimmed[0] == '\'') {
		tokens = append(tokens, Token{Kind: TokenFunction, Lexeme: raw[:strings.IndexByte(raw, '(')+1], Data: "url"})
		tokens = append(tokens, Token{Kind: TokenString, Lexeme: trimmed, Data: decodeString(trimmed)})
		if closed {
			tokens = append(tokens, Token{Kind: TokenRightParen, Lexeme: ")"})
		}
		return tokens
	}
	if bad {
		return append(tokens, Token{Kind: TokenBadURL, Lexeme: raw})
	}
	return append(tokens, Token{Kind: TokenURL, Lexeme: raw, Data: decodeName(trimmed)})
}

func isNameStart(c byte) bool {
	return c == '_' || c >= 0x80 ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isNameChar(c byte) bool {
	return isNameStart(c) || c == '-' || (c >= '0' && c <= '9')
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// startsIdentSequence reports whether s begins a valid identifier
// sequence (name-start code point, escape, or dashes followed by one).
func startsIdentSequence(s string) bool {
	if s == "" {
		return false
	}
	switch {
	case s[0] == '-':
		if len(s) < 2 {
			return false
		}
		return s[1] == '-' || isNameStart(s[1]) || (s[1] == '\\' && len(s) > 2)
	case s[0] == '\\':
		return len(s) > 1 && s[1] != '\n'
	default:
		return isNameStart(s[0])
	}
}

// decodeName resolves backslash escapes in an identifier-like sequence.
// Null, surrogate and out-of-range code points become U+FFFD.
func decodeName(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] != '\\' {
			b.WriteByte(s[i])
			i++
			continue
		}
		i++
		if i >= len(s) {
			b.WriteRune(utf8.RuneError)
			break
		}
		if isHexDigit(s[i]) {
			j := i
			for j < len(s) && j < i+6 && isHexDigit(s[j]) {
				j++
			}
			code, _ := strconv.ParseUint(s[i:j], 16, 32)
			b.WriteRune(sanitizeCodePoint(uint32(code)))
			i = j
			// A single whitespace after a hex escape is part of it.
			if i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r' || s[i] == '\f') {
				if s[i] == '\r' && i+1 < len(s) && s[i+1] == '\n' {
					i++
				}
				i++
			}
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		b.WriteRune(r)
		i += size
	}
	return b.String()
}

// decodeString strips the quotes off a string token lexeme and resolves
// escapes, including escaped-newline continuations.
func decodeString(s string) string {
	if len(s) >= 2 {
		q := s[0]
		if (q == '"' || q == '\'') && s[len(s)-1] == q {
			s = s[1 : len(s)-1]
		} else if q == '"' || q == '\'' {
			s = s[1:]
		}
	}
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] != '\\' {
			b.WriteByte(s[i])
			i++
			continue
		}
		i++
		if i >= len(s) {
			break
		}
		switch {
		case s[i] == '\n':
			i++
		case s[i] == '\r':
			i++
			if i < len(s) && s[i] == '\n' {
				i++
			}
		case s[i] == '\f':
			i++
		case isHexDigit(s[i]):
			j := i
			for j < len(s) && j < i+6 && isHexDigit(s[j]) {
				j++
			}
			code, _ := strconv.ParseUint(s[i:j], 16, 32)
			b.WriteRune(sanitizeCodePoint(uint32(code)))
			i = j
			if i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r' || s[i] == '\f') {
				if s[i] == '\r' && i+1 < len(s) && s[i+1] == '\n' {
					i++
				}
				i++
			}
		default:
			r, size := utf8.DecodeRuneInString(s[i:])
			b.WriteRune(r)
			i += size
		}
	}
	return b.String()
}

func sanitizeCodePoint(code uint32) rune {
	if code == 0 || code > 0x10FFFF || (code >= 0xD800 && code <= 0xDFFF) {
		return utf8.RuneError
	}
	return rune(code)
}

// decodeNumber parses a numeric lexeme keeping its sign and form.
func decodeNumber(s string) (value float64, nt NumberType, signed bool) {
	signed = len(s) > 0 && (s[0] == '+' || s[0] == '-')
	nt = NumberInteger
	if strings.ContainsAny(s, ".eE") {
		nt = NumberNumber
	}
	value, _ = strconv.ParseFloat(s, 64)
	return value, nt, signed
}

// splitDimension separates the numeric part of a dimension lexeme from
// its unit.
func splitDimension(s string) (num, unit string) {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
	}
	// Scientific exponent, only when followed by digits.
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < len(s) && s[j] >= '0' && s[j] <= '9' {
			for j < len(s) && s[j] >= '0' && s[j] <= '9' {
				j++
			}
			i = j
		}
	}
	return s[:i], s[i:]
}

// decodeUnicodeRange parses u+XXXX, u+XXXX-YYYY and u+XX?? forms.
// Question marks map to 0 in the lower bound and F in the upper.
func decodeUnicodeRange(s string) (from, to uint32) {
	if len(s) < 2 {
		return 0, 0
	}
	s = s[2:] // u+
	lo, hi := s, ""
	if i := strings.IndexByte(s, '-'); i >= 0 {
		lo, hi = s[:i], s[i+1:]
	}
	parseBound := func(part string, wildcard byte) uint32 {
		var v uint64
		for i := 0; i < len(part); i++ {
			c := part[i]
			if c == '?' {
				c = wildcard
			}
			d := uint64(0)
			switch {
			case c >= '0' && c <= '9':
				d = uint64(c - '0')
			case c >= 'a' && c <= 'f':
				d = uint64(c-'a') + 10
			case c >= 'A' && c <= 'F':
				d = uint64(c-'A') + 10
			default:
				return uint32(v)
			}
			v = v<<4 | d
		}
		return uint32(v)
	}
	from = parseBound(lo, '0')
	if hi != "" {
		to = parseBound(hi, 'F')
	} else if strings.ContainsRune(lo, '?') {
		to = parseBound(lo, 'F')
	} else {
		to = from
	}
	return from, to
}
