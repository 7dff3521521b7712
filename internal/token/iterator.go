package token

// Iterator is a pull-based, single-pass sequence of tokens.
// Next returns false once the sequence is exhausted and keeps returning false.
type Iterator interface {
	Next() (Token, bool)
}

// Collect drains it into a slice.
func Collect(it Iterator) []Token {
	var tokens []Token
	for {
		tok, ok := it.Next()
		if !ok {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

// FromSlice returns an Iterator over tokens.
func FromSlice(tokens []Token) Iterator {
	return &sliceIter{tokens: tokens}
}

type sliceIter struct {
	tokens []Token
	pos    int
}

func (s *sliceIter) Next() (Token, bool) {
	if s.pos >= len(s.tokens) {
		return Token{}, false
	}
	tok := s.tokens[s.pos]
	s.pos++
	return tok, true
}
