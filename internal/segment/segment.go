// Package segment splits text into unclassified tokens.
//
// Segmenters only decide boundaries: they never lowercase, normalize or
// drop text, so concatenating the lemmas of every token reproduces the input
// byte for byte. Each call to Segment returns a fresh lazy iterator that
// produces one token per Next call.
package segment

import (
	"unicode/utf8"

	"GoTokenize/internal/token"
)

// Segmenter splits text into a pull-based sequence of tokens.
// Implementations MUST be safe for concurrent use across texts.
type Segmenter interface {
	Segment(text string) token.Iterator
}

// cursor tracks the byte and character position of a scan over text.
type cursor struct {
	text string
	pos  int
	char int
}

// emit returns the token spanning from the cursor to end and advances past it.
func (c *cursor) emit(end int) token.Token {
	tok := token.Token{
		Lemma:     c.text[c.pos:end],
		ByteStart: c.pos,
		ByteEnd:   end,
		CharStart: c.char,
	}
	c.char += utf8.RuneCountInString(tok.Lemma)
	tok.CharEnd = c.char
	c.pos = end
	return tok
}

// scan returns the end of the run starting at from whose runes satisfy keep.
func (c *cursor) scan(from int, keep func(rune) bool) int {
	i := from
	for i < len(c.text) {
		r, size := utf8.DecodeRuneInString(c.text[i:])
		if !keep(r) {
			break
		}
		i += size
	}
	return i
}
