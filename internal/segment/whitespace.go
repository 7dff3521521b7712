package segment

import (
	"unicode"

	"GoTokenize/internal/token"
)

// Whitespace splits text into alternating runs of whitespace and non-whitespace.
type Whitespace struct{}

// NewWhitespace creates a new Whitespace segmenter.
func NewWhitespace() *Whitespace {
	return &Whitespace{}
}

// Segment returns a lazy iterator over the runs of text.
func (w *Whitespace) Segment(text string) token.Iterator {
	return &whitespaceIter{cursor: cursor{text: text}}
}

type whitespaceIter struct {
	cursor
}

func (it *whitespaceIter) Next() (token.Token, bool) {
	if it.pos >= len(it.text) {
		return token.Token{}, false
	}
	if end := it.scan(it.pos, unicode.IsSpace); end > it.pos {
		return it.emit(end), true
	}
	return it.emit(it.scan(it.pos, notSpace)), true
}

func notSpace(r rune) bool {
	return !unicode.IsSpace(r)
}
