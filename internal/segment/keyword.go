package segment

import "GoTokenize/internal/token"

// Keyword passes the entire input through as a single token.
type Keyword struct{}

// NewKeyword creates a new Keyword segmenter.
func NewKeyword() *Keyword {
	return &Keyword{}
}

// Segment returns an iterator yielding text as one token, or nothing when
// text is empty.
func (k *Keyword) Segment(text string) token.Iterator {
	return &keywordIter{cursor: cursor{text: text}}
}

type keywordIter struct {
	cursor
}

func (it *keywordIter) Next() (token.Token, bool) {
	if it.pos >= len(it.text) {
		return token.Token{}, false
	}
	return it.emit(len(it.text)), true
}
