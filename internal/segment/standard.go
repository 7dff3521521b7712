package segment

import (
	"unicode"
	"unicode/utf8"

	"GoTokenize/internal/token"
)

// Standard groups letters and digits into words, groups whitespace into
// runs, and emits every other character on its own. Han, Hiragana and
// Katakana characters are emitted one per token since no dictionary
// segmentation is done.
type Standard struct{}

// NewStandard creates a new Standard segmenter.
func NewStandard() *Standard {
	return &Standard{}
}

// Segment returns a lazy iterator over the tokens of text.
func (s *Standard) Segment(text string) token.Iterator {
	return &standardIter{cursor: cursor{text: text}}
}

type standardIter struct {
	cursor
}

func (it *standardIter) Next() (token.Token, bool) {
	if it.pos >= len(it.text) {
		return token.Token{}, false
	}

	r, size := utf8.DecodeRuneInString(it.text[it.pos:])
	switch {
	case r == utf8.RuneError && size <= 1:
		// Invalid byte: emit it alone so offsets stay exact.
		return it.emit(it.pos + 1), true
	case isIdeograph(r):
		return it.emit(it.pos + size), true
	case isWordRune(r):
		return it.emit(it.scan(it.pos+size, isWordRune)), true
	case unicode.IsSpace(r):
		return it.emit(it.scan(it.pos+size, unicode.IsSpace)), true
	default:
		return it.emit(it.pos + size), true
	}
}

func isWordRune(r rune) bool {
	if r == utf8.RuneError || isIdeograph(r) {
		return false
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r) || r == '_'
}

func isIdeograph(r rune) bool {
	return unicode.In(r, unicode.Han, unicode.Hiragana, unicode.Katakana)
}
