package classify

import (
	"unicode"
	"unicode/utf8"

	"github.com/mozillazg/go-unidecode"

	"GoTokenize/internal/token"
)

// Russian Cyrillic letters А-я. Transliteration maps some of them onto ASCII
// punctuation (ь -> '), so they are never separators.
const (
	cyrillicFirst = 'А'
	cyrillicLast  = 'я'
)

// ClassifySeparator reports whether r is a separator and, if so, how strong.
// The decision is made on the first character of r's ASCII transliteration.
func ClassifySeparator(r rune) (token.SeparatorKind, bool) {
	if r >= cyrillicFirst && r <= cyrillicLast {
		return 0, false
	}

	c, ok := transliterate(r)
	if !ok {
		return 0, false
	}

	switch c {
	case '-', '_', '\'', ':', '/', '\\', '@', '"', '+', '~', '=', '^', '*', '#':
		return token.Soft, true
	case '.', ';', ',', '!', '?', '(', ')', '[', ']', '{', '}', '|':
		return token.Hard, true
	}
	if unicode.IsSpace(c) {
		return token.Soft, true
	}
	return 0, false
}

// transliterate returns the first character of r's ASCII approximation.
// Code points without one transliterate to nothing.
func transliterate(r rune) (rune, bool) {
	if r < utf8.RuneSelf {
		return r, true
	}
	ascii := unidecode.Unidecode(string(r))
	if ascii == "" {
		return 0, false
	}
	c, _ := utf8.DecodeRuneInString(ascii)
	return c, true
}
