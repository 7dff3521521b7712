// Package token defines the unit of text that flows through the tokenization
// pipeline: segmenters produce unclassified tokens, the classifier assigns each
// one a Kind, and indexers consume the result.
package token

import "fmt"

// SeparatorKind is the strength of a separator token.
type SeparatorKind uint8

const (
	Hard SeparatorKind = iota + 1 // Sentence and clause punctuation
	Soft                          // Whitespace and connecting punctuation
)

// String returns "hard" or "soft".
func (s SeparatorKind) String() string {
	switch s {
	case Hard:
		return "hard"
	case Soft:
		return "soft"
	default:
		return fmt.Sprintf("SeparatorKind(%d)", uint8(s))
	}
}

// Token is a contiguous slice of the source text.
//
// Lemma and Kind are the only fields the classifier reads or writes. The
// offsets are set by the segmenter and passed through untouched.
type Token struct {
	Lemma     string
	Kind      Kind
	ByteStart int
	ByteEnd   int
	CharStart int
	CharEnd   int
}

// IsWord reports whether the token was classified as content.
func (t Token) IsWord() bool { return t.Kind == Word }

// IsStopWord reports whether the token matched the stop-word set.
func (t Token) IsStopWord() bool { return t.Kind == StopWord }

// IsSeparator reports whether the token is a hard or soft separator.
func (t Token) IsSeparator() bool { return t.Kind.IsSeparator() }

// SeparatorKind returns the separator strength, if the token is a separator.
func (t Token) SeparatorKind() (SeparatorKind, bool) { return t.Kind.Separator() }

// String returns a debug representation, e.g. word("hello")[0:5].
func (t Token) String() string {
	return fmt.Sprintf("%s(%q)[%d:%d]", t.Kind, t.Lemma, t.ByteStart, t.ByteEnd)
}
