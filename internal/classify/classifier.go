// Package classify assigns a Kind to every token coming out of a segmenter.
//
// A token is a stop word if its lemma is in the configured stop-word set, a
// separator if every character of its lemma is whitespace or recognised
// punctuation, and a word otherwise. Classification never fails and depends
// only on the lemma and the stop-word set.
//
// Classifier and ClassifySeparator are safe for concurrent use.
package classify

import "GoTokenize/internal/token"

// StopWords is a read-only membership set. Lookups are exact byte matches.
// Implementations must be safe for concurrent reads.
type StopWords interface {
	Contains(lemma string) bool
}

// Classifier decides the Kind of single tokens.
// The zero value classifies without stop words.
type Classifier struct {
	stopWords StopWords
}

// New creates a Classifier. A nil stopWords disables stop-word detection.
func New(stopWords StopWords) Classifier {
	return Classifier{stopWords: stopWords}
}

// Classify returns tok with Kind set. Any Kind already on tok is ignored.
//
// Precedence: stop word, then separator, then word. A lemma made only of
// separator characters is a hard separator if any one of them is hard. The
// empty lemma is a soft separator.
func (c Classifier) Classify(tok token.Token) token.Token {
	if c.stopWords != nil && c.stopWords.Contains(tok.Lemma) {
		tok.Kind = token.StopWord
		return tok
	}

	hard := false
	for _, r := range tok.Lemma {
		sep, ok := ClassifySeparator(r)
		if !ok {
			tok.Kind = token.Word
			return tok
		}
		if sep == token.Hard {
			hard = true
		}
	}

	if hard {
		tok.Kind = token.HardSeparator
	} else {
		tok.Kind = token.SoftSeparator
	}
	return tok
}
