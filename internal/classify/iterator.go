package classify

import (
	"iter"

	"GoTokenize/internal/token"
)

// Iterator classifies tokens as they are pulled from an upstream iterator.
// It holds no token between calls and cannot be restarted.
type Iterator struct {
	inner      token.Iterator
	classifier Classifier
}

// NewIterator wraps inner so every token it yields is classified by c.
func NewIterator(inner token.Iterator, c Classifier) *Iterator {
	return &Iterator{inner: inner, classifier: c}
}

// Next pulls one token from upstream and returns it classified.
func (it *Iterator) Next() (token.Token, bool) {
	tok, ok := it.inner.Next()
	if !ok {
		return token.Token{}, false
	}
	return it.classifier.Classify(tok), true
}

// All returns the remaining tokens as a range-over-func sequence.
// Breaking out of the loop leaves the rest of the stream unread.
func (it *Iterator) All() iter.Seq[token.Token] {
	return func(yield func(token.Token) bool) {
		for {
			tok, ok := it.Next()
			if !ok || !yield(tok) {
				return
			}
		}
	}
}
