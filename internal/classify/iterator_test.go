package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"GoTokenize/internal/token"
)

// countingIter records how many tokens were pulled.
type countingIter struct {
	inner  token.Iterator
	pulled int
}

func (c *countingIter) Next() (token.Token, bool) {
	tok, ok := c.inner.Next()
	if ok {
		c.pulled++
	}
	return tok, ok
}

func lemmas(words ...string) []token.Token {
	tokens := make([]token.Token, len(words))
	for i, w := range words {
		tokens[i] = token.Token{Lemma: w}
	}
	return tokens
}

func TestIterator_ClassifiesInOrder(t *testing.T) {
	it := NewIterator(token.FromSlice(lemmas("the", " ", "fox", ".")), New(stopWords("the")))

	got := token.Collect(it)
	require.Len(t, got, 4)

	want := []token.Kind{token.StopWord, token.SoftSeparator, token.Word, token.HardSeparator}
	for i, tok := range got {
		assert.Equal(t, want[i], tok.Kind, "token %d (%q)", i, tok.Lemma)
	}
}

func TestIterator_Empty(t *testing.T) {
	it := NewIterator(token.FromSlice(nil), New(nil))
	_, ok := it.Next()
	assert.False(t, ok)
	_, ok = it.Next()
	assert.False(t, ok, "exhausted iterator must stay exhausted")
}

func TestIterator_Lazy(t *testing.T) {
	src := &countingIter{inner: token.FromSlice(lemmas("a", "b", "c"))}
	it := NewIterator(src, New(nil))

	assert.Equal(t, 0, src.pulled)
	_, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, 1, src.pulled, "exactly one token in flight")
}

func TestIterator_All(t *testing.T) {
	src := &countingIter{inner: token.FromSlice(lemmas("a", ",", "b", "c"))}
	it := NewIterator(src, New(nil))

	var got []token.Kind
	for tok := range it.All() {
		got = append(got, tok.Kind)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []token.Kind{token.Word, token.HardSeparator}, got)
	assert.Equal(t, 2, src.pulled)

	rest := token.Collect(it)
	require.Len(t, rest, 2)
	assert.Equal(t, "b", rest[0].Lemma)
}
