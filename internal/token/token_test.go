package token

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind_Separator(t *testing.T) {
	assert.Equal(t, HardSeparator, Separator(Hard))
	assert.Equal(t, SoftSeparator, Separator(Soft))

	s, ok := HardSeparator.Separator()
	assert.True(t, ok)
	assert.Equal(t, Hard, s)

	_, ok = Word.Separator()
	assert.False(t, ok)
	_, ok = Unknown.Separator()
	assert.False(t, ok)
}

func TestToken_Predicates(t *testing.T) {
	tests := []struct {
		kind      Kind
		word      bool
		stopWord  bool
		separator bool
	}{
		{Unknown, false, false, false},
		{Word, true, false, false},
		{StopWord, false, true, false},
		{SoftSeparator, false, false, true},
		{HardSeparator, false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			tok := Token{Kind: tt.kind}
			assert.Equal(t, tt.word, tok.IsWord())
			assert.Equal(t, tt.stopWord, tok.IsStopWord())
			assert.Equal(t, tt.separator, tok.IsSeparator())
		})
	}
}

func TestKind_Text(t *testing.T) {
	for _, k := range []Kind{Unknown, Word, StopWord, SoftSeparator, HardSeparator} {
		text, err := k.MarshalText()
		require.NoError(t, err)

		var got Kind
		require.NoError(t, got.UnmarshalText(text))
		assert.Equal(t, k, got)
	}

	var k Kind
	assert.ErrorIs(t, k.UnmarshalText([]byte("noise")), ErrUnknownKind)
	_, err := Kind(42).MarshalText()
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestKind_JSON(t *testing.T) {
	data, err := json.Marshal(Token{Lemma: ".", Kind: HardSeparator})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"Kind":"separator:hard"`)
}

func TestToken_String(t *testing.T) {
	tok := Token{Lemma: "hello", Kind: Word, ByteStart: 0, ByteEnd: 5}
	assert.Equal(t, `word("hello")[0:5]`, tok.String())
}

func TestCollect(t *testing.T) {
	in := []Token{{Lemma: "a"}, {Lemma: "b"}}
	assert.Equal(t, in, Collect(FromSlice(in)))
	assert.Nil(t, Collect(FromSlice(nil)))
}
