package stopwords

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_Contains(t *testing.T) {
	s, err := Build([]string{"the", "and", "a", "the", ""})
	require.NoError(t, err)

	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Contains("the"))
	assert.True(t, s.Contains("a"))
	assert.False(t, s.Contains("The"), "lookups are exact")
	assert.False(t, s.Contains("th"))
	assert.False(t, s.Contains("then"))
	assert.False(t, s.Contains(""))
	assert.Equal(t, []string{"a", "and", "the"}, s.Words())
}

func TestBuild_Empty(t *testing.T) {
	s, err := Build(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Contains("the"))
	assert.Nil(t, s.Words())
}

func TestBuild_Unicode(t *testing.T) {
	s, err := Build([]string{"и", "в", "не", "的", "了"})
	require.NoError(t, err)
	assert.True(t, s.Contains("не"))
	assert.True(t, s.Contains("的"))
	assert.False(t, s.Contains("н"))
}

func TestSet_Nil(t *testing.T) {
	var s *Set
	assert.False(t, s.Contains("the"))
	assert.Equal(t, 0, s.Len())
	assert.Nil(t, s.Bytes())
}

func TestLoad_RoundTrip(t *testing.T) {
	s := MustBuild([]string{"le", "la", "les"})

	loaded, err := Load(s.Bytes())
	require.NoError(t, err)
	assert.Equal(t, s.Words(), loaded.Words())
	assert.Equal(t, s.Checksum(), loaded.Checksum())
}

func TestLoad_Garbage(t *testing.T) {
	_, err := Load([]byte("not an fst"))
	assert.Error(t, err)
}

func TestEnglish(t *testing.T) {
	s := English()
	assert.Same(t, s, English())
	for _, w := range []string{"the", "and", "with", "a"} {
		assert.True(t, s.Contains(w), w)
	}
	assert.False(t, s.Contains("fox"))
	assert.Equal(t, len(englishWords), s.Len())
}

func TestChecksum(t *testing.T) {
	c := ComputeChecksum([]byte("stop"))
	assert.True(t, strings.HasPrefix(string(c), ChecksumPrefix))

	parsed, err := ParseChecksum(string(c) + "\n")
	require.NoError(t, err)
	assert.Equal(t, c, parsed)

	_, err = ParseChecksum("md5:abc")
	assert.ErrorIs(t, err, ErrInvalidChecksum)
	_, err = ParseChecksum("sha256:zz")
	assert.ErrorIs(t, err, ErrInvalidChecksum)
	_, err = ParseChecksum("sha256:" + strings.Repeat("zz", 32))
	assert.ErrorIs(t, err, ErrInvalidChecksum)
}
