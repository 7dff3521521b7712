package stopwords

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseList_Text(t *testing.T) {
	input := "# English\nthe\n\n  and  \n#comment\na\n"
	words, err := ParseList(strings.NewReader(input), FormatText, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"the", "and", "a"}, words)
}

func TestParseList_YAML(t *testing.T) {
	input := `
words: [common]
languages:
  en: [the, and]
  fr: [le, la]
`
	words, err := ParseList(strings.NewReader(input), FormatYAML, Options{})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"common", "the", "and", "le", "la"}, words)

	words, err = ParseList(strings.NewReader(input), FormatYAML, Options{Languages: []string{"fr"}})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"common", "le", "la"}, words)
}

func TestParseList_YAMLEmpty(t *testing.T) {
	words, err := ParseList(strings.NewReader(""), FormatYAML, Options{})
	require.NoError(t, err)
	assert.Empty(t, words)
}

func TestParseList_YAMLInvalid(t *testing.T) {
	_, err := ParseList(strings.NewReader("words: {a: [b"), FormatYAML, Options{})
	assert.Error(t, err)
}

func TestParseList_Normalize(t *testing.T) {
	decomposed := "cafe\u0301"

	words, err := ParseList(strings.NewReader(decomposed), FormatText, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{decomposed}, words)

	words, err = ParseList(strings.NewReader(decomposed), FormatText, Options{Normalize: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"caf\u00e9"}, words)
}

func TestParseList_UnknownFormat(t *testing.T) {
	_, err := ParseList(strings.NewReader("x"), Format("csv"), Options{})
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestFormatForPath(t *testing.T) {
	tests := map[string]Format{
		"stop.fst":     FormatCompiled,
		"stop.yaml":    FormatYAML,
		"stop.YML":     FormatYAML,
		"stop.txt":     FormatText,
		"stopwords":    FormatText,
		"dir.fst/list": FormatText,
	}
	for path, want := range tests {
		assert.Equal(t, want, FormatForPath(path), path)
	}
}

func TestLoadFile_Formats(t *testing.T) {
	dir := t.TempDir()

	textPath := filepath.Join(dir, "stop.txt")
	require.NoError(t, os.WriteFile(textPath, []byte("the\nand\n"), 0644))
	s, err := LoadFile(textPath, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"and", "the"}, s.Words())

	yamlPath := filepath.Join(dir, "stop.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("words: [le, la]\n"), 0644))
	s, err = LoadFile(yamlPath, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"la", "le"}, s.Words())
}

func TestLoadFile_Errors(t *testing.T) {
	_, err := LoadFile("", Options{})
	assert.ErrorIs(t, err, ErrEmptyPath)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.txt"), Options{})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteFile_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "en.fst")
	s := MustBuild([]string{"the", "and"})

	require.NoError(t, WriteFile(path, s))

	sidecar, err := os.ReadFile(path + ChecksumSuffix)
	require.NoError(t, err)
	assert.Equal(t, string(s.Checksum())+"\n", string(sidecar))

	loaded, err := LoadFile(path, Options{})
	require.NoError(t, err)
	assert.Equal(t, s.Words(), loaded.Words())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "no temp files left behind")
}

func TestLoadFile_ChecksumMismatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "en.fst")
	require.NoError(t, WriteFile(path, MustBuild([]string{"the"})))

	other := MustBuild([]string{"and"})
	require.NoError(t, os.WriteFile(path, other.Bytes(), 0644))

	_, err := LoadFile(path, Options{})
	assert.ErrorIs(t, err, ErrChecksumMismatch)
}

func TestLoadFile_CompiledWithoutSidecar(t *testing.T) {
	path := filepath.Join(t.TempDir(), "en.fst")
	require.NoError(t, os.WriteFile(path, MustBuild([]string{"the"}).Bytes(), 0644))

	s, err := LoadFile(path, Options{})
	require.NoError(t, err)
	assert.True(t, s.Contains("the"))
}
