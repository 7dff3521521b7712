// Package testutil provides fixtures shared by package tests.
package testutil

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// NewTestLogger returns a logger that writes to t.Log().
// Logs only appear on test failure or when running with -v.
func NewTestLogger(t testing.TB) *slog.Logger {
	t.Helper()
	return slog.New(slog.NewTextHandler(testWriter{t}, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

type testWriter struct {
	t testing.TB
}

func (w testWriter) Write(p []byte) (n int, err error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// WriteStopWordList writes words one per line to name inside a temporary
// directory and returns the file path.
func WriteStopWordList(t testing.TB, name string, words ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(strings.Join(words, "\n")+"\n"), 0644); err != nil {
		t.Fatalf("write stop-word list: %v", err)
	}
	return path
}

// SampleTexts returns short texts covering several scripts and punctuation
// styles.
func SampleTexts() []string {
	return []string{
		"Full-text search is a technique for searching documents.",
		"The quick brown fox jumps over the lazy dog!",
		"An inverted index maps terms to the documents containing them; nothing more.",
		"Съешь же ещё этих мягких французских булок, да выпей чаю.",
		"我们在这里。你好吗？",
		"e-mail: user@example.com (work) | phone: +1-555-0100",
		"  leading and trailing whitespace  ",
		"S.O.S",
	}
}

// LongText returns a paragraph of English prose, repeated n times.
func LongText(n int) string {
	const paragraph = "Full-text search is a technique for searching documents stored in a database. " +
		"It involves indexing the content of documents and building inverted indexes that map " +
		"terms to the documents containing them. Modern search engines use sophisticated ranking " +
		"algorithms like BM25 to estimate the relevance of documents to a given query. "
	return strings.Repeat(paragraph, n)
}
