package integration

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"GoTokenize/internal/stopwords"
	"GoTokenize/internal/testutil"
)

func writeCompiled(t *testing.T, dir string, words ...string) string {
	t.Helper()
	set, err := stopwords.Build(words)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	path := filepath.Join(dir, "stop.fst")
	if err := stopwords.WriteFile(path, set); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestRecovery_OrphanTempFilesIgnored(t *testing.T) {
	dir := t.TempDir()
	path := writeCompiled(t, dir, "the")

	// An interrupted write leaves a temp file next to the set.
	if err := os.WriteFile(filepath.Join(dir, ".stopwords-123"), []byte("partial"), 0644); err != nil {
		t.Fatal(err)
	}

	set, err := stopwords.LoadFile(path, stopwords.Options{})
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if !set.Contains("the") {
		t.Error("set lost its words")
	}
}

func TestRecovery_CorruptSetRejected(t *testing.T) {
	dir := t.TempDir()
	path := writeCompiled(t, dir, "the", "and")

	if err := os.WriteFile(path, []byte("corrupt data"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := stopwords.LoadFile(path, stopwords.Options{})
	if !errors.Is(err, stopwords.ErrChecksumMismatch) {
		t.Fatalf("LoadFile error = %v, want ErrChecksumMismatch", err)
	}
}

func TestRecovery_ReloadKeepsLastGoodSet(t *testing.T) {
	dir := t.TempDir()
	path := writeCompiled(t, dir, "the")

	src, err := stopwords.OpenSource(path, stopwords.Options{}, testutil.NewTestLogger(t))
	if err != nil {
		t.Fatalf("OpenSource: %v", err)
	}
	before := src.Current()

	if err := os.WriteFile(path, []byte("corrupt data"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := src.Reload(); err == nil {
		t.Fatal("Reload succeeded on corrupt set")
	}
	if src.Current() != before {
		t.Error("failed reload replaced the active set")
	}
	if !src.Current().Contains("the") {
		t.Error("active set lost its words")
	}
}
