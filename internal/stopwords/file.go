package stopwords

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ChecksumSuffix is appended to a compiled set's path to name its sidecar.
const ChecksumSuffix = ".sha256"

const filePerm os.FileMode = 0644

// FormatForPath infers the list format from the file extension:
// .fst is compiled, .yaml/.yml is YAML, anything else is text.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".fst":
		return FormatCompiled
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatText
	}
}

// LoadFile loads a set from a compiled, YAML or text file.
// Compiled sets are verified against their checksum sidecar when one exists.
func LoadFile(path string, opts Options) (*Set, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	format := FormatForPath(path)
	if format == FormatCompiled {
		return loadCompiled(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open stop-word list %s: %w", path, err)
	}
	defer f.Close()

	words, err := ParseList(f, format, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return Build(words)
}

func loadCompiled(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read stop-word set %s: %w", path, err)
	}

	sidecar, err := os.ReadFile(path + ChecksumSuffix)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read checksum %s: %w", path+ChecksumSuffix, err)
	default:
		expected, err := ParseChecksum(string(sidecar))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path+ChecksumSuffix, err)
		}
		if actual := ComputeChecksum(data); actual != expected {
			return nil, fmt.Errorf("%w: file %s expected %s got %s", ErrChecksumMismatch, path, expected, actual)
		}
	}

	return Load(data)
}

// WriteFile stores the compiled set at path together with its checksum
// sidecar. Both files are replaced atomically.
func WriteFile(path string, s *Set) error {
	if path == "" {
		return ErrEmptyPath
	}
	if err := atomicWriteFile(path, s.Bytes()); err != nil {
		return err
	}
	return atomicWriteFile(path+ChecksumSuffix, []byte(string(s.Checksum())+"\n"))
}

// atomicWriteFile writes data to a temporary file next to finalPath, fsyncs
// it, renames it over finalPath and fsyncs the parent directory.
func atomicWriteFile(finalPath string, data []byte) error {
	dir := filepath.Dir(finalPath)
	tmp, err := os.CreateTemp(dir, ".stopwords-*")
	if err != nil {
		return fmt.Errorf("atomic write create temp in %s: %w", dir, err)
	}
	tmpPath := tmp.Name()

	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("atomic write data: %w", err)
	}
	if err := tmp.Chmod(filePerm); err != nil {
		tmp.Close()
		return fmt.Errorf("atomic write chmod: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("atomic write fsync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("atomic write close: %w", err)
	}
	if err := os.Rename(tmpPath, finalPath); err != nil {
		return fmt.Errorf("atomic write rename %s → %s: %w", tmpPath, finalPath, err)
	}
	if err := fsyncDir(dir); err != nil {
		return fmt.Errorf("atomic write fsync parent dir: %w", err)
	}

	success = true
	return nil
}

// fsyncDir makes directory entries durable.
func fsyncDir(path string) error {
	d, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("fsync dir open %s: %w", path, err)
	}
	if err := d.Sync(); err != nil {
		d.Close()
		return fmt.Errorf("fsync dir sync %s: %w", path, err)
	}
	return d.Close()
}
