package stopwords

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a stop-word list file.
type Format string

const (
	FormatText     Format = "text"
	FormatYAML     Format = "yaml"
	FormatCompiled Format = "fst"
)

var (
	ErrEmptyPath        = errors.New("stop-word path is empty")
	ErrUnknownFormat    = errors.New("unknown stop-word list format")
	ErrChecksumMismatch = errors.New("stop-word set checksum mismatch")
	ErrInvalidChecksum  = errors.New("invalid checksum format")
)

// Options controls how list files are turned into sets.
type Options struct {
	// Normalize composes every entry to Unicode NFC before compiling. Lemmas
	// are still matched byte for byte, so this only helps when the segmenter
	// output is NFC as well.
	Normalize bool

	// Languages restricts YAML lists to the named language sections.
	// Empty means all sections.
	Languages []string
}

// yamlList is the YAML list layout:
//
//	words: [a, an]
//	languages:
//	  en: [the, and]
//	  fr: [le, la]
type yamlList struct {
	Words     []string            `yaml:"words"`
	Languages map[string][]string `yaml:"languages"`
}

// ParseList reads the words of a text or YAML list.
func ParseList(r io.Reader, format Format, opts Options) ([]string, error) {
	var words []string
	switch format {
	case FormatText:
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			line := strings.TrimSpace(sc.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			words = append(words, line)
		}
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("parse text list: %w", err)
		}
	case FormatYAML:
		var list yamlList
		if err := yaml.NewDecoder(r).Decode(&list); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parse yaml list: %w", err)
		}
		words = append(words, list.Words...)
		for lang, langWords := range list.Languages {
			if len(opts.Languages) > 0 && !contains(opts.Languages, lang) {
				continue
			}
			words = append(words, langWords...)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	if opts.Normalize {
		for i, w := range words {
			words[i] = norm.NFC.String(w)
		}
	}
	return words, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
