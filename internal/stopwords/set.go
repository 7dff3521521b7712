// Package stopwords builds, stores and serves stop-word sets.
//
// A Set is an immutable finite state transducer over sorted byte strings.
// Lookups are exact byte matches: no case folding or normalization happens at
// query time. Sets are safe for concurrent use by multiple goroutines.
package stopwords

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/blevesearch/vellum"
)

// Set is a compiled, read-only stop-word set.
type Set struct {
	fst  *vellum.FST
	data []byte
}

// Build compiles words into a Set. Duplicates and empty strings are dropped;
// order does not matter.
func Build(words []string) (*Set, error) {
	sorted := make([]string, 0, len(words))
	for _, w := range words {
		if w != "" {
			sorted = append(sorted, w)
		}
	}
	sort.Strings(sorted)

	var buf bytes.Buffer
	builder, err := vellum.New(&buf, nil)
	if err != nil {
		return nil, fmt.Errorf("build stop words: %w", err)
	}
	prev := ""
	for i, w := range sorted {
		if i > 0 && w == prev {
			continue
		}
		if err := builder.Insert([]byte(w), 0); err != nil {
			return nil, fmt.Errorf("build stop words insert %q: %w", w, err)
		}
		prev = w
	}
	if err := builder.Close(); err != nil {
		return nil, fmt.Errorf("build stop words close: %w", err)
	}
	return Load(buf.Bytes())
}

// MustBuild is like Build but panics on error. Intended for package-level
// fixed lists.
func MustBuild(words []string) *Set {
	s, err := Build(words)
	if err != nil {
		panic(err)
	}
	return s
}

// Load opens a Set from its serialized form as returned by Bytes.
func Load(data []byte) (*Set, error) {
	fst, err := vellum.Load(data)
	if err != nil {
		return nil, fmt.Errorf("load stop words: %w", err)
	}
	return &Set{fst: fst, data: data}, nil
}

// Contains reports whether lemma is in the set. A nil Set contains nothing.
func (s *Set) Contains(lemma string) bool {
	if s == nil || s.fst == nil {
		return false
	}
	ok, err := s.fst.Contains([]byte(lemma))
	return err == nil && ok
}

// Len returns the number of words in the set.
func (s *Set) Len() int {
	if s == nil || s.fst == nil {
		return 0
	}
	return s.fst.Len()
}

// Words returns the words of the set in byte order.
func (s *Set) Words() []string {
	if s.Len() == 0 {
		return nil
	}
	words := make([]string, 0, s.Len())
	it, err := s.fst.Iterator(nil, nil)
	for err == nil {
		key, _ := it.Current()
		words = append(words, string(key))
		err = it.Next()
	}
	// The iterator ends with vellum.ErrIteratorDone; any other error
	// cannot occur on an in-memory FST.
	return words
}

// Bytes returns the serialized set. The slice must not be modified.
func (s *Set) Bytes() []byte {
	if s == nil {
		return nil
	}
	return s.data
}

// Checksum returns the sha256 checksum of the serialized set.
func (s *Set) Checksum() Checksum {
	return ComputeChecksum(s.Bytes())
}
