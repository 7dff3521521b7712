package indexing

import (
	"errors"
	"sort"
	"sync"

	"golang.org/x/text/cases"

	"GoTokenize/internal/token"
)

// Buffer limits.
const (
	DefaultBufferMemoryLimit = 64 * 1024 * 1024 // 64MB
	DefaultMaxDocs           = 100_000
)

// HardSeparatorGap is added to the position of the word following a hard
// separator so phrase matches never span a sentence or clause boundary.
const HardSeparatorGap = 8

var (
	ErrBufferFull   = errors.New("index buffer memory or document limit reached")
	ErrDuplicateDoc = errors.New("duplicate document ID in buffer")
)

// PostingEntry represents a single posting for a term in a field.
type PostingEntry struct {
	DocID     uint32
	Freq      uint32
	Positions []uint32
}

// PostingsList accumulates postings for a single term in a single field.
type PostingsList struct {
	Entries []PostingEntry
}

// Stats summarises what a Buffer has consumed.
type Stats struct {
	Docs           int
	Terms          int
	Words          int
	StopWords      int
	HardSeparators int
	SoftSeparators int
}

// Buffer is an in-memory inverted index built from classified token streams.
//
// Only Word tokens are indexed. Stop words take up a position without being
// indexed, soft separators are skipped, and hard separators push the next
// position forward by HardSeparatorGap.
type Buffer struct {
	mu sync.Mutex

	// invertedIndex: field → term → postings list
	invertedIndex map[string]map[string]*PostingsList

	externalToInternal map[string]uint32
	nextDocID          uint32
	stats              Stats

	memoryUsed  int64
	MemoryLimit int64
	MaxDocs     int
}

// NewBuffer creates a new empty Buffer.
func NewBuffer() *Buffer {
	return &Buffer{
		invertedIndex:      make(map[string]map[string]*PostingsList),
		externalToInternal: make(map[string]uint32),
		MemoryLimit:        DefaultBufferMemoryLimit,
		MaxDocs:            DefaultMaxDocs,
	}
}

// AddDocument consumes the classified token stream of every field of a
// document and returns the internal doc ID assigned to it.
func (b *Buffer) AddDocument(externalID string, fields map[string]token.Iterator) (uint32, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.isFull() {
		return 0, ErrBufferFull
	}
	if _, exists := b.externalToInternal[externalID]; exists {
		return 0, ErrDuplicateDoc
	}

	docID := b.nextDocID
	b.nextDocID++
	b.stats.Docs++
	b.externalToInternal[externalID] = docID

	// Sorted so doc processing does not depend on map order.
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		b.indexField(name, docID, fields[name])
	}
	return docID, nil
}

func (b *Buffer) indexField(field string, docID uint32, it token.Iterator) {
	fold := cases.Fold()
	positions := make(map[string][]uint32)
	var order []string

	var pos uint32
	started := false
	for {
		tok, ok := it.Next()
		if !ok {
			break
		}
		switch tok.Kind {
		case token.Word:
			term := fold.String(tok.Lemma)
			if _, seen := positions[term]; !seen {
				order = append(order, term)
			}
			positions[term] = append(positions[term], pos)
			pos++
			started = true
			b.stats.Words++
		case token.StopWord:
			pos++
			started = true
			b.stats.StopWords++
		case token.HardSeparator:
			if started {
				pos += HardSeparatorGap
			}
			b.stats.HardSeparators++
		case token.SoftSeparator:
			b.stats.SoftSeparators++
		}
	}

	for _, term := range order {
		p := positions[term]
		b.addPosting(field, term, docID, uint32(len(p)), p)
	}
}

func (b *Buffer) addPosting(field, term string, docID uint32, freq uint32, positions []uint32) {
	fieldMap, ok := b.invertedIndex[field]
	if !ok {
		fieldMap = make(map[string]*PostingsList)
		b.invertedIndex[field] = fieldMap
	}

	pl, ok := fieldMap[term]
	if !ok {
		pl = &PostingsList{}
		fieldMap[term] = pl
		b.stats.Terms++
		b.memoryUsed += int64(len(term))
	}

	pl.Entries = append(pl.Entries, PostingEntry{
		DocID:     docID,
		Freq:      freq,
		Positions: positions,
	})

	// Approximate memory tracking.
	b.memoryUsed += int64(16 + len(positions)*4)
}

// Postings returns the postings of term in field, or nil.
// term must already be case folded.
func (b *Buffer) Postings(field, term string) *PostingsList {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.invertedIndex[field][term]
}

// DocID returns the internal doc ID of an external ID.
func (b *Buffer) DocID(externalID string) (uint32, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	id, ok := b.externalToInternal[externalID]
	return id, ok
}

// Stats returns counters over everything consumed so far.
func (b *Buffer) Stats() Stats {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.stats
}

// MemoryUsed returns the approximate memory used by the buffer.
func (b *Buffer) MemoryUsed() int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.memoryUsed
}

// IsFull returns true if the buffer has reached its memory or document limit.
func (b *Buffer) IsFull() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.isFull()
}

func (b *Buffer) isFull() bool {
	return b.stats.Docs >= b.MaxDocs || b.memoryUsed >= b.MemoryLimit
}

// Reset clears the buffer for reuse.
func (b *Buffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.invertedIndex = make(map[string]map[string]*PostingsList)
	b.externalToInternal = make(map[string]uint32)
	b.nextDocID = 0
	b.stats = Stats{}
	b.memoryUsed = 0
}
