package indexing

import "golang.org/x/text/cases"

// PhraseMatch returns the internal IDs of documents whose field contains
// terms at consecutive positions. Terms are case folded before lookup.
func (b *Buffer) PhraseMatch(field string, terms ...string) []uint32 {
	if len(terms) == 0 {
		return nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	fold := cases.Fold()
	lists := make([]map[uint32][]uint32, len(terms))
	for i, term := range terms {
		pl := b.invertedIndex[field][fold.String(term)]
		if pl == nil {
			return nil
		}
		byDoc := make(map[uint32][]uint32, len(pl.Entries))
		for _, e := range pl.Entries {
			byDoc[e.DocID] = e.Positions
		}
		lists[i] = byDoc
	}

	var matches []uint32
	for _, first := range b.invertedIndex[field][fold.String(terms[0])].Entries {
		if phraseInDoc(first.DocID, first.Positions, lists[1:]) {
			matches = append(matches, first.DocID)
		}
	}
	return matches
}

func phraseInDoc(docID uint32, starts []uint32, rest []map[uint32][]uint32) bool {
	for _, start := range starts {
		found := true
		for offset, byDoc := range rest {
			if !containsPosition(byDoc[docID], start+uint32(offset)+1) {
				found = false
				break
			}
		}
		if found {
			return true
		}
	}
	return false
}

// containsPosition reports whether sorted positions contains p.
func containsPosition(positions []uint32, p uint32) bool {
	lo, hi := 0, len(positions)
	for lo < hi {
		mid := (lo + hi) / 2
		switch {
		case positions[mid] == p:
			return true
		case positions[mid] < p:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return false
}
