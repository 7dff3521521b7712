package stopwords

import "sync"

// englishWords is the common English list used by most Lucene-family engines.
var englishWords = []string{
	"a", "an", "and", "are", "as", "at", "be", "but", "by",
	"for", "if", "in", "into", "is", "it",
	"no", "not", "of", "on", "or", "such",
	"that", "the", "their", "then", "there", "these",
	"they", "this", "to", "was", "will", "with",
}

var english = sync.OnceValue(func() *Set {
	return MustBuild(englishWords)
})

// English returns the built-in English stop-word set.
func English() *Set {
	return english()
}
