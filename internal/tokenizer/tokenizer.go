// Package tokenizer chains a segmenter and the classifier into the pipeline
// that feeds indexing: text in, lazily classified tokens out.
package tokenizer

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"GoTokenize/internal/classify"
	"GoTokenize/internal/segment"
	"GoTokenize/internal/stopwords"
	"GoTokenize/internal/token"
)

// Tokenizer segments and classifies text. It holds no per-text state and is
// safe for concurrent use.
type Tokenizer struct {
	segmenter  segment.Segmenter
	classifier classify.Classifier
}

// New creates a Tokenizer. A nil segmenter falls back to segment.Standard;
// a nil stopWords disables stop-word detection.
func New(seg segment.Segmenter, stopWords classify.StopWords) *Tokenizer {
	if seg == nil {
		seg = segment.NewStandard()
	}
	return &Tokenizer{segmenter: seg, classifier: classify.New(stopWords)}
}

// FromSet is like New but takes a possibly nil *stopwords.Set.
func FromSet(seg segment.Segmenter, set *stopwords.Set) *Tokenizer {
	if set == nil {
		return New(seg, nil)
	}
	return New(seg, set)
}

// Segment returns the unclassified tokens of text.
func (t *Tokenizer) Segment(text string) token.Iterator {
	return t.segmenter.Segment(text)
}

// Tokenize returns the classified tokens of text. Nothing is computed until
// the iterator is pulled.
func (t *Tokenizer) Tokenize(text string) *classify.Iterator {
	return classify.NewIterator(t.segmenter.Segment(text), t.classifier)
}

// TokenizeAll tokenizes texts concurrently and returns the tokens of texts[i]
// at index i. It stops early and returns ctx.Err() if ctx is cancelled.
func (t *Tokenizer) TokenizeAll(ctx context.Context, texts []string) ([][]token.Token, error) {
	results := make([][]token.Token, len(texts))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, text := range texts {
		g.Go(func() error {
			it := t.Tokenize(text)
			var tokens []token.Token
			for {
				if err := gctx.Err(); err != nil {
					return err
				}
				tok, ok := it.Next()
				if !ok {
					break
				}
				tokens = append(tokens, tok)
			}
			results[i] = tokens
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
