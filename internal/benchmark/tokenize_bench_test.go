package benchmark

import (
	"context"
	"testing"

	"GoTokenize/internal/segment"
	"GoTokenize/internal/stopwords"
	"GoTokenize/internal/testutil"
	"GoTokenize/internal/tokenizer"
)

func drain(tk *tokenizer.Tokenizer, text string) int {
	n := 0
	for range tk.Tokenize(text).All() {
		n++
	}
	return n
}

func BenchmarkTokenize_Standard_Short(b *testing.B) {
	tk := tokenizer.FromSet(segment.NewStandard(), stopwords.English())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = drain(tk, "The Quick Brown Fox")
	}
}

func BenchmarkTokenize_Standard_Long(b *testing.B) {
	tk := tokenizer.FromSet(segment.NewStandard(), stopwords.English())
	text := testutil.LongText(1)
	b.SetBytes(int64(len(text)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = drain(tk, text)
	}
}

func BenchmarkTokenize_Whitespace(b *testing.B) {
	tk := tokenizer.FromSet(segment.NewWhitespace(), stopwords.English())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = drain(tk, "The Quick Brown Fox Jumps Over The Lazy Dog")
	}
}

func BenchmarkTokenize_Mixed(b *testing.B) {
	tk := tokenizer.FromSet(segment.NewStandard(), stopwords.English())
	texts := testutil.SampleTexts()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = drain(tk, texts[i%len(texts)])
	}
}

func BenchmarkTokenizeAll(b *testing.B) {
	tk := tokenizer.FromSet(segment.NewStandard(), stopwords.English())
	texts := make([]string, 64)
	for i := range texts {
		texts[i] = testutil.LongText(1)
	}
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tk.TokenizeAll(ctx, texts); err != nil {
			b.Fatal(err)
		}
	}
}
