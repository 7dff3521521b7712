package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"GoTokenize/internal/token"
)

// maxInputBytes bounds how much stdin the tokenize command reads.
const maxInputBytes = 64 << 20 // 64MB

// NewTokenizeCommand creates the tokenize command.
func NewTokenizeCommand() *cobra.Command {
	var wordsOnly bool

	cmd := &cobra.Command{
		Use:   "tokenize [text...]",
		Short: "Segment and classify text",
		Long: `Segment text into tokens and print each token with its kind.

Text is taken from the arguments, joined by spaces, or from stdin when no
arguments are given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := appFrom(cmd.Context())

			text := strings.Join(args, " ")
			if len(args) == 0 {
				data, err := io.ReadAll(io.LimitReader(cmd.InOrStdin(), maxInputBytes))
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				text = string(data)
			}

			tk, err := a.tokenizer()
			if err != nil {
				return err
			}

			w := bufio.NewWriter(cmd.OutOrStdout())
			defer w.Flush()

			enc := json.NewEncoder(w)
			for tok := range tk.Tokenize(text).All() {
				if wordsOnly && !tok.IsWord() {
					continue
				}
				if a.cfg.Output == "json" {
					if err := enc.Encode(tokenRecord(tok)); err != nil {
						return err
					}
					continue
				}
				if _, err := fmt.Fprintf(w, "%-15s %q\t%d:%d\n", tok.Kind, tok.Lemma, tok.ByteStart, tok.ByteEnd); err != nil {
					return err
				}
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringP("output", "o", "", "Output format (text|json)")
	cmd.Flags().BoolVar(&wordsOnly, "words-only", false, "Only print word tokens")
	_ = cmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"text", "json"}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

type record struct {
	Lemma     string     `json:"lemma"`
	Kind      token.Kind `json:"kind"`
	ByteStart int        `json:"byte_start"`
	ByteEnd   int        `json:"byte_end"`
}

func tokenRecord(tok token.Token) record {
	return record{Lemma: tok.Lemma, Kind: tok.Kind, ByteStart: tok.ByteStart, ByteEnd: tok.ByteEnd}
}
