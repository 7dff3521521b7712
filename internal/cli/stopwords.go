package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"GoTokenize/internal/stopwords"
)

// NewStopWordsCommand creates the stopwords command group.
func NewStopWordsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stopwords",
		Short: "Build and inspect stop-word sets",
	}
	cmd.AddCommand(newStopWordsBuildCommand())
	cmd.AddCommand(newStopWordsCheckCommand())
	cmd.AddCommand(newStopWordsListCommand())
	return cmd
}

func newStopWordsBuildCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "build <list> <out.fst>",
		Short: "Compile a text or YAML list into a stop-word set file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := appFrom(cmd.Context())

			set, err := stopwords.LoadFile(args[0], a.stopWordOptions())
			if err != nil {
				return err
			}
			if err := stopwords.WriteFile(args[1], set); err != nil {
				return err
			}

			a.logger.Debug("stop-word set written", "path", args[1], "words", set.Len())
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %d words, %s\n", args[1], set.Len(), set.Checksum())
			return nil
		},
	}
}

func newStopWordsCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <set> <lemma...>",
		Short: "Report whether lemmas are in a stop-word set",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := appFrom(cmd.Context())

			set, err := stopwords.LoadFile(args[0], a.stopWordOptions())
			if err != nil {
				return err
			}
			for _, lemma := range args[1:] {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%q\t%t\n", lemma, set.Contains(lemma))
			}
			return nil
		},
	}
}

func newStopWordsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list [set]",
		Short: "Print the words of a stop-word set (built-in English list by default)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := appFrom(cmd.Context())

			set := stopwords.English()
			if len(args) == 1 {
				var err error
				if set, err = stopwords.LoadFile(args[0], a.stopWordOptions()); err != nil {
					return err
				}
			}
			for _, w := range set.Words() {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), w)
			}
			return nil
		},
	}
}
