// Package cli provides the gotokenize command-line interface.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"GoTokenize/internal/config"
	"GoTokenize/internal/segment"
	"GoTokenize/internal/stopwords"
	"GoTokenize/internal/tokenizer"
)

// Version is the build version reported by the version command and the API.
var Version = "dev"

// appKey stores the *app in the command context.
type appKey struct{}

// app is the state shared by all subcommands once configuration is loaded.
type app struct {
	cfg        *config.Config
	logger     *slog.Logger
	segmenters *segment.Registry
}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "gotokenize",
		Short: "GoTokenize - token classification for search indexing",
		Long: `GoTokenize splits text into tokens and classifies each one as a word,
a stop word, or a hard or soft separator, ready to be fed to an index.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			logger, err := NewLogger(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
			if err != nil {
				return err
			}

			a := &app{cfg: cfg, logger: logger, segmenters: segment.NewRegistry()}
			cmd.SetContext(context.WithValue(cmd.Context(), appKey{}, a))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./gotokenize.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().String("log-format", "", "Log format (json|text)")
	rootCmd.PersistentFlags().String("segmenter", "", "Segmenter name (standard|whitespace|keyword)")
	rootCmd.PersistentFlags().String("stop-words", "", "Stop-word list (.txt, .yaml or compiled .fst)")
	rootCmd.PersistentFlags().Bool("english", false, "Use the built-in English stop words when no list is given")
	rootCmd.PersistentFlags().Bool("normalize", false, "NFC-normalize stop-word list entries while loading")

	_ = rootCmd.RegisterFlagCompletionFunc("segmenter", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return segment.NewRegistry().Names(), cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(NewTokenizeCommand())
	rootCmd.AddCommand(NewStopWordsCommand())
	rootCmd.AddCommand(NewServeCommand())
	rootCmd.AddCommand(NewVersionCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// appFrom returns the app stored by PersistentPreRunE.
func appFrom(ctx context.Context) *app {
	if a, ok := ctx.Value(appKey{}).(*app); ok {
		return a
	}
	return &app{cfg: config.Default(), logger: slog.Default(), segmenters: segment.NewRegistry()}
}

// stopWordOptions returns the list loading options from the configuration.
func (a *app) stopWordOptions() stopwords.Options {
	return stopwords.Options{
		Normalize: a.cfg.StopWords.Normalize,
		Languages: a.cfg.StopWords.Languages,
	}
}

// stopWordSource opens the stop-word source selected by the configuration.
func (a *app) stopWordSource() (*stopwords.Source, error) {
	sw := a.cfg.StopWords
	if sw.Path != "" {
		return stopwords.OpenSource(sw.Path, a.stopWordOptions(), a.logger)
	}
	if sw.English {
		return stopwords.NewStaticSource(stopwords.English()), nil
	}
	return stopwords.NewStaticSource(nil), nil
}

// tokenizer builds the pipeline selected by the configuration.
func (a *app) tokenizer() (*tokenizer.Tokenizer, error) {
	seg, err := a.segmenters.Get(a.cfg.Segmenter)
	if err != nil {
		return nil, err
	}
	src, err := a.stopWordSource()
	if err != nil {
		return nil, err
	}
	return tokenizer.FromSet(seg, src.Current()), nil
}
