package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"GoTokenize/internal/server"
)

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the tokenization API over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := appFrom(cmd.Context())

			if _, err := a.segmenters.Get(a.cfg.Segmenter); err != nil {
				return err
			}
			src, err := a.stopWordSource()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a.logger.Info("starting GoTokenize",
				"version", Version,
				"addr", a.cfg.Server.Addr,
				"segmenter", a.cfg.Segmenter,
				"stop_words", src.Path(),
				"watch", a.cfg.StopWords.Watch,
			)

			h := server.NewHandler(a.segmenters, a.cfg.Segmenter, src, Version, a.logger)
			srv := server.New(h, server.Options{
				Addr:           a.cfg.Server.Addr,
				ReadTimeout:    a.cfg.Server.ReadTimeout,
				WriteTimeout:   a.cfg.Server.WriteTimeout,
				WatchStopWords: a.cfg.StopWords.Watch,
			}, a.logger)
			return srv.Serve(ctx)
		},
	}

	cmd.Flags().String("addr", "", "Listen address (default :8080)")
	cmd.Flags().Bool("watch", false, "Reload the stop-word file when it changes")

	return cmd
}
