package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return runServe(ctx, cfg)
	},
}

func init() {
	serveCmd.Flags().String("addr", ":3000", "address to listen on")
	rootCmd.AddCommand(serveCmd)
}

// runServe serves until ctx is done, then shuts the server down gracefully.
func runServe(ctx context.Context, c cliConfig) error {
	app, err := newApp(c)
	if err != nil {
		return err
	}
	if err := app.Setup(); err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(app.Start)
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		app.Echo.Logger.Info("shutting down")
		return app.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
