package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rmaulika/folio"
)

var (
	buildOut   string
	buildWatch bool
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Export the site as static files",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if err := runBuild(cmd.Context(), cfg, buildOut, out); err != nil {
			return err
		}
		if !buildWatch {
			return nil
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		fmt.Fprintf(out, "watching %v\n", watchPaths(cfg))
		return folio.WatchExcept(ctx, watchPaths(cfg), []string{buildOut}, folio.DefaultDebounce, func() error {
			c, err := reloadConfig()
			if err != nil {
				return err
			}
			return runBuild(ctx, c, buildOut, out)
		})
	},
}

func init() {
	buildCmd.Flags().StringVarP(&buildOut, "out", "o", "dist", "output directory")
	buildCmd.Flags().BoolVarP(&buildWatch, "watch", "w", false, "rebuild when the static dir, content or config change")
	rootCmd.AddCommand(buildCmd)
}

// runBuild exports the site described by c into dir.
func runBuild(ctx context.Context, c cliConfig, dir string, out io.Writer) error {
	app, err := newApp(c)
	if err != nil {
		return err
	}
	defer app.Close()

	written, err := app.Export(ctx, dir)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "built %d files into %s\n", len(written), dir)
	return nil
}

// reloadConfig rereads the config file so a watched rebuild picks up edits.
func reloadConfig() (cliConfig, error) {
	var c cliConfig
	if v.ConfigFileUsed() != "" {
		if err := v.ReadInConfig(); err != nil {
			return c, fmt.Errorf("read config: %w", err)
		}
	}
	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("decode config: %w", err)
	}
	return c, nil
}
