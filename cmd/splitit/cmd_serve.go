package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/split-it/splitit/console"
	"github.com/split-it/splitit/internal/devserver"
)

// newServeCmd implements 'splitit serve'.
func newServeCmd() *cobra.Command {
	cfg := devserver.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the WebAssembly build",
		Long: `Serve the app shell, main.wasm and wasm_exec.js from the dist directory.

Example usage:
  GOOS=js GOARCH=wasm go build -o dist/main.wasm ./internal/app
  cp "$(go env GOROOT)/lib/wasm/wasm_exec.js" dist/
  splitit serve --addr :8080 --dist ./dist`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), cfg)
		},
	}

	bindServeFlags(cmd.Flags(), &cfg)
	return cmd
}

func bindServeFlags(fs *pflag.FlagSet, cfg *devserver.Config) {
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "Address to listen on")
	fs.StringVar(&cfg.DistDir, "dist", cfg.DistDir, "Directory holding main.wasm and wasm_exec.js")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (trace|debug|info|warn|error)")
	fs.BoolVar(&cfg.Pretty, "pretty", cfg.Pretty, "Human-readable log output")
	fs.DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", cfg.ShutdownTimeout, "Grace period for in-flight requests")
}

func runServe(parent context.Context, cfg devserver.Config) error {
	if parent == nil {
		parent = context.Background()
	}

	logger := cfg.NewLogger()
	console.SetLogger(logger)

	srv, err := devserver.New(cfg, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return srv.Run(ctx)
}
