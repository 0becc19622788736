package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/melba-ui/melba/internal/demo"
	"github.com/melba-ui/melba/internal/errors"
)

func serveCmd() *cobra.Command {
	var (
		configPath string
		host       string
		port       int
		addr       string
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the demo server",
		Long: `Start the demo server.

Configuration comes from melba.json (via --config), MELBA_*
environment variables, and flags, in rising priority.

Examples:
  melba-demo serve
  melba-demo serve --port=8080
  melba-demo serve --addr=0.0.0.0:8484
  melba-demo serve --config=./melba.json --log-level=debug`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(configPath, host, port, addr, logLevel)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to melba.json")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (overrides config)")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (overrides config)")
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address as host:port (overrides --host and --port)")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")

	return cmd
}

func runServe(configPath, host string, port int, addr, logLevel string) error {
	cfg, err := demo.LoadConfig(configPath)
	if err != nil {
		return err
	}

	if host != "" {
		cfg.Host = host
	}
	if port > 0 {
		cfg.Port = port
	}
	if addr != "" {
		h, p, err := net.SplitHostPort(addr)
		if err != nil {
			return errors.New("E042").
				WithDetail(addr + ": " + err.Error()).
				WithSuggestion("Use host:port, for example localhost:8484")
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return errors.New("E042").
				WithDetail("Port must be numeric, got " + p)
		}
		cfg.Host, cfg.Port = h, n
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	// Flags bypass the load-time validation, so check again.
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	printBanner()
	fmt.Println("  demo server")
	fmt.Println()
	success("Listening on %s", cfg.URL())
	info("Metrics at %s/metrics", cfg.URL())
	info("Press Ctrl+C to stop")
	fmt.Println()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := demo.NewApp(cfg, logger)
	if err := app.Start(ctx); err != nil {
		return errors.New("E060").
			WithDetail(err.Error()).
			WithSuggestion("Check that " + cfg.Address() + " is not already in use").
			Wrap(err)
	}
	return nil
}

func newLogger(cfg *demo.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(handler)
}
