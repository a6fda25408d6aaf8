package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/okian/velocity/internal/probe"
	"github.com/okian/velocity/pkg/logger"
)

const defaultProbeTimeout = 10 * time.Minute

func main() {
	defaults := probe.DefaultConfig()

	fs := pflag.NewFlagSet("probe", pflag.ContinueOnError)
	baseURL := fs.String("url", defaults.BaseURL, "base URL of the dashboard service")
	requests := fs.Int("requests", defaults.Requests, "requests per API route")
	workers := fs.Int("workers", defaults.Workers, "number of concurrent workers")
	timeout := fs.Duration("timeout", defaults.Timeout, "HTTP request timeout")
	verbose := fs.Bool("verbose", false, "log every failed request")
	jsonLogs := fs.Bool("json", false, "emit JSON logs")

	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		os.Exit(2)
	}

	format := logger.FormatText
	if *jsonLogs {
		format = logger.FormatJSON
	}
	if err := logger.Init(logger.WithFormat(format)); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, defaultProbeTimeout)
	defer cancel()

	cfg := &probe.Config{
		BaseURL:  *baseURL,
		Requests: *requests,
		Workers:  *workers,
		Timeout:  *timeout,
		Verbose:  *verbose,
	}

	if _, err := probe.Run(ctx, cfg); err != nil {
		os.Stderr.WriteString("Probe failed: " + err.Error() + "\n")
		cancel()
		stop()
		os.Exit(1)
	}
}
