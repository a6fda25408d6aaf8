// Package probe exercises a running dashboard service end to end: health,
// every metrics route under concurrency, and the not found contract.
package probe

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/okian/velocity/internal/adapters/http/api"
	"github.com/okian/velocity/internal/domain/dashboard"
	"github.com/okian/velocity/pkg/logger"
)

// Run executes the complete probe. The returned Stats are populated even
// when an error is returned.
func Run(ctx context.Context, cfg *Config) (*Stats, error) {
	stats := &Stats{StartTime: time.Now()}
	if err := validate(cfg); err != nil {
		return stats, err
	}
	log := logger.Named("probe")

	log.Info(ctx, "starting velocity probe",
		logger.String("baseURL", cfg.BaseURL),
		logger.Int("requests", cfg.Requests),
		logger.Int("workers", cfg.Workers),
		logger.Duration("timeout", cfg.Timeout),
		logger.Bool("verbose", cfg.Verbose))

	client := newHTTPClient(cfg.BaseURL, cfg.Timeout)

	// Step 1: Check service health
	if err := checkHealth(ctx, client); err != nil {
		return stats, fmt.Errorf("%w: %w", ErrUnhealthy, err)
	}
	stats.Healthy = true
	log.Info(ctx, "service is healthy")

	// Step 2: Fetch and validate every metrics route concurrently
	entries := dashboard.NewCatalog().Registry()
	fetchSnapshots(ctx, cfg, client, entries, stats)

	// Step 3: Confirm the not found contract
	if err := checkNotFound(ctx, client); err != nil {
		log.Error(ctx, "not found check failed", logger.Error(err))
	} else {
		stats.NotFoundVerified = true
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)
	report(ctx, log, cfg, stats)

	if err := ctx.Err(); err != nil {
		return stats, fmt.Errorf("%w: %w", ErrCheckFailed, err)
	}
	if stats.RequestsFailed > 0 || !stats.NotFoundVerified {
		return stats, fmt.Errorf("%w: %d failed requests, not found verified: %t", ErrCheckFailed, stats.RequestsFailed, stats.NotFoundVerified)
	}
	log.Info(ctx, "probe completed successfully")
	return stats, nil
}

func validate(cfg *Config) error {
	switch {
	case cfg == nil:
		return fmt.Errorf("%w: nil config", ErrInvalidConfig)
	case cfg.BaseURL == "":
		return fmt.Errorf("%w: empty base url", ErrInvalidConfig)
	case cfg.Requests < 1:
		return fmt.Errorf("%w: requests must be positive", ErrInvalidConfig)
	case cfg.Workers < 1:
		return fmt.Errorf("%w: workers must be positive", ErrInvalidConfig)
	case cfg.Timeout <= 0:
		return fmt.Errorf("%w: timeout must be positive", ErrInvalidConfig)
	}
	return nil
}

// checkHealth verifies the health route reports a healthy service.
func checkHealth(ctx context.Context, client *httpClient) error {
	resp, err := client.get(ctx, dashboard.HealthRoute)
	if err != nil {
		return fmt.Errorf("failed to connect to service: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health status %d", resp.StatusCode)
	}
	var h dashboard.Health
	if err := decodeJSON(resp.Body, &h); err != nil {
		return err
	}
	if h.Status != "healthy" {
		return fmt.Errorf("health reports %q", h.Status)
	}
	return nil
}

// checkNotFound verifies an unknown route answers the fixed JSON body.
func checkNotFound(ctx context.Context, client *httpClient) error {
	resp, err := client.get(ctx, unknownRoute)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusNotFound {
		return fmt.Errorf("%s answered %d", unknownRoute, resp.StatusCode)
	}
	var body struct {
		Error  string `json:"error"`
		Status string `json:"status"`
	}
	if err := decodeJSON(resp.Body, &body); err != nil {
		return err
	}
	if body.Error != api.MsgNotFound || body.Status != "error" {
		return fmt.Errorf("unexpected not found body %s", resp.Body)
	}
	return nil
}

// report logs a sample of failures, or all of them when verbose, then totals.
func report(ctx context.Context, log logger.Logger, cfg *Config, stats *Stats) {
	for i, f := range stats.Failures {
		if !cfg.Verbose && i >= maxLoggedFailures {
			log.Warn(ctx, "more failures omitted", logger.Int("omitted", len(stats.Failures)-i))
			break
		}
		log.Warn(ctx, "request failed",
			logger.String("route", f.Route),
			logger.String("request_id", f.RequestID),
			logger.String("reason", f.Reason))
	}

	var perSecond float64
	if stats.Duration > 0 {
		perSecond = float64(stats.RequestsSent) / stats.Duration.Seconds()
	}
	log.Info(ctx, "final statistics",
		logger.Int("requestsSent", stats.RequestsSent),
		logger.Int("requestsOK", stats.RequestsOK),
		logger.Int("requestsFailed", stats.RequestsFailed),
		logger.Int("violations", stats.Violations),
		logger.Bool("notFoundVerified", stats.NotFoundVerified),
		logger.Duration("duration", stats.Duration),
		logger.Float64("successRate", stats.SuccessRate()),
		logger.Float64("requestsPerSecond", perSecond))
}
