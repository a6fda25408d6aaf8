// Package service assembles the dashboard HTTP service: routes, middleware,
// operational endpoints and the runtime metrics sampler.
package service

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/handlers"
	"github.com/heptiolabs/healthcheck"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/okian/velocity/internal/adapters/http/api"
	"github.com/okian/velocity/internal/adapters/http/site"
	"github.com/okian/velocity/internal/adapters/http/swagger"
	"github.com/okian/velocity/internal/config"
	"github.com/okian/velocity/internal/domain/dashboard"
	"github.com/okian/velocity/pkg/logger"
	"github.com/okian/velocity/pkg/metrics"
)

const (
	goroutineThreshold        = 10000
	systemMetricsInterval     = 10 * time.Second
	nanosecondsPerMillisecond = 1e6
)

// Service owns the router and the background runtime sampler.
type Service struct {
	mu sync.RWMutex

	cfg      *config.Config
	catalog  *dashboard.Catalog
	metrics  *metrics.Manager
	gatherer prometheus.Gatherer
	health   healthcheck.Handler
	handler  http.Handler

	sampleEvery time.Duration

	// State
	started   bool
	startedAt time.Time
	stopCh    chan struct{}
	done      chan struct{}

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithConfig sets the service configuration.
func WithConfig(cfg *config.Config) Option {
	return func(s *Service) {
		if cfg != nil {
			s.cfg = cfg
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRegistry records and exposes metrics on reg instead of the global registry.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(s *Service) {
		if reg != nil {
			s.metrics = metrics.NewManager(metrics.WithPrometheusRegistry(reg))
			s.gatherer = reg
		}
	}
}

// WithCatalog replaces the snapshot catalog, e.g. with a seeded one.
func WithCatalog(c *dashboard.Catalog) Option {
	return func(s *Service) {
		if c != nil {
			s.catalog = c
		}
	}
}

// WithSampleInterval sets how often runtime metrics are sampled.
func WithSampleInterval(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.sampleEvery = d
		}
	}
}

// New constructs a Service. Routes are built lazily by Handler.
func New(opts ...Option) *Service {
	s := &Service{
		cfg:         config.New(),
		metrics:     metrics.Default(),
		gatherer:    metrics.GetRegistry(),
		sampleEvery: systemMetricsInterval,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.catalog == nil {
		s.catalog = dashboard.NewCatalog(dashboard.WithServiceInfo(s.cfg.ServiceName, s.cfg.Version))
	}
	return s
}

// Start launches the runtime metrics sampler. It is a no-op when already started.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running() {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.stopCh = make(chan struct{})
	s.done = make(chan struct{})
	go s.sampleRuntime(ctx, s.stopCh, s.done)

	s.started = true
	s.startedAt = time.Now()
	s.logger.Info(ctx, "dashboard service started",
		logger.String("addr", s.cfg.Addr()),
		logger.String("assets_dir", s.cfg.AssetsDir),
		logger.Int("dashboards", len(s.catalog.Registry())),
	)
	return nil
}

// Stop halts the sampler and waits for it to exit.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	close(s.stopCh)
	<-s.done

	s.started = false
	s.logger.Info(context.Background(), "dashboard service stopped")
}

// Handler returns the fully wired HTTP handler. It is built once.
func (s *Service) Handler() http.Handler {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.handler == nil {
		s.handler = s.buildHandler()
	}
	return s.handler
}

func (s *Service) buildHandler() http.Handler {
	ctx := context.Background()
	log := s.logger
	if log == nil {
		log = logger.Get()
	}

	r := chi.NewRouter()
	r.Use(s.middlewares(log)...)

	r.NotFound(api.NotFound)
	r.MethodNotAllowed(api.MethodNotAllowed)

	api.NewServer(s.catalog, api.WithMetrics(s.metrics), api.WithLogger(log.Named("api"))).Register(ctx, r)
	site.Register(ctx, r,
		site.WithAssetsDir(s.cfg.AssetsDir),
		site.WithNotFound(api.NotFound),
		site.WithMetrics(s.metrics),
		site.WithLogger(log.Named("site")),
	)
	swagger.Register(ctx, r)

	s.health = healthcheck.NewHandler()
	s.health.AddLivenessCheck("goroutine-threshold", healthcheck.GoroutineCountCheck(goroutineThreshold))
	s.health.AddReadinessCheck("assets-dir", assetsDirCheck(s.cfg.AssetsDir))
	r.Get("/live", s.health.LiveEndpoint)
	r.Get("/ready", s.health.ReadyEndpoint)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))

	var h http.Handler = r
	if s.cfg.EnableCompression {
		h = handlers.CompressHandler(h)
	}
	return handlers.CORS(handlers.AllowedOrigins(s.cfg.CORSOrigins))(h)
}

// assetsDirCheck fails readiness while the assets directory is unusable.
func assetsDirCheck(dir string) healthcheck.Check {
	return func() error {
		st, err := os.Stat(dir)
		if err != nil {
			return fmt.Errorf("assets dir: %w", err)
		}
		if !st.IsDir() {
			return fmt.Errorf("assets dir %q is not a directory", dir)
		}
		return nil
	}
}

// middlewares returns the router chain, outermost first. Recoverer sits
// innermost so a panicking handler still reaches the access log and metrics
// as a 500.
func (s *Service) middlewares(log logger.Logger) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		middleware.GetHead,
		api.RequestID,
		api.AccessLog(log.Named("http")),
		api.Metrics(s.metrics),
		middleware.Recoverer,
	}
}

// running reports whether the sampler is live. A sampler whose start context
// was cancelled has already closed done. Callers hold mu.
func (s *Service) running() bool {
	if !s.started {
		return false
	}
	select {
	case <-s.done:
		return false
	default:
		return true
	}
}

func (s *Service) sampleRuntime(ctx context.Context, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.sampleEvery)
	defer ticker.Stop()

	s.updateSystemMetrics()
	for {
		select {
		case <-ctx.Done():
			return
		case <-stop:
			return
		case <-ticker.C:
			s.updateSystemMetrics()
		}
	}
}

func (s *Service) updateSystemMetrics() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	s.metrics.UpdateSystemMemoryUsage(m.Alloc)
	s.metrics.UpdateSystemGoroutineCount(runtime.NumGoroutine())

	if m.NumGC > 0 {
		avgPauseMs := float64(m.PauseTotalNs) / float64(m.NumGC) / nanosecondsPerMillisecond
		s.metrics.RecordSystemGCPauseTime(avgPauseMs)
	}
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	running := s.running()
	stats := map[string]any{
		"started":    running,
		"dashboards": len(s.catalog.Registry()),
		"assetsDir":  s.cfg.AssetsDir,
	}
	if running {
		stats["uptime"] = time.Since(s.startedAt).String()
	}
	return stats
}
