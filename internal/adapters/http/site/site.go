// Package site serves the dashboard pages and the image assets they reference.
package site

import (
	"context"
	"io/fs"
	"net/http"
	"os"
	"path"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/okian/velocity/pkg/logger"
	"github.com/okian/velocity/pkg/metrics"
)

// AssetsRoute is the prefix image assets are served under.
const AssetsRoute = "/dashboards"

// Page binds a route to an embedded HTML file.
type Page struct {
	Route string
	File  string
}

// Pages lists every HTML route the site serves.
var Pages = []Page{
	{Route: "/", File: "index.html"},
	{Route: "/dashboard/compliance", File: "compliance.html"},
	{Route: "/dashboard/procurement", File: "procurement.html"},
	{Route: "/dashboard/velocity", File: "velocity.html"},
	{Route: "/dashboard/workforce", File: "workforce.html"},
	{Route: "/dashboard/executive", File: "executive.html"},
	{Route: "/positioning-tool", File: "positioning-tool.html"},
}

// Handler serves pages from the embedded filesystem and assets from disk.
type Handler struct {
	pages     fs.FS
	assetsDir string
	notFound  http.HandlerFunc
	metrics   *metrics.Manager
	logger    logger.Logger
}

// Option applies a configuration option to the Handler.
type Option func(*Handler)

// WithAssetsDir sets the directory image assets are read from.
func WithAssetsDir(dir string) Option {
	return func(h *Handler) {
		if dir != "" {
			h.assetsDir = dir
		}
	}
}

// WithNotFound sets the handler used for missing assets.
func WithNotFound(nf http.HandlerFunc) Option {
	return func(h *Handler) {
		if nf != nil {
			h.notFound = nf
		}
	}
}

// WithMetrics sets the metrics manager.
func WithMetrics(m *metrics.Manager) Option {
	return func(h *Handler) {
		if m != nil {
			h.metrics = m
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l logger.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.logger = l
		}
	}
}

// NewHandler creates a site Handler.
func NewHandler(opts ...Option) *Handler {
	h := &Handler{
		pages:     FS(),
		assetsDir: "dashboards",
		notFound:  http.NotFound,
		metrics:   metrics.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Register attaches the page and asset routes to r.
func Register(_ context.Context, r chi.Router, opts ...Option) {
	if r == nil {
		panic("router is nil")
	}

	h := NewHandler(opts...)
	for _, p := range Pages {
		r.Get(p.Route, h.page(p))
	}
	r.Get(AssetsRoute+"/*", h.ServeAsset)
}

func (h *Handler) page(p Page) http.HandlerFunc {
	name := strings.TrimSuffix(p.File, ".html")
	return func(w http.ResponseWriter, r *http.Request) {
		h.metrics.RecordPageView(name)
		http.ServeFileFS(w, r, h.pages, p.File)
	}
}

// ServeAsset streams a file from the assets directory. Missing files,
// directories and paths escaping the directory all get the not found handler.
func (h *Handler) ServeAsset(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(path.Clean("/"+chi.URLParam(r, "*")), "/")
	if name == "" {
		h.notFound(w, r)
		return
	}

	f, err := os.OpenInRoot(h.assetsDir, name)
	if err != nil {
		if h.logger != nil {
			h.logger.Debug(r.Context(), "asset not found", logger.String("name", name), logger.Error(err))
		}
		h.notFound(w, r)
		return
	}
	defer func() { _ = f.Close() }()

	st, err := f.Stat()
	if err != nil || st.IsDir() {
		h.notFound(w, r)
		return
	}

	h.metrics.RecordAssetServed()
	http.ServeContent(w, r, st.Name(), st.ModTime(), f)
}
