package site

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/velocity/pkg/metrics"
)

func notFound(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	_, _ = w.Write([]byte(`{"error":"Endpoint not found","status":"error"}`))
}

// counterSum adds up every series of the named counter family in reg.
func counterSum(reg *prometheus.Registry, name string) float64 {
	families, err := reg.Gather()
	if err != nil {
		panic(err)
	}
	var sum float64
	for _, f := range families {
		if f.GetName() != name {
			continue
		}
		for _, m := range f.GetMetric() {
			sum += m.GetCounter().GetValue()
		}
	}
	return sum
}

func serve(r http.Handler, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, http.NoBody)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPages(t *testing.T) {
	Convey("Given a router with the site registered", t, func() {
		r := chi.NewRouter()
		reg := prometheus.NewRegistry()
		m := metrics.NewManager(metrics.WithPrometheusRegistry(reg))
		Register(context.Background(), r, WithMetrics(m), WithAssetsDir(t.TempDir()), WithNotFound(notFound))

		Convey("Then every page route should serve HTML", func() {
			for _, p := range Pages {
				w := serve(r, http.MethodGet, p.Route)
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Header().Get("Content-Type"), ShouldContainSubstring, "text/html")
				So(w.Body.String(), ShouldContainSubstring, "<!doctype html>")
			}
		})

		Convey("Then each dashboard page should poll its own feed", func() {
			feeds := map[string]string{
				"/dashboard/compliance":  "/api/compliance/metrics",
				"/dashboard/procurement": "/api/procurement/performance",
				"/dashboard/velocity":    "/api/procurement/velocity",
				"/dashboard/workforce":   "/api/workforce/analytics",
				"/dashboard/executive":   "/api/executive/summary",
				"/positioning-tool":      "/api/vendor-scorecard/metrics",
			}
			for route, feed := range feeds {
				So(serve(r, http.MethodGet, route).Body.String(), ShouldContainSubstring, feed)
			}
		})

		Convey("Then page views should be counted by page name", func() {
			serve(r, http.MethodGet, "/dashboard/velocity")
			serve(r, http.MethodGet, "/dashboard/velocity")
			So(counterSum(reg, "velocity_dashboard_page_views_total"), ShouldEqual, 2)
		})

		Convey("Then an unknown dashboard page should not match", func() {
			w := serve(r, http.MethodGet, "/dashboard/unknown")
			So(w.Code, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestAssets(t *testing.T) {
	Convey("Given an assets directory with one image", t, func() {
		dir := t.TempDir()
		So(os.WriteFile(filepath.Join(dir, "logo.png"), []byte("\x89PNG\r\n\x1a\n"), 0o600), ShouldBeNil)
		So(os.Mkdir(filepath.Join(dir, "nested"), 0o700), ShouldBeNil)

		r := chi.NewRouter()
		reg := prometheus.NewRegistry()
		m := metrics.NewManager(metrics.WithPrometheusRegistry(reg))
		Register(context.Background(), r, WithMetrics(m), WithAssetsDir(dir), WithNotFound(notFound))

		Convey("When requesting the image", func() {
			w := serve(r, http.MethodGet, "/dashboards/logo.png")

			Convey("Then it should be streamed with an image type", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Header().Get("Content-Type"), ShouldEqual, "image/png")
				So(w.Body.String(), ShouldStartWith, "\x89PNG")
				So(counterSum(reg, "velocity_dashboard_assets_served_total"), ShouldEqual, 1)
			})
		})

		Convey("When requesting a missing file", func() {
			w := serve(r, http.MethodGet, "/dashboards/missing.png")

			Convey("Then the JSON not found body should be returned", func() {
				So(w.Code, ShouldEqual, http.StatusNotFound)
				So(w.Body.String(), ShouldEqual, `{"error":"Endpoint not found","status":"error"}`)
				So(counterSum(reg, "velocity_dashboard_assets_served_total"), ShouldEqual, 0)
			})
		})

		Convey("When requesting a directory or the bare prefix", func() {
			So(serve(r, http.MethodGet, "/dashboards/nested").Code, ShouldEqual, http.StatusNotFound)
			So(serve(r, http.MethodGet, "/dashboards/").Code, ShouldEqual, http.StatusNotFound)
		})

		Convey("When a path tries to climb out of the directory", func() {
			outside := filepath.Join(filepath.Dir(dir), "secret.txt")
			So(os.WriteFile(outside, []byte("secret"), 0o600), ShouldBeNil)
			Reset(func() { _ = os.Remove(outside) })

			req := httptest.NewRequest(http.MethodGet, "/dashboards/x", http.NoBody)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("*", "../secret.txt")
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
			w := httptest.NewRecorder()
			NewHandler(WithAssetsDir(dir), WithNotFound(notFound), WithMetrics(m)).ServeAsset(w, req)

			So(w.Code, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestRegisterWithNilRouter(t *testing.T) {
	Convey("Given a nil router", t, func() {
		So(func() { Register(context.Background(), nil) }, ShouldPanic)
	})
}
