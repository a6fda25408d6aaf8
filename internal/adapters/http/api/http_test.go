package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/velocity/internal/adapters/http/api"
	"github.com/okian/velocity/internal/domain/dashboard"
	"github.com/okian/velocity/pkg/metrics"
)

const notFoundBody = `{"error":"Endpoint not found","status":"error"}`

type fixture struct {
	router   *chi.Mux
	registry *prometheus.Registry
	catalog  *dashboard.Catalog
}

func newFixture() fixture {
	reg := prometheus.NewRegistry()
	m := metrics.NewManager(metrics.WithPrometheusRegistry(reg))
	catalog := dashboard.NewCatalog()

	r := chi.NewRouter()
	r.Use(api.RequestID, api.Metrics(m))
	r.NotFound(api.NotFound)
	r.MethodNotAllowed(api.MethodNotAllowed)
	api.NewServer(catalog, api.WithMetrics(m)).Register(context.Background(), r)

	return fixture{router: r, registry: reg, catalog: catalog}
}

func (f fixture) do(method, target string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, http.NoBody)
	for k, v := range header {
		req.Header[http.CanonicalHeaderKey(k)] = v
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func (f fixture) counter(name string, labels map[string]string) float64 {
	families, err := f.registry.Gather()
	if err != nil {
		panic(err)
	}
	var sum float64
	for _, fam := range families {
		if fam.GetName() != name {
			continue
		}
	next:
		for _, m := range fam.GetMetric() {
			got := map[string]string{}
			for _, lp := range m.GetLabel() {
				got[lp.GetName()] = lp.GetValue()
			}
			for k, v := range labels {
				if got[k] != v {
					continue next
				}
			}
			sum += m.GetCounter().GetValue()
		}
	}
	return sum
}

func TestSnapshotRoutes(t *testing.T) {
	Convey("Given the API registered on a router", t, func() {
		f := newFixture()

		Convey("Then every metrics route should answer a valid snapshot", func() {
			for _, e := range f.catalog.Registry() {
				w := f.do(http.MethodGet, e.Route, nil)
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Header().Get("Content-Type"), ShouldEqual, "application/json")

				var doc map[string]any
				So(json.Unmarshal(w.Body.Bytes(), &doc), ShouldBeNil)
				So(e.Check(doc), ShouldBeEmpty)
			}
		})

		Convey("Then two calls should carry their own timestamps", func() {
			var first, second map[string]any
			So(json.Unmarshal(f.do(http.MethodGet, "/api/compliance/metrics", nil).Body.Bytes(), &first), ShouldBeNil)
			time.Sleep(2 * time.Millisecond)
			So(json.Unmarshal(f.do(http.MethodGet, "/api/compliance/metrics", nil).Body.Bytes(), &second), ShouldBeNil)
			So(first["timestamp"], ShouldNotEqual, second["timestamp"])
		})

		Convey("Then each snapshot should be counted under its domain", func() {
			f.do(http.MethodGet, "/api/future-truck/metrics", nil)
			f.do(http.MethodGet, "/api/future-truck/metrics", nil)
			So(f.counter("velocity_dashboard_snapshots_generated_total", map[string]string{"domain": "future-truck"}), ShouldEqual, 2)
		})
	})
}

func TestHealthRoute(t *testing.T) {
	Convey("Given the API registered on a router", t, func() {
		f := newFixture()

		Convey("When calling the health route", func() {
			w := f.do(http.MethodGet, "/api/health", nil)

			Convey("Then it should report a healthy service", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				var doc map[string]any
				So(json.Unmarshal(w.Body.Bytes(), &doc), ShouldBeNil)
				So(doc["status"], ShouldEqual, "healthy")
				So(doc["service"], ShouldEqual, "Velocity Dashboard API")
				So(doc["version"], ShouldEqual, "1.0.0")
				So(doc["dashboards_available"], ShouldEqual, 15.0)
				_, err := time.ParseInLocation(dashboard.TimestampLayout, doc["timestamp"].(string), time.Local)
				So(err, ShouldBeNil)
			})
		})
	})
}

func TestErrorResponses(t *testing.T) {
	Convey("Given the API registered on a router", t, func() {
		f := newFixture()

		Convey("When calling an unknown route", func() {
			w := f.do(http.MethodGet, "/api/nonexistent", nil)

			Convey("Then the fixed not found body should be returned", func() {
				So(w.Code, ShouldEqual, http.StatusNotFound)
				So(w.Header().Get("Content-Type"), ShouldEqual, "application/json")
				So(w.Body.String(), ShouldEqual, notFoundBody)
			})

			Convey("And the miss should be counted as not_found", func() {
				So(f.counter("velocity_dashboard_http_errors_total", map[string]string{"error_type": "not_found"}), ShouldEqual, 1)
				So(f.counter("velocity_dashboard_http_requests_total", map[string]string{"route": "unmatched", "status_code": "404"}), ShouldEqual, 1)
			})
		})

		Convey("When posting to a metrics route", func() {
			w := f.do(http.MethodPost, "/api/compliance/metrics", nil)

			Convey("Then a JSON 405 should be returned", func() {
				So(w.Code, ShouldEqual, http.StatusMethodNotAllowed)
				So(w.Body.String(), ShouldEqual, `{"error":"Method not allowed","status":"error"}`)
			})
		})

		Convey("When calling a route with a trailing slash", func() {
			w := f.do(http.MethodGet, "/api/health/", nil)

			Convey("Then it should not match", func() {
				So(w.Code, ShouldEqual, http.StatusNotFound)
				So(w.Body.String(), ShouldEqual, notFoundBody)
			})
		})
	})
}

func TestRequestID(t *testing.T) {
	Convey("Given the API registered on a router", t, func() {
		f := newFixture()

		Convey("When the caller sends an X-Request-ID", func() {
			w := f.do(http.MethodGet, "/api/health", http.Header{api.HeaderRequestID: {"probe-42"}})

			Convey("Then it should be echoed back", func() {
				So(w.Header().Get(api.HeaderRequestID), ShouldEqual, "probe-42")
			})
		})

		Convey("When the caller sends none", func() {
			w := f.do(http.MethodGet, "/api/health", nil)

			Convey("Then a uuid should be minted", func() {
				So(w.Header().Get(api.HeaderRequestID), ShouldHaveLength, 36)
			})
		})

		Convey("When the caller sends an oversized id", func() {
			w := f.do(http.MethodGet, "/api/health", http.Header{api.HeaderRequestID: {strings.Repeat("x", 200)}})

			Convey("Then it should be replaced", func() {
				So(w.Header().Get(api.HeaderRequestID), ShouldHaveLength, 36)
			})
		})

		Convey("Then handlers should see the id in their context", func() {
			var seen string
			h := api.RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				seen = api.RequestIDFrom(r.Context())
			}))
			req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
			req.Header.Set(api.HeaderRequestID, "abc")
			h.ServeHTTP(httptest.NewRecorder(), req)
			So(seen, ShouldEqual, "abc")
			So(api.RequestIDFrom(context.Background()), ShouldBeEmpty)
		})
	})
}

func TestMetricsMiddleware(t *testing.T) {
	Convey("Given the API registered on a router", t, func() {
		f := newFixture()

		Convey("When serving a matched route", func() {
			f.do(http.MethodGet, "/api/workforce-hud/metrics", nil)

			Convey("Then the request should be labelled by its route pattern", func() {
				labels := map[string]string{"route": "/api/workforce-hud/metrics", "method": "GET", "status_code": "200"}
				So(f.counter("velocity_dashboard_http_requests_total", labels), ShouldEqual, 1)
				So(f.counter("velocity_dashboard_http_errors_total", nil), ShouldEqual, 0)
			})
		})
	})
}

func TestRegisterWithNilRouter(t *testing.T) {
	Convey("Given a server", t, func() {
		s := api.NewServer(dashboard.NewCatalog())

		Convey("Then registering on a nil router should panic", func() {
			So(func() { s.Register(context.Background(), nil) }, ShouldPanic)
		})
	})
}
