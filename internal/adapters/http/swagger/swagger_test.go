package swagger

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/smartystreets/goconvey/convey"

	"github.com/okian/velocity/internal/domain/dashboard"
)

func TestSwaggerHandler(t *testing.T) {
	convey.Convey("Given a swagger handler", t, func() {
		ctx := context.Background()
		r := chi.NewRouter()

		convey.Convey("When registering the swagger handler", func() {
			Register(ctx, r)

			convey.Convey("Then it should handle /openapi.yaml route", func() {
				req := httptest.NewRequest("GET", "/openapi.yaml", http.NoBody)
				w := httptest.NewRecorder()
				r.ServeHTTP(w, req)

				convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
				convey.So(w.Header().Get("Content-Type"), convey.ShouldEqual, "application/yaml; charset=utf-8")
				convey.So(w.Body.Len(), convey.ShouldBeGreaterThan, 0)
			})

			convey.Convey("And it should handle /api-docs route", func() {
				req := httptest.NewRequest("GET", "/api-docs", http.NoBody)
				w := httptest.NewRecorder()
				r.ServeHTTP(w, req)

				convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
				convey.So(w.Header().Get("Content-Type"), convey.ShouldEqual, "text/html; charset=utf-8")
				convey.So(w.Body.String(), convey.ShouldContainSubstring, "Velocity API Docs")
				convey.So(w.Body.String(), convey.ShouldContainSubstring, "redoc-container")
			})
		})
	})
}

func TestOpenAPICoversEveryRoute(t *testing.T) {
	convey.Convey("Given the embedded OpenAPI document", t, func() {
		doc := string(OpenAPI)

		convey.Convey("Then every API route should be described", func() {
			convey.So(doc, convey.ShouldContainSubstring, "  "+dashboard.HealthRoute+":")
			for _, e := range dashboard.NewCatalog().Registry() {
				convey.So(doc, convey.ShouldContainSubstring, "  "+e.Route+":")
			}
		})

		convey.Convey("And it should declare OpenAPI 3", func() {
			convey.So(strings.HasPrefix(doc, "openapi: 3."), convey.ShouldBeTrue)
		})

		convey.Convey("And every number field should describe its encoding", func() {
			convey.So(doc, convey.ShouldContainSubstring, "85.0 is written as 85")
			numbers := strings.Count(doc, "type: number\n")
			convey.So(numbers, convey.ShouldBeGreaterThan, 0)
			convey.So(strings.Count(doc, "encoded without a fraction (85, not 85.0)"), convey.ShouldEqual, numbers)
		})
	})
}

func TestSwaggerHandlerWithNilRouter(t *testing.T) {
	convey.Convey("Given a nil router", t, func() {
		ctx := context.Background()

		convey.Convey("When registering the swagger handler", func() {
			convey.Convey("Then it should panic", func() {
				convey.So(func() {
					Register(ctx, nil)
				}, convey.ShouldPanic)
			})
		})
	})
}
