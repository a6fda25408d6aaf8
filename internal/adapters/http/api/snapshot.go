package api

import (
	"net/http"

	"github.com/okian/velocity/internal/domain/dashboard"
)

// snapshotHandler serves a freshly generated snapshot for one dashboard domain.
func (s *Server) snapshotHandler(e dashboard.Entry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap := e.Generate()
		s.metrics.RecordSnapshot(e.Key)
		s.writeJSON(w, r, http.StatusOK, snap)
	}
}
