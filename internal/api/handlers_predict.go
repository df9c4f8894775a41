package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/infotech9626platfm-ptes/9696-geog-resources-hub/internal/predict"
)

// handlePredictions recomputes the priority report from the current gallery
// contents. Query param year overrides the reference year (default: now).
func (s *Server) handlePredictions(w http.ResponseWriter, r *http.Request) {
	year := time.Now().Year()
	if v := r.URL.Query().Get("year"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			jsonError(w, "year must be a number", http.StatusBadRequest)
			return
		}
		year = n
	}

	records, err := s.deps.Gallery.List()
	if err != nil {
		jsonErrorFor(w, err)
		return
	}

	rows := predict.Analyze(year, records, s.deps.Syllabus)
	writeJSON(w, http.StatusOK, map[string]any{
		"year":  year,
		"rows":  rows,
		"total": len(rows),
	})
}
