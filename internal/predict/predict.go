// Package predict derives a recency-based priority tier per syllabus unit
// from the saved-snippet log.
package predict

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/infotech9626platfm-ptes/9696-geog-resources-hub/internal/gallery"
	"github.com/infotech9626platfm-ptes/9696-geog-resources-hub/internal/syllabus"
)

// Tier is the coarse recency classification of a unit.
type Tier string

const (
	TierNoData Tier = "No Data"
	TierLow    Tier = "Low"
	TierMedium Tier = "Medium"
	TierHigh   Tier = "High"
)

// Row is one line of the priority report. LastExamined is nil when no saved
// record could be dated for the unit.
type Row struct {
	Category     string `json:"component"`
	Unit         string `json:"unit"`
	LastExamined *int   `json:"last_examined"`
	Priority     Tier   `json:"priority"`
}

var yearRe = regexp.MustCompile(`\d{4}`)

// sourceYear extracts the first 4-digit run from a free-text source string.
// Best-effort: a source without one reports ok=false and the record is
// simply not dated, never guessed.
func sourceYear(source string) (int, bool) {
	m := yearRe.FindString(source)
	if m == "" {
		return 0, false
	}
	y, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return y, true
}

// Analyze computes the report: one row per (category, unit) in taxonomy
// order, always, even when the record log is empty. A record counts toward
// a unit when its topic contains the unit name case-insensitively. Pure
// function of its inputs; callers re-run it per request.
func Analyze(currentYear int, records []gallery.Record, syl *syllabus.Syllabus) []Row {
	rows := make([]Row, 0, syl.UnitCount())
	for _, cat := range syl.Taxonomy {
		for _, unit := range cat.Units {
			needle := strings.ToLower(unit)
			last := 0
			found := false
			for _, rec := range records {
				if !strings.Contains(strings.ToLower(rec.Topic), needle) {
					continue
				}
				y, ok := sourceYear(rec.Source)
				if !ok {
					continue
				}
				if !found || y > last {
					last = y
					found = true
				}
			}

			row := Row{Category: cat.Name, Unit: unit}
			switch {
			case !found:
				row.Priority = TierNoData
			case currentYear-last >= 2:
				row.Priority = TierHigh
			case currentYear-last == 1:
				row.Priority = TierMedium
			default:
				// Gap <= 0, which also covers future-dated sources.
				row.Priority = TierLow
			}
			if found {
				y := last
				row.LastExamined = &y
			}
			rows = append(rows, row)
		}
	}
	return rows
}
