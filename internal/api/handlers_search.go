package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/infotech9626platfm-ptes/9696-geog-resources-hub/internal/apperr"
	"github.com/infotech9626platfm-ptes/9696-geog-resources-hub/internal/codec"
	"github.com/infotech9626platfm-ptes/9696-geog-resources-hub/internal/docgen"
	"github.com/infotech9626platfm-ptes/9696-geog-resources-hub/internal/scan"
)

// searchResult is one session's worth of matches for the queried paper.
type searchResult struct {
	Source      string        `json:"source"`
	Session     codec.Session `json:"session"`
	Year        int           `json:"year"`
	Matches     []scan.Match  `json:"matches"`
	MSAvailable bool          `json:"ms_available"`
	MSFile      string        `json:"ms_file,omitempty"`
}

// handleSearch scans one year's question papers across all three sessions.
// Query params: year, paper, variant, keyword (optional; empty matches
// every page).
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	year, err := strconv.Atoi(q.Get("year"))
	if err != nil {
		jsonError(w, "year query parameter is required", http.StatusBadRequest)
		return
	}
	paper, err := strconv.Atoi(q.Get("paper"))
	if err != nil {
		jsonError(w, "paper query parameter is required", http.StatusBadRequest)
		return
	}
	variant, err := strconv.Atoi(q.Get("variant"))
	if err != nil {
		jsonError(w, "variant query parameter is required", http.StatusBadRequest)
		return
	}
	keyword := q.Get("keyword")

	results := []searchResult{}
	var warnings []string
	for _, sess := range codec.Sessions {
		id := codec.Identifier{
			Subject: s.deps.Codec.Subject(),
			Session: sess,
			Year:    year,
			Paper:   paper,
			Variant: variant,
			Kind:    codec.KindQuestionPaper,
		}
		matches, err := s.deps.Scanner.Scan(id, keyword)
		if errors.Is(err, apperr.ErrNotFound) {
			continue
		}
		if errors.Is(err, apperr.ErrCorruptDocument) {
			warnings = append(warnings, fmt.Sprintf("skipped unreadable paper for session %s", sess))
			continue
		}
		if err != nil {
			jsonErrorFor(w, err)
			return
		}
		if len(matches) == 0 {
			continue
		}

		res := searchResult{
			Source:  id.Reference(),
			Session: sess,
			Year:    year,
			Matches: matches,
		}
		msID := id
		msID.Kind = codec.KindMarkingScheme
		if s.deps.Scanner.Exists(msID) {
			res.MSAvailable = true
			res.MSFile, _ = s.deps.Codec.Encode(msID)
		}
		results = append(results, res)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"results":  results,
		"warnings": warnings,
	})
}

type bookletRequest struct {
	Topic     string   `json:"topic"`
	Keyword   string   `json:"keyword"` // defaults to topic
	YearStart int      `json:"year_start"`
	YearSpan  int      `json:"year_span"` // defaults to the configured span
	Sessions  []string `json:"sessions"`  // defaults to all three
	Variants  []string `json:"variants"`  // two-digit codes; defaults to paper 1's set
}

// handleBooklet compiles a year range and streams the result as a DOCX
// attachment. A range with zero matches is a valid outcome and returns a
// JSON summary instead of a document.
func (s *Server) handleBooklet(w http.ResponseWriter, r *http.Request) {
	var req bookletRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Topic) == "" {
		jsonError(w, "topic is required", http.StatusBadRequest)
		return
	}
	if req.YearStart < 2000 || req.YearStart > 2099 {
		jsonError(w, "year_start must be a 4-digit year", http.StatusBadRequest)
		return
	}
	if req.Keyword == "" {
		req.Keyword = req.Topic
	}
	if req.YearSpan <= 0 {
		req.YearSpan = s.cfg.DefaultYearSpan
	}

	sessions, err := parseSessions(req.Sessions)
	if err != nil {
		jsonErrorFor(w, err)
		return
	}
	variants, err := s.parseVariants(req.Variants)
	if err != nil {
		jsonErrorFor(w, err)
		return
	}

	res, err := s.deps.Compiler.Compile(req.YearStart, req.YearSpan, sessions, variants, req.Keyword)
	if err != nil {
		jsonErrorFor(w, err)
		return
	}
	if res.Empty() {
		writeJSON(w, http.StatusOK, map[string]any{
			"matches":  0,
			"warnings": res.Warnings,
			"message":  "no questions found for this range",
		})
		return
	}

	doc, err := docgen.Booklet(s.deps.Codec.Subject(), req.Topic, res)
	if err != nil {
		jsonError(w, "failed to build booklet: "+err.Error(), http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("%s_%s_Booklet.docx", s.deps.Codec.Subject(), strings.ReplaceAll(req.Topic, " ", "_"))
	serveDocx(w, filename, doc)
}

func parseSessions(raw []string) ([]codec.Session, error) {
	if len(raw) == 0 {
		return codec.Sessions, nil
	}
	out := make([]codec.Session, 0, len(raw))
	for _, v := range raw {
		sess, err := codec.ParseSession(v)
		if err != nil {
			return nil, err
		}
		out = append(out, sess)
	}
	return out, nil
}

// parseVariants resolves two-digit variant codes. With no codes given it
// falls back to paper 1's variant set, matching the original tool's batch
// behavior.
func (s *Server) parseVariants(raw []string) ([]codec.PaperVariant, error) {
	if len(raw) == 0 {
		var out []codec.PaperVariant
		for _, v := range s.deps.Syllabus.VariantMap[1] {
			out = append(out, codec.PaperVariant{Paper: 1, Variant: v})
		}
		return out, nil
	}
	out := make([]codec.PaperVariant, 0, len(raw))
	for _, code := range raw {
		pv, err := codec.ParseVariantCode(code)
		if err != nil {
			return nil, err
		}
		out = append(out, pv)
	}
	return out, nil
}

func serveDocx(w http.ResponseWriter, filename string, doc []byte) {
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.wordprocessingml.document")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(doc)))
	w.Write(doc)
}
