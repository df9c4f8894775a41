package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/infotech9626platfm-ptes/9696-geog-resources-hub/internal/docgen"
)

func (s *Server) handleListGallery(w http.ResponseWriter, r *http.Request) {
	records, err := s.deps.Gallery.List()
	if err != nil {
		jsonErrorFor(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"records": records,
		"total":   len(records),
	})
}

type saveSnippetRequest struct {
	Topic   string `json:"topic"`
	Source  string `json:"source"`
	Content string `json:"content"`
}

func (s *Server) handleSaveSnippet(w http.ResponseWriter, r *http.Request) {
	var req saveSnippetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Topic) == "" || strings.TrimSpace(req.Content) == "" {
		jsonError(w, "topic and content are required", http.StatusBadRequest)
		return
	}

	rec, err := s.deps.Gallery.Save(req.Topic, req.Source, req.Content)
	if err != nil {
		jsonErrorFor(w, err)
		return
	}
	s.log.Info("snippet saved", "id", rec.ID, "topic", rec.Topic)
	writeJSON(w, http.StatusCreated, rec)
}

func (s *Server) handleDeleteSnippet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "recordID")
	if err := s.deps.Gallery.Delete(id); err != nil {
		jsonErrorFor(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"deleted": id})
}

type handoutRequest struct {
	RecordID string `json:"record_id"`
	Diagram  string `json:"diagram"` // stored diagram filename, optional
}

// handleHandout generates a revision-sheet DOCX from one gallery record,
// optionally embedding a diagram from the library.
func (s *Server) handleHandout(w http.ResponseWriter, r *http.Request) {
	var req handoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.RecordID == "" {
		jsonError(w, "record_id is required", http.StatusBadRequest)
		return
	}

	rec, err := s.deps.Gallery.Get(req.RecordID)
	if err != nil {
		jsonErrorFor(w, err)
		return
	}

	diagramPath := ""
	if req.Diagram != "" {
		if !s.deps.Diagrams.Exists(req.Diagram) {
			jsonError(w, "diagram not found: "+req.Diagram, http.StatusNotFound)
			return
		}
		diagramPath, err = s.deps.Diagrams.Path(req.Diagram)
		if err != nil {
			jsonError(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	doc, err := docgen.Handout(s.deps.Codec.Subject(), rec, diagramPath)
	if err != nil {
		jsonError(w, "failed to build handout: "+err.Error(), http.StatusInternalServerError)
		return
	}
	serveDocx(w, "Revision_Sheet.docx", doc)
}

// handleHandoutPreview returns the rendered HTML body of a snippet so the
// handout can be checked before download.
func (s *Server) handleHandoutPreview(w http.ResponseWriter, r *http.Request) {
	var req handoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.RecordID == "" {
		jsonError(w, "record_id is required", http.StatusBadRequest)
		return
	}

	rec, err := s.deps.Gallery.Get(req.RecordID)
	if err != nil {
		jsonErrorFor(w, err)
		return
	}
	html, err := docgen.PreviewHTML(rec)
	if err != nil {
		jsonError(w, "failed to render preview: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"topic": rec.Topic,
		"html":  html,
	})
}

func (s *Server) handleListGlossary(w http.ResponseWriter, r *http.Request) {
	entries, err := s.deps.Glossary.Entries()
	if err != nil {
		jsonErrorFor(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"entries": entries,
		"total":   len(entries),
	})
}

type saveGlossaryRequest struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
}

func (s *Server) handleSaveGlossary(w http.ResponseWriter, r *http.Request) {
	var req saveGlossaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Term) == "" || strings.TrimSpace(req.Definition) == "" {
		jsonError(w, "term and definition are required", http.StatusBadRequest)
		return
	}
	if err := s.deps.Glossary.Save(req.Term, req.Definition); err != nil {
		jsonErrorFor(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"term": req.Term})
}
