package api

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
)

var diagramExts = []string{".png", ".jpg", ".jpeg"}

// diagramInfo describes one stored diagram.
type diagramInfo struct {
	Filename string `json:"filename"`
	Label    string `json:"label"`
	URL      string `json:"url"`
}

func (s *Server) handleListDiagrams(w http.ResponseWriter, r *http.Request) {
	names, err := s.deps.Diagrams.List(diagramExts...)
	if err != nil {
		jsonError(w, "failed to list diagrams: "+err.Error(), http.StatusInternalServerError)
		return
	}
	diagrams := make([]diagramInfo, 0, len(names))
	for _, name := range names {
		diagrams = append(diagrams, diagramInfo{
			Filename: name,
			Label:    diagramLabel(name),
			URL:      "/diagrams/" + name,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"diagrams": diagrams,
		"total":    len(diagrams),
	})
}

// handleUploadDiagram stores an image under the user's label, spaces
// replaced with underscores. Form fields: label, file.
func (s *Server) handleUploadDiagram(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	label := strings.TrimSpace(r.FormValue("label"))
	if label == "" {
		jsonError(w, "label is required", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, "file is required: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !isDiagramExt(ext) {
		jsonError(w, fmt.Sprintf("unsupported image type: %s", ext), http.StatusBadRequest)
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		jsonError(w, "failed to read file", http.StatusInternalServerError)
		return
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		jsonError(w, fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
		return
	}

	name := strings.ReplaceAll(label, " ", "_") + ext
	if err := s.deps.Diagrams.Write(name, data); err != nil {
		jsonError(w, "failed to store diagram: "+err.Error(), http.StatusBadRequest)
		return
	}

	s.log.Info("diagram stored", "filename", name, "bytes", len(data))
	writeJSON(w, http.StatusCreated, diagramInfo{
		Filename: name,
		Label:    label,
		URL:      "/diagrams/" + name,
	})
}

func (s *Server) handleDeleteDiagram(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "filename")
	if err := s.deps.Diagrams.Delete(name); err != nil {
		jsonErrorFor(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"deleted": name})
}

func (s *Server) handleServeDiagram(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "filename")
	if !s.deps.Diagrams.Exists(name) {
		http.NotFound(w, r)
		return
	}
	path, err := s.deps.Diagrams.Path(name)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	http.ServeFile(w, r, path)
}

func diagramLabel(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	return strings.ReplaceAll(base, "_", " ")
}

func isDiagramExt(ext string) bool {
	for _, want := range diagramExts {
		if ext == want {
			return true
		}
	}
	return false
}
