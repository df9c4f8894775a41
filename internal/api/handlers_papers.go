package api

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/infotech9626platfm-ptes/9696-geog-resources-hub/internal/codec"
)

// handleUploadPaper stores an uploaded PDF under its codec-derived name.
// Form fields: year, session, paper, variant, kind, file.
func (s *Server) handleUploadPaper(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024) // extra 1MB for form overhead

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	id, err := s.identifierFromForm(r)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	name, err := s.deps.Codec.Encode(id)
	if err != nil {
		jsonErrorFor(w, err)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		jsonError(w, "file is required: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		jsonError(w, "failed to read file", http.StatusInternalServerError)
		return
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		jsonError(w, fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
		return
	}

	dst := s.deps.QP
	if id.Kind == codec.KindMarkingScheme {
		dst = s.deps.MS
	}
	if err := dst.Write(name, data); err != nil {
		jsonError(w, "failed to store paper: "+err.Error(), http.StatusInternalServerError)
		return
	}

	s.log.Info("paper stored", "filename", name, "bytes", len(data))
	writeJSON(w, http.StatusCreated, map[string]any{
		"filename": name,
		"url":      "/papers/" + name,
		"size":     len(data),
	})
}

// handleServePaper serves a stored QP or MS by its canonical filename. The
// filename is decoded first, so only names in the naming scheme resolve.
func (s *Server) handleServePaper(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "filename")
	id, err := s.deps.Codec.Decode(name)
	if err != nil {
		jsonErrorFor(w, err)
		return
	}

	src := s.deps.QP
	if id.Kind == codec.KindMarkingScheme {
		src = s.deps.MS
	}
	if !src.Exists(name) {
		jsonError(w, "paper not uploaded: "+name, http.StatusNotFound)
		return
	}
	path, err := src.Path(name)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	http.ServeFile(w, r, path)
}

func (s *Server) identifierFromForm(r *http.Request) (codec.Identifier, error) {
	year, err := strconv.Atoi(r.FormValue("year"))
	if err != nil {
		return codec.Identifier{}, fmt.Errorf("year must be a number")
	}
	sess, err := codec.ParseSession(r.FormValue("session"))
	if err != nil {
		return codec.Identifier{}, err
	}
	paper, err := strconv.Atoi(r.FormValue("paper"))
	if err != nil {
		return codec.Identifier{}, fmt.Errorf("paper must be a number")
	}
	variant, err := strconv.Atoi(r.FormValue("variant"))
	if err != nil {
		return codec.Identifier{}, fmt.Errorf("variant must be a number")
	}
	kind, err := codec.ParseKind(r.FormValue("kind"))
	if err != nil {
		return codec.Identifier{}, err
	}
	return codec.Identifier{
		Subject: s.deps.Codec.Subject(),
		Session: sess,
		Year:    year,
		Paper:   paper,
		Variant: variant,
		Kind:    kind,
	}, nil
}
