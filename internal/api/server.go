package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/infotech9626platfm-ptes/9696-geog-resources-hub/internal/codec"
	"github.com/infotech9626platfm-ptes/9696-geog-resources-hub/internal/compile"
	"github.com/infotech9626platfm-ptes/9696-geog-resources-hub/internal/config"
	"github.com/infotech9626platfm-ptes/9696-geog-resources-hub/internal/gallery"
	"github.com/infotech9626platfm-ptes/9696-geog-resources-hub/internal/scan"
	"github.com/infotech9626platfm-ptes/9696-geog-resources-hub/internal/store"
	"github.com/infotech9626platfm-ptes/9696-geog-resources-hub/internal/syllabus"
)

// Deps bundles the collaborators the handlers operate on.
type Deps struct {
	Syllabus *syllabus.Syllabus
	Codec    *codec.Codec
	Scanner  *scan.Scanner
	Compiler *compile.Compiler
	Gallery  *gallery.Store
	Glossary *gallery.Glossary
	QP       *store.FS
	MS       *store.FS
	Diagrams *store.FS
}

// Server is the HTTP API server for the resources hub.
type Server struct {
	router chi.Router
	deps   Deps
	log    *slog.Logger
	cfg    config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(deps Deps, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		deps: deps,
		log:  log,
		cfg:  cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)
	r.Get("/papers/{filename}", s.handleServePaper)
	r.Get("/diagrams/{filename}", s.handleServeDiagram)

	// Authenticated endpoints. Auth is optional: an empty token means
	// local single-user mode.
	r.Group(func(r chi.Router) {
		if s.cfg.AuthToken != "" {
			r.Use(AuthMiddleware(s.cfg.AuthToken, s.log))
		}

		r.Post("/api/papers", s.handleUploadPaper)
		r.Get("/api/search", s.handleSearch)
		r.Post("/api/booklets", s.handleBooklet)

		r.Get("/api/gallery", s.handleListGallery)
		r.Post("/api/gallery", s.handleSaveSnippet)
		r.Delete("/api/gallery/{recordID}", s.handleDeleteSnippet)

		r.Post("/api/handouts", s.handleHandout)
		r.Post("/api/handouts/preview", s.handleHandoutPreview)

		r.Get("/api/diagrams", s.handleListDiagrams)
		r.Post("/api/diagrams", s.handleUploadDiagram)
		r.Delete("/api/diagrams/{filename}", s.handleDeleteDiagram)

		r.Get("/api/glossary", s.handleListGlossary)
		r.Post("/api/glossary", s.handleSaveGlossary)

		r.Get("/api/predictions", s.handlePredictions)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
