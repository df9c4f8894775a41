package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/infotech9626platfm-ptes/9696-geog-resources-hub/internal/api"
	"github.com/infotech9626platfm-ptes/9696-geog-resources-hub/internal/codec"
	"github.com/infotech9626platfm-ptes/9696-geog-resources-hub/internal/compile"
	"github.com/infotech9626platfm-ptes/9696-geog-resources-hub/internal/config"
	"github.com/infotech9626platfm-ptes/9696-geog-resources-hub/internal/gallery"
	"github.com/infotech9626platfm-ptes/9696-geog-resources-hub/internal/pdftext"
	"github.com/infotech9626platfm-ptes/9696-geog-resources-hub/internal/scan"
	"github.com/infotech9626platfm-ptes/9696-geog-resources-hub/internal/store"
	"github.com/infotech9626platfm-ptes/9696-geog-resources-hub/internal/syllabus"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	syl, err := syllabus.Load(cfg.SyllabusFile)
	if err != nil {
		log.Error("invalid syllabus", "error", err)
		os.Exit(1)
	}

	qp, err := store.NewFS(cfg.QPDir)
	if err != nil {
		log.Error("question paper store", "error", err)
		os.Exit(1)
	}
	ms, err := store.NewFS(cfg.MSDir)
	if err != nil {
		log.Error("marking scheme store", "error", err)
		os.Exit(1)
	}
	diagrams, err := store.NewFS(cfg.DiagramDir)
	if err != nil {
		log.Error("diagram store", "error", err)
		os.Exit(1)
	}

	c := codec.New(syl)
	scanner := scan.New(c, qp, ms, pdftext.PDF{})
	compiler := compile.New(scanner, syl.Subject, log)

	srv := api.NewServer(api.Deps{
		Syllabus: syl,
		Codec:    c,
		Scanner:  scanner,
		Compiler: compiler,
		Gallery:  gallery.NewStore(cfg.GalleryFile),
		Glossary: gallery.NewGlossary(cfg.GlossaryFile),
		QP:       qp,
		MS:       ms,
		Diagrams: diagrams,
	}, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("starting resources hub", "port", cfg.Port, "subject", syl.Subject)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
