package config

import (
	"os"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type Config struct {
	Port string

	// Auth. Empty token disables authentication (local single-user mode).
	AuthToken string

	// Storage layout.
	QPDir        string
	MSDir        string
	DiagramDir   string
	GalleryFile  string
	GlossaryFile string

	// Optional YAML override for the built-in syllabus.
	SyllabusFile string

	// Upload limits.
	MaxUploadBytes int64

	// Booklet defaults. The original tool always compiled a 4-year window.
	DefaultYearSpan int
}

func Load() Config {
	return Config{
		Port: envOr("PORT", "8090"),

		AuthToken: os.Getenv("HUB_API_TOKEN"),

		QPDir:        envOr("QP_DIR", "pyp9696_qp"),
		MSDir:        envOr("MS_DIR", "pyp9696_ms"),
		DiagramDir:   envOr("DIAGRAM_DIR", "geography_diagrams"),
		GalleryFile:  envOr("GALLERY_FILE", "geography_case_studies.csv"),
		GlossaryFile: envOr("GLOSSARY_FILE", "geography_glossary.csv"),

		SyllabusFile: os.Getenv("SYLLABUS_FILE"),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 52428800), // 50MB

		DefaultYearSpan: envInt("DEFAULT_YEAR_SPAN", 4),
	}
}

func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Port, validation.Required),
		validation.Field(&c.QPDir, validation.Required),
		validation.Field(&c.MSDir, validation.Required),
		validation.Field(&c.DiagramDir, validation.Required),
		validation.Field(&c.GalleryFile, validation.Required),
		validation.Field(&c.GlossaryFile, validation.Required),
		validation.Field(&c.MaxUploadBytes, validation.Required, validation.Min(int64(1))),
		validation.Field(&c.DefaultYearSpan, validation.Required, validation.Min(1), validation.Max(20)),
	)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}
