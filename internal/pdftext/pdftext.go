// Package pdftext extracts plain text from stored PDF files, page by page.
package pdftext

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	pdflib "github.com/ledongthuc/pdf"

	"github.com/infotech9626platfm-ptes/9696-geog-resources-hub/internal/apperr"
)

// Extractor is the text-extraction collaborator. An absent file reports
// apperr.ErrNotFound; an unparseable one reports apperr.ErrCorruptDocument.
// The two are distinct outcomes and callers handle them differently.
type Extractor interface {
	// Pages returns the plain text of every physical page, in order.
	// The slice index is the 0-based page position; unreadable pages
	// yield an empty string so positions stay aligned.
	Pages(path string) ([]string, error)
}

// PDF extracts text with the ledongthuc/pdf reader.
type PDF struct{}

func (PDF) Pages(path string) ([]string, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", apperr.ErrNotFound, filepath.Base(path))
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	f, reader, err := pdflib.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", apperr.ErrCorruptDocument, filepath.Base(path), err)
	}
	defer f.Close()

	numPages := reader.NumPage()
	pages := make([]string, 0, numPages)
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			pages = append(pages, "")
			continue
		}
		pages = append(pages, text)
	}
	return pages, nil
}
