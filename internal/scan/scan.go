// Package scan walks a stored paper page by page and returns keyword matches
// with provenance.
package scan

import (
	"strings"

	"github.com/infotech9626platfm-ptes/9696-geog-resources-hub/internal/codec"
	"github.com/infotech9626platfm-ptes/9696-geog-resources-hub/internal/pdftext"
	"github.com/infotech9626platfm-ptes/9696-geog-resources-hub/internal/store"
)

// Match is one matching page. PageNumber is the 1-based physical page index.
type Match struct {
	SourceLabel string `json:"source"`
	PageNumber  int    `json:"page"`
	Text        string `json:"text"`
}

// Scanner resolves identifiers to stored files and scans their text. It
// keeps no state between calls; every Scan re-opens and re-reads the file.
type Scanner struct {
	codec   *codec.Codec
	qp, ms  *store.FS
	extract pdftext.Extractor
}

// New builds a scanner over the question-paper and marking-scheme stores.
func New(c *codec.Codec, qp, ms *store.FS, extract pdftext.Extractor) *Scanner {
	return &Scanner{codec: c, qp: qp, ms: ms, extract: extract}
}

func (s *Scanner) storeFor(kind codec.Kind) *store.FS {
	if kind == codec.KindMarkingScheme {
		return s.ms
	}
	return s.qp
}

// Exists reports whether the identified document has been uploaded.
// A malformed identifier also reports false.
func (s *Scanner) Exists(id codec.Identifier) bool {
	name, err := s.codec.Encode(id)
	if err != nil {
		return false
	}
	return s.storeFor(id.Kind).Exists(name)
}

// Scan returns one Match per page whose text contains keyword as a
// case-insensitive substring. An empty keyword matches every page. The
// error is apperr.ErrNotFound when the document was never uploaded,
// apperr.ErrCorruptDocument when it cannot be parsed, and
// apperr.ErrMalformedIdentifier when the identifier itself is invalid.
// An existing document with zero matching pages returns an empty slice
// and a nil error.
func (s *Scanner) Scan(id codec.Identifier, keyword string) ([]Match, error) {
	name, err := s.codec.Encode(id)
	if err != nil {
		return nil, err
	}
	path, err := s.storeFor(id.Kind).Path(name)
	if err != nil {
		return nil, err
	}

	pages, err := s.extract.Pages(path)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(keyword)
	var matches []Match
	for i, text := range pages {
		if needle != "" && !strings.Contains(strings.ToLower(text), needle) {
			continue
		}
		matches = append(matches, Match{
			SourceLabel: name,
			PageNumber:  i + 1,
			Text:        text,
		})
	}
	return matches, nil
}
