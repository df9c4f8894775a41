// Package gallery persists the case-study snippet log and the glossary as
// flat CSV tables. Writes are all-or-nothing: the table is rewritten to a
// temp file and renamed into place, so a failed write never leaves a
// partial table behind.
package gallery

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/infotech9626platfm-ptes/9696-geog-resources-hub/internal/apperr"
)

// Record is one saved case-study snippet. ID is a synthetic identifier
// assigned at save time; deletion addresses the ID, never a row position.
type Record struct {
	ID        string `json:"id"`
	DateSaved string `json:"date_saved"` // YYYY-MM-DD
	Topic     string `json:"topic"`
	Source    string `json:"source"`
	Content   string `json:"content"`
}

var galleryHeader = []string{"ID", "Date Saved", "Topic", "Source", "Content"}

// Store is the gallery table. Append-only except for explicit deletion.
type Store struct {
	path string
	now  func() time.Time
}

// NewStore opens (or will create on first save) the gallery CSV at path.
func NewStore(path string) *Store {
	return &Store{path: path, now: time.Now}
}

// List returns all records in insertion order. A table that does not exist
// yet is an empty gallery, not an error.
func (s *Store) List() ([]Record, error) {
	rows, err := readTable(s.path, len(galleryHeader))
	if err != nil {
		return nil, err
	}
	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, Record{
			ID:        row[0],
			DateSaved: row[1],
			Topic:     row[2],
			Source:    row[3],
			Content:   row[4],
		})
	}
	return records, nil
}

// Save appends a new record and returns it with its assigned ID and date.
// No deduplication: saving the same snippet twice yields two records.
func (s *Store) Save(topic, source, content string) (Record, error) {
	records, err := s.List()
	if err != nil {
		return Record{}, err
	}
	rec := Record{
		ID:        uuid.NewString(),
		DateSaved: s.now().Format("2006-01-02"),
		Topic:     topic,
		Source:    source,
		Content:   content,
	}
	records = append(records, rec)
	if err := s.writeAll(records); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// Get returns the record with the given ID.
func (s *Store) Get(id string) (Record, error) {
	records, err := s.List()
	if err != nil {
		return Record{}, err
	}
	for _, rec := range records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return Record{}, fmt.Errorf("%w: gallery record %s", apperr.ErrNotFound, id)
}

// Delete removes the record with the given ID.
func (s *Store) Delete(id string) error {
	records, err := s.List()
	if err != nil {
		return err
	}
	kept := records[:0]
	found := false
	for _, rec := range records {
		if rec.ID == id {
			found = true
			continue
		}
		kept = append(kept, rec)
	}
	if !found {
		return fmt.Errorf("%w: gallery record %s", apperr.ErrNotFound, id)
	}
	return s.writeAll(kept)
}

func (s *Store) writeAll(records []Record) error {
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []string{rec.ID, rec.DateSaved, rec.Topic, rec.Source, rec.Content})
	}
	return writeTable(s.path, galleryHeader, rows)
}

// readTable reads a whole CSV table, skipping the header row. Rows with the
// wrong width fail the read; the table either round-trips or the operation
// reports ErrPersistence.
func readTable(path string, width int) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: open %s: %v", apperr.ErrPersistence, path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = width
	reader.LazyQuotes = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", apperr.ErrPersistence, path, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[1:], nil
}

// writeTable rewrites the whole table atomically.
func writeTable(path string, header []string, rows [][]string) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("%w: encode %s: %v", apperr.ErrPersistence, path, err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("%w: encode %s: %v", apperr.ErrPersistence, path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("%w: encode %s: %v", apperr.ErrPersistence, path, err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: mkdir %s: %v", apperr.ErrPersistence, dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".table-tmp-*")
	if err != nil {
		return fmt.Errorf("%w: create temp for %s: %v", apperr.ErrPersistence, path, err)
	}
	tmpName := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("%w: write %s: %v", apperr.ErrPersistence, path, err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("%w: fsync %s: %v", apperr.ErrPersistence, path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: close temp for %s: %v", apperr.ErrPersistence, path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("%w: rename %s: %v", apperr.ErrPersistence, path, err)
	}
	success = true
	return nil
}
