package gallery

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/infotech9626platfm-ptes/9696-geog-resources-hub/internal/apperr"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore(filepath.Join(t.TempDir(), "gallery.csv"))
	s.now = func() time.Time { return time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC) }
	return s
}

func TestListMissingFileIsEmptyGallery(t *testing.T) {
	s := newTestStore(t)
	records, err := s.List()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected empty gallery, got %d records", len(records))
	}
}

func TestSaveAssignsIDAndDate(t *testing.T) {
	s := newTestStore(t)
	rec, err := s.Save("Hydrology", "2025 P1 V11", "The flood plain stores water.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.ID == "" {
		t.Error("expected a synthetic ID")
	}
	if rec.DateSaved != "2026-03-14" {
		t.Errorf("expected date 2026-03-14, got %s", rec.DateSaved)
	}

	records, err := s.List()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0] != rec {
		t.Errorf("round trip mismatch: %+v != %+v", records[0], rec)
	}
}

func TestSaveDoesNotDeduplicate(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Save("Hydrology", "2025 P1", "same text"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Save("Hydrology", "2025 P1", "same text"); err != nil {
		t.Fatal(err)
	}
	records, err := s.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].ID == records[1].ID {
		t.Error("duplicate snippets must still get distinct IDs")
	}
}

func TestListPreservesInsertionOrder(t *testing.T) {
	s := newTestStore(t)
	topics := []string{"Hydrology", "Migration", "Weathering"}
	for _, topic := range topics {
		if _, err := s.Save(topic, "2024 P1", "content"); err != nil {
			t.Fatal(err)
		}
	}
	records, err := s.List()
	if err != nil {
		t.Fatal(err)
	}
	for i, topic := range topics {
		if records[i].Topic != topic {
			t.Errorf("record %d: expected %s, got %s", i, topic, records[i].Topic)
		}
	}
}

func TestDeleteByID(t *testing.T) {
	s := newTestStore(t)
	keep, err := s.Save("Hydrology", "2024 P1", "keep me")
	if err != nil {
		t.Fatal(err)
	}
	drop, err := s.Save("Migration", "2023 P2", "drop me")
	if err != nil {
		t.Fatal(err)
	}

	if err := s.Delete(drop.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	records, err := s.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 || records[0].ID != keep.ID {
		t.Fatalf("expected only %s to remain, got %+v", keep.ID, records)
	}
}

func TestDeleteUnknownIDIsNotFound(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Save("Hydrology", "2024 P1", "content"); err != nil {
		t.Fatal(err)
	}
	err := s.Delete("no-such-id")
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGet(t *testing.T) {
	s := newTestStore(t)
	rec, err := s.Save("Hydrology", "2024 P1", "content")
	if err != nil {
		t.Fatal(err)
	}
	got, err := s.Get(rec.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != rec {
		t.Errorf("expected %+v, got %+v", rec, got)
	}
	if _, err := s.Get("missing"); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestContentWithCommasAndNewlinesRoundTrips(t *testing.T) {
	s := newTestStore(t)
	content := "Levees, dykes and \"washlands\"\nreduce flood risk."
	rec, err := s.Save("Hydrology", "2024 P1", content)
	if err != nil {
		t.Fatal(err)
	}
	got, err := s.Get(rec.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Content != content {
		t.Errorf("content mangled by CSV round trip: %q != %q", got.Content, content)
	}
}
