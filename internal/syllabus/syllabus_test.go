package syllabus

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultShape(t *testing.T) {
	s := Default()
	if s.Subject != "9696" {
		t.Errorf("expected subject 9696, got %s", s.Subject)
	}
	if len(s.Taxonomy) != 4 {
		t.Fatalf("expected 4 categories, got %d", len(s.Taxonomy))
	}
	if s.UnitCount() != 18 {
		t.Errorf("expected 18 units, got %d", s.UnitCount())
	}
	if got := s.Papers(); len(got) != 4 || got[0] != 1 || got[3] != 4 {
		t.Errorf("expected papers [1 2 3 4], got %v", got)
	}
}

func TestVariantAllowed(t *testing.T) {
	s := Default()
	if !s.VariantAllowed(1, 1) {
		t.Error("paper 1 variant 1 should be allowed")
	}
	if s.VariantAllowed(1, 9) {
		t.Error("paper 1 variant 9 should not be allowed")
	}
	if s.VariantAllowed(5, 1) {
		t.Error("unknown paper should not allow any variant")
	}
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	s, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Subject != "9696" {
		t.Errorf("expected default subject, got %s", s.Subject)
	}
}

func TestLoadYAMLFile(t *testing.T) {
	content := `subject: "9700"
taxonomy:
  - name: Cells
    units: [Cell structure, Membranes]
variants:
  1: [1, 2]
`
	path := filepath.Join(t.TempDir(), "syllabus.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Subject != "9700" {
		t.Errorf("expected subject 9700, got %s", s.Subject)
	}
	if s.UnitCount() != 2 {
		t.Errorf("expected 2 units, got %d", s.UnitCount())
	}
	if !s.VariantAllowed(1, 2) || s.VariantAllowed(1, 3) {
		t.Error("variant set not loaded from file")
	}
}

func TestLoadRejectsIncompleteFile(t *testing.T) {
	cases := map[string]string{
		"missing subject":  "taxonomy:\n  - name: A\n    units: [B]\nvariants:\n  1: [1]\n",
		"missing taxonomy": "subject: \"9696\"\nvariants:\n  1: [1]\n",
		"missing variants": "subject: \"9696\"\ntaxonomy:\n  - name: A\n    units: [B]\n",
		"empty units":      "subject: \"9696\"\ntaxonomy:\n  - name: A\n    units: []\nvariants:\n  1: [1]\n",
	}
	for name, content := range cases {
		path := filepath.Join(t.TempDir(), "syllabus.yaml")
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Errorf("%s: expected error, got nil", name)
		}
	}
}
