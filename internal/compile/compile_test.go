package compile

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/infotech9626platfm-ptes/9696-geog-resources-hub/internal/apperr"
	"github.com/infotech9626platfm-ptes/9696-geog-resources-hub/internal/codec"
	"github.com/infotech9626platfm-ptes/9696-geog-resources-hub/internal/scan"
	"github.com/infotech9626platfm-ptes/9696-geog-resources-hub/internal/store"
	"github.com/infotech9626platfm-ptes/9696-geog-resources-hub/internal/syllabus"
)

type fakeExtractor struct {
	docs    map[string][]string
	corrupt map[string]bool
}

func (f *fakeExtractor) Pages(path string) ([]string, error) {
	name := filepath.Base(path)
	if f.corrupt[name] {
		return nil, fmt.Errorf("%w: %s", apperr.ErrCorruptDocument, name)
	}
	pages, ok := f.docs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperr.ErrNotFound, name)
	}
	return pages, nil
}

func newTestCompiler(t *testing.T, ex *fakeExtractor) *Compiler {
	t.Helper()
	qp, err := store.NewFS(filepath.Join(t.TempDir(), "qp"))
	if err != nil {
		t.Fatal(err)
	}
	ms, err := store.NewFS(filepath.Join(t.TempDir(), "ms"))
	if err != nil {
		t.Fatal(err)
	}
	scanner := scan.New(codec.New(syllabus.Default()), qp, ms, ex)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(scanner, "9696", log)
}

var allVariantsP1 = []codec.PaperVariant{
	{Paper: 1, Variant: 1},
	{Paper: 1, Variant: 2},
	{Paper: 1, Variant: 3},
}

func TestCompilePreservesYearThenSessionOrder(t *testing.T) {
	ex := &fakeExtractor{docs: map[string][]string{
		"9696_w23_qp_11.pdf": {"flood management in 2023"},
		"9696_s22_qp_11.pdf": {"flood plains of the Mississippi"},
		"9696_m23_qp_12.pdf": {"urban flood defences"},
	}}
	c := newTestCompiler(t, ex)

	res, err := c.Compile(2022, 2, codec.Sessions, allVariantsP1, "flood")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Sections) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(res.Sections))
	}

	want := []struct {
		year    int
		session codec.Session
	}{
		{2022, codec.SessionJune},
		{2023, codec.SessionMarch},
		{2023, codec.SessionNovember},
	}
	for i, w := range want {
		sec := res.Sections[i]
		if sec.Year != w.year || sec.Session != w.session {
			t.Errorf("section %d: expected %d/%s, got %d/%s", i, w.year, w.session, sec.Year, sec.Session)
		}
	}

	text := res.Text()
	pos2022 := strings.Index(text, "YEAR: 2022")
	pos2023 := strings.Index(text, "YEAR: 2023")
	if pos2022 < 0 || pos2023 < 0 || pos2022 > pos2023 {
		t.Errorf("compiled text must list 2022 before 2023:\n%s", text)
	}
}

func TestCompileEmptyRangeIsEmptyResultNotError(t *testing.T) {
	c := newTestCompiler(t, &fakeExtractor{})
	res, err := c.Compile(2020, 3, codec.Sessions, allVariantsP1, "flood")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !res.Empty() {
		t.Errorf("expected empty result, got %d sections", len(res.Sections))
	}
	if res.MatchCount() != 0 {
		t.Errorf("expected 0 matches, got %d", res.MatchCount())
	}
	if res.Text() != "" {
		t.Errorf("expected empty text, got %q", res.Text())
	}
}

func TestCompileSkipsCorruptWithWarning(t *testing.T) {
	ex := &fakeExtractor{
		docs: map[string][]string{
			"9696_s22_qp_12.pdf": {"flood risk"},
		},
		corrupt: map[string]bool{
			"9696_s22_qp_11.pdf": true,
		},
	}
	c := newTestCompiler(t, ex)

	res, err := c.Compile(2022, 1, []codec.Session{codec.SessionJune}, allVariantsP1, "flood")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(res.Warnings))
	}
	if res.MatchCount() != 1 {
		t.Errorf("expected the readable paper to still match, got %d matches", res.MatchCount())
	}
}

func TestCompileGroupsVariantsIntoOneSection(t *testing.T) {
	ex := &fakeExtractor{docs: map[string][]string{
		"9696_s22_qp_11.pdf": {"flood one"},
		"9696_s22_qp_12.pdf": {"flood two"},
	}}
	c := newTestCompiler(t, ex)

	res, err := c.Compile(2022, 1, []codec.Session{codec.SessionJune}, allVariantsP1, "flood")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(res.Sections))
	}
	if len(res.Sections[0].Matches) != 2 {
		t.Errorf("expected 2 matches in the section, got %d", len(res.Sections[0].Matches))
	}
}

func TestCompileTextCarriesProvenance(t *testing.T) {
	ex := &fakeExtractor{docs: map[string][]string{
		"9696_m24_qp_11.pdf": {"one", "hazard mapping", "three"},
	}}
	c := newTestCompiler(t, ex)

	res, err := c.Compile(2024, 1, codec.Sessions, allVariantsP1, "hazard")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	text := res.Text()
	if !strings.Contains(text, "--- 9696_m24_qp_11.pdf (P.2) ---") {
		t.Errorf("expected provenance line in text, got:\n%s", text)
	}
	if !strings.Contains(text, "SESSION: M") {
		t.Errorf("expected session banner in text, got:\n%s", text)
	}
}
