// Package syllabus holds the static 9696 syllabus structure: the topic
// taxonomy used by the priority report and the per-paper variant sets used
// by the filename codec. The structure is built once at startup and passed
// explicitly to its consumers; it is never mutated afterwards.
package syllabus

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Category is one syllabus component with its ordered list of units.
type Category struct {
	Name  string   `yaml:"name"`
	Units []string `yaml:"units"`
}

// Syllabus is the immutable subject configuration.
type Syllabus struct {
	Subject    string        `yaml:"subject"`
	Taxonomy   []Category    `yaml:"taxonomy"`
	VariantMap map[int][]int `yaml:"variants"`
}

// Default returns the built-in Geography 9696 configuration.
func Default() *Syllabus {
	return &Syllabus{
		Subject: "9696",
		Taxonomy: []Category{
			{Name: "AS Physical Core", Units: []string{
				"Hydrology", "Fluvial geomorphology", "Atmosphere", "Weather", "Rocks", "Weathering",
			}},
			{Name: "AS Human Core", Units: []string{
				"Population", "Migration", "Settlement dynamics",
			}},
			{Name: "A2 Physical Options", Units: []string{
				"Tropical environments", "Coastal environments", "Hazardous environments", "Hot arid", "Semi-arid",
			}},
			{Name: "A2 Human Options", Units: []string{
				"Production", "Environmental management", "Global interdependence", "Economic transition",
			}},
		},
		VariantMap: map[int][]int{
			1: {1, 2, 3},
			2: {1, 2, 3},
			3: {1, 2, 3},
			4: {1, 2, 3},
		},
	}
}

// Load reads a YAML syllabus file. An empty path returns the defaults.
// The file replaces the defaults wholesale; partial files are rejected.
func Load(path string) (*Syllabus, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("syllabus: read %s: %w", path, err)
	}
	var s Syllabus
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("syllabus: parse %s: %w", path, err)
	}
	if err := s.check(); err != nil {
		return nil, fmt.Errorf("syllabus: %s: %w", path, err)
	}
	return &s, nil
}

func (s *Syllabus) check() error {
	if s.Subject == "" {
		return fmt.Errorf("subject is required")
	}
	if len(s.Taxonomy) == 0 {
		return fmt.Errorf("taxonomy must have at least one category")
	}
	for _, cat := range s.Taxonomy {
		if cat.Name == "" || len(cat.Units) == 0 {
			return fmt.Errorf("category %q must have a name and units", cat.Name)
		}
	}
	if len(s.VariantMap) == 0 {
		return fmt.Errorf("variants must list at least one paper")
	}
	return nil
}

// VariantAllowed reports whether variant belongs to paper's allowed set.
func (s *Syllabus) VariantAllowed(paper, variant int) bool {
	for _, v := range s.VariantMap[paper] {
		if v == variant {
			return true
		}
	}
	return false
}

// Papers returns the paper numbers in ascending order.
func (s *Syllabus) Papers() []int {
	out := make([]int, 0, len(s.VariantMap))
	for p := range s.VariantMap {
		out = append(out, p)
	}
	sort.Ints(out)
	return out
}

// UnitCount is the total number of units across all categories. The priority
// report always has exactly this many rows.
func (s *Syllabus) UnitCount() int {
	n := 0
	for _, cat := range s.Taxonomy {
		n += len(cat.Units)
	}
	return n
}
