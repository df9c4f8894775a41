package gallery

// Entry is one glossary definition. Terms are unique within the table.
type Entry struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
}

var glossaryHeader = []string{"Term", "Definition"}

// Glossary is the term/definition table, deduplicated by term on every
// write.
type Glossary struct {
	path string
}

// NewGlossary opens (or will create on first save) the glossary CSV at path.
func NewGlossary(path string) *Glossary {
	return &Glossary{path: path}
}

// Entries returns all entries in insertion order.
func (g *Glossary) Entries() ([]Entry, error) {
	rows, err := readTable(g.path, len(glossaryHeader))
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, Entry{Term: row[0], Definition: row[1]})
	}
	return entries, nil
}

// Save appends an entry and rewrites the table deduplicated by term. The
// first occurrence of a term wins, so a pre-existing entry is kept over a
// newly added duplicate.
func (g *Glossary) Save(term, definition string) error {
	entries, err := g.Entries()
	if err != nil {
		return err
	}
	entries = append(entries, Entry{Term: term, Definition: definition})

	seen := make(map[string]bool, len(entries))
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		if seen[e.Term] {
			continue
		}
		seen[e.Term] = true
		rows = append(rows, []string{e.Term, e.Definition})
	}
	return writeTable(g.path, glossaryHeader, rows)
}
