// Package compile aggregates keyword matches across a year range into one
// labeled compiled text, ready for booklet generation.
package compile

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/infotech9626platfm-ptes/9696-geog-resources-hub/internal/apperr"
	"github.com/infotech9626platfm-ptes/9696-geog-resources-hub/internal/codec"
	"github.com/infotech9626platfm-ptes/9696-geog-resources-hub/internal/scan"
)

// Section groups the matches of one (year, session) block, in first-seen
// variant order.
type Section struct {
	Year    int           `json:"year"`
	Session codec.Session `json:"session"`
	Matches []scan.Match  `json:"matches"`
}

// Result is the outcome of one range compilation. An empty Sections slice
// means no identifier in the whole range produced a match; that is a valid
// result, not a failure.
type Result struct {
	Sections []Section `json:"sections"`
	Warnings []string  `json:"warnings"`
}

// Empty reports whether the range produced no matches at all.
func (r Result) Empty() bool {
	return len(r.Sections) == 0
}

// MatchCount is the total number of matching pages across all sections.
func (r Result) MatchCount() int {
	n := 0
	for _, sec := range r.Sections {
		n += len(sec.Matches)
	}
	return n
}

// Text renders the compiled document body: a banner per (year, session)
// block followed by each matching page with its provenance line.
func (r Result) Text() string {
	banner := strings.Repeat("=", 40)
	var b strings.Builder
	for _, sec := range r.Sections {
		fmt.Fprintf(&b, "\n\n%s\nYEAR: %d | SESSION: %s\n%s\n",
			banner, sec.Year, strings.ToUpper(string(sec.Session)), banner)
		for _, m := range sec.Matches {
			fmt.Fprintf(&b, "\n--- %s (P.%d) ---\n%s", m.SourceLabel, m.PageNumber, m.Text)
		}
	}
	return b.String()
}

// Compiler runs a scanner over the Cartesian product of a year range, a
// session set and a variant set.
type Compiler struct {
	scanner *scan.Scanner
	subject string
	log     *slog.Logger
}

// New builds a compiler. The subject code is fixed for every identifier it
// constructs.
func New(scanner *scan.Scanner, subject string, log *slog.Logger) *Compiler {
	return &Compiler{scanner: scanner, subject: subject, log: log}
}

// Compile scans question papers for years [yearStart, yearStart+yearSpan),
// nesting year (outer), session, then variant (inner). Output sections are
// grouped by year then session in exactly that order. Missing papers are
// skipped silently; corrupt ones are skipped with a recorded warning. Only
// a malformed identifier aborts the range.
func (c *Compiler) Compile(yearStart, yearSpan int, sessions []codec.Session, variants []codec.PaperVariant, keyword string) (Result, error) {
	var res Result
	for year := yearStart; year < yearStart+yearSpan; year++ {
		for _, sess := range sessions {
			var sectionMatches []scan.Match
			for _, pv := range variants {
				id := codec.Identifier{
					Subject: c.subject,
					Session: sess,
					Year:    year,
					Paper:   pv.Paper,
					Variant: pv.Variant,
					Kind:    codec.KindQuestionPaper,
				}
				matches, err := c.scanner.Scan(id, keyword)
				if errors.Is(err, apperr.ErrNotFound) {
					continue
				}
				if errors.Is(err, apperr.ErrCorruptDocument) {
					warning := fmt.Sprintf("skipped unreadable paper %d %s %s", year, sess, pv.Code())
					res.Warnings = append(res.Warnings, warning)
					c.log.Warn("corrupt paper skipped",
						"year", year, "session", string(sess), "variant", pv.Code())
					continue
				}
				if err != nil {
					return Result{}, err
				}
				sectionMatches = append(sectionMatches, matches...)
			}
			if len(sectionMatches) > 0 {
				res.Sections = append(res.Sections, Section{
					Year:    year,
					Session: sess,
					Matches: sectionMatches,
				})
			}
		}
	}
	return res, nil
}
