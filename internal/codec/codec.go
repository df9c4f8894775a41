// Package codec is the single source of truth for on-disk paper naming.
// Every component that touches a stored paper goes through Encode/Decode;
// nothing else may construct a filename.
package codec

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/infotech9626platfm-ptes/9696-geog-resources-hub/internal/apperr"
	"github.com/infotech9626platfm-ptes/9696-geog-resources-hub/internal/syllabus"
)

// Session is the single-letter exam sitting code.
type Session string

const (
	SessionMarch    Session = "m"
	SessionJune     Session = "s"
	SessionNovember Session = "w"
)

// Sessions lists all sittings in calendar order.
var Sessions = []Session{SessionMarch, SessionJune, SessionNovember}

// Name returns the sitting's month name.
func (s Session) Name() string {
	switch s {
	case SessionMarch:
		return "March"
	case SessionJune:
		return "June"
	case SessionNovember:
		return "November"
	}
	return string(s)
}

// ParseSession accepts the letter code or the month name, case-insensitively.
func ParseSession(v string) (Session, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "m", "march":
		return SessionMarch, nil
	case "s", "june":
		return SessionJune, nil
	case "w", "november":
		return SessionNovember, nil
	}
	return "", fmt.Errorf("%w: unknown session %q", apperr.ErrMalformedIdentifier, v)
}

// Kind distinguishes question papers from marking schemes.
type Kind string

const (
	KindQuestionPaper Kind = "qp"
	KindMarkingScheme Kind = "ms"
)

// ParseKind accepts the short code or the long form.
func ParseKind(v string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "qp", "question paper":
		return KindQuestionPaper, nil
	case "ms", "marking scheme":
		return KindMarkingScheme, nil
	}
	return "", fmt.Errorf("%w: unknown document kind %q", apperr.ErrMalformedIdentifier, v)
}

// Identifier names one stored paper. It is constructed transiently; only its
// encoded string form is ever persisted, as a filename.
type Identifier struct {
	Subject string
	Session Session
	Year    int
	Paper   int
	Variant int
	Kind    Kind
}

// Reference is the human-readable provenance string stored with saved
// snippets, e.g. "2025 P1 V11".
func (id Identifier) Reference() string {
	return fmt.Sprintf("%d P%d V%d%d", id.Year, id.Paper, id.Paper, id.Variant)
}

// PaperVariant is a (paper, variant) pair, e.g. code "11" = paper 1 variant 1.
type PaperVariant struct {
	Paper   int
	Variant int
}

// Code returns the two-digit paper+variant code.
func (pv PaperVariant) Code() string {
	return fmt.Sprintf("%d%d", pv.Paper, pv.Variant)
}

// ParseVariantCode splits a two-digit code like "11" into its pair.
func ParseVariantCode(code string) (PaperVariant, error) {
	if len(code) != 2 || code[0] < '1' || code[0] > '9' || code[1] < '1' || code[1] > '9' {
		return PaperVariant{}, fmt.Errorf("%w: bad variant code %q", apperr.ErrMalformedIdentifier, code)
	}
	return PaperVariant{Paper: int(code[0] - '0'), Variant: int(code[1] - '0')}, nil
}

var (
	subjectRe  = regexp.MustCompile(`^\d{4}$`)
	filenameRe = regexp.MustCompile(`^(\d{4})_([msw])(\d{2})_(qp|ms)_(\d)(\d)\.pdf$`)
)

// Codec maps identifiers to canonical filenames and back. The allowed
// variant sets come from the syllabus configuration.
type Codec struct {
	syl *syllabus.Syllabus
}

// New creates a codec over the given syllabus.
func New(syl *syllabus.Syllabus) *Codec {
	return &Codec{syl: syl}
}

// Subject returns the configured subject code.
func (c *Codec) Subject() string {
	return c.syl.Subject
}

// Validate checks every field of the identifier, including variant
// membership for the paper. Failures wrap ErrMalformedIdentifier.
func (c *Codec) Validate(id Identifier) error {
	err := validation.ValidateStruct(&id,
		validation.Field(&id.Subject, validation.Required, validation.Match(subjectRe)),
		validation.Field(&id.Session, validation.Required, validation.In(SessionMarch, SessionJune, SessionNovember)),
		validation.Field(&id.Year, validation.Required, validation.Min(2000), validation.Max(2099)),
		validation.Field(&id.Paper, validation.Required, validation.Min(1), validation.Max(9)),
		validation.Field(&id.Kind, validation.Required, validation.In(KindQuestionPaper, KindMarkingScheme)),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrMalformedIdentifier, err)
	}
	if !c.syl.VariantAllowed(id.Paper, id.Variant) {
		return fmt.Errorf("%w: paper %d has no variant %d", apperr.ErrMalformedIdentifier, id.Paper, id.Variant)
	}
	return nil
}

// Encode produces the canonical filename, e.g. 9696_s25_qp_11.pdf.
func (c *Codec) Encode(id Identifier) (string, error) {
	if err := c.Validate(id); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s_%s%02d_%s_%d%d.pdf",
		id.Subject, id.Session, id.Year%100, id.Kind, id.Paper, id.Variant), nil
}

// Decode is the exact inverse of Encode. Two-digit years map into 20xx.
func (c *Codec) Decode(name string) (Identifier, error) {
	m := filenameRe.FindStringSubmatch(name)
	if m == nil {
		return Identifier{}, fmt.Errorf("%w: %q does not match the naming scheme", apperr.ErrMalformedIdentifier, name)
	}
	yy, _ := strconv.Atoi(m[3])
	paper, _ := strconv.Atoi(m[5])
	variant, _ := strconv.Atoi(m[6])
	id := Identifier{
		Subject: m[1],
		Session: Session(m[2]),
		Year:    2000 + yy,
		Paper:   paper,
		Variant: variant,
		Kind:    Kind(m[4]),
	}
	if err := c.Validate(id); err != nil {
		return Identifier{}, err
	}
	return id, nil
}
