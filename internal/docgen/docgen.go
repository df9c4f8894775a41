// Package docgen authors the downloadable DOCX documents: topical booklets
// compiled from past papers and single-snippet revision handouts.
package docgen

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/fumiama/go-docx"
	"github.com/yuin/goldmark"

	"github.com/infotech9626platfm-ptes/9696-geog-resources-hub/internal/compile"
	"github.com/infotech9626platfm-ptes/9696-geog-resources-hub/internal/gallery"
)

const (
	titleSize   = "40"
	headingSize = "28"
)

// Booklet renders a compiled range result as a DOCX byte buffer with a
// title heading followed by the compiled sections.
func Booklet(subject, topic string, res compile.Result) ([]byte, error) {
	w := docx.New().WithDefaultTheme()
	addTitle(w, fmt.Sprintf("%s Geography: %s", subject, topic))
	addBody(w, res.Text())
	return serialize(w)
}

// Handout renders one saved snippet as a revision sheet. diagramPath may be
// empty; when set, the image is inserted under its own heading. The two
// task prompts are fixed.
func Handout(subject string, rec gallery.Record, diagramPath string) ([]byte, error) {
	w := docx.New().WithDefaultTheme()
	addTitle(w, fmt.Sprintf("%s Revision: %s", subject, rec.Topic))
	addBody(w, rec.Content)

	if diagramPath != "" {
		addHeading(w, "Refer to the Diagram Below")
		para := w.AddParagraph()
		if _, err := para.AddInlineDrawingFrom(diagramPath); err != nil {
			return nil, fmt.Errorf("docgen: insert diagram: %w", err)
		}
	}

	addHeading(w, "Tasks")
	w.AddParagraph().AddText("1. Identify the processes shown in the diagram.")
	w.AddParagraph().AddText(fmt.Sprintf("2. Evaluate how this affects the %s Case Study.", subject))

	return serialize(w)
}

// PreviewHTML renders a snippet body to HTML. Snippet content is treated as
// Markdown-capable text so pasted notes keep their emphasis and lists.
func PreviewHTML(rec gallery.Record) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(rec.Content), &buf); err != nil {
		return "", fmt.Errorf("docgen: render preview: %w", err)
	}
	return buf.String(), nil
}

func addTitle(w *docx.Docx, text string) {
	w.AddParagraph().AddText(text).Size(titleSize)
}

func addHeading(w *docx.Docx, text string) {
	w.AddParagraph().AddText(text).Size(headingSize)
}

// addBody splits multi-line text into one paragraph per line; DOCX runs
// must not carry raw newlines.
func addBody(w *docx.Docx, text string) {
	for _, line := range strings.Split(text, "\n") {
		para := w.AddParagraph()
		if line != "" {
			para.AddText(line)
		}
	}
}

func serialize(w *docx.Docx) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("docgen: serialize: %w", err)
	}
	return buf.Bytes(), nil
}
