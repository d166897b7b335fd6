package papers

import (
	"fmt"
	"strings"

	"github.com/scholium-io/linnaeus/internal/content"
)

// Parse normalizes a resolved content source into a Document. The returned
// diagnostics describe non-fatal extraction issues (skipped pages, dropped
// empty sections); they never affect the success of the parse itself.
func Parse(src *content.Source) (*Document, []string, error) {
	switch src.Kind {
	case content.SourceRaw:
		return parseRaw(src.Raw)
	case content.SourceStructured:
		return parseStructured(src.Structured)
	default:
		return nil, nil, fmt.Errorf("%w: unknown source kind %q", ErrUnsupportedFormat, src.Kind)
	}
}

// parseStructured trusts the caller-supplied section boundaries: headings and
// positions pass through unchanged, only empty bodies are dropped.
func parseStructured(payload *content.Payload) (*Document, []string, error) {
	if payload == nil {
		return nil, nil, fmt.Errorf("%w: nil structured payload", ErrParse)
	}

	var diagnostics []string
	sections := make([]Section, 0, len(payload.Sections))
	for _, ps := range payload.Sections {
		body := strings.TrimSpace(ps.Body)
		if body == "" {
			diagnostics = append(diagnostics, fmt.Sprintf("dropped empty section at position %d", ps.Position))
			continue
		}
		sections = append(sections, Section{Heading: ps.Heading, Text: body})
	}

	if len(sections) == 0 {
		return nil, diagnostics, ErrEmptyDocument
	}

	var title *string
	if payload.Title != nil {
		if t := strings.TrimSpace(*payload.Title); t != "" {
			title = &t
		}
	}

	doc := &Document{
		Title:        title,
		Sections:     sections,
		SectionCount: len(sections),
	}
	doc.Terms = extractTerms(doc)
	return doc, diagnostics, nil
}
