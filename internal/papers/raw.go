package papers

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// parseRaw extracts and segments text from raw PDF bytes. The document is
// rejected before extraction when it is not a readable PDF, and after
// extraction when no page produced any text.
func parseRaw(data []byte) (*Document, []string, error) {
	if len(data) == 0 {
		return nil, nil, fmt.Errorf("%w: empty file", ErrUnsupportedFormat)
	}

	pages, err := api.PageCount(bytes.NewReader(data), nil)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
	}
	if pages == 0 {
		return nil, nil, fmt.Errorf("%w: document has no pages", ErrParse)
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	var diagnostics []string
	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		text, err := extractPage(reader, i)
		if err != nil {
			diagnostics = append(diagnostics, fmt.Sprintf("skipped page %d: %v", i, err))
			continue
		}
		if text == "" {
			diagnostics = append(diagnostics, fmt.Sprintf("skipped page %d: no text content", i))
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	body := strings.TrimSpace(sb.String())
	if body == "" {
		return nil, diagnostics, ErrEmptyDocument
	}

	lines := splitLines(body)
	title := extractTitle(lines)

	sections, segDiags := segment(lines, title)
	diagnostics = append(diagnostics, segDiags...)

	doc := &Document{
		Title:    title,
		Sections: sections,
	}
	doc.SectionCount = len(doc.Sections)
	doc.Terms = extractTerms(doc)
	return doc, diagnostics, nil
}

// extractPage recovers from panics inside the text extractor; malformed
// content streams surface as a skipped page rather than a failed parse.
func extractPage(reader *pdf.Reader, n int) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("extractor panic: %v", r)
		}
	}()

	page := reader.Page(n)
	if page.V.IsNull() {
		return "", fmt.Errorf("null page object")
	}

	text, err = page.GetPlainText(nil)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

func splitLines(body string) []string {
	raw := strings.Split(body, "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// extractTitle returns the first substantial line near the top of the
// document that does not look like journal front matter.
func extractTitle(lines []string) *string {
	limit := 10
	if len(lines) < limit {
		limit = len(lines)
	}

	for _, line := range lines[:limit] {
		if len(line) > 20 && !isFrontMatter(line) {
			title := line
			return &title
		}
	}
	return nil
}

func isFrontMatter(line string) bool {
	lower := strings.ToLower(line)
	markers := []string{
		"journal", "volume", "vol.", "copyright", "©", "issn", "doi:",
		"proceedings", "preprint", "arxiv", "published", "received",
		"accepted", "downloaded", "license", "rights reserved",
	}
	for _, m := range markers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}

// segment groups lines into sections at detected heading lines. Text before
// the first heading becomes an untitled leading section. The title line, when
// known, is excluded from section text. Headings with no body are dropped
// with a diagnostic.
func segment(lines []string, title *string) ([]Section, []string) {
	var sections []Section
	var diagnostics []string
	var heading *string
	var buf []string

	flush := func() {
		text := strings.TrimSpace(strings.Join(buf, "\n"))
		if text == "" {
			if heading != nil {
				diagnostics = append(diagnostics, fmt.Sprintf("dropped empty section %q", *heading))
				heading = nil
			}
			buf = nil
			return
		}
		sections = append(sections, Section{Heading: heading, Text: text})
		heading = nil
		buf = nil
	}

	for _, line := range lines {
		if title != nil && line == *title {
			continue
		}
		if isHeadingLine(line) {
			flush()
			h := line
			heading = &h
			continue
		}
		buf = append(buf, line)
	}
	flush()

	if len(sections) == 0 {
		text := strings.TrimSpace(strings.Join(lines, "\n"))
		sections = append(sections, Section{Text: text})
	}
	return sections, diagnostics
}

var headingNames = map[string]bool{
	"abstract":              true,
	"introduction":          true,
	"background":            true,
	"related work":          true,
	"methods":               true,
	"methodology":           true,
	"materials and methods": true,
	"results":               true,
	"discussion":            true,
	"conclusion":            true,
	"conclusions":           true,
	"acknowledgments":       true,
	"acknowledgements":      true,
	"references":            true,
	"appendix":              true,
}

// isHeadingLine detects section headings: short lines that are either a
// conventional section name or carry a leading numeral.
func isHeadingLine(line string) bool {
	if len(line) > 60 {
		return false
	}

	trimmed := strings.ToLower(strings.TrimRight(line, ".:"))
	trimmed = strings.TrimSpace(trimNumberPrefix(trimmed))
	if headingNames[trimmed] {
		return true
	}

	// Numbered headings ("3. Evaluation") with few words.
	if trimNumberPrefix(line) != line && len(strings.Fields(line)) <= 6 {
		return true
	}
	return false
}

func trimNumberPrefix(line string) string {
	i := 0
	for i < len(line) && (line[i] >= '0' && line[i] <= '9' || line[i] == '.') {
		i++
	}
	if i == 0 || i >= len(line) || line[i] != ' ' {
		return line
	}
	return line[i+1:]
}
