// Package papers implements Phase 1 of the classification pipeline: turning
// either raw PDF bytes or a pre-structured payload into the normalized
// Document representation, plus the discipline hints that bias Phase 2.
// The phase is fully deterministic: identical input bytes or payload produce
// an identical Document and hint set.
package papers

import (
	"sort"
	"strings"
)

// Section is one ordered segment of a paper. Heading is nil when the
// segment was not introduced by a detected heading.
type Section struct {
	Heading *string `json:"heading"`
	Text    string  `json:"text"`
}

// Document is the normalized intermediate representation of a paper.
// It is produced once by Parse and immutable thereafter.
type Document struct {
	Title        *string   `json:"title"`
	Sections     []Section `json:"sections"`
	SectionCount int       `json:"section_count"`
	Terms        []string  `json:"terms"`
}

// WordCount returns the total whitespace-delimited word count across all sections.
func (d *Document) WordCount() int {
	total := 0
	for _, s := range d.Sections {
		total += len(strings.Fields(s.Text))
	}
	return total
}

// Contains reports whether the document text contains the given excerpt,
// compared case-insensitively with whitespace runs collapsed. Used to verify
// that inference-produced evidence is grounded in the document.
func (d *Document) Contains(excerpt string) bool {
	needle := normalizeMatchText(excerpt)
	if needle == "" {
		return false
	}

	if d.Title != nil && strings.Contains(normalizeMatchText(*d.Title), needle) {
		return true
	}

	for _, s := range d.Sections {
		if s.Heading != nil && strings.Contains(normalizeMatchText(*s.Heading), needle) {
			return true
		}
		if strings.Contains(normalizeMatchText(s.Text), needle) {
			return true
		}
	}
	return false
}

// Excerpt builds the salient slice of the document sent to inference:
// the title plus the top maxSections sections ranked by extracted-term
// density, emitted in original document order and truncated to maxRunes.
func (d *Document) Excerpt(maxSections, maxRunes int) string {
	type ranked struct {
		index   int
		density float64
	}

	scores := make([]ranked, len(d.Sections))
	for i, s := range d.Sections {
		scores[i] = ranked{index: i, density: termDensity(s, d.Terms)}
	}

	sort.SliceStable(scores, func(a, b int) bool {
		if scores[a].density != scores[b].density {
			return scores[a].density > scores[b].density
		}
		return scores[a].index < scores[b].index
	})

	if maxSections > 0 && len(scores) > maxSections {
		scores = scores[:maxSections]
	}

	keep := make(map[int]bool, len(scores))
	for _, r := range scores {
		keep[r.index] = true
	}

	var sb strings.Builder
	if d.Title != nil {
		sb.WriteString(*d.Title)
		sb.WriteString("\n\n")
	}

	for i, s := range d.Sections {
		if !keep[i] {
			continue
		}
		if s.Heading != nil {
			sb.WriteString("## ")
			sb.WriteString(*s.Heading)
			sb.WriteString("\n")
		}
		sb.WriteString(s.Text)
		sb.WriteString("\n\n")
	}

	text := strings.TrimSpace(sb.String())
	if maxRunes > 0 {
		runes := []rune(text)
		if len(runes) > maxRunes {
			text = string(runes[:maxRunes])
		}
	}
	return text
}

func termDensity(s Section, terms []string) float64 {
	words := len(strings.Fields(s.Text))
	if words == 0 {
		return 0
	}

	text := normalizeMatchText(s.Text)
	matches := 0
	for _, term := range terms {
		matches += strings.Count(text, normalizeMatchText(term))
	}
	return float64(matches) / float64(words)
}

func normalizeMatchText(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
