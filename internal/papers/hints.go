package papers

import (
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/scholium-io/linnaeus/internal/taxonomy"
)

// Hint is a deterministic Phase 1 signal that a discipline's vocabulary
// appears in the document. Strength falls in (0, 1) and biases which
// disciplines Phase 2 scores first; it is never itself a classification.
type Hint struct {
	DisciplineID int      `json:"discipline_id"`
	Strength     float64  `json:"strength"`
	Matched      []string `json:"matched_keywords"`
}

const (
	titleWeight     = 3.0
	headingWeight   = 2.0
	bodyWeight      = 1.0
	occurrenceCap   = 3
	strengthDamping = 4.0
)

// Hints matches every registered discipline's keyword list against the
// document and returns hints for each discipline with at least one match,
// sorted by descending strength with ascending discipline ID as tiebreak.
//
// Per-keyword occurrences are capped so a single repeated term cannot
// dominate, and the aggregate weight is damped against document length so
// long papers do not saturate strength on incidental vocabulary.
func Hints(doc *Document) []Hint {
	kilowords := float64(doc.WordCount()) / 1000.0

	var hints []Hint
	for _, d := range taxonomy.All() {
		weight := 0.0
		var matched []string

		for _, kw := range d.Keywords {
			re := keywordPattern(kw)

			w := titleWeight*capped(countMatches(re, strPtr(doc.Title))) +
				headingWeight*capped(countHeadingMatches(re, doc.Sections)) +
				bodyWeight*capped(countBodyMatches(re, doc.Sections))

			if w > 0 {
				weight += w
				matched = append(matched, kw)
			}
		}

		if weight == 0 {
			continue
		}

		hints = append(hints, Hint{
			DisciplineID: d.ID,
			Strength:     weight / (weight + strengthDamping + kilowords),
			Matched:      matched,
		})
	}

	sort.Slice(hints, func(a, b int) bool {
		if hints[a].Strength != hints[b].Strength {
			return hints[a].Strength > hints[b].Strength
		}
		return hints[a].DisciplineID < hints[b].DisciplineID
	})
	return hints
}

func capped(n int) float64 {
	if n > occurrenceCap {
		n = occurrenceCap
	}
	return float64(n)
}

func countMatches(re *regexp.Regexp, text string) int {
	if text == "" {
		return 0
	}
	return len(re.FindAllStringIndex(strings.ToLower(text), -1))
}

func countHeadingMatches(re *regexp.Regexp, sections []Section) int {
	total := 0
	for _, s := range sections {
		if s.Heading != nil {
			total += countMatches(re, *s.Heading)
		}
	}
	return total
}

func countBodyMatches(re *regexp.Regexp, sections []Section) int {
	total := 0
	for _, s := range sections {
		total += countMatches(re, s.Text)
	}
	return total
}

func strPtr(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

var (
	patternMu    sync.Mutex
	patternCache = map[string]*regexp.Regexp{}
)

// keywordPattern compiles a case-insensitive word-boundary matcher for a
// keyword, treating multi-word keywords as whitespace-separated phrases.
func keywordPattern(keyword string) *regexp.Regexp {
	patternMu.Lock()
	defer patternMu.Unlock()

	if re, ok := patternCache[keyword]; ok {
		return re
	}

	parts := strings.Fields(strings.ToLower(keyword))
	for i, p := range parts {
		parts[i] = regexp.QuoteMeta(p)
	}

	re := regexp.MustCompile(`\b` + strings.Join(parts, `\s+`) + `\b`)
	patternCache[keyword] = re
	return re
}
