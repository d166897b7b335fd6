package papers

import (
	"sort"
	"strings"
	"unicode"
)

const maxTerms = 40

// extractTerms selects the most frequent non-stopword tokens across the
// document as its characteristic vocabulary. Ties break alphabetically so
// the result is stable for identical input.
func extractTerms(doc *Document) []string {
	counts := map[string]int{}

	tally := func(text string) {
		for _, tok := range tokenize(text) {
			counts[tok]++
		}
	}

	if doc.Title != nil {
		tally(*doc.Title)
	}
	for _, s := range doc.Sections {
		if s.Heading != nil {
			tally(*s.Heading)
		}
		tally(s.Text)
	}

	terms := make([]string, 0, len(counts))
	for t := range counts {
		terms = append(terms, t)
	}

	sort.Slice(terms, func(a, b int) bool {
		if counts[terms[a]] != counts[terms[b]] {
			return counts[terms[a]] > counts[terms[b]]
		}
		return terms[a] < terms[b]
	})

	if len(terms) > maxTerms {
		terms = terms[:maxTerms]
	}
	return terms
}

func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-'
	})

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, "-")
		if len(f) < 4 || stopwords[f] {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

var stopwords = map[string]bool{
	"about": true, "above": true, "after": true, "again": true, "also": true,
	"among": true, "ately": true, "because": true, "been": true, "before": true,
	"being": true, "between": true, "both": true, "cannot": true, "could": true,
	"does": true, "down": true, "during": true, "each": true, "figure": true,
	"from": true, "further": true, "have": true, "here": true, "however": true,
	"into": true, "itself": true, "more": true, "most": true, "must": true,
	"only": true, "other": true, "over": true, "paper": true,
	"respectively": true, "same": true, "shown": true, "since": true,
	"some": true, "such": true, "table": true, "than": true, "that": true,
	"their": true, "them": true, "then": true, "there": true, "these": true,
	"they": true, "this": true, "those": true, "through": true, "thus": true,
	"under": true, "using": true, "very": true, "were": true, "what": true,
	"when": true, "where": true, "which": true, "while": true, "will": true,
	"with": true, "within": true, "without": true, "would": true, "your": true,
}
