// Package pipeline orchestrates the two-phase classification of a paper as a
// state graph: normalize (resolve input to a content source), parse (Phase 1
// structural extraction), classify (Phase 2 inference scoring), and assemble
// (validated, ranked result). Each request executes its own graph; nothing in
// the pipeline is shared mutable state.
package pipeline

import (
	"time"

	"github.com/google/uuid"
)

// State bag keys used between graph nodes.
const (
	KeyInput       = "classification_input"
	KeySource      = "content_source"
	KeyDocument    = "paper_document"
	KeyHints       = "discipline_hints"
	KeyScores      = "discipline_scores"
	KeyDiagnostics = "diagnostics"
	KeyResult      = "classification_result"
)

// UnclassifiedEvidence is the reserved evidence string carried by the
// fallback assignment when no discipline survives classification.
const UnclassifiedEvidence = "no discipline produced sufficient classification signal"

// Assignment is one scored, evidenced discipline in a classification result.
type Assignment struct {
	DisciplineID   int     `json:"discipline_id"`
	Name           string  `json:"name"`
	RelevanceScore float64 `json:"relevance_score"`
	Evidence       string  `json:"evidence"`
}

// Unclassified reports whether this assignment is the fallback marker.
func (a *Assignment) Unclassified() bool {
	return a.Evidence == UnclassifiedEvidence
}

// Result is the immutable output of one pipeline execution. Disciplines is
// never empty: an unclassifiable paper carries the single fallback marker.
type Result struct {
	ID              uuid.UUID    `json:"discipline_classification_id"`
	Disciplines     []Assignment `json:"disciplines"`
	ConfidenceScore float64      `json:"confidence_score"`
	Reasoning       string       `json:"classification_reasoning"`
	PaperTitle      *string      `json:"paper_title"`
	PaperSections   int          `json:"paper_sections"`
	Diagnostics     []string     `json:"diagnostics,omitempty"`
	CompletedAt     time.Time    `json:"completed_at"`
}

// Unclassified reports whether the result carries only the fallback marker.
func (r *Result) Unclassified() bool {
	return len(r.Disciplines) == 1 && r.Disciplines[0].Unclassified()
}

// candidateScore is the intermediate outcome of scoring one candidate
// discipline during Phase 2.
type candidateScore struct {
	DisciplineID int
	Score        float64
	Evidence     string
}
