// Package inference wraps the language model behind a narrow scoring
// interface. The pipeline depends only on System, so tests substitute a
// deterministic implementation without touching agent configuration.
package inference

import (
	"context"

	"github.com/scholium-io/linnaeus/internal/taxonomy"
)

// ScoreResult is the model's assessment of one discipline against one paper.
type ScoreResult struct {
	Score    float64 `json:"score"`
	Evidence string  `json:"evidence"`
}

// System scores a single candidate discipline against paper content.
type System interface {
	ScoreDiscipline(ctx context.Context, excerpt string, d taxonomy.Discipline) (*ScoreResult, error)
}
