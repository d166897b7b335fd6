package pipeline

import (
	"log/slog"
	"time"

	"github.com/scholium-io/linnaeus/internal/content"
	"github.com/scholium-io/linnaeus/internal/inference"
)

// Config holds the tunable thresholds of the classification pipeline.
type Config struct {
	HintFloor        float64       `json:"hint_floor"`
	MinCandidates    int           `json:"min_candidates"`
	PublishThreshold float64       `json:"publish_threshold"`
	MaxAssignments   int           `json:"max_assignments"`
	ExcerptSections  int           `json:"excerpt_sections"`
	ExcerptRunes     int           `json:"excerpt_runes"`
	RetryBackoff     time.Duration `json:"-"`
	Timeout          time.Duration `json:"-"`
}

// DefaultConfig returns the pipeline defaults applied before any overrides.
func DefaultConfig() Config {
	return Config{
		HintFloor:        0.05,
		MinCandidates:    3,
		PublishThreshold: 0.1,
		MaxAssignments:   5,
		ExcerptSections:  4,
		ExcerptRunes:     8000,
		RetryBackoff:     2 * time.Second,
		Timeout:          5 * time.Minute,
	}
}

// Runtime bundles the dependencies that pipeline nodes require.
// It is constructed by higher-level composition code from Infrastructure
// and Domain systems.
type Runtime struct {
	Inference inference.System
	Content   content.System
	Config    Config
	Logger    *slog.Logger
}
