// Package classifications implements the classification domain: running the
// pipeline for a request, persisting its result, and querying stored
// classifications.
package classifications

import (
	"time"

	"github.com/google/uuid"

	"github.com/scholium-io/linnaeus/internal/pipeline"
)

// Classification is a stored classification result. It mirrors the
// classifications table schema with the pipeline result flattened in,
// plus the agent metadata active when the paper was classified.
type Classification struct {
	ID              uuid.UUID             `json:"discipline_classification_id"`
	Disciplines     []pipeline.Assignment `json:"disciplines"`
	ConfidenceScore float64               `json:"confidence_score"`
	Reasoning       string                `json:"classification_reasoning"`
	PaperTitle      *string               `json:"paper_title"`
	PaperSections   int                   `json:"paper_sections"`
	SourceFileID    *uuid.UUID            `json:"source_file_id"`
	SourceContentID *uuid.UUID            `json:"source_content_overview_id"`
	Diagnostics     []string              `json:"diagnostics,omitempty"`
	ClassifiedAt    time.Time             `json:"classified_at"`
	ModelName       string                `json:"model_name"`
	ProviderName    string                `json:"provider_name"`
}
