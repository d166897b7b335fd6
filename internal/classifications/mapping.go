package classifications

import (
	"encoding/json"
	"fmt"

	"github.com/scholium-io/linnaeus/internal/pipeline"
	"github.com/scholium-io/linnaeus/pkg/repository"
)

const projection = `id, disciplines, confidence_score, reasoning, paper_title,
	paper_sections, source_file_id, source_content_id, diagnostics,
	classified_at, model_name, provider_name`

func scanClassification(s repository.Scanner) (Classification, error) {
	var c Classification
	var disciplinesRaw, diagnosticsRaw []byte

	err := s.Scan(
		&c.ID,
		&disciplinesRaw,
		&c.ConfidenceScore,
		&c.Reasoning,
		&c.PaperTitle,
		&c.PaperSections,
		&c.SourceFileID,
		&c.SourceContentID,
		&diagnosticsRaw,
		&c.ClassifiedAt,
		&c.ModelName,
		&c.ProviderName,
	)

	if err != nil {
		return c, err
	}

	if len(disciplinesRaw) > 0 {
		if err := json.Unmarshal(disciplinesRaw, &c.Disciplines); err != nil {
			return c, fmt.Errorf("unmarshal disciplines: %w", err)
		}
	}
	if c.Disciplines == nil {
		c.Disciplines = []pipeline.Assignment{}
	}

	if len(diagnosticsRaw) > 0 {
		if err := json.Unmarshal(diagnosticsRaw, &c.Diagnostics); err != nil {
			return c, fmt.Errorf("unmarshal diagnostics: %w", err)
		}
	}

	return c, nil
}
