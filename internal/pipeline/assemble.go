package pipeline

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/scholium-io/linnaeus/internal/taxonomy"
)

// Scores marginally above 1 are clamped with a diagnostic; negative scores
// or anything further out indicate a pipeline bug and fail the request.
const clampBand = 0.5

// AssembleNode returns a state node that turns raw candidate scores into the
// final Result: registry validation, dedup, range enforcement, publish
// filtering, ordering, confidence aggregation, and reasoning synthesis.
func AssembleNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		doc, err := extractDocument(s)
		if err != nil {
			return s, fmt.Errorf("assemble: %w", err)
		}

		scores, err := extractScores(s)
		if err != nil {
			return s, fmt.Errorf("assemble: %w", err)
		}

		diags := extractDiagnostics(s)

		assignments, ranked, diags, err := buildAssignments(scores, rt.Config, diags)
		if err != nil {
			return s, fmt.Errorf("assemble: %w", err)
		}

		result, err := finalizeResult(doc.Title, doc.SectionCount, assignments, ranked, diags)
		if err != nil {
			return s, fmt.Errorf("assemble: %w", err)
		}

		rt.Logger.InfoContext(
			ctx, "assemble node complete",
			"classification_id", result.ID,
			"disciplines", len(result.Disciplines),
			"confidence", result.ConfidenceScore,
			"unclassified", result.Unclassified(),
		)

		s = s.Set(KeyResult, result)
		return s, nil
	})
}

func extractScores(s state.State) ([]candidateScore, error) {
	val, ok := s.Get(KeyScores)
	if !ok {
		return nil, fmt.Errorf("%w: missing %s in state", ErrInvariant, KeyScores)
	}

	scores, ok := val.([]candidateScore)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not []candidateScore", ErrInvariant, KeyScores)
	}

	return scores, nil
}

// buildAssignments returns the published assignments alongside the full
// ranked score profile. Confidence is aggregated over the profile, not the
// published subset, so the publish filter cannot move the runner-up margin.
func buildAssignments(scores []candidateScore, cfg Config, diags []string) ([]Assignment, []float64, []string, error) {
	// Dedupe by discipline, keeping the highest score. Duplicates indicate
	// an upstream anomaly, so each one is recorded.
	best := map[int]candidateScore{}
	for _, cs := range scores {
		if prev, ok := best[cs.DisciplineID]; ok {
			diags = append(diags, fmt.Sprintf(
				"duplicate score for discipline %d, keeping maximum", cs.DisciplineID,
			))
			if cs.Score <= prev.Score {
				continue
			}
		}
		best[cs.DisciplineID] = cs
	}

	var assignments []Assignment
	var ranked []float64
	for id, cs := range best {
		d, err := taxonomy.Resolve(id)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("%w: %w", ErrInvariant, err)
		}

		score, clamped, err := enforceRange(cs.Score)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("score for %s: %w", d.Name, err)
		}
		if clamped {
			diags = append(diags, fmt.Sprintf(
				"score for %s clamped from %f into [0, 1]", d.Name, cs.Score,
			))
		}

		ranked = append(ranked, score)

		if score < cfg.PublishThreshold {
			continue
		}

		assignments = append(assignments, Assignment{
			DisciplineID:   id,
			Name:           d.Name,
			RelevanceScore: score,
			Evidence:       cs.Evidence,
		})
	}

	sort.Slice(assignments, func(a, b int) bool {
		if assignments[a].RelevanceScore != assignments[b].RelevanceScore {
			return assignments[a].RelevanceScore > assignments[b].RelevanceScore
		}
		return assignments[a].DisciplineID < assignments[b].DisciplineID
	})

	if len(assignments) > cfg.MaxAssignments {
		assignments = assignments[:cfg.MaxAssignments]
	}

	sort.Sort(sort.Reverse(sort.Float64Slice(ranked)))

	return assignments, ranked, diags, nil
}

func enforceRange(score float64) (float64, bool, error) {
	if score >= 0 && score <= 1 {
		return score, false, nil
	}
	if score > 1 && score < 1+clampBand {
		return 1, true, nil
	}
	return 0, false, fmt.Errorf("%w: score %f outside acceptable range", ErrInvariant, score)
}

func finalizeResult(title *string, sections int, assignments []Assignment, ranked []float64, diags []string) (*Result, error) {
	var confidence float64

	if len(assignments) == 0 {
		fallback, err := taxonomy.Resolve(1)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvariant, err)
		}

		assignments = []Assignment{{
			DisciplineID:   fallback.ID,
			Name:           fallback.Name,
			RelevanceScore: 0.05,
			Evidence:       UnclassifiedEvidence,
		}}
		confidence = 0.1
	} else {
		confidence = aggregateConfidence(ranked)
	}

	return &Result{
		ID:              uuid.New(),
		Disciplines:     assignments,
		ConfidenceScore: confidence,
		Reasoning:       synthesizeReasoning(assignments, confidence),
		PaperTitle:      title,
		PaperSections:   sections,
		Diagnostics:     diags,
		CompletedAt:     time.Now().UTC(),
	}, nil
}

// synthesizeReasoning produces the human-readable trace from the final
// assignment set. Deterministic for a given set of assignments.
func synthesizeReasoning(assignments []Assignment, confidence float64) string {
	if len(assignments) == 1 && assignments[0].Unclassified() {
		return "The paper produced no discipline signal above the publication threshold; " +
			"it is marked unclassified with minimal confidence."
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Classified into %d discipline(s). ", len(assignments))
	fmt.Fprintf(&sb, "%s leads with relevance %.2f", assignments[0].Name, assignments[0].RelevanceScore)

	if len(assignments) > 1 {
		names := make([]string, 0, len(assignments)-1)
		for _, a := range assignments[1:] {
			names = append(names, fmt.Sprintf("%s (%.2f)", a.Name, a.RelevanceScore))
		}
		fmt.Fprintf(&sb, ", followed by %s", strings.Join(names, ", "))
	}

	fmt.Fprintf(&sb, ". Aggregate confidence %.2f reflects the margin between the leading and runner-up scores.", confidence)
	return sb.String()
}
