package pipeline

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/scholium-io/linnaeus/internal/inference"
	"github.com/scholium-io/linnaeus/internal/papers"
	"github.com/scholium-io/linnaeus/internal/taxonomy"
)

// ClassifyNode returns a state node that runs Phase 2: score each candidate
// discipline against the document excerpt using bounded errgroup concurrency.
// A candidate is retried once on inference failure, then dropped with a
// diagnostic; the node fails only when every candidate is dropped.
func ClassifyNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		doc, err := extractDocument(s)
		if err != nil {
			return s, fmt.Errorf("classify: %w", err)
		}

		hints, err := extractHints(s)
		if err != nil {
			return s, fmt.Errorf("classify: %w", err)
		}

		candidates := selectCandidates(hints, rt.Config)
		if len(candidates) == 0 {
			rt.Logger.InfoContext(ctx, "classify node complete", "candidates", 0)
			s = s.Set(KeyScores, []candidateScore{})
			s = appendDiagnostics(s, "no discipline hints matched the document")
			return s, nil
		}

		scores, diags, err := scoreCandidates(ctx, rt, doc, candidates)
		if err != nil {
			return s, fmt.Errorf("classify: %w", err)
		}

		rt.Logger.InfoContext(
			ctx, "classify node complete",
			"candidates", len(candidates),
			"scored", len(scores),
		)

		s = s.Set(KeyScores, scores)
		s = appendDiagnostics(s, diags...)
		return s, nil
	})
}

func extractHints(s state.State) ([]papers.Hint, error) {
	val, ok := s.Get(KeyHints)
	if !ok {
		return nil, fmt.Errorf("%w: missing %s in state", ErrInvariant, KeyHints)
	}

	hints, ok := val.([]papers.Hint)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not []papers.Hint", ErrInvariant, KeyHints)
	}

	return hints, nil
}

// selectCandidates seeds Phase 2 with every hint above the strength floor,
// widened to the strongest MinCandidates hints so weak-signal papers still
// get a full assessment. Hints arrive sorted by descending strength.
func selectCandidates(hints []papers.Hint, cfg Config) []int {
	seen := map[int]bool{}
	var candidates []int

	add := func(id int) {
		if !seen[id] {
			seen[id] = true
			candidates = append(candidates, id)
		}
	}

	for _, h := range hints {
		if h.Strength > cfg.HintFloor {
			add(h.DisciplineID)
		}
	}

	for i := 0; i < len(hints) && i < cfg.MinCandidates; i++ {
		add(hints[i].DisciplineID)
	}

	sort.Ints(candidates)
	return candidates
}

func scoreCandidates(
	ctx context.Context,
	rt *Runtime,
	doc *papers.Document,
	candidates []int,
) ([]candidateScore, []string, error) {
	excerpt := doc.Excerpt(rt.Config.ExcerptSections, rt.Config.ExcerptRunes)

	var mu sync.Mutex
	var scores []candidateScore
	var diags []string

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workerCount(len(candidates), rt.Config))

	for _, id := range candidates {
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}

			d, err := taxonomy.Resolve(id)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvariant, err)
			}

			result, err := scoreWithRetry(gctx, rt, excerpt, d)

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				// Context failure aborts the whole group; an inference
				// failure only drops this candidate.
				if gctx.Err() != nil {
					return gctx.Err()
				}
				diags = append(diags, fmt.Sprintf("dropped candidate %s: %v", d.Name, err))
				return nil
			}

			cs := candidateScore{
				DisciplineID: id,
				Score:        result.Score,
				Evidence:     result.Evidence,
			}

			if !doc.Contains(result.Evidence) {
				diags = append(diags, fmt.Sprintf(
					"evidence for %s not found verbatim in document text", d.Name,
				))
			}

			scores = append(scores, cs)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, mapContextErr(ctx, err)
	}

	if len(scores) == 0 {
		return nil, nil, fmt.Errorf("%w: all %d candidates failed", ErrClassification, len(candidates))
	}

	return scores, diags, nil
}

func scoreWithRetry(
	ctx context.Context,
	rt *Runtime,
	excerpt string,
	d taxonomy.Discipline,
) (*inference.ScoreResult, error) {
	first, err := rt.Inference.ScoreDiscipline(ctx, excerpt, d)
	if err == nil {
		return first, nil
	}

	rt.Logger.WarnContext(
		ctx, "inference call failed, retrying",
		"discipline", d.Name,
		"error", err,
	)

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(rt.Config.RetryBackoff):
	}

	return rt.Inference.ScoreDiscipline(ctx, excerpt, d)
}

func workerCount(candidates int, cfg Config) int {
	return max(min(cfg.MaxAssignments, candidates), 1)
}

func mapContextErr(ctx context.Context, err error) error {
	if ctx.Err() == context.DeadlineExceeded {
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	}
	return fmt.Errorf("%w: %w", ErrClassification, err)
}
