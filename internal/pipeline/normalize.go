package pipeline

import (
	"context"
	"fmt"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/scholium-io/linnaeus/internal/content"
)

// NormalizeNode returns a state node that validates the classification input
// and resolves it to a content source: raw file bytes from blob storage or a
// structured payload from the content store.
func NormalizeNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		input, err := extractInput(s)
		if err != nil {
			return s, fmt.Errorf("normalize: %w", err)
		}

		src, err := rt.Content.Resolve(ctx, input)
		if err != nil {
			return s, fmt.Errorf("normalize: %w", err)
		}

		rt.Logger.InfoContext(
			ctx, "normalize node complete",
			"source_kind", src.Kind,
		)

		s = s.Set(KeySource, src)
		return s, nil
	})
}

func extractInput(s state.State) (content.Input, error) {
	val, ok := s.Get(KeyInput)
	if !ok {
		return content.Input{}, fmt.Errorf("%w: missing %s in state", ErrInvariant, KeyInput)
	}

	input, ok := val.(content.Input)
	if !ok {
		return content.Input{}, fmt.Errorf("%w: %s is not content.Input", ErrInvariant, KeyInput)
	}

	return input, nil
}
