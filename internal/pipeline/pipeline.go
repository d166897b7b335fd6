package pipeline

import (
	"context"
	"errors"
	"fmt"

	gaoconfig "github.com/JaimeStill/go-agents-orchestration/pkg/config"
	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/scholium-io/linnaeus/internal/content"
)

// Execute runs the classification pipeline for a single input. It builds the
// state graph (normalize → parse → classify → assemble), executes it under
// the configured deadline, and extracts the Result from the final state.
func Execute(ctx context.Context, rt *Runtime, input content.Input) (*Result, error) {
	if rt.Config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, rt.Config.Timeout)
		defer cancel()
	}

	graph, err := buildGraph(rt)
	if err != nil {
		return nil, fmt.Errorf("build graph: %w", err)
	}

	initialState := state.New(nil)
	initialState = initialState.Set(KeyInput, input)

	finalState, err := graph.Execute(ctx, initialState)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %w", ErrTimeout, err)
		}
		return nil, fmt.Errorf("execute graph: %w", err)
	}

	return extractResult(finalState)
}

func buildGraph(rt *Runtime) (state.StateGraph, error) {
	cfg := gaoconfig.DefaultGraphConfig("linnaeus-classify")
	cfg.Observer = "noop"

	graph, err := state.NewGraph(cfg)
	if err != nil {
		return nil, err
	}

	if err := graph.AddNode("normalize", NormalizeNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddNode("parse", ParseNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddNode("classify", ClassifyNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddNode("assemble", AssembleNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddEdge("normalize", "parse", nil); err != nil {
		return nil, err
	}

	if err := graph.AddEdge("parse", "classify", nil); err != nil {
		return nil, err
	}

	if err := graph.AddEdge("classify", "assemble", nil); err != nil {
		return nil, err
	}

	if err := graph.SetEntryPoint("normalize"); err != nil {
		return nil, err
	}

	if err := graph.SetExitPoint("assemble"); err != nil {
		return nil, err
	}

	return graph, nil
}

func extractResult(s state.State) (*Result, error) {
	val, ok := s.Get(KeyResult)
	if !ok {
		return nil, fmt.Errorf("%w: missing %s in final state", ErrInvariant, KeyResult)
	}

	result, ok := val.(*Result)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not *Result", ErrInvariant, KeyResult)
	}

	return result, nil
}
