package pipeline

import (
	"context"
	"fmt"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/scholium-io/linnaeus/internal/content"
	"github.com/scholium-io/linnaeus/internal/papers"
)

// ParseNode returns a state node that runs Phase 1: normalize the resolved
// source into a Document and generate discipline hints. Non-fatal extraction
// issues accumulate as diagnostics on the state.
func ParseNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		src, err := extractSource(s)
		if err != nil {
			return s, fmt.Errorf("parse: %w", err)
		}

		doc, diags, err := papers.Parse(src)
		if err != nil {
			return s, fmt.Errorf("parse: %w", err)
		}

		hints := papers.Hints(doc)

		rt.Logger.InfoContext(
			ctx, "parse node complete",
			"sections", doc.SectionCount,
			"terms", len(doc.Terms),
			"hints", len(hints),
			"diagnostics", len(diags),
		)

		s = s.Set(KeyDocument, doc)
		s = s.Set(KeyHints, hints)
		s = appendDiagnostics(s, diags...)
		return s, nil
	})
}

func extractSource(s state.State) (*content.Source, error) {
	val, ok := s.Get(KeySource)
	if !ok {
		return nil, fmt.Errorf("%w: missing %s in state", ErrInvariant, KeySource)
	}

	src, ok := val.(*content.Source)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not *content.Source", ErrInvariant, KeySource)
	}

	return src, nil
}

func extractDocument(s state.State) (*papers.Document, error) {
	val, ok := s.Get(KeyDocument)
	if !ok {
		return nil, fmt.Errorf("%w: missing %s in state", ErrInvariant, KeyDocument)
	}

	doc, ok := val.(*papers.Document)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not *papers.Document", ErrInvariant, KeyDocument)
	}

	return doc, nil
}

func appendDiagnostics(s state.State, diags ...string) state.State {
	if len(diags) == 0 {
		return s
	}

	existing, _ := s.Get(KeyDiagnostics)
	current, _ := existing.([]string)
	return s.Set(KeyDiagnostics, append(current, diags...))
}

func extractDiagnostics(s state.State) []string {
	val, ok := s.Get(KeyDiagnostics)
	if !ok {
		return nil
	}

	diags, _ := val.([]string)
	return diags
}
