package inference

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/go-agents/pkg/agent"
	gaconfig "github.com/JaimeStill/go-agents/pkg/config"

	"github.com/scholium-io/linnaeus/internal/prompts"
	"github.com/scholium-io/linnaeus/internal/taxonomy"
	"github.com/scholium-io/linnaeus/pkg/formatting"
)

type agentSystem struct {
	config gaconfig.AgentConfig
	logger *slog.Logger
}

// New creates an agent-backed inference system. Each scoring call constructs
// its own agent, so concurrent calls never share transport state.
func New(config gaconfig.AgentConfig, logger *slog.Logger) System {
	return &agentSystem{
		config: config,
		logger: logger.With("system", "inference"),
	}
}

func (s *agentSystem) ScoreDiscipline(ctx context.Context, excerpt string, d taxonomy.Discipline) (*ScoreResult, error) {
	prompt, err := prompts.ComposeScore(d, excerpt)
	if err != nil {
		return nil, fmt.Errorf("compose score prompt: %w", err)
	}

	a, err := agent.New(&s.config)
	if err != nil {
		return nil, fmt.Errorf("create agent: %w", err)
	}

	resp, err := a.Chat(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("score %s: chat call: %w", d.Name, err)
	}

	parsed, err := formatting.Parse[ScoreResult](resp.Text())
	if err != nil {
		return nil, fmt.Errorf("score %s: parse response: %w", d.Name, err)
	}

	if parsed.Score < 0 || parsed.Score > 1 {
		return nil, fmt.Errorf("%w: score %f outside [0, 1] for %s", ErrMalformedResponse, parsed.Score, d.Name)
	}

	s.logger.DebugContext(
		ctx, "discipline scored",
		"discipline", d.Name,
		"score", parsed.Score,
	)

	return &parsed, nil
}
