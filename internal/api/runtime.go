package api

import (
	gaconfig "github.com/JaimeStill/go-agents/pkg/config"

	"github.com/scholium-io/linnaeus/internal/config"
	"github.com/scholium-io/linnaeus/internal/infrastructure"
	"github.com/scholium-io/linnaeus/internal/pipeline"
	"github.com/scholium-io/linnaeus/pkg/pagination"
)

// Runtime extends Infrastructure with API-specific configuration.
type Runtime struct {
	*infrastructure.Infrastructure
	Agent      gaconfig.AgentConfig
	Pipeline   pipeline.Config
	Pagination pagination.Config
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    infra.Logger.With("module", "api"),
			Database:  infra.Database,
			Storage:   infra.Storage,
		},
		Agent:      cfg.Agent,
		Pipeline:   cfg.Pipeline.Settings(),
		Pagination: cfg.API.Pagination,
	}
}
