package api

import (
	"net/http"

	"github.com/scholium-io/linnaeus/internal/config"
	"github.com/scholium-io/linnaeus/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
	cfg *config.Config,
	runtime *Runtime,
) {
	routes.Register(
		mux,
		domain.Content.Handler(cfg.API.MaxUploadSizeBytes()).Routes(),
	)

	routes.Register(
		mux,
		domain.Classifications.Handler().Routes(),
	)

	storage := newStorageHandler(
		runtime.Storage,
		runtime.Logger,
		cfg.API.MaxListSize,
	)
	routes.Register(mux, storage.routes())
}
