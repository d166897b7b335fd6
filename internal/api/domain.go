package api

import (
	"github.com/scholium-io/linnaeus/internal/classifications"
	"github.com/scholium-io/linnaeus/internal/content"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Content         content.System
	Classifications classifications.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	contentSystem := content.New(
		runtime.Database.Connection(),
		runtime.Storage,
		runtime.Logger,
	)

	classificationsSystem := classifications.New(
		runtime.Database.Connection(),
		runtime.Agent,
		runtime.Logger,
		runtime.Pagination,
		contentSystem,
		runtime.Pipeline,
	)

	return &Domain{
		Content:         contentSystem,
		Classifications: classificationsSystem,
	}
}
