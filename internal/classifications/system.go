package classifications

import (
	"context"

	"github.com/google/uuid"

	"github.com/scholium-io/linnaeus/internal/content"
	"github.com/scholium-io/linnaeus/pkg/pagination"
)

// System defines the public contract for classification domain operations.
type System interface {
	Handler() *Handler

	List(ctx context.Context, page pagination.PageRequest) (*pagination.PageResult[Classification], error)
	Find(ctx context.Context, id uuid.UUID) (*Classification, error)

	// Classify runs the full pipeline for the input and persists the result.
	Classify(ctx context.Context, input content.Input) (*Classification, error)

	Delete(ctx context.Context, id uuid.UUID) error
}
