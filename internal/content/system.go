package content

import (
	"context"

	"github.com/google/uuid"
)

// System defines the public contract for content operations: resolving
// classification input to a Source, and managing the paper files that back
// the file_id input shape.
type System interface {
	Handler(maxUploadSize int64) *Handler

	// Resolve validates the input and retrieves the referenced content,
	// producing the tagged Source union for the paper parser.
	Resolve(ctx context.Context, in Input) (*Source, error)

	FindFile(ctx context.Context, id uuid.UUID) (*File, error)
	Upload(ctx context.Context, cmd UploadCommand) (*File, error)
	DeleteFile(ctx context.Context, id uuid.UUID) error
}
