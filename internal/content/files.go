package content

import (
	"time"

	"github.com/google/uuid"
)

// File represents a registered paper file with its blob storage reference.
type File struct {
	ID          uuid.UUID `json:"id"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	PageCount   *int      `json:"page_count"`
	StorageKey  string    `json:"storage_key"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

// UploadCommand carries the data needed to upload and register a paper file.
// Data holds the raw file bytes. PageCount is optional and may be extracted
// by the caller via pdfcpu; nil values are stored as NULL.
type UploadCommand struct {
	Data        []byte
	Filename    string
	ContentType string
	PageCount   *int
}
