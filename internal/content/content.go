// Package content implements the content normalization boundary for Linnaeus.
// It validates classification input, resolves file and structured-content
// identifiers through their retrieval collaborators, and produces the tagged
// Source union consumed by the paper parser. Downstream stages never see
// which input shape a request arrived with.
package content

import "github.com/google/uuid"

// Input is the request body for a classification. Exactly one of FileID or
// StructuredContentID must be set.
type Input struct {
	FileID              *uuid.UUID `json:"file_id,omitempty"`
	StructuredContentID *uuid.UUID `json:"structured_content_overview_id,omitempty"`
}

// Validate enforces the exactly-one-identifier contract.
// Runs before any retrieval call is issued.
func (in Input) Validate() error {
	switch {
	case in.FileID == nil && in.StructuredContentID == nil:
		return ErrInvalidInput
	case in.FileID != nil && in.StructuredContentID != nil:
		return ErrInvalidInput
	default:
		return nil
	}
}

// SourceKind tags the provenance of a resolved Source.
type SourceKind string

// Source provenance values.
const (
	SourceRaw        SourceKind = "raw"
	SourceStructured SourceKind = "structured"
)

// Source is the tagged union produced by the normalizer. Raw carries PDF
// bytes when Kind is SourceRaw; Structured carries the pre-parsed payload
// when Kind is SourceStructured.
type Source struct {
	Kind       SourceKind
	Raw        []byte
	Structured *Payload
}

// Payload is a pre-structured paper: section boundaries are trusted as-is
// and the parser performs term extraction only.
type Payload struct {
	Title    *string          `json:"title"`
	Sections []PayloadSection `json:"sections"`
}

// PayloadSection is one ordered section of a structured payload.
type PayloadSection struct {
	Heading  *string `json:"heading"`
	Body     string  `json:"body"`
	Position int     `json:"position"`
}
