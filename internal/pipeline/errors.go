package pipeline

import (
	"errors"
	"net/http"

	"github.com/scholium-io/linnaeus/internal/content"
	"github.com/scholium-io/linnaeus/internal/papers"
)

var (
	ErrClassification = errors.New("classification failed")
	ErrTimeout        = errors.New("classification timed out")
	ErrInvariant      = errors.New("classification invariant violated")
)

// MapHTTPStatus translates pipeline and upstream errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, content.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, content.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, papers.ErrUnsupportedFormat),
		errors.Is(err, papers.ErrParse),
		errors.Is(err, papers.ErrEmptyDocument):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrTimeout):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
