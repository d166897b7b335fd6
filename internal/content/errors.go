package content

import (
	"errors"
	"net/http"
)

// Domain errors for content normalization.
var (
	ErrInvalidInput = errors.New("exactly one of file_id or structured_content_overview_id must be provided")
	ErrNotFound     = errors.New("referenced content not found")
	ErrDuplicate    = errors.New("content already exists")
)

// MapHTTPStatus maps content errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrInvalidInput) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
