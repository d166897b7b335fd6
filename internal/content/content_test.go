package content_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"

	"github.com/scholium-io/linnaeus/internal/content"
)

func TestInputValidate(t *testing.T) {
	fileID := uuid.New()
	contentID := uuid.New()

	tests := []struct {
		name    string
		input   content.Input
		wantErr bool
	}{
		{"file only", content.Input{FileID: &fileID}, false},
		{"structured only", content.Input{StructuredContentID: &contentID}, false},
		{"neither", content.Input{}, true},
		{"both", content.Input{FileID: &fileID, StructuredContentID: &contentID}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Validate()

			if tt.wantErr {
				if !errors.Is(err, content.ErrInvalidInput) {
					t.Fatalf("Validate() error = %v, want ErrInvalidInput", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("Validate() error = %v", err)
			}
		})
	}
}

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid input", content.ErrInvalidInput, http.StatusBadRequest},
		{"not found", content.ErrNotFound, http.StatusNotFound},
		{"duplicate", content.ErrDuplicate, http.StatusConflict},
		{"unknown error", errors.New("something else"), http.StatusInternalServerError},
		{"wrapped not found", fmt.Errorf("resolve failed: %w", content.ErrNotFound), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := content.MapHTTPStatus(tt.err)
			if got != tt.want {
				t.Errorf("MapHTTPStatus(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
