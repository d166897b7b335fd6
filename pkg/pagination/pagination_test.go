package pagination_test

import (
	"net/url"
	"testing"

	"github.com/scholium-io/linnaeus/pkg/pagination"
)

var cfg = pagination.Config{DefaultPageSize: 20, MaxPageSize: 100}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name         string
		req          pagination.PageRequest
		wantPage     int
		wantPageSize int
	}{
		{"zero values", pagination.PageRequest{}, 1, 20},
		{"negative page", pagination.PageRequest{Page: -2, PageSize: 10}, 1, 10},
		{"oversized page size", pagination.PageRequest{Page: 3, PageSize: 500}, 3, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.req.Normalize(cfg)
			if tt.req.Page != tt.wantPage {
				t.Errorf("Page = %d, want %d", tt.req.Page, tt.wantPage)
			}
			if tt.req.PageSize != tt.wantPageSize {
				t.Errorf("PageSize = %d, want %d", tt.req.PageSize, tt.wantPageSize)
			}
		})
	}
}

func TestOffset(t *testing.T) {
	req := pagination.PageRequest{Page: 3, PageSize: 25}
	if got := req.Offset(); got != 50 {
		t.Errorf("Offset() = %d, want 50", got)
	}
}

func TestPageRequestFromQuery(t *testing.T) {
	values := url.Values{}
	values.Set("page", "2")
	values.Set("page_size", "10")
	values.Set("search", "quantum")

	req := pagination.PageRequestFromQuery(values, cfg)
	if req.Page != 2 || req.PageSize != 10 {
		t.Errorf("req = %+v", req)
	}
	if req.Search == nil || *req.Search != "quantum" {
		t.Errorf("Search = %v, want quantum", req.Search)
	}
}

func TestNewPageResult(t *testing.T) {
	result := pagination.NewPageResult([]int{1, 2, 3}, 7, 1, 3)
	if result.TotalPages != 3 {
		t.Errorf("TotalPages = %d, want 3", result.TotalPages)
	}

	empty := pagination.NewPageResult[int](nil, 0, 1, 20)
	if empty.Data == nil {
		t.Error("Data = nil, want empty slice")
	}
	if empty.TotalPages != 1 {
		t.Errorf("TotalPages = %d, want 1", empty.TotalPages)
	}
}
