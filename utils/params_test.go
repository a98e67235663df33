package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name  string
		url   string
		page  int64
		limit int64
	}{
		{"defaults", "/api/cocktails", 1, 12},
		{"explicit", "/api/cocktails?page=3&limit=24", 3, 24},
		{"capped limit", "/api/cocktails?limit=9999", 1, 48},
		{"garbage falls back", "/api/cocktails?page=abc&limit=-5", 1, 12},
		{"zero page", "/api/cocktails?page=0", 1, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, tt.url, nil)
			got := ParsePagination(r, 12, 48)
			if got.Page != tt.page || got.Limit != tt.limit {
				t.Errorf("ParsePagination() = %+v, want page=%d limit=%d", got, tt.page, tt.limit)
			}
		})
	}
}

func TestPageOptionsSkip(t *testing.T) {
	if got := (PageOptions{Page: 1, Limit: 12}).Skip(); got != 0 {
		t.Errorf("Skip() = %d, want 0", got)
	}
	if got := (PageOptions{Page: 4, Limit: 12}).Skip(); got != 36 {
		t.Errorf("Skip() = %d, want 36", got)
	}
}

func TestParseSort(t *testing.T) {
	allowed := []string{"createdAt", "name", "averageRating"}

	tests := []struct {
		name  string
		url   string
		field string
		order int
	}{
		{"defaults", "/api/cocktails", "createdAt", -1},
		{"explicit asc", "/api/cocktails?sortBy=name&order=asc", "name", 1},
		{"disallowed field falls back", "/api/cocktails?sortBy=password", "createdAt", -1},
		{"bad order falls back", "/api/cocktails?sortBy=averageRating&order=sideways", "averageRating", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, tt.url, nil)
			sort := ParseSort(r, "createdAt", "desc", allowed)
			if len(sort) != 1 {
				t.Fatalf("ParseSort() returned %d elements", len(sort))
			}
			if sort[0].Key != tt.field || sort[0].Value != tt.order {
				t.Errorf("ParseSort() = %v, want {%s %d}", sort, tt.field, tt.order)
			}
		})
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total, limit, want int64
	}{
		{0, 12, 0},
		{1, 12, 1},
		{12, 12, 1},
		{13, 12, 2},
		{100, 20, 5},
		{5, 0, 0},
	}

	for _, tt := range tests {
		if got := TotalPages(tt.total, tt.limit); got != tt.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", tt.total, tt.limit, got, tt.want)
		}
	}
}
