package queries

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		name        string
		number      int
		limit       int
		want        Page
		wantsOffset int
	}{
		{name: "defaults", number: 0, limit: 0, want: Page{Number: 1, Limit: 10}, wantsOffset: 0},
		{name: "negative", number: -3, limit: -1, want: Page{Number: 1, Limit: 10}, wantsOffset: 0},
		{name: "limit capped", number: 2, limit: 500, want: Page{Number: 2, Limit: 100}, wantsOffset: 100},
		{name: "kept", number: 3, limit: 25, want: Page{Number: 3, Limit: 25}, wantsOffset: 50},
		{name: "page capped", number: math.MaxInt / 50, limit: 100, want: Page{Number: 1_000_000, Limit: 100}, wantsOffset: 99_999_900},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizePage(tt.number, tt.limit, defaultOrdersLimit)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantsOffset, got.Offset())
		})
	}
}

func TestNewPagination_HugePageIsNeverNegative(t *testing.T) {
	page := normalizePage(math.MaxInt, maxLimit, defaultOrdersLimit)

	assert.Positive(t, page.Offset())
	assert.Equal(t, maxPage, NewPagination(page, 3).CurrentPage)
}

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name  string
		page  Page
		total int64
		want  Pagination
	}{
		{
			name:  "empty",
			page:  Page{Number: 1, Limit: 10},
			total: 0,
			want:  Pagination{CurrentPage: 1, TotalPages: 0, TotalItems: 0},
		},
		{
			name:  "first of three",
			page:  Page{Number: 1, Limit: 10},
			total: 21,
			want:  Pagination{CurrentPage: 1, TotalPages: 3, TotalItems: 21, HasNext: true},
		},
		{
			name:  "middle",
			page:  Page{Number: 2, Limit: 10},
			total: 21,
			want:  Pagination{CurrentPage: 2, TotalPages: 3, TotalItems: 21, HasNext: true, HasPrev: true},
		},
		{
			name:  "exact last",
			page:  Page{Number: 2, Limit: 10},
			total: 20,
			want:  Pagination{CurrentPage: 2, TotalPages: 2, TotalItems: 20, HasPrev: true},
		},
		{
			name:  "past the end",
			page:  Page{Number: 5, Limit: 10},
			total: 20,
			want:  Pagination{CurrentPage: 5, TotalPages: 2, TotalItems: 20, HasPrev: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewPagination(tt.page, tt.total))
		})
	}
}
