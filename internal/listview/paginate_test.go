package listview_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/beacon-foundation/beacon/internal/listview"
)

func numbered(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}

	return out
}

func TestPaginate(t *testing.T) {
	tests := []struct {
		name  string
		total int
		page  int
		size  int
		want  []int
	}{
		{
			name:  "first page is full",
			total: 25,
			page:  1,
			size:  10,
			want:  []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
		},
		{
			name:  "last page holds the remainder",
			total: 25,
			page:  3,
			size:  10,
			want:  []int{21, 22, 23, 24, 25},
		},
		{
			name:  "page past the end is empty",
			total: 25,
			page:  4,
			size:  10,
			want:  []int{},
		},
		{
			name:  "page below one behaves as page one",
			total: 5,
			page:  0,
			size:  3,
			want:  []int{1, 2, 3},
		},
		{
			name:  "size below one is clamped to one",
			total: 3,
			page:  2,
			size:  0,
			want:  []int{2},
		},
		{
			name:  "empty list",
			total: 0,
			page:  1,
			size:  10,
			want:  []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := listview.Paginate(numbered(tt.total), tt.page, tt.size)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Concatenating all pages in order must reconstruct the list exactly.
func TestPaginateRoundTrip(t *testing.T) {
	items := numbered(25)
	size := 10

	var rebuilt []int
	for page := 1; page <= listview.TotalPages(len(items), size); page++ {
		rebuilt = append(rebuilt, listview.Paginate(items, page, size)...)
	}

	assert.Equal(t, items, rebuilt)
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name  string
		total int
		size  int
		want  int
	}{
		{name: "exact multiple", total: 20, size: 10, want: 2},
		{name: "remainder adds a page", total: 25, size: 10, want: 3},
		{name: "empty list still has one page", total: 0, size: 10, want: 1},
		{name: "size below one is clamped", total: 3, size: 0, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, listview.TotalPages(tt.total, tt.size))
		})
	}
}

func TestClampPage(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		totalPages int
		want       int
	}{
		{name: "in range untouched", page: 2, totalPages: 3, want: 2},
		{name: "shrunken list reclamps to last page", page: 5, totalPages: 2, want: 2},
		{name: "below one clamps to one", page: 0, totalPages: 3, want: 1},
		{name: "degenerate total pages", page: 7, totalPages: 0, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, listview.ClampPage(tt.page, tt.totalPages))
		})
	}
}
