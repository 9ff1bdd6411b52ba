package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPage(t *testing.T) {
	items := make([]int, 11)
	for i := range items {
		items[i] = i + 1
	}

	tests := []struct {
		name      string
		page      int
		wantItems []int
		wantTotal int
	}{
		{name: "FirstPage", page: 1, wantItems: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, wantTotal: 11},
		{name: "PartialLastPage", page: 2, wantItems: []int{11}, wantTotal: 11},
		{name: "PastLastPage", page: 3, wantItems: []int{}, wantTotal: 11},
		{name: "FarPastLastPage", page: 99, wantItems: []int{}, wantTotal: 11},
		{name: "PageZero", page: 0, wantItems: []int{}, wantTotal: 11},
		{name: "NegativePage", page: -1, wantItems: []int{}, wantTotal: 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, total := Page(items, tt.page, PageSize)
			assert.Equal(t, tt.wantItems, got)
			assert.Equal(t, tt.wantTotal, total)
		})
	}
}

func TestPageEmptyInput(t *testing.T) {
	got, total := Page([]string{}, 1, PageSize)
	assert.Empty(t, got)
	assert.Equal(t, 0, total)
}

// The returned page holds min(size, max(0, L-(page-1)*size)) items and the
// reported total is always the input length, whatever the page number.
func TestPageLengthProperty(t *testing.T) {
	for length := 0; length <= 25; length++ {
		items := make([]int, length)
		for i := range items {
			items[i] = i
		}

		for page := 1; page <= 4; page++ {
			got, total := Page(items, page, PageSize)

			want := length - (page-1)*PageSize
			if want < 0 {
				want = 0
			}
			if want > PageSize {
				want = PageSize
			}

			assert.Len(t, got, want, "length=%d page=%d", length, page)
			assert.Equal(t, length, total, "length=%d page=%d", length, page)

			// Order must match the input
			for i, v := range got {
				assert.Equal(t, (page-1)*PageSize+i, v)
			}
		}
	}
}
