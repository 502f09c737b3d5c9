package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate_PagesConcatenateToWholeSequence(t *testing.T) {
	for n := 0; n <= 17; n++ {
		items := make([]int, n)
		for i := range items {
			items[i] = i
		}

		first := Paginate(items, 1, IncidentsPageSize)
		var joined []int
		for p := 1; p <= first.TotalPages; p++ {
			joined = append(joined, Paginate(items, p, IncidentsPageSize).Items...)
		}

		if n == 0 {
			assert.Empty(t, joined)
			continue
		}
		assert.Equal(t, items, joined, "n=%d", n)
	}
}

func TestPaginate_ClampsPageIndex(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e", "f", "g"}

	low := Paginate(items, -3, 5)
	assert.Equal(t, 1, low.Page)
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, low.Items)

	high := Paginate(items, 99, 5)
	assert.Equal(t, 2, high.Page)
	assert.Equal(t, []string{"f", "g"}, high.Items)
	assert.Equal(t, 6, high.From)
	assert.Equal(t, 7, high.To)
	assert.Equal(t, 2, high.TotalPages)
}

func TestPaginate_Empty(t *testing.T) {
	p := Paginate([]string{}, 2, 5)

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 0, p.TotalPages)
	assert.Equal(t, 0, p.From)
	assert.Equal(t, 0, p.To)
	assert.NotNil(t, p.Items)
}
