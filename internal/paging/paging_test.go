package paging

import (
	"fmt"
	"testing"

	"github.com/cristianoliveira/barangay-directory/internal/roster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func viewOf(t *testing.T, n int) roster.Roster {
	t.Helper()

	ids := make([]string, n)
	names := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("id%03d", i)
		names[i] = fmt.Sprintf("Resident %03d", i)
	}
	r, err := roster.New(ids, names)
	require.NoError(t, err)
	return r
}

func TestPageCount(t *testing.T) {
	tests := []struct {
		n, size, want int
	}{
		{0, 40, 1},
		{1, 40, 1},
		{40, 40, 1},
		{41, 40, 2},
		{85, 40, 3},
		{120, 40, 3},
		{10, 0, 1},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d/%d", tt.n, tt.size), func(t *testing.T) {
			assert.Equal(t, tt.want, PageCount(tt.n, tt.size))
		})
	}
}

func TestPaginateLastPartialPage(t *testing.T) {
	page, err := Paginate(viewOf(t, 85), PageSize, 3)
	require.NoError(t, err)

	assert.Equal(t, 3, page.Number)
	assert.Equal(t, 3, page.Count)
	require.Len(t, page.Slots, PageSize)
	assert.Equal(t, 5, page.Filled())
	assert.Equal(t, "id080", page.Slots[0].Entry.ID)
	assert.Equal(t, "id084", page.Slots[4].Entry.ID)
	for _, s := range page.Slots[5:] {
		assert.False(t, s.Filled)
	}
}

func TestPaginateEmptyViewHasOneEmptyPage(t *testing.T) {
	page, err := Paginate(roster.Roster{}, PageSize, 1)
	require.NoError(t, err)

	assert.Equal(t, 1, page.Count)
	assert.Equal(t, 0, page.Filled())
	assert.Len(t, page.Slots, PageSize)
}

func TestPaginateRejectsInvalidPage(t *testing.T) {
	view := viewOf(t, 41)

	for _, p := range []int{0, -1, 3} {
		_, err := Paginate(view, PageSize, p)
		require.ErrorIs(t, err, ErrOutOfRange, "page %d", p)
	}

	_, err := Paginate(view, 0, 1)
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestPagesConcatenateToView(t *testing.T) {
	for _, n := range []int{0, 1, 39, 40, 41, 85, 160} {
		for _, size := range []int{1, 7, 40} {
			view := viewOf(t, n)
			count := PageCount(n, size)

			var all []roster.Entry
			for p := 1; p <= count; p++ {
				page, err := Paginate(view, size, p)
				require.NoError(t, err)
				all = append(all, page.Entries()...)
			}

			assert.Equal(t, view.Entries(), append([]roster.Entry{}, all...), "n=%d size=%d", n, size)
		}
	}
}

func TestClampAndPageOf(t *testing.T) {
	assert.Equal(t, 1, Clamp(0, 3))
	assert.Equal(t, 3, Clamp(5, 3))
	assert.Equal(t, 2, Clamp(2, 3))
	assert.Equal(t, 1, Clamp(2, 0))

	assert.Equal(t, 1, PageOf(0, 40))
	assert.Equal(t, 1, PageOf(39, 40))
	assert.Equal(t, 2, PageOf(40, 40))
	assert.Equal(t, 1, PageOf(-1, 40))

	assert.Equal(t, 45, Absolute(5, 2, 40))
	assert.Equal(t, 5, Absolute(5, 1, 40))
}
