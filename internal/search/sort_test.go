package search_test

import (
	"testing"

	"novelhub/internal/search"

	"github.com/stretchr/testify/assert"
)

func TestSortKey_Column(t *testing.T) {
	tests := []struct {
		key    search.SortKey
		column string
		ok     bool
	}{
		{search.SortRating, "rating_average", true},
		{search.SortPopularity, "views", true},
		{search.SortFeatured, "features", true},
		{search.SortNewest, "created_at", true},
		{search.SortUpdated, "updated_at", true},
		{search.SortRelevance, "", false},
		{search.SortKey("bogus"), "", false},
	}

	for _, tt := range tests {
		col, ok := tt.key.Column()
		assert.Equal(t, tt.column, col, "key %s", tt.key)
		assert.Equal(t, tt.ok, ok, "key %s", tt.key)
	}
}

func TestQuery_OrderClause(t *testing.T) {
	q := search.Query{SortBy: search.SortRating}
	assert.Equal(t, "rating_average desc", q.OrderClause())

	q.SortAsc = true
	assert.Equal(t, "rating_average asc", q.OrderClause())

	q = search.Query{SortBy: search.SortRelevance}
	assert.Equal(t, "", q.OrderClause())
}
