package search_test

import (
	"testing"

	"novelhub/internal/search"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuerySuggestions(t *testing.T) {
	got := search.QuerySuggestions("dragon")

	require.Len(t, got, 3)
	assert.Equal(t, "dragon system", got[0].Text)
	assert.Equal(t, "dragon academy", got[1].Text)
	assert.Equal(t, "dragon world", got[2].Text)
	for _, s := range got {
		assert.Equal(t, search.SuggestionQuery, s.Type)
		assert.Nil(t, s.ID)
	}
}

func TestNovelSuggestion(t *testing.T) {
	s := search.NovelSuggestion(7, "Dragon King", "Lee", "http://img/7.jpg", 1200)

	assert.Equal(t, "Dragon King", s.Text)
	assert.Equal(t, search.SuggestionNovel, s.Type)
	require.NotNil(t, s.ID)
	assert.Equal(t, int64(7), *s.ID)
	require.NotNil(t, s.Author)
	assert.Equal(t, "Lee", *s.Author)
	require.NotNil(t, s.CoverImage)
	assert.Equal(t, "http://img/7.jpg", *s.CoverImage)
	require.NotNil(t, s.Popularity)
	assert.Equal(t, int64(1200), *s.Popularity)
}

func TestNovelSuggestion_OmitsEmptyOptionalFields(t *testing.T) {
	s := search.NovelSuggestion(7, "Dragon King", "", "", 0)

	assert.Nil(t, s.Author)
	assert.Nil(t, s.CoverImage)
}

func TestAuthorSuggestion(t *testing.T) {
	s := search.AuthorSuggestion("Lee", 4)

	assert.Equal(t, "Lee", s.Text)
	assert.Equal(t, search.SuggestionAuthor, s.Type)
	require.NotNil(t, s.NovelCount)
	assert.Equal(t, int64(4), *s.NovelCount)
	assert.Nil(t, s.ID)
}
