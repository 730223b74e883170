package search_test

import (
	"strings"
	"testing"

	"novelhub/internal/search"

	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	t.Run("EmptyQueryScoresZero", func(t *testing.T) {
		assert.Equal(t, 0.0, search.Score("", "Sword of Truth", "Anon", nil))
		assert.Equal(t, 0.0, search.Score("   ", "Sword of Truth", "Anon", nil))
	})

	t.Run("Deterministic", func(t *testing.T) {
		a := search.Score("sword", "Sword of Truth", "Anon", []string{"fantasy"})
		b := search.Score("sword", "Sword of Truth", "Anon", []string{"fantasy"})
		assert.Equal(t, a, b)
	})

	t.Run("SingleTitleHit", func(t *testing.T) {
		// one title occurrence: 3 weighted hits, squashed to 3/(3+3)
		got := search.Score("sword", "Sword of Truth", "", nil)
		assert.InDelta(t, 0.5, got, 1e-9)
	})

	t.Run("CaseInsensitive", func(t *testing.T) {
		upper := search.Score("SWORD", "sword of truth", "", nil)
		lower := search.Score("sword", "Sword of Truth", "", nil)
		assert.Equal(t, lower, upper)
	})

	t.Run("TitleOutweighsAuthorOutweighsTag", func(t *testing.T) {
		title := search.Score("dawn", "Dawn Empire", "Someone", nil)
		author := search.Score("dawn", "Empire", "Dawn Lee", nil)
		tag := search.Score("dawn", "Empire", "Someone", []string{"dawn"})

		assert.Greater(t, title, author)
		assert.Greater(t, author, tag)
	})

	t.Run("BoundedBelowOne", func(t *testing.T) {
		many := strings.Repeat("sword ", 50)
		got := search.Score("sword", many, "sword", []string{"sword", "sword"})
		assert.Less(t, got, 1.0)
		assert.Greater(t, got, 0.9)
	})

	t.Run("NoMatchScoresZero", func(t *testing.T) {
		got := search.Score("zzz", "Sword of Truth", "Anon", []string{"fantasy"})
		assert.Equal(t, 0.0, got)
	})
}

func TestExcerpt(t *testing.T) {
	short := "A short description."
	assert.Equal(t, short, search.Excerpt(short))

	long := strings.Repeat("a", 150)
	got := search.Excerpt(long)
	assert.Equal(t, strings.Repeat("a", 100)+"...", got)

	// rune-safe on multibyte text
	multibyte := strings.Repeat("世", 120)
	got = search.Excerpt(multibyte)
	assert.Equal(t, strings.Repeat("世", 100)+"...", got)
}
