package search

import "strings"

// Field weights for the term-frequency score. Title hits dominate,
// author hits count double a tag hit.
const (
	titleWeight  = 3
	authorWeight = 2
	tagWeight    = 1
)

// Score computes a deterministic text-relevance score in [0,1) for a
// novel against the free-text query: weighted occurrence counts of each
// query term across title, author and tags, squashed so more hits
// asymptotically approach 1. An empty query scores 0.
func Score(queryText, title, author string, tags []string) float64 {
	terms := strings.Fields(strings.ToLower(queryText))
	if len(terms) == 0 {
		return 0
	}

	lowerTitle := strings.ToLower(title)
	lowerAuthor := strings.ToLower(author)
	lowerTags := make([]string, len(tags))
	for i, t := range tags {
		lowerTags[i] = strings.ToLower(t)
	}

	hits := 0
	for _, term := range terms {
		hits += strings.Count(lowerTitle, term) * titleWeight
		hits += strings.Count(lowerAuthor, term) * authorWeight
		for _, tag := range lowerTags {
			hits += strings.Count(tag, term) * tagWeight
		}
	}

	return float64(hits) / float64(hits+titleWeight)
}

const excerptLength = 100

// Excerpt returns the first 100 characters of the description followed
// by an ellipsis. Short descriptions are returned unchanged.
func Excerpt(description string) string {
	runes := []rune(description)
	if len(runes) <= excerptLength {
		return description
	}
	return string(runes[:excerptLength]) + "..."
}
