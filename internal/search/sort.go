package search

// Column maps the symbolic sort key to the novels column it orders by.
// Relevance (and anything unrecognized) has no deterministic column and
// reports ok=false, leaving the store's natural order in place.
func (k SortKey) Column() (string, bool) {
	switch k {
	case SortRating:
		return "rating_average", true
	case SortPopularity:
		return "views", true
	case SortFeatured:
		return "features", true
	case SortNewest:
		return "created_at", true
	case SortUpdated:
		return "updated_at", true
	default:
		return "", false
	}
}

// OrderClause returns a SQL ORDER BY fragment for the query, or "" when
// no deterministic ordering applies.
func (q Query) OrderClause() string {
	col, ok := q.SortBy.Column()
	if !ok {
		return ""
	}
	if q.SortAsc {
		return col + " asc"
	}
	return col + " desc"
}
