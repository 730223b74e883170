package search

// Pagination describes the page window of a result set.
type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalCount  int64 `json:"totalCount"`
	HasNext     bool  `json:"hasNext"`
	HasPrev     bool  `json:"hasPrev"`
}

// Offset returns the number of records to skip for the current page.
// Page and Limit are already clamped to >=1 by ParseQuery, but clamp
// again so a hand-built Query can never produce a negative skip.
func (q Query) Offset() int {
	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 {
		limit = 1
	}
	return (page - 1) * limit
}

// Paginate derives the pagination envelope from the filtered total.
func (q Query) Paginate(totalCount int64) Pagination {
	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 {
		limit = 1
	}

	totalPages := int((totalCount + int64(limit) - 1) / int64(limit))

	return Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalCount:  totalCount,
		HasNext:     int64(page)*int64(limit) < totalCount,
		HasPrev:     page > 1,
	}
}
