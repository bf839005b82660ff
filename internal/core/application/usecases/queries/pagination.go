// Package queries contains read-only operations. Handlers read straight from the
// database with GORM and return flat views instead of aggregates.
package queries

const (
	defaultPage = 1
	maxLimit    = 100
	// maxPage keeps (page-1)*limit far from int overflow.
	maxPage = 1_000_000
)

// Page is a 1-based page request. Out-of-range values are normalized: a page
// below 1 becomes 1, a limit below 1 becomes the listing's default and a limit
// above 100 becomes 100. A page above 1,000,000 becomes 1,000,000.
type Page struct {
	Number int
	Limit  int
}

func normalizePage(number, limit, defaultLimit int) Page {
	switch {
	case number < 1:
		number = defaultPage
	case number > maxPage:
		number = maxPage
	}
	switch {
	case limit < 1:
		limit = defaultLimit
	case limit > maxLimit:
		limit = maxLimit
	}
	return Page{Number: number, Limit: limit}
}

func (p Page) Offset() int {
	return (p.Number - 1) * p.Limit
}

// Pagination describes where a page sits in the full result.
type Pagination struct {
	CurrentPage int
	TotalPages  int
	TotalItems  int64
	HasNext     bool
	HasPrev     bool
}

func NewPagination(page Page, totalItems int64) Pagination {
	totalPages := int((totalItems + int64(page.Limit) - 1) / int64(page.Limit))
	return Pagination{
		CurrentPage: page.Number,
		TotalPages:  totalPages,
		TotalItems:  totalItems,
		HasNext:     page.Number < totalPages,
		HasPrev:     page.Number > 1,
	}
}
