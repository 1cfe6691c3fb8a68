package domain

// Page is a window over an ordered result set.
// PageNumber is 1-based; Items never exceeds PerPage; a page past the
// end of the set is empty but not an error.
type Page[T any] struct {
	Items      []T
	PageNumber int
	PerPage    int
	TotalCount int64
}

// NewPage builds a Page for the given window parameters.
func NewPage[T any](items []T, pageNumber, perPage int, totalCount int64) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Items:      items,
		PageNumber: pageNumber,
		PerPage:    perPage,
		TotalCount: totalCount,
	}
}

// TotalPages returns the number of pages needed to cover TotalCount items.
func (p Page[T]) TotalPages() int {
	if p.PerPage <= 0 || p.TotalCount == 0 {
		return 0
	}
	return int((p.TotalCount + int64(p.PerPage) - 1) / int64(p.PerPage))
}

// HasNext reports whether a page follows this one.
func (p Page[T]) HasNext() bool {
	return p.PageNumber < p.TotalPages()
}

// HasPrev reports whether a page precedes this one.
func (p Page[T]) HasPrev() bool {
	return p.PageNumber > 1
}

// ClampPage normalizes a raw page parameter: values below 1 become 1.
// Pages past the end are left as-is; they simply yield empty items.
func ClampPage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// PageOffset returns the LIMIT/OFFSET offset for a 1-based page.
func PageOffset(page, perPage int) int {
	return (ClampPage(page) - 1) * perPage
}
