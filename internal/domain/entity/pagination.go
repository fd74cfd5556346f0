package entity

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// PageRequest is a validated page/limit pair (both >= 1)
type PageRequest struct {
	Page  int
	Limit int
}

// Offset returns the number of rows skipped before this page
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Pagination is the metadata returned alongside a page of results
type Pagination struct {
	CurrentPage  int
	TotalPages   int
	TotalItems   int64
	ItemsPerPage int
	HasNextPage  bool
	HasPrevPage  bool
}

// NewPagination computes page metadata; total_pages is ceil(total/limit)
// and zero for an empty result set.
func NewPagination(req PageRequest, total int64) Pagination {
	limit := int64(req.Limit)
	totalPages := 0
	if total > 0 && limit > 0 {
		totalPages = int((total + limit - 1) / limit)
	}

	return Pagination{
		CurrentPage:  req.Page,
		TotalPages:   totalPages,
		TotalItems:   total,
		ItemsPerPage: req.Limit,
		HasNextPage:  req.Page < totalPages,
		HasPrevPage:  req.Page > 1,
	}
}
