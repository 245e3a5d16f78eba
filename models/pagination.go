package models

// PaginationInfo describes the position of one page inside the full server
// list. All fields are non-negative; HasNextPage and HasPrevPage are always
// derived from Page and TotalPages, never trusted from intermediate state.
type PaginationInfo struct {
	Page        int  `json:"page"`
	Limit       int  `json:"limit"`
	Total       int  `json:"total"`
	TotalPages  int  `json:"totalPages"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}

// NewPaginationInfo builds a PaginationInfo for the given page, page size and
// total item count, enforcing the struct invariants:
//
//	TotalPages  == ceil(Total/Limit)   (for Limit > 0)
//	HasNextPage == Page < TotalPages
//	HasPrevPage == Page > 1
//
// Non-positive page or limit values are clamped to safe defaults so a
// malformed gateway response cannot produce negative counters.
func NewPaginationInfo(page, limit, total int) PaginationInfo {
	if page < 1 {
		page = 1
	}
	if total < 0 {
		total = 0
	}

	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}

	return PaginationInfo{
		Page:        page,
		Limit:       limit,
		Total:       total,
		TotalPages:  totalPages,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
}

// QueryParams selects one page of the server list. The values come from the
// consumer's pagination controls and are passed through to the gateway
// unchanged.
type QueryParams struct {
	// Page is the 1-based page number to request.
	Page int

	// Limit is the number of servers per page.
	Limit int
}
