package dto

import "math"

// DefaultPageLimit applies when the client does not send a limit.
const DefaultPageLimit = 20

// PageRequest carries normalized list paging values.
type PageRequest struct {
	Page  int
	Limit int
}

// NewPageRequest clamps page to >=1 and applies the default limit.
func NewPageRequest(page, limit int) PageRequest {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	return PageRequest{Page: page, Limit: limit}
}

// Offset returns the row offset for the request.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Pagination is the envelope metadata block for list responses.
type Pagination struct {
	Current int  `json:"current"`
	Total   int  `json:"total"`
	HasNext bool `json:"hasNext"`
	HasPrev bool `json:"hasPrev"`
}

// NewPagination derives metadata from the matching row total.
func NewPagination(req PageRequest, total int64) Pagination {
	totalPages := int(math.Ceil(float64(total) / float64(req.Limit)))
	return Pagination{
		Current: req.Page,
		Total:   totalPages,
		HasNext: req.Page < totalPages,
		HasPrev: req.Page > 1,
	}
}
