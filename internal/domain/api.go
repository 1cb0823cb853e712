package domain

type APIResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

type PaginatedResponse struct {
	APIResponse
	Pagination Pagination `json:"pagination"`
}

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// NormalizePage clamps page to >= 1 and limit to [1, MaxPageLimit].
func NormalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	return page, limit
}

func NewPagination(page, limit int, total int64) Pagination {
	page, limit = NormalizePage(page, limit)
	pages := int((total + int64(limit) - 1) / int64(limit))
	return Pagination{Page: page, Limit: limit, Total: total, TotalPages: pages}
}

// Offset is the number of rows to skip for the page.
func (p Pagination) Offset() int { return (p.Page - 1) * p.Limit }
