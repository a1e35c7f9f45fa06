package dto

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// PageQuery is the common pagination query string pair.
type PageQuery struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

// Normalize clamps page/limit into their allowed ranges.
func (q *PageQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = DefaultPageSize
	}
	if q.Limit > MaxPageSize {
		q.Limit = MaxPageSize
	}
}

func (q *PageQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// Pagination is the envelope metadata for list responses.
type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

func NewPagination(total int64, q PageQuery) Pagination {
	totalPages := int((total + int64(q.Limit) - 1) / int64(q.Limit))
	return Pagination{
		Total:      total,
		Page:       q.Page,
		Limit:      q.Limit,
		TotalPages: totalPages,
	}
}

// ListResponse is the common list envelope.
type ListResponse struct {
	Items      interface{} `json:"items"`
	Pagination Pagination  `json:"pagination"`
}
