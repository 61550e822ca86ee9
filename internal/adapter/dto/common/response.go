package common

// ErrorResponse documents the error envelope
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Info    string `json:"info,omitempty"`
}

// SuccessResponse documents the success envelope
type SuccessResponse struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// PaginationResponse represents pagination metadata
type PaginationResponse struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
	TotalItems int64 `json:"total_items"`
}

// NewPagination computes pagination metadata
func NewPagination(total int64, page, pageSize int) *PaginationResponse {
	if pageSize <= 0 {
		pageSize = 1
	}
	totalPages := int(total) / pageSize
	if int(total)%pageSize != 0 {
		totalPages++
	}
	return &PaginationResponse{
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		TotalItems: total,
	}
}

// PageRequest holds the common paging query parameters
type PageRequest struct {
	Page      int    `query:"page" validate:"omitempty,min=1"`
	PageSize  int    `query:"page_size" validate:"omitempty,min=1,max=100"`
	SortOrder string `query:"sort_order" validate:"omitempty,oneof=asc desc"`
}

// Normalize fills default paging values
func (p *PageRequest) Normalize() {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = 20
	}
}

// Offset returns the row offset of the page
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.PageSize
}
