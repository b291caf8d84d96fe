package pagination

import (
	"net/url"
	"strconv"
)

// PageRequest represents a client request for a page of data.
type PageRequest struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

// Normalize clamps the request to valid values for the config.
func (r *PageRequest) Normalize(cfg Config) {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.PageSize < 1 {
		r.PageSize = cfg.DefaultPageSize
	}
	if r.PageSize > cfg.MaxPageSize {
		r.PageSize = cfg.MaxPageSize
	}
}

// Offset returns the number of items preceding the requested page.
func (r *PageRequest) Offset() int {
	return (r.Page - 1) * r.PageSize
}

// PageRequestFromQuery parses the page and page_size query parameters.
func PageRequestFromQuery(values url.Values, cfg Config) PageRequest {
	page, _ := strconv.Atoi(values.Get("page"))
	pageSize, _ := strconv.Atoi(values.Get("page_size"))

	req := PageRequest{Page: page, PageSize: pageSize}
	req.Normalize(cfg)
	return req
}

// PageResult holds a page of data along with pagination metadata.
type PageResult[T any] struct {
	Data       []T `json:"data"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
}

// NewPageResult builds a PageResult, computing TotalPages from total and pageSize.
// A nil data slice is replaced with an empty one so it encodes as [].
func NewPageResult[T any](data []T, total, page, pageSize int) PageResult[T] {
	if data == nil {
		data = []T{}
	}

	totalPages := 0
	if pageSize > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}

	return PageResult[T]{
		Data:       data,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}

// Paginate slices an in-memory collection according to a normalized request.
// The returned page data is a copy and does not alias items.
func Paginate[T any](items []T, req PageRequest) PageResult[T] {
	total := len(items)
	start := min(req.Offset(), total)
	end := min(start+req.PageSize, total)

	page := make([]T, end-start)
	copy(page, items[start:end])

	return NewPageResult(page, total, req.Page, req.PageSize)
}
