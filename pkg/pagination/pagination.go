package pagination

import (
	"net/url"
	"strconv"
)

// PageRequest represents a client request for a page of data.
type PageRequest struct {
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
}

// Normalize adjusts the request to ensure valid pagination values based on the config.
func (r *PageRequest) Normalize(cfg Config) {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.PerPage < 1 {
		r.PerPage = cfg.DefaultPerPage
	}
	if r.PerPage > cfg.MaxPerPage {
		r.PerPage = cfg.MaxPerPage
	}
}

// Offset calculates the number of records to skip based on page and page size.
func (r *PageRequest) Offset() int {
	return (r.Page - 1) * r.PerPage
}

// PageRequestFromQuery parses pagination parameters from URL query values.
// Supported parameters: page, per_page.
func PageRequestFromQuery(values url.Values, cfg Config) PageRequest {
	page, _ := strconv.Atoi(values.Get("page"))
	perPage, _ := strconv.Atoi(values.Get("per_page"))

	req := PageRequest{
		Page:    page,
		PerPage: perPage,
	}

	req.Normalize(cfg)
	return req
}

// PageResult holds a page of data along with pagination metadata.
type PageResult[T any] struct {
	Data    []T `json:"data"`
	Total   int `json:"total"`
	Page    int `json:"current_page"`
	PerPage int `json:"per_page"`
	Pages   int `json:"pages"`
}

// NewPageResult creates a PageResult with calculated total pages.
func NewPageResult[T any](data []T, total, page, perPage int) PageResult[T] {
	pages := total / perPage
	if total%perPage != 0 {
		pages++
	}
	if pages < 1 {
		pages = 1
	}

	if data == nil {
		data = []T{}
	}

	return PageResult[T]{
		Data:    data,
		Total:   total,
		Page:    page,
		PerPage: perPage,
		Pages:   pages,
	}
}
