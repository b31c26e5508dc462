package common

import (
	"net/http"
	"strconv"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

type Page struct {
	Number int `json:"page"`
	Size   int `json:"size"`
}

func (p Page) Offset() int {
	return p.Number * p.Size
}

// ParsePage reads zero-based ?page= and ?size= query params.
// Bad or missing values fall back to the first page of DefaultPageSize.
func ParsePage(r *http.Request) Page {
	p := Page{Number: 0, Size: DefaultPageSize}
	q := r.URL.Query()
	if n, err := strconv.Atoi(q.Get("page")); err == nil && n >= 0 {
		p.Number = n
	}
	if s, err := strconv.Atoi(q.Get("size")); err == nil && s > 0 {
		p.Size = s
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}
	return p
}

// PageResult wraps one page of items with the total item count.
type PageResult struct {
	Content       interface{} `json:"content"`
	Page          int         `json:"page"`
	Size          int         `json:"size"`
	TotalElements int         `json:"totalElements"`
}
