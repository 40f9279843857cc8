package service

import "github.com/backoffice/admin-api/internal/core/ports"

const maxPageSize = 100

// clampFilter normalises paging bounds before a filter reaches a repository.
func clampFilter(f ports.ListFilter) ports.ListFilter {
	if f.Limit <= 0 || f.Limit > maxPageSize {
		f.Limit = maxPageSize
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return f
}
