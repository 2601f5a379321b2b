package services

import (
	"github.com/yukikurage/studentorg/internal/repository"
	"github.com/yukikurage/studentorg/internal/utils"
)

// ListParams carries the list screen query string parameters.
type ListParams struct {
	Query      string
	Ordering   string
	Pagination utils.PaginationParams
}

func (p ListParams) filter() repository.ListFilter {
	return repository.ListFilter{
		Query:      p.Query,
		Pagination: p.Pagination,
	}
}
