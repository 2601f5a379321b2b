package utils

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/studentorg/internal/constants"
)

// PaginationParams holds the pagination parameters
type PaginationParams struct {
	Page   int
	Limit  int
	Offset int
}

// PaginationResponse represents the pagination metadata in API responses
type PaginationResponse struct {
	Page        int   `json:"page"`
	PageSize    int   `json:"page_size"`
	TotalCount  int64 `json:"total_count"`
	TotalPages  int   `json:"total_pages"`
	HasNext     bool  `json:"has_next"`
	HasPrevious bool  `json:"has_previous"`
}

// NewPaginationParams clamps page to the first page (and to a bounded last
// page) and falls back to the default page size.
func NewPaginationParams(page, pageSize int) PaginationParams {
	if page < constants.MinPage {
		page = constants.MinPage
	}
	if pageSize < 1 {
		pageSize = constants.DefaultPageSize
	}
	// keep the offset within int32 so it never wraps negative
	if maxPage := math.MaxInt32 / pageSize; page > maxPage {
		page = maxPage
	}

	return PaginationParams{
		Page:   page,
		Limit:  pageSize,
		Offset: (page - 1) * pageSize,
	}
}

// GetPaginationParams extracts the page number from the request. Page size is
// fixed by configuration, not by the client.
func GetPaginationParams(c *gin.Context, pageSize int) PaginationParams {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil {
		page = constants.MinPage
	}
	return NewPaginationParams(page, pageSize)
}

func NewPaginationResponse(params PaginationParams, total int64) PaginationResponse {
	totalPages := int(total) / params.Limit
	if int(total)%params.Limit > 0 {
		totalPages++
	}

	return PaginationResponse{
		Page:        params.Page,
		PageSize:    params.Limit,
		TotalCount:  total,
		TotalPages:  totalPages,
		HasNext:     params.Page < totalPages,
		HasPrevious: params.Page > 1,
	}
}
