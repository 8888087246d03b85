package utils

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// Pagination carries the page window for a list endpoint, plus the
// totals filled in once the repository has been counted.
type Pagination struct {
	Page     int   `json:"page"`
	Limit    int   `json:"limit"`
	Offset   int   `json:"offset"`
	Total    int64 `json:"total"`
	LastPage int   `json:"last_page"`
}

// GetPagination reads page and limit from the query string, falling
// back to the given defaults on missing or unusable values.
func GetPagination(c *fiber.Ctx, defaultPage, defaultLimit int) Pagination {
	pageStr := c.Query("page", strconv.Itoa(defaultPage))
	limitStr := c.Query("limit", strconv.Itoa(defaultLimit))

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = defaultPage
	}

	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		limit = defaultLimit
	}

	return Pagination{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}

// SetTotal records the row count and derives the last page number.
func (p *Pagination) SetTotal(total int64) {
	p.Total = total
	p.LastPage = int((total + int64(p.Limit) - 1) / int64(p.Limit))
}

// PaginatedResponse is the envelope list endpoints return: the page of
// rows plus the window that produced it.
type PaginatedResponse struct {
	Data       interface{} `json:"data"`
	Pagination Pagination  `json:"pagination"`
}

func NewPaginatedResponse(data interface{}, pagination Pagination) PaginatedResponse {
	return PaginatedResponse{
		Data:       data,
		Pagination: pagination,
	}
}
