package response

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

// Links holds absolute page URLs. Previous and next are null at the
// respective boundary.
type Links struct {
	First    string  `json:"first"`
	Last     string  `json:"last"`
	Previous *string `json:"previous"`
	Next     *string `json:"next"`
}

// Pagination describes one page of a listed collection.
type Pagination struct {
	Total       int64 `json:"total"`
	Count       int   `json:"count"`
	PerPage     int   `json:"per_page"`
	CurrentPage int   `json:"current_page"`
	TotalPages  int   `json:"total_pages"`
	Links       Links `json:"links"`
}

// NewPagination builds pagination metadata for the current request. Page
// URLs are derived from the request's host and path.
func NewPagination(c *gin.Context, total int64, count, perPage, currentPage int) Pagination {
	totalPages := int((total + int64(perPage) - 1) / int64(perPage))
	if totalPages < 1 {
		totalPages = 1
	}

	base := baseURL(c)
	pageURL := func(page int) string {
		return fmt.Sprintf("%s?page=%d", base, page)
	}

	links := Links{
		First: pageURL(1),
		Last:  pageURL(totalPages),
	}
	if currentPage > 1 {
		previous := pageURL(currentPage - 1)
		links.Previous = &previous
	}
	if currentPage < totalPages {
		next := pageURL(currentPage + 1)
		links.Next = &next
	}

	return Pagination{
		Total:       total,
		Count:       count,
		PerPage:     perPage,
		CurrentPage: currentPage,
		TotalPages:  totalPages,
		Links:       links,
	}
}

func baseURL(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return scheme + "://" + c.Request.Host + c.Request.URL.Path
}
