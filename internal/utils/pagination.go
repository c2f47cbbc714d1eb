package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const maxLimit = 100

// Pagination es el bloque de metadata que acompaña a los listados.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

// ParsePagination lee page y limit de la query con defaults sanos.
func ParsePagination(c *gin.Context, defaultLimit int) (page, limit int) {
	page = parseInt(c.Query("page"), 1)
	limit = parseInt(c.Query("limit"), defaultLimit)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}

// NewPagination calcula la metadata de un listado.
func NewPagination(page, limit int, total int64) Pagination {
	return Pagination{Page: page, Limit: limit, Total: total, Pages: PageCount(total, limit)}
}

// PageCount es ceil(total / limit).
func PageCount(total int64, limit int) int64 {
	if limit <= 0 {
		return 0
	}
	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}
	return pages
}

func parseInt(value string, fallback int) int {
	if parsed, err := strconv.Atoi(value); err == nil {
		return parsed
	}
	return fallback
}
