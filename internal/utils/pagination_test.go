package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func ginContextWithQuery(t *testing.T, query string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+query, nil)
	return c
}

func TestParsePagination(t *testing.T) {
	cases := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "", 1, 50},
		{"valores explícitos", "page=3&limit=20", 3, 20},
		{"página negativa", "page=-2", 1, 50},
		{"límite cero cae al default", "limit=0", 1, 50},
		{"límite se recorta a 100", "limit=500", 1, 100},
		{"basura no numérica", "page=abc&limit=xyz", 1, 50},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := ginContextWithQuery(t, tc.query)
			page, limit := ParsePagination(c, 50)
			assert.Equal(t, tc.wantPage, page)
			assert.Equal(t, tc.wantLimit, limit)
		})
	}
}

func TestParsePaginationCustomDefault(t *testing.T) {
	c := ginContextWithQuery(t, "")
	_, limit := ParsePagination(c, 12)
	assert.Equal(t, 12, limit)
}

func TestPageCount(t *testing.T) {
	assert.Equal(t, int64(0), PageCount(0, 10))
	assert.Equal(t, int64(1), PageCount(1, 10))
	assert.Equal(t, int64(1), PageCount(10, 10))
	assert.Equal(t, int64(2), PageCount(11, 10))
	assert.Equal(t, int64(0), PageCount(5, 0))
}

func TestNewPagination(t *testing.T) {
	p := NewPagination(2, 12, 25)
	assert.Equal(t, Pagination{Page: 2, Limit: 12, Total: 25, Pages: 3}, p)
}
