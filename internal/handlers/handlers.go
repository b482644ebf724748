package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"sportsbook/internal/validation"
)

// parseID reads the :id path parameter. On failure it writes the 422 itself
// and reports false.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "validation failed",
			"fields": gin.H{"id": "must be a positive integer"},
		})
		return 0, false
	}
	return uint(id), true
}

// parseCountFilter reads an optional non-negative integer query parameter.
// nil means the parameter was absent; the bool is false after a 422 was
// written for a malformed value.
func parseCountFilter(c *gin.Context, name string) (*int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "validation failed",
			"fields": gin.H{name: "must be a non-negative integer"},
		})
		return nil, false
	}
	return &n, true
}

func validationError(c *gin.Context, err error) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"error":  "validation failed",
		"fields": validation.Describe(err),
	})
}
