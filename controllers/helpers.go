package controllers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
	maxPageSize     = 100
)

var errNoIDs = errors.New("ids is required")

// parseIDs reads the "ids" query parameter, a comma separated id list
// as in "ids=1,2,3".
func parseIDs(c *gin.Context) ([]uint, error) {
	raw := c.Query("ids")
	if raw == "" {
		return nil, errNoIDs
	}
	parts := strings.Split(raw, ",")
	ids := make([]uint, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.ParseUint(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, errors.New("ids must be a comma separated list of numbers")
		}
		ids = append(ids, uint(n))
	}
	return ids, nil
}

func parseIDParam(c *gin.Context) (uint, error) {
	n, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, errors.New("invalid id")
	}
	return uint(n), nil
}

// parsePaging applies the 1-indexed defaults and the server-side
// pageSize cap.
func parsePaging(c *gin.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(defaultPage)))
	pageSize, _ = strconv.Atoi(c.DefaultQuery("pageSize", strconv.Itoa(defaultPageSize)))
	if page < 1 {
		page = defaultPage
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}
