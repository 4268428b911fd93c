package handler

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"routing-demo/internal/auth"
)

// authFromRequest resolves the bearer identity for handlers where auth is
// optional and only shapes the response.
func authFromRequest(c *gin.Context) (auth.Identity, error) {
	return auth.FromAuthorizationHeader(c.GetHeader("Authorization"))
}

func intQuery(c *gin.Context, name string, def int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return n, nil
}

// pageParams validates the shared page/limit pair used by list endpoints.
func pageParams(c *gin.Context, defaultLimit, maxLimit int) (page, limit int, err error) {
	page, err = intQuery(c, "page", 1)
	if err != nil {
		return 0, 0, err
	}
	limit, err = intQuery(c, "limit", defaultLimit)
	if err != nil {
		return 0, 0, err
	}
	if page < 1 {
		return 0, 0, fmt.Errorf("page must be >= 1")
	}
	if limit < 1 || limit > maxLimit {
		return 0, 0, fmt.Errorf("limit must be between 1-%d", maxLimit)
	}
	return page, limit, nil
}
