package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"routing-demo/internal/dataset"
)

type SearchHandler struct {
	Data *dataset.Dataset
}

func (h *SearchHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Search query 'q' is required"})
		return
	}
	if len(query) > 100 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Search query too long"})
		return
	}

	category := c.DefaultQuery("category", "all")
	if !dataset.ValidSearchCategory(category) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("Invalid category. Must be one of: %s", strings.Join(dataset.SearchCategories, ", ")),
		})
		return
	}

	page, limit, err := pageParams(c, 10, 100)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	results, pagination := h.Data.Search(query, category, page, limit)
	c.JSON(http.StatusOK, gin.H{
		"query":      query,
		"category":   category,
		"results":    results,
		"pagination": pagination,
	})
}
