package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"routing-demo/internal/dataset"
	"routing-demo/internal/middleware"
)

type PostHandler struct {
	Data *dataset.Dataset
}

func (h *PostHandler) List(c *gin.Context) {
	limit, err := intQuery(c, "limit", 10)
	if err != nil || limit < 1 || limit > 50 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1-50"})
		return
	}
	authorID, err := intQuery(c, "author_id", 0)
	if err != nil || authorID < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid author_id"})
		return
	}

	// Drafts are hidden unless explicitly requested.
	publishedOnly := true
	if raw := c.Query("published_only"); raw != "" {
		publishedOnly = strings.EqualFold(raw, "true")
	}

	posts := h.Data.Posts(dataset.PostFilter{PublishedOnly: publishedOnly, AuthorID: authorID}, limit)
	c.JSON(http.StatusOK, gin.H{"posts": posts, "count": len(posts)})
}

type createPostBody struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	Published bool   `json:"published"`
}

func (h *PostHandler) Create(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var body createPostBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format"})
		return
	}
	if body.Title == "" || len(body.Title) > 200 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title must be 1-200 characters"})
		return
	}
	if len(body.Content) < 10 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Content must be at least 10 characters"})
		return
	}

	now := time.Now()
	c.JSON(http.StatusCreated, gin.H{
		"post": dataset.Post{
			ID:        int(now.Unix()),
			Title:     body.Title,
			Content:   body.Content,
			AuthorID:  identity.ID,
			Published: body.Published,
			CreatedAt: now.Unix(),
		},
	})
}
