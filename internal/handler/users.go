package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"routing-demo/internal/dataset"
	"routing-demo/internal/middleware"
)

type UserHandler struct {
	Data *dataset.Dataset
}

func (h *UserHandler) List(c *gin.Context) {
	page, limit, err := pageParams(c, 10, 100)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filter := dataset.UserFilter{
		Search:     c.Query("search"),
		ActiveOnly: strings.EqualFold(c.Query("active_only"), "true"),
	}
	users, pagination := h.Data.Users(filter, page, limit)

	c.JSON(http.StatusOK, gin.H{
		"users":      users,
		"pagination": pagination,
		"filters": gin.H{
			"search":      filter.Search,
			"active_only": filter.ActiveOnly,
		},
	})
}

func userIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return 0, false
	}
	return id, true
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := userIDParam(c)
	if !ok {
		return
	}

	user, stats, found := h.Data.UserByID(id)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	body := gin.H{
		"id":         user.ID,
		"username":   user.Username,
		"email":      user.Email,
		"active":     user.Active,
		"created_at": user.CreatedAt,
		"profile":    user.Profile,
		"stats":      stats,
	}
	// Admin callers get extra account detail inline.
	if identity, err := authFromRequest(c); err == nil && identity.IsAdmin {
		body["admin_info"] = h.Data.AdminUserInfo(id)
	}

	c.JSON(http.StatusOK, body)
}

type createUserBody struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Bio      string `json:"bio"`
}

func (h *UserHandler) Create(c *gin.Context) {
	var body createUserBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format"})
		return
	}

	var missing []string
	if body.Username == "" {
		missing = append(missing, "username")
	}
	if body.Email == "" {
		missing = append(missing, "email")
	}
	if len(missing) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields", "missing": missing})
		return
	}
	if len(body.Username) < 3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username must be at least 3 characters"})
		return
	}
	if !strings.Contains(body.Email, "@") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email format"})
		return
	}

	// Nothing is stored; the "created" record lives only in this response.
	now := time.Now()
	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"user": gin.H{
			"id":         now.Unix(),
			"username":   body.Username,
			"email":      body.Email,
			"active":     true,
			"created_at": now.Unix(),
			"profile": gin.H{
				"full_name": body.FullName,
				"bio":       body.Bio,
			},
		},
	})
}

type updateUserBody struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (h *UserHandler) Update(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, okID := userIDParam(c)
	if !okID {
		return
	}
	if id != identity.ID && !identity.IsAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only update your own profile"})
		return
	}

	var body updateUserBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format"})
		return
	}

	user, _, found := h.Data.UserByID(id)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if body.Username != "" {
		user.Username = body.Username
	}
	if body.Email != "" {
		user.Email = body.Email
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User updated successfully",
		"user": gin.H{
			"id":         user.ID,
			"username":   user.Username,
			"email":      user.Email,
			"updated_at": time.Now().Unix(),
		},
		"updated_by": identity.Username,
	})
}

func (h *UserHandler) Delete(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, okID := userIDParam(c)
	if !okID {
		return
	}
	if _, _, found := h.Data.UserByID(id); !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "User deleted successfully",
		"deleted_by":    identity.Username,
		"deletion_time": time.Now().Unix(),
	})
}
