package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"routing-demo/internal/dataset"
	"routing-demo/internal/middleware"
)

type ProtectedHandler struct{}

func (h *ProtectedHandler) Get(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "This is a protected resource",
		"user":        identity.Username,
		"is_admin":    identity.IsAdmin,
		"permissions": identity.Permissions,
		"timestamp":   time.Now().Unix(),
	})
}

type AdminHandler struct {
	Data *dataset.Dataset
}

func (h *AdminHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.Data.AdminStats())
}

func (h *AdminHandler) UserDetails(c *gin.Context) {
	id, ok := userIDParam(c)
	if !ok {
		return
	}

	user, _, found := h.Data.UserByID(id)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id":    user.ID,
		"username":   user.Username,
		"email":      user.Email,
		"admin_info": h.Data.AdminUserInfo(id),
		"account_info": gin.H{
			"created_at":     user.CreatedAt,
			"email_verified": true,
		},
	})
}
