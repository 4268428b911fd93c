package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const version = "1.0.0"

type HomeHandler struct {
	StartedAt time.Time
}

func (h *HomeHandler) Root(c *gin.Context) {
	// Auth is optional here; a valid token just enriches the response.
	var userInfo gin.H
	if identity, err := authFromRequest(c); err == nil {
		userInfo = gin.H{
			"username":    identity.Username,
			"is_admin":    identity.IsAdmin,
			"permissions": identity.Permissions,
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Welcome to the routing demo API",
		"framework": "gin",
		"version":   version,
		"user":      userInfo,
		"available_endpoints": []string{
			"/users", "/users/{id}", "/posts", "/search",
			"/protected", "/admin/stats", "/files/upload", "/ws",
		},
	})
}

func (h *HomeHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"version":   version,
		"timestamp": time.Now().Unix(),
		"uptime":    time.Since(h.StartedAt).Round(time.Second).String(),
	})
}

func (h *HomeHandler) APIStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "online",
		"version":   version,
		"timestamp": time.Now().Unix(),
	})
}
