package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
	"routing-demo/internal/config"
	"routing-demo/internal/dataset"
	"routing-demo/internal/handler"
	"routing-demo/internal/hub"
	"routing-demo/internal/middleware"
)

type Deps struct {
	Config config.Config
	Data   *dataset.Dataset
}

func NewRouter(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(secure.New(secure.Config{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}))

	if deps.Config.RateLimitRPS > 0 {
		limiter := middleware.NewRateLimiter(deps.Config.RateLimitRPS, deps.Config.RateLimitBurst)
		r.Use(limiter.Middleware())
	}

	startedAt := time.Now()
	home := &handler.HomeHandler{StartedAt: startedAt}
	r.GET("/", home.Root)
	r.GET("/health", home.Health)
	r.GET("/api/v1/status", home.APIStatus)

	users := &handler.UserHandler{Data: deps.Data}
	r.GET("/users", users.List)
	r.GET("/users/:id", users.Get)
	r.POST("/users", users.Create)
	r.PUT("/users/:id", middleware.RequireAuth(), users.Update)
	r.DELETE("/users/:id", middleware.RequireAdmin(), users.Delete)

	posts := &handler.PostHandler{Data: deps.Data}
	r.GET("/posts", posts.List)
	r.POST("/posts", middleware.RequireAuth(), posts.Create)

	searchHandler := &handler.SearchHandler{Data: deps.Data}
	r.GET("/search", searchHandler.Search)

	protectedHandler := &handler.ProtectedHandler{}
	r.GET("/protected", middleware.RequireAuth(), protectedHandler.Get)

	adminHandler := &handler.AdminHandler{Data: deps.Data}
	admin := r.Group("/admin")
	admin.Use(middleware.RequireAdmin())
	admin.GET("/stats", adminHandler.Stats)
	admin.GET("/users/:id/details", adminHandler.UserDetails)

	fileHandler := &handler.FileHandler{MaxUploadBytes: deps.Config.MaxUploadBytes}
	r.POST("/files/upload", middleware.RequireAuth(), fileHandler.Upload)

	wsHub := hub.New()
	wsHandler := &handler.WebSocketHandler{Hub: wsHub, StartedAt: startedAt}
	r.GET("/ws", wsHandler.Serve)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Endpoint not found",
			"path":  c.Request.URL.Path,
		})
	})

	return r
}
