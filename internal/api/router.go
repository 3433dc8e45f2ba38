package api

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/guttosm/stockpager/internal/middleware"
	"github.com/guttosm/stockpager/internal/page"
)

// RouterConfig tunes the global middlewares.
type RouterConfig struct {
	RateLimitRPS   float64       // requests per second per client IP; <= 0 disables limiting
	RateLimitBurst int           // bucket size per client IP
	RequestTimeout time.Duration // deadline attached to every request context; <= 0 means 10s
}

// NewRouter creates a Gin engine with routes configured.
//
// Responsibilities:
//   - Registers global middlewares (RequestID, Logger, Recovery, ErrorHandler, RateLimiter).
//   - Attaches a per-request timeout to the request context.
//   - Loads the embedded page template.
//   - Mounts Swagger docs (/swagger/*any).
//   - Configures the page routes (/, /links/:index) and API v1 routes (/api/v1).
//
// Health and readiness endpoints (/healthz, /readyz) are registered in app.InitializeApp().
func NewRouter(handler *Handler, cfg RouterConfig) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RecoveryMiddleware(),
		middleware.ErrorHandler,
		middleware.RateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
	)

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	router.SetHTMLTemplate(page.Templates())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/", handler.ShowPage)
	router.GET("/links/:index", handler.FollowLink)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/page", handler.GetPage)
		v1.GET("/fetches", handler.ListFetches)
	}

	return router
}
