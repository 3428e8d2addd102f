package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"livraria-api/internal/shared/middleware"
	"livraria-api/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))
		setupLivroRoutes(v1, c)
	}

	return router
}

func setupLivroRoutes(v1 *gin.RouterGroup, c *container.Container) {
	livros := v1.Group("/livros")
	{
		livros.GET("", c.LivroHandler.List)
		livros.GET("/:id", c.LivroHandler.GetByID)
		livros.GET("/genero/:genero", c.LivroHandler.GetByGenre)
		livros.POST("", c.LivroHandler.Create)
		livros.PUT("/:id", c.LivroHandler.Update)
		livros.PATCH("/:id", c.LivroHandler.Update)
		livros.DELETE("/:id", c.LivroHandler.Delete)
	}
}

// healthCheckHandler reports service, database and cache status. The
// database is required; the cache only degrades the report.
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		dbStatus := "ok"
		if err := appCtx.DB.HealthCheck(c.Request.Context()); err != nil {
			dbStatus = err.Error()
		}

		cacheStatus := "ok"
		if err := appCtx.Cache.Ping(c.Request.Context()); err != nil {
			cacheStatus = err.Error()
		}

		status := "ok"
		statusCode := http.StatusOK
		if dbStatus != "ok" {
			status = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, gin.H{
			"status":    status,
			"version":   appCtx.Config.App.Version,
			"timestamp": time.Now().Format(time.RFC3339),
			"services": gin.H{
				"database": dbStatus,
				"cache":    cacheStatus,
			},
		})
	}
}
