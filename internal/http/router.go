package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dkarpov/clip2org/internal/config"
)

// RouterConfig carries the dependencies of the HTTP surface.
type RouterConfig struct {
	Config *config.Config
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	converter := NewConvertController(cfg.Config)

	router.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.POST("/convert", converter.Convert)
	router.POST("/api/convert", converter.ConvertJSON)

	return router
}
