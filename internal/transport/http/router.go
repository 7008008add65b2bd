// Package http exposes the askdocs pipelines over a gin HTTP server.
package http

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter builds the gin engine with all routes registered.
// staticDir, when non-empty, is served for any path without a registered
// route, mirroring a classic public asset directory at /.
func NewRouter(svc RAGService, health HealthChecker, staticDir string, logger *zap.Logger) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(logger))
	r.Use(cors.Default())

	r.POST("/upload-file", UploadFileHandler(svc))
	r.POST("/ask", AskHandler(svc))
	r.GET("/health", HealthHandler(health))

	if staticDir != "" {
		fileServer := http.FileServer(http.Dir(staticDir))
		r.NoRoute(gin.WrapH(fileServer))
	}

	return r
}
