package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tutorkit/askdocs/internal/rag"
)

// RAGService is the view of the pipeline service the handlers need.
type RAGService interface {
	Ingest(ctx context.Context, document []byte) (int, error)
	Ask(ctx context.Context, question string) (*rag.Answer, error)
}

// HealthChecker reports vector store connectivity.
// The storage layer implements this via its Health() method.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// UploadFileHandler handles POST /upload-file: a multipart form with a
// single "file" field whose content is ingested as UTF-8 text.
func UploadFileHandler(svc RAGService) gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		defer file.Close()

		document, err := io.ReadAll(file)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		count, err := svc.Ingest(c.Request.Context(), document)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": fmt.Sprintf("Uploaded %d chunks successfully", count),
		})
	}
}

// askRequest is the JSON body of POST /ask.
type askRequest struct {
	Query string `json:"query"`
}

// AskHandler handles POST /ask: embeds the question, retrieves context,
// and returns the generated answer together with the context used.
func AskHandler(svc RAGService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req askRequest
		// A malformed body leaves Query empty and fails validation below.
		_ = c.ShouldBindJSON(&req)

		answer, err := svc.Ask(c.Request.Context(), req.Query)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"answer":       answer.Answer,
			"used_context": answer.UsedContext,
		})
	}
}

// healthResponse is the JSON body of GET /health.
type healthResponse struct {
	Status    string `json:"status"`
	Qdrant    string `json:"qdrant"`
	Timestamp string `json:"timestamp"`
}

// HealthHandler handles GET /health, checking Qdrant connectivity with a
// short timeout.
func HealthHandler(store HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		response := healthResponse{
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		}

		if err := store.Health(ctx); err != nil {
			response.Status = "unhealthy"
			response.Qdrant = "disconnected"
			c.JSON(http.StatusServiceUnavailable, response)
			return
		}

		response.Status = "healthy"
		response.Qdrant = "connected"
		c.JSON(http.StatusOK, response)
	}
}

// respondError maps pipeline failures to HTTP statuses: validation errors
// are client errors with their exact message, everything else is a 500
// with the underlying message forwarded.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	if rag.KindOf(err) == rag.KindValidation {
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
