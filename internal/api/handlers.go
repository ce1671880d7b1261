// Package api contains the HTTP handlers for the query service.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"querycraft/backend/pkg/models"
)

// QueryRunner is the pipeline boundary the handlers depend on. It always
// returns a structured response, even on failure.
type QueryRunner interface {
	Run(ctx context.Context, question string) *models.QueryResponse
}

// Server holds the dependencies for the API server.
type Server struct {
	pipeline QueryRunner
}

// NewServer creates a new Server.
func NewServer(pipeline QueryRunner) *Server {
	return &Server{pipeline: pipeline}
}

// HandleQuery processes a natural-language question and returns the pipeline
// result
// (POST /api/v1/query)
func (s *Server) HandleQuery(c echo.Context) error {
	var req models.QueryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body: "+err.Error())
	}

	// Empty or unanswerable questions come back as structured failures with
	// success=false, so the status is 200 either way.
	resp := s.pipeline.Run(c.Request().Context(), req.Question)
	return c.JSON(http.StatusOK, resp)
}

// HealthStatus represents the health check response
type HealthStatus struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
}

// HandleHealth returns basic health status (always returns 200 OK)
// (GET /health)
func (s *Server) HandleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthStatus{
		Status:    "ok",
		Timestamp: time.Now(),
		Service:   "querycraft-backend",
		Version:   "1.0.0",
	})
}
