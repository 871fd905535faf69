package usecase

import (
	"context"
	"log/slog"

	"economia/src/core/ports"
)

// HealthService handles health check logic.
type HealthService struct {
	log *slog.Logger
	db  ports.Repository
}

// NewHealthService creates a new HealthService.
func NewHealthService(db ports.Repository, log *slog.Logger) *HealthService {
	return &HealthService{
		log: log,
		db:  db,
	}
}

// HealthStatus represents the health of the application.
type HealthStatus struct {
	Status     string                     `json:"status"`
	Components map[string]ComponentHealth `json:"components,omitempty"`
}

// ComponentHealth represents the health of a single component.
type ComponentHealth struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Check performs a health check of all application components.
// Returns the overall health status.
func (s *HealthService) Check(ctx context.Context) *HealthStatus {
	status := &HealthStatus{
		Status:     "ok",
		Components: make(map[string]ComponentHealth),
	}

	if err := s.db.Health(ctx); err != nil {
		s.log.Warn("database health check failed", "error", err)
		status.Status = "degraded"
		status.Components["database"] = ComponentHealth{
			Status:  "unhealthy",
			Message: "database unreachable",
		}
	} else {
		status.Components["database"] = ComponentHealth{Status: "healthy"}
	}

	return status
}
