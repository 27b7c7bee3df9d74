package http

import (
	"context"

	"github.com/enesocakci/portfolio-backend/internal/projects/domain"
)

// ProjectService is the workflow surface the project endpoints need.
type ProjectService interface {
	Create(ctx context.Context, title, description, imageURL string) (string, error)
	List(ctx context.Context) ([]domain.Project, error)
	Like(ctx context.Context, projectID, identifier string) error
}

// Handler bundles the dependencies for project HTTP endpoints.
type Handler struct {
	svc ProjectService
}

func New(svc ProjectService) *Handler {
	return &Handler{svc: svc}
}
