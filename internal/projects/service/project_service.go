package service

import (
	"context"

	"github.com/enesocakci/portfolio-backend/internal/projects/domain"
)

// Store is the persistence surface the project workflows need.
type Store interface {
	Create(ctx context.Context, title, description, imageURL string) (string, error)
	List(ctx context.Context) ([]domain.Project, error)
	RecordLike(ctx context.Context, projectID, identifier string) error
}

// Cache holds a materialized project listing. May be nil when Redis is not
// configured.
type Cache interface {
	Get(ctx context.Context) ([]domain.Project, bool)
	Set(ctx context.Context, projects []domain.Project)
	Invalidate(ctx context.Context)
}

// ProjectService handles project creation, listing and the like workflow.
type ProjectService struct {
	store Store
	cache Cache
}

// NewProjectService creates a new project service. cache may be nil.
func NewProjectService(store Store, cache Cache) *ProjectService {
	return &ProjectService{store: store, cache: cache}
}

// Create creates a new project and returns its id.
func (s *ProjectService) Create(ctx context.Context, title, description, imageURL string) (string, error) {
	id, err := s.store.Create(ctx, title, description, imageURL)
	if err != nil {
		return "", err
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
	return id, nil
}

// List returns all projects, served from the cache when warm.
func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	if s.cache != nil {
		if projects, ok := s.cache.Get(ctx); ok {
			return projects, nil
		}
	}

	projects, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Set(ctx, projects)
	}
	return projects, nil
}

// Like records a like for (projectID, identifier). At most one like per pair;
// a repeat attempt returns domain.ErrAlreadyLiked and an unknown project
// returns domain.ErrProjectNotFound.
func (s *ProjectService) Like(ctx context.Context, projectID, identifier string) error {
	if err := s.store.RecordLike(ctx, projectID, identifier); err != nil {
		return err
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
	return nil
}
