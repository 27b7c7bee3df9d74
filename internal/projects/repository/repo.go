package repository

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/enesocakci/portfolio-backend/internal/projects/domain"
)

const (
	projectsCollection = "projects"
	likesCollection    = "likes"
)

// ProjectRepository provides persistence operations for projects and their
// like records.
type ProjectRepository struct {
	client   *firestore.Client
	projects *firestore.CollectionRef
	likes    *firestore.CollectionRef
}

// NewProjectRepository creates a new project repository.
func NewProjectRepository(client *firestore.Client) *ProjectRepository {
	return &ProjectRepository{
		client:   client,
		projects: client.Collection(projectsCollection),
		likes:    client.Collection(likesCollection),
	}
}

// Create inserts a new project with a zero like counter and returns the
// store-assigned document id.
func (r *ProjectRepository) Create(ctx context.Context, title, description, imageURL string) (string, error) {
	p := domain.Project{
		Title:       title,
		Description: description,
		ImageURL:    imageURL,
		Likes:       0,
		Comments:    []any{},
		Offers:      []any{},
	}
	ref, _, err := r.projects.Add(ctx, p)
	if err != nil {
		return "", fmt.Errorf("failed to create project: %w", err)
	}
	return ref.ID, nil
}

// List returns all projects.
func (r *ProjectRepository) List(ctx context.Context) ([]domain.Project, error) {
	iter := r.projects.Documents(ctx)
	defer iter.Stop()

	out := make([]domain.Project, 0, 16)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list projects: %w", err)
		}

		var p domain.Project
		if err := doc.DataTo(&p); err != nil {
			return nil, fmt.Errorf("failed to decode project %s: %w", doc.Ref.ID, err)
		}
		p.ID = doc.Ref.ID
		out = append(out, p)
	}
	return out, nil
}

// RecordLike registers a like for (projectID, identifier) in a single
// transaction: dedup check, project existence check, counter increment and
// like-record create either all happen or none do. Firestore requires all
// transaction reads before the first write, which this ordering satisfies.
func (r *ProjectRepository) RecordLike(ctx context.Context, projectID, identifier string) error {
	likeRef := r.likes.Doc(domain.LikeKey(projectID, identifier))
	projectRef := r.projects.Doc(projectID)

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if _, err := tx.Get(likeRef); err == nil {
			return domain.ErrAlreadyLiked
		} else if status.Code(err) != codes.NotFound {
			return err
		}

		if _, err := tx.Get(projectRef); err != nil {
			if status.Code(err) == codes.NotFound {
				return domain.ErrProjectNotFound
			}
			return err
		}

		if err := tx.Update(projectRef, []firestore.Update{
			{Path: "likes", Value: firestore.Increment(1)},
		}); err != nil {
			return err
		}

		return tx.Create(likeRef, domain.Like{
			ProjectID:  projectID,
			Identifier: identifier,
		})
	})
	if errors.Is(err, domain.ErrAlreadyLiked) || errors.Is(err, domain.ErrProjectNotFound) {
		return err
	}
	if err != nil {
		return fmt.Errorf("failed to record like: %w", err)
	}
	return nil
}

// CountLikes counts the like records stored for a project.
func (r *ProjectRepository) CountLikes(ctx context.Context, projectID string) (int64, error) {
	iter := r.likes.Where("projectId", "==", projectID).Documents(ctx)
	defer iter.Stop()

	var n int64
	for {
		_, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("failed to count likes for %s: %w", projectID, err)
		}
		n++
	}
	return n, nil
}

// SetLikes overwrites a project's like counter. Used only by the
// reconciliation job to repair drifted counters.
func (r *ProjectRepository) SetLikes(ctx context.Context, projectID string, likes int64) error {
	_, err := r.projects.Doc(projectID).Update(ctx, []firestore.Update{
		{Path: "likes", Value: likes},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return domain.ErrProjectNotFound
		}
		return fmt.Errorf("failed to set likes for %s: %w", projectID, err)
	}
	return nil
}
