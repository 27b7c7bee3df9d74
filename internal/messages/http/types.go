package http

import (
	"context"

	"github.com/enesocakci/portfolio-backend/internal/messages/domain"
)

// MessageStore is the persistence surface the message endpoints need.
type MessageStore interface {
	Add(ctx context.Context, m domain.Message) error
	List(ctx context.Context) ([]domain.Message, error)
}

// Handler bundles the dependencies for message HTTP endpoints.
type Handler struct {
	store MessageStore
}

func New(store MessageStore) *Handler {
	return &Handler{store: store}
}
