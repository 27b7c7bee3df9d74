package http

import (
	"context"

	"github.com/enesocakci/portfolio-backend/internal/offers/domain"
)

// OfferService is the workflow surface the offer endpoints need.
type OfferService interface {
	Submit(ctx context.Context, projectID, email, subject string, amount float64) (*domain.Offer, error)
	List(ctx context.Context) ([]domain.Offer, error)
	Approve(ctx context.Context, offerID string) error
	Reject(ctx context.Context, offerID string) error
}

// Handler bundles the dependencies for offer HTTP endpoints.
type Handler struct {
	svc OfferService
}

func New(svc OfferService) *Handler {
	return &Handler{svc: svc}
}
