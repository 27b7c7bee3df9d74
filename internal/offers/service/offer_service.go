package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/enesocakci/portfolio-backend/internal/offers/domain"
)

// Store is the persistence surface the offer workflow needs.
type Store interface {
	Create(ctx context.Context, o domain.Offer) error
	List(ctx context.Context) ([]domain.Offer, error)
	Transition(ctx context.Context, offerID string, next domain.Status) error
}

// OfferService handles offer submission, listing and the pending→decided
// lifecycle.
type OfferService struct {
	store Store
}

func NewOfferService(store Store) *OfferService {
	return &OfferService{store: store}
}

// Submit validates the request, generates a fresh offer id and persists the
// offer in pending state. Nothing is written when validation fails. The
// returned offer echoes the generated id; createdAt is assigned by the store
// and is zero in the echo.
func (s *OfferService) Submit(ctx context.Context, projectID, email, subject string, amount float64) (*domain.Offer, error) {
	projectID = strings.TrimSpace(projectID)
	email = strings.TrimSpace(email)
	subject = strings.TrimSpace(subject)
	if projectID == "" || email == "" || subject == "" || amount <= 0 {
		return nil, domain.ErrMissingField
	}

	o := domain.Offer{
		OfferID:   uuid.NewString(),
		ProjectID: projectID,
		Email:     email,
		Subject:   subject,
		Amount:    amount,
		Status:    domain.StatusPending,
	}
	if err := s.store.Create(ctx, o); err != nil {
		return nil, err
	}
	return &o, nil
}

// List returns all offers, newest first.
func (s *OfferService) List(ctx context.Context) ([]domain.Offer, error) {
	return s.store.List(ctx)
}

// Approve moves a pending offer to approved. A missing offer yields
// domain.ErrOfferNotFound; a decided one yields domain.ErrAlreadyDecided.
func (s *OfferService) Approve(ctx context.Context, offerID string) error {
	if strings.TrimSpace(offerID) == "" {
		return domain.ErrMissingField
	}
	return s.store.Transition(ctx, offerID, domain.StatusApproved)
}

// Reject moves a pending offer to rejected, with the same guards as Approve.
func (s *OfferService) Reject(ctx context.Context, offerID string) error {
	if strings.TrimSpace(offerID) == "" {
		return domain.ErrMissingField
	}
	return s.store.Transition(ctx, offerID, domain.StatusRejected)
}
