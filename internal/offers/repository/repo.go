package repository

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/enesocakci/portfolio-backend/internal/offers/domain"
)

const collection = "offers"

// OfferRepository persists offers in Firestore, keyed by the generated
// offer id.
type OfferRepository struct {
	client *firestore.Client
	col    *firestore.CollectionRef
}

func New(client *firestore.Client) *OfferRepository {
	return &OfferRepository{client: client, col: client.Collection(collection)}
}

// Create stores a new offer under its generated id. The createdAt field is
// assigned server side.
func (r *OfferRepository) Create(ctx context.Context, o domain.Offer) error {
	if _, err := r.col.Doc(o.OfferID).Create(ctx, o); err != nil {
		return fmt.Errorf("failed to create offer: %w", err)
	}
	return nil
}

// List returns all offers, newest first.
func (r *OfferRepository) List(ctx context.Context) ([]domain.Offer, error) {
	iter := r.col.OrderBy("createdAt", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	out := make([]domain.Offer, 0, 16)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list offers: %w", err)
		}

		var o domain.Offer
		if err := doc.DataTo(&o); err != nil {
			return nil, fmt.Errorf("failed to decode offer %s: %w", doc.Ref.ID, err)
		}
		out = append(out, o)
	}
	return out, nil
}

// Transition moves an offer to the next status inside a transaction. The
// current status is re-read under the transaction, so a decided offer can
// never be overwritten by a second approve or reject.
func (r *OfferRepository) Transition(ctx context.Context, offerID string, next domain.Status) error {
	ref := r.col.Doc(offerID)

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return domain.ErrOfferNotFound
			}
			return err
		}

		var o domain.Offer
		if err := doc.DataTo(&o); err != nil {
			return err
		}

		updated, err := o.Status.Transition(next)
		if err != nil {
			return err
		}

		return tx.Update(ref, []firestore.Update{
			{Path: "status", Value: string(updated)},
		})
	})
	if errors.Is(err, domain.ErrOfferNotFound) || errors.Is(err, domain.ErrAlreadyDecided) {
		return err
	}
	if err != nil {
		return fmt.Errorf("failed to transition offer %s: %w", offerID, err)
	}
	return nil
}
