package domain

import (
	"errors"
	"time"
)

var (
	// ErrOfferNotFound is returned when an offer id references no document.
	ErrOfferNotFound = errors.New("offer not found")
	// ErrMissingField is returned when a required submission field is absent.
	ErrMissingField = errors.New("missing required field")
)

// Offer is a negotiation request against a project. Its Firestore document id
// is the generated OfferID, so submit, listing and the approve/reject lookups
// all agree on one identifier.
type Offer struct {
	OfferID   string    `firestore:"offerId" json:"offerId"`
	ProjectID string    `firestore:"projectId" json:"projectId"`
	Email     string    `firestore:"email" json:"email"`
	Subject   string    `firestore:"subject" json:"subject"`
	Amount    float64   `firestore:"amount" json:"amount"`
	Status    Status    `firestore:"status" json:"status"`
	CreatedAt time.Time `firestore:"createdAt,serverTimestamp" json:"createdAt"`
}
