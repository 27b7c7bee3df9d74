package domain

import "errors"

// ErrAlreadyDecided is returned when a transition is attempted on an offer
// that has left the pending state.
var ErrAlreadyDecided = errors.New("offer already decided")

// Status is the offer lifecycle state.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Transition validates the lifecycle rule: an offer moves from pending to
// approved or rejected exactly once and is immutable afterwards.
func (s Status) Transition(next Status) (Status, error) {
	if next != StatusApproved && next != StatusRejected {
		return s, ErrAlreadyDecided
	}
	if s != StatusPending {
		return s, ErrAlreadyDecided
	}
	return next, nil
}
