package http

import (
	"context"

	"firebase.google.com/go/v4/auth"
)

// UserGetter resolves an email to a Firebase account record. Satisfied by
// *auth.Client.
type UserGetter interface {
	GetUserByEmail(ctx context.Context, email string) (*auth.UserRecord, error)
}

// Handler bundles the dependencies for auth HTTP endpoints.
type Handler struct {
	users UserGetter
}

func New(users UserGetter) *Handler {
	return &Handler{users: users}
}
