package firebase

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	fb "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"github.com/enesocakci/portfolio-backend/config"
)

// Clients bundles the Firebase-backed gateways: Auth for identity lookups
// and Firestore as the document store.
type Clients struct {
	Auth      *auth.Client
	Firestore *firestore.Client
}

// Initialize sets up the Firebase Admin SDK from the in-memory service-account
// credential and returns the Auth and Firestore clients.
func Initialize(ctx context.Context, cfg *config.FirebaseConfig) (*Clients, error) {
	if len(cfg.ServiceAccountKey) == 0 {
		return nil, fmt.Errorf("SERVICE_ACCOUNT_KEY is required")
	}

	opt := option.WithCredentialsJSON(cfg.ServiceAccountKey)
	app, err := fb.NewApp(ctx, &fb.Config{ProjectID: cfg.ProjectID}, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get Auth client: %w", err)
	}

	fsClient, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get Firestore client: %w", err)
	}

	return &Clients{Auth: authClient, Firestore: fsClient}, nil
}

// Close releases the Firestore connection.
func (c *Clients) Close() error {
	if c.Firestore != nil {
		return c.Firestore.Close()
	}
	return nil
}
