package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/enesocakci/portfolio-backend/internal/messages/domain"
)

const collection = "messages"

// MessageRepository persists contact messages in Firestore.
type MessageRepository struct {
	col *firestore.CollectionRef
}

func New(client *firestore.Client) *MessageRepository {
	return &MessageRepository{col: client.Collection(collection)}
}

// Add stores a new message. The createdAt field is assigned server side.
func (r *MessageRepository) Add(ctx context.Context, m domain.Message) error {
	if _, _, err := r.col.Add(ctx, m); err != nil {
		return fmt.Errorf("failed to store message: %w", err)
	}
	return nil
}

// List returns all messages, newest first.
func (r *MessageRepository) List(ctx context.Context) ([]domain.Message, error) {
	iter := r.col.OrderBy("createdAt", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	out := make([]domain.Message, 0, 16)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list messages: %w", err)
		}

		var m domain.Message
		if err := doc.DataTo(&m); err != nil {
			return nil, fmt.Errorf("failed to decode message %s: %w", doc.Ref.ID, err)
		}
		m.ID = doc.Ref.ID
		out = append(out, m)
	}
	return out, nil
}
