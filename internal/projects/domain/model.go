package domain

import (
	"errors"
	"time"
)

var (
	// ErrProjectNotFound is returned when a project id references no document.
	ErrProjectNotFound = errors.New("project not found")
	// ErrAlreadyLiked is returned when a (project, identifier) pair has
	// already recorded a like.
	ErrAlreadyLiked = errors.New("project already liked")
)

// Project represents a single portfolio entry with a deduplicated like counter.
// It is intentionally storage-agnostic and used across repository and HTTP layers.
type Project struct {
	ID          string `firestore:"-" json:"id"`
	Title       string `firestore:"title" json:"title"`
	Description string `firestore:"description" json:"description"`
	ImageURL    string `firestore:"imageUrl" json:"imageUrl"`
	Likes       int64  `firestore:"likes" json:"likes"`
	Comments    []any  `firestore:"comments" json:"comments"`
	Offers      []any  `firestore:"offers" json:"offers"`
}

// Like records that an identifier liked a project. Its document key is
// "{projectId}_{identifier}", which is what enforces at-most-once semantics.
type Like struct {
	ProjectID  string    `firestore:"projectId"`
	Identifier string    `firestore:"identifier"`
	CreatedAt  time.Time `firestore:"createdAt,serverTimestamp"`
}

// LikeKey builds the composite like-record key for a (project, identifier) pair.
func LikeKey(projectID, identifier string) string {
	return projectID + "_" + identifier
}
