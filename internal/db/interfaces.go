package db

import (
	"context"

	"statstory-backend-go/internal/models"
)

// UserRepository defines the interface for user data storage operations.
type UserRepository interface {
	GetByID(ctx context.Context, userID string) (*models.User, error)
	// Create writes the user document keyed by user.ID, replacing any existing one.
	Create(ctx context.Context, user *models.User) error
}

// SaveRepository defines the interface for save data storage operations.
type SaveRepository interface {
	Create(ctx context.Context, save *models.Save) (string, error) // Returns new save ID
	GetByID(ctx context.Context, saveID string) (*models.Save, error)
	ListByUserID(ctx context.Context, userID string, filter models.SaveFilter) ([]*models.Save, error)
	// Update writes only the given fields, keyed by Firestore field name.
	Update(ctx context.Context, saveID string, fields map[string]any) error
	Delete(ctx context.Context, saveID string) error
}

// EventRepository defines storage operations on saves/{saveID}/events.
type EventRepository interface {
	Create(ctx context.Context, saveID string, event *models.Event) (string, error)
	GetByID(ctx context.Context, saveID, eventID string) (*models.Event, error)
	ListBySaveID(ctx context.Context, saveID string) ([]*models.Event, error) // newest first
	Update(ctx context.Context, saveID, eventID string, fields map[string]any) error
	Delete(ctx context.Context, saveID, eventID string) error
}

// PostRepository defines storage operations on saves/{saveID}/posts.
type PostRepository interface {
	Create(ctx context.Context, saveID string, post *models.Post) (string, error)
	GetByID(ctx context.Context, saveID, postID string) (*models.Post, error)
	ListBySaveID(ctx context.Context, saveID string) ([]*models.Post, error) // newest first
	Update(ctx context.Context, saveID, postID string, fields map[string]any) error
	Delete(ctx context.Context, saveID, postID string) error
}
