package core

import (
	"context"

	"firebase.google.com/go/v4/auth"

	"statstory-backend-go/internal/models"
)

// IdentityProvider is the subset of the Firebase auth client the services use.
// *auth.Client satisfies it.
type IdentityProvider interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
	CreateUser(ctx context.Context, user *auth.UserToCreate) (*auth.UserRecord, error)
	CustomToken(ctx context.Context, uid string) (string, error)
}

// AuthService issues custom tokens for anonymous and returning users.
type AuthService interface {
	CreateAnonymousUser(ctx context.Context) (*models.AuthResponse, error)
	SignInWithToken(ctx context.Context, idToken string) (*models.AuthResponse, error)
}

// UserService defines the interface for user-related operations.
type UserService interface {
	GetByID(ctx context.Context, userID string) (*models.User, error)
}

// SaveService defines the interface for save-related operations.
type SaveService interface {
	ListSaves(ctx context.Context, userID string, filter models.SaveFilter) ([]*models.Save, error)
	GetSave(ctx context.Context, userID, saveID string) (*models.Save, error)
	CreateSave(ctx context.Context, userID string, req models.CreateSaveRequest) (*models.Save, error)
	UpdateSave(ctx context.Context, userID, saveID string, req models.UpdateSaveRequest) (*models.Save, error)
	DeleteSave(ctx context.Context, userID, saveID string) error
}

// EventService defines the interface for operations on a save's events.
type EventService interface {
	ListEvents(ctx context.Context, userID, saveID string) ([]*models.Event, error)
	GetEvent(ctx context.Context, userID, saveID, eventID string) (*models.Event, error)
	CreateEvent(ctx context.Context, userID, saveID string, req models.CreateEventRequest) (*models.Event, error)
	UpdateEvent(ctx context.Context, userID, saveID, eventID string, req models.UpdateEventRequest) (*models.Event, error)
	DeleteEvent(ctx context.Context, userID, saveID, eventID string) error
}

// PostService defines the interface for operations on a save's posts.
type PostService interface {
	ListPosts(ctx context.Context, userID, saveID string) ([]*models.Post, error)
	GetPost(ctx context.Context, userID, saveID, postID string) (*models.Post, error)
	CreatePost(ctx context.Context, userID, saveID string, req models.CreatePostRequest) (*models.Post, error)
	UpdatePost(ctx context.Context, userID, saveID, postID string, req models.UpdatePostRequest) (*models.Post, error)
	DeletePost(ctx context.Context, userID, saveID, postID string) error
}

// ImageGenerator renders a post graphic and returns it as raw base64.
type ImageGenerator interface {
	Generate(ctx context.Context, req models.GenerateImageRequest) (string, error)
}

// TraitAnalyzer extracts CharacterTraits from a photo.
type TraitAnalyzer interface {
	Analyze(ctx context.Context, imageBase64 string) (*models.CharacterTraits, error)
}
