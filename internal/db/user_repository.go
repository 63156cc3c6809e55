package db

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"

	"statstory-backend-go/internal/models"
)

// firestoreUserRepository implements UserRepository using Firestore.
type firestoreUserRepository struct {
	client *firestore.Client
}

// NewFirestoreUserRepository creates a new Firestore-backed UserRepository.
func NewFirestoreUserRepository(client *firestore.Client) UserRepository {
	return &firestoreUserRepository{client: client}
}

func (r *firestoreUserRepository) GetByID(ctx context.Context, userID string) (*models.User, error) {
	if userID == "" {
		return nil, errors.New("userID cannot be empty for GetByID operation")
	}
	return getDoc(ctx, r.client.Collection(usersCollection).Doc(userID), func(u *models.User, id string) { u.ID = id })
}

// Create stores the user under its UID. Set (not Create) keeps the call
// idempotent when two first sign-ins race.
func (r *firestoreUserRepository) Create(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		return errors.New("user ID cannot be empty for Create operation")
	}
	if _, err := r.client.Collection(usersCollection).Doc(user.ID).Set(ctx, user); err != nil {
		return fmt.Errorf("failed to create user with ID '%s': %w", user.ID, err)
	}
	return nil
}
