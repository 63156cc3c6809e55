package db

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"

	"statstory-backend-go/internal/models"
)

// firestoreSaveRepository implements SaveRepository using the top-level saves collection.
type firestoreSaveRepository struct {
	client *firestore.Client
}

// NewFirestoreSaveRepository creates a new Firestore-backed SaveRepository.
func NewFirestoreSaveRepository(client *firestore.Client) SaveRepository {
	return &firestoreSaveRepository{client: client}
}

func setSaveID(s *models.Save, id string) { s.ID = id }

// Create adds a new save document with an auto-generated ID.
func (r *firestoreSaveRepository) Create(ctx context.Context, save *models.Save) (string, error) {
	docRef := r.client.Collection(savesCollection).NewDoc()
	if _, err := docRef.Create(ctx, save); err != nil {
		return "", fmt.Errorf("failed to create save: %w", err)
	}
	save.ID = docRef.ID
	return docRef.ID, nil
}

func (r *firestoreSaveRepository) GetByID(ctx context.Context, saveID string) (*models.Save, error) {
	if saveID == "" {
		return nil, errors.New("saveID cannot be empty for GetByID operation")
	}
	return getDoc(ctx, r.client.Collection(savesCollection).Doc(saveID), setSaveID)
}

// ListByUserID returns the user's saves, optionally narrowed to one sport.
func (r *firestoreSaveRepository) ListByUserID(ctx context.Context, userID string, filter models.SaveFilter) ([]*models.Save, error) {
	if userID == "" {
		return nil, errors.New("userID cannot be empty for ListByUserID operation")
	}
	query := r.client.Collection(savesCollection).Where("userId", "==", userID)
	if filter.Sport != "" {
		query = query.Where("sport", "==", filter.Sport)
	}

	saves, err := collectDocs(query.Documents(ctx), setSaveID)
	if err != nil {
		return nil, fmt.Errorf("failed to list saves for user '%s': %w", userID, err)
	}
	return saves, nil
}

func (r *firestoreSaveRepository) Update(ctx context.Context, saveID string, fields map[string]any) error {
	return updateDoc(ctx, r.client.Collection(savesCollection).Doc(saveID), fields)
}

// Delete removes the save document only. Firestore does not delete
// sub-collections, so the save's events and posts stay in place.
func (r *firestoreSaveRepository) Delete(ctx context.Context, saveID string) error {
	return deleteDoc(ctx, r.client.Collection(savesCollection).Doc(saveID))
}
