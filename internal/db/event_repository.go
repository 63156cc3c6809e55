package db

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"

	"statstory-backend-go/internal/models"
)

// firestoreEventRepository implements EventRepository on saves/{saveID}/events.
type firestoreEventRepository struct {
	client *firestore.Client
}

// NewFirestoreEventRepository creates a new Firestore-backed EventRepository.
func NewFirestoreEventRepository(client *firestore.Client) EventRepository {
	return &firestoreEventRepository{client: client}
}

func setEventID(e *models.Event, id string) { e.ID = id }

func (r *firestoreEventRepository) events(saveID string) *firestore.CollectionRef {
	return r.client.Collection(savesCollection).Doc(saveID).Collection(eventsCollection)
}

func (r *firestoreEventRepository) Create(ctx context.Context, saveID string, event *models.Event) (string, error) {
	docRef := r.events(saveID).NewDoc()
	if _, err := docRef.Create(ctx, event); err != nil {
		return "", fmt.Errorf("failed to create event in save '%s': %w", saveID, err)
	}
	event.ID = docRef.ID
	return docRef.ID, nil
}

func (r *firestoreEventRepository) GetByID(ctx context.Context, saveID, eventID string) (*models.Event, error) {
	return getDoc(ctx, r.events(saveID).Doc(eventID), setEventID)
}

func (r *firestoreEventRepository) ListBySaveID(ctx context.Context, saveID string) ([]*models.Event, error) {
	events, err := collectDocs(r.events(saveID).OrderBy(createdAtField, firestore.Desc).Documents(ctx), setEventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list events for save '%s': %w", saveID, err)
	}
	return events, nil
}

func (r *firestoreEventRepository) Update(ctx context.Context, saveID, eventID string, fields map[string]any) error {
	return updateDoc(ctx, r.events(saveID).Doc(eventID), fields)
}

func (r *firestoreEventRepository) Delete(ctx context.Context, saveID, eventID string) error {
	return deleteDoc(ctx, r.events(saveID).Doc(eventID))
}
