package db

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"

	"statstory-backend-go/internal/models"
)

// firestorePostRepository implements PostRepository on saves/{saveID}/posts.
type firestorePostRepository struct {
	client *firestore.Client
}

// NewFirestorePostRepository creates a new Firestore-backed PostRepository.
func NewFirestorePostRepository(client *firestore.Client) PostRepository {
	return &firestorePostRepository{client: client}
}

func setPostID(p *models.Post, id string) { p.ID = id }

func (r *firestorePostRepository) posts(saveID string) *firestore.CollectionRef {
	return r.client.Collection(savesCollection).Doc(saveID).Collection(postsCollection)
}

func (r *firestorePostRepository) Create(ctx context.Context, saveID string, post *models.Post) (string, error) {
	docRef := r.posts(saveID).NewDoc()
	if _, err := docRef.Create(ctx, post); err != nil {
		return "", fmt.Errorf("failed to create post in save '%s': %w", saveID, err)
	}
	post.ID = docRef.ID
	return docRef.ID, nil
}

func (r *firestorePostRepository) GetByID(ctx context.Context, saveID, postID string) (*models.Post, error) {
	return getDoc(ctx, r.posts(saveID).Doc(postID), setPostID)
}

func (r *firestorePostRepository) ListBySaveID(ctx context.Context, saveID string) ([]*models.Post, error) {
	posts, err := collectDocs(r.posts(saveID).OrderBy(createdAtField, firestore.Desc).Documents(ctx), setPostID)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts for save '%s': %w", saveID, err)
	}
	return posts, nil
}

func (r *firestorePostRepository) Update(ctx context.Context, saveID, postID string, fields map[string]any) error {
	return updateDoc(ctx, r.posts(saveID).Doc(postID), fields)
}

func (r *firestorePostRepository) Delete(ctx context.Context, saveID, postID string) error {
	return deleteDoc(ctx, r.posts(saveID).Doc(postID))
}
