package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"statstory-backend-go/internal/db"
	"statstory-backend-go/internal/models"
)

// postService implements the PostService interface.
type postService struct {
	postRepo db.PostRepository
	saveRepo db.SaveRepository
	now      func() time.Time
}

// NewPostService creates a new PostService instance.
func NewPostService(postRepo db.PostRepository, saveRepo db.SaveRepository, now func() time.Time) PostService {
	return &postService{postRepo: postRepo, saveRepo: saveRepo, now: now}
}

func (s *postService) ListPosts(ctx context.Context, userID, saveID string) ([]*models.Post, error) {
	if _, err := loadOwnedSave(ctx, s.saveRepo, userID, saveID); err != nil {
		return nil, err
	}
	posts, err := s.postRepo.ListBySaveID(ctx, saveID)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts for save '%s': %w", saveID, err)
	}
	return posts, nil
}

func (s *postService) GetPost(ctx context.Context, userID, saveID, postID string) (*models.Post, error) {
	if _, err := loadOwnedSave(ctx, s.saveRepo, userID, saveID); err != nil {
		return nil, err
	}
	return s.getPost(ctx, saveID, postID)
}

func (s *postService) CreatePost(ctx context.Context, userID, saveID string, req models.CreatePostRequest) (*models.Post, error) {
	post := &models.Post{
		SaveID:      saveID,
		Title:       strings.TrimSpace(req.Title),
		Vibe:        strings.TrimSpace(req.Vibe),
		MediaStyle:  strings.TrimSpace(req.MediaStyle),
		Description: strings.TrimSpace(req.Description),
		ImageURL:    strings.TrimSpace(req.ImageURL),
	}
	if post.Vibe == "" || post.MediaStyle == "" || post.Description == "" || post.ImageURL == "" {
		return nil, NewValidationError("Vibe, mediaStyle, description, and imageURL are required")
	}

	if _, err := loadOwnedSave(ctx, s.saveRepo, userID, saveID); err != nil {
		return nil, err
	}

	post.CreatedAt = models.FormatTimestamp(s.now())
	if _, err := s.postRepo.Create(ctx, saveID, post); err != nil {
		return nil, fmt.Errorf("failed to create post in save '%s': %w", saveID, err)
	}
	return post, nil
}

func (s *postService) UpdatePost(ctx context.Context, userID, saveID, postID string, req models.UpdatePostRequest) (*models.Post, error) {
	if _, err := loadOwnedSave(ctx, s.saveRepo, userID, saveID); err != nil {
		return nil, err
	}
	if _, err := s.getPost(ctx, saveID, postID); err != nil {
		return nil, err
	}

	fields := make(map[string]any)
	setOptional(fields, "title", req.Title)
	setRequired(fields, "vibe", req.Vibe)
	setRequired(fields, "mediaStyle", req.MediaStyle)
	setRequired(fields, "description", req.Description)
	setRequired(fields, "imageURL", req.ImageURL)

	if err := s.postRepo.Update(ctx, saveID, postID, fields); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrPostNotFound, postID)
		}
		return nil, fmt.Errorf("failed to update post '%s': %w", postID, err)
	}
	return s.getPost(ctx, saveID, postID)
}

func (s *postService) DeletePost(ctx context.Context, userID, saveID, postID string) error {
	if _, err := loadOwnedSave(ctx, s.saveRepo, userID, saveID); err != nil {
		return err
	}
	if _, err := s.getPost(ctx, saveID, postID); err != nil {
		return err
	}
	if err := s.postRepo.Delete(ctx, saveID, postID); err != nil {
		return fmt.Errorf("failed to delete post '%s': %w", postID, err)
	}
	return nil
}

func (s *postService) getPost(ctx context.Context, saveID, postID string) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, saveID, postID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrPostNotFound, postID)
		}
		return nil, fmt.Errorf("failed to get post '%s': %w", postID, err)
	}
	return post, nil
}
