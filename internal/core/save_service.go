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

// allSports is the sport filter value that disables filtering.
const allSports = "All"

// saveService implements the SaveService interface.
type saveService struct {
	saveRepo db.SaveRepository
	now      func() time.Time
}

// NewSaveService creates a new SaveService instance.
func NewSaveService(saveRepo db.SaveRepository, now func() time.Time) SaveService {
	return &saveService{saveRepo: saveRepo, now: now}
}

// ListSaves returns the caller's saves. A sport of "" or "All" lists every sport.
func (s *saveService) ListSaves(ctx context.Context, userID string, filter models.SaveFilter) ([]*models.Save, error) {
	if userID == "" {
		return nil, ErrUnauthorized
	}
	filter.Sport = strings.TrimSpace(filter.Sport)
	if filter.Sport == allSports {
		filter.Sport = ""
	}

	saves, err := s.saveRepo.ListByUserID(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list saves for user '%s': %w", userID, err)
	}
	return saves, nil
}

func (s *saveService) GetSave(ctx context.Context, userID, saveID string) (*models.Save, error) {
	return loadOwnedSave(ctx, s.saveRepo, userID, saveID)
}

func (s *saveService) CreateSave(ctx context.Context, userID string, req models.CreateSaveRequest) (*models.Save, error) {
	if userID == "" {
		return nil, ErrUnauthorized
	}
	name := strings.TrimSpace(req.Name)
	sport := strings.TrimSpace(req.Sport)
	if name == "" || sport == "" {
		return nil, NewValidationError("Name and sport are required")
	}

	save := &models.Save{
		UserID:    userID,
		Name:      name,
		Sport:     sport,
		CreatedAt: models.FormatTimestamp(s.now()),
	}
	if _, err := s.saveRepo.Create(ctx, save); err != nil {
		return nil, fmt.Errorf("failed to create save for user '%s': %w", userID, err)
	}
	return save, nil
}

// UpdateSave applies the non-empty fields of req. The owner cannot be changed.
func (s *saveService) UpdateSave(ctx context.Context, userID, saveID string, req models.UpdateSaveRequest) (*models.Save, error) {
	if _, err := loadOwnedSave(ctx, s.saveRepo, userID, saveID); err != nil {
		return nil, err
	}

	fields := make(map[string]any)
	setRequired(fields, "name", req.Name)
	setRequired(fields, "sport", req.Sport)

	if err := s.saveRepo.Update(ctx, saveID, fields); err != nil {
		return nil, s.mapMissing(err, saveID)
	}
	updated, err := s.saveRepo.GetByID(ctx, saveID)
	if err != nil {
		return nil, s.mapMissing(err, saveID)
	}
	return updated, nil
}

// DeleteSave removes the save document. Its events and posts are not removed.
func (s *saveService) DeleteSave(ctx context.Context, userID, saveID string) error {
	if _, err := loadOwnedSave(ctx, s.saveRepo, userID, saveID); err != nil {
		return err
	}
	if err := s.saveRepo.Delete(ctx, saveID); err != nil {
		return fmt.Errorf("failed to delete save '%s': %w", saveID, err)
	}
	return nil
}

func (s *saveService) mapMissing(err error, saveID string) error {
	if errors.Is(err, db.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrSaveNotFound, saveID)
	}
	return fmt.Errorf("failed to update save '%s': %w", saveID, err)
}

// setRequired records a trimmed value for a required field; absent or blank values are skipped.
func setRequired(fields map[string]any, path string, value *string) {
	if value == nil {
		return
	}
	if v := strings.TrimSpace(*value); v != "" {
		fields[path] = v
	}
}

// setOptional records a value for an optional field; "" clears it.
func setOptional(fields map[string]any, path string, value *string) {
	if value == nil {
		return
	}
	fields[path] = strings.TrimSpace(*value)
}
