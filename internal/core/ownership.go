package core

import (
	"context"
	"errors"
	"fmt"

	"statstory-backend-go/internal/db"
	"statstory-backend-go/internal/models"
)

// assertOwnsParent returns ErrForbiddenAccess unless userID owns save.
func assertOwnsParent(save *models.Save, userID string) error {
	if save.UserID != userID {
		return fmt.Errorf("%w: user '%s' on save '%s'", ErrForbiddenAccess, userID, save.ID)
	}
	return nil
}

// loadOwnedSave fetches a save and checks ownership. A missing save is
// reported before any ownership decision.
func loadOwnedSave(ctx context.Context, saves db.SaveRepository, userID, saveID string) (*models.Save, error) {
	if userID == "" {
		return nil, ErrUnauthorized
	}
	save, err := saves.GetByID(ctx, saveID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrSaveNotFound, saveID)
		}
		return nil, fmt.Errorf("failed to get save '%s': %w", saveID, err)
	}
	if err := assertOwnsParent(save, userID); err != nil {
		return nil, err
	}
	return save, nil
}
