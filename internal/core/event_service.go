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

// eventService implements the EventService interface.
type eventService struct {
	eventRepo db.EventRepository
	saveRepo  db.SaveRepository
	now       func() time.Time
}

// NewEventService creates a new EventService instance.
func NewEventService(eventRepo db.EventRepository, saveRepo db.SaveRepository, now func() time.Time) EventService {
	return &eventService{eventRepo: eventRepo, saveRepo: saveRepo, now: now}
}

func normalizeEventType(t string) string {
	return strings.ToLower(strings.TrimSpace(t))
}

func (s *eventService) ListEvents(ctx context.Context, userID, saveID string) ([]*models.Event, error) {
	if _, err := loadOwnedSave(ctx, s.saveRepo, userID, saveID); err != nil {
		return nil, err
	}
	events, err := s.eventRepo.ListBySaveID(ctx, saveID)
	if err != nil {
		return nil, fmt.Errorf("failed to list events for save '%s': %w", saveID, err)
	}
	return events, nil
}

func (s *eventService) GetEvent(ctx context.Context, userID, saveID, eventID string) (*models.Event, error) {
	if _, err := loadOwnedSave(ctx, s.saveRepo, userID, saveID); err != nil {
		return nil, err
	}
	return s.getEvent(ctx, saveID, eventID)
}

// CreateEvent validates the request before touching the parent save.
func (s *eventService) CreateEvent(ctx context.Context, userID, saveID string, req models.CreateEventRequest) (*models.Event, error) {
	description := strings.TrimSpace(req.Description)
	eventType := normalizeEventType(req.Type)
	if description == "" || eventType == "" {
		return nil, NewValidationError("Description and type are required")
	}

	if _, err := loadOwnedSave(ctx, s.saveRepo, userID, saveID); err != nil {
		return nil, err
	}

	createdAt := models.FormatTimestamp(s.now())
	eventDate := strings.TrimSpace(req.EventDate)
	if eventDate == "" {
		eventDate = createdAt
	}

	event := &models.Event{
		SaveID:      saveID,
		UserID:      userID,
		Title:       strings.TrimSpace(req.Title),
		Description: description,
		Type:        eventType,
		ImageURL:    strings.TrimSpace(req.ImageURL),
		EventDate:   eventDate,
		CreatedAt:   createdAt,
	}
	if _, err := s.eventRepo.Create(ctx, saveID, event); err != nil {
		return nil, fmt.Errorf("failed to create event in save '%s': %w", saveID, err)
	}
	return event, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, userID, saveID, eventID string, req models.UpdateEventRequest) (*models.Event, error) {
	if _, err := loadOwnedSave(ctx, s.saveRepo, userID, saveID); err != nil {
		return nil, err
	}
	if _, err := s.getEvent(ctx, saveID, eventID); err != nil {
		return nil, err
	}

	fields := make(map[string]any)
	setOptional(fields, "title", req.Title)
	setRequired(fields, "description", req.Description)
	if req.Type != nil {
		if t := normalizeEventType(*req.Type); t != "" {
			fields["type"] = t
		}
	}
	setOptional(fields, "imageURL", req.ImageURL)
	setOptional(fields, "eventDate", req.EventDate)

	if err := s.eventRepo.Update(ctx, saveID, eventID, fields); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrEventNotFound, eventID)
		}
		return nil, fmt.Errorf("failed to update event '%s': %w", eventID, err)
	}
	return s.getEvent(ctx, saveID, eventID)
}

func (s *eventService) DeleteEvent(ctx context.Context, userID, saveID, eventID string) error {
	if _, err := loadOwnedSave(ctx, s.saveRepo, userID, saveID); err != nil {
		return err
	}
	if _, err := s.getEvent(ctx, saveID, eventID); err != nil {
		return err
	}
	if err := s.eventRepo.Delete(ctx, saveID, eventID); err != nil {
		return fmt.Errorf("failed to delete event '%s': %w", eventID, err)
	}
	return nil
}

func (s *eventService) getEvent(ctx context.Context, saveID, eventID string) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, saveID, eventID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrEventNotFound, eventID)
		}
		return nil, fmt.Errorf("failed to get event '%s': %w", eventID, err)
	}
	return event, nil
}
