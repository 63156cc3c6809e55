// Package dbtest provides in-memory implementations of the db repositories
// with the same not-found and ordering behaviour as the Firestore ones.
package dbtest

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"statstory-backend-go/internal/db"
	"statstory-backend-go/internal/models"
)

// UserRepository is an in-memory db.UserRepository.
type UserRepository struct {
	mu    sync.Mutex
	users map[string]models.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]models.User)}
}

func (r *UserRepository) GetByID(_ context.Context, userID string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return nil, fmt.Errorf("users/%s: %w", userID, db.ErrNotFound)
	}
	return &u, nil
}

func (r *UserRepository) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = *user
	return nil
}

// Len reports how many users are stored.
func (r *UserRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users)
}

// SaveRepository is an in-memory db.SaveRepository.
type SaveRepository struct {
	mu    sync.Mutex
	saves map[string]models.Save
}

func NewSaveRepository() *SaveRepository {
	return &SaveRepository{saves: make(map[string]models.Save)}
}

func (r *SaveRepository) Create(_ context.Context, save *models.Save) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	save.ID = uuid.NewString()
	r.saves[save.ID] = *save
	return save.ID, nil
}

func (r *SaveRepository) GetByID(_ context.Context, saveID string) (*models.Save, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.saves[saveID]
	if !ok {
		return nil, fmt.Errorf("saves/%s: %w", saveID, db.ErrNotFound)
	}
	return &s, nil
}

func (r *SaveRepository) ListByUserID(_ context.Context, userID string, filter models.SaveFilter) ([]*models.Save, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.Save, 0)
	for _, s := range r.saves {
		if s.UserID != userID || (filter.Sport != "" && s.Sport != filter.Sport) {
			continue
		}
		out = append(out, &s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *SaveRepository) Update(_ context.Context, saveID string, fields map[string]any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.saves[saveID]
	if !ok {
		return fmt.Errorf("saves/%s: %w", saveID, db.ErrNotFound)
	}
	for path, v := range fields {
		switch path {
		case "name":
			s.Name = v.(string)
		case "sport":
			s.Sport = v.(string)
		default:
			return fmt.Errorf("dbtest: unknown save field %q", path)
		}
	}
	r.saves[saveID] = s
	return nil
}

func (r *SaveRepository) Delete(_ context.Context, saveID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.saves, saveID)
	return nil
}

type childKey struct{ parent, id string }

// EventRepository is an in-memory db.EventRepository.
type EventRepository struct {
	mu     sync.Mutex
	events map[childKey]models.Event
}

func NewEventRepository() *EventRepository {
	return &EventRepository{events: make(map[childKey]models.Event)}
}

func (r *EventRepository) Create(_ context.Context, saveID string, event *models.Event) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	event.ID = uuid.NewString()
	r.events[childKey{saveID, event.ID}] = *event
	return event.ID, nil
}

func (r *EventRepository) GetByID(_ context.Context, saveID, eventID string) (*models.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.events[childKey{saveID, eventID}]
	if !ok {
		return nil, fmt.Errorf("saves/%s/events/%s: %w", saveID, eventID, db.ErrNotFound)
	}
	return &e, nil
}

func (r *EventRepository) ListBySaveID(_ context.Context, saveID string) ([]*models.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.Event, 0)
	for k, e := range r.events {
		if k.parent != saveID {
			continue
		}
		out = append(out, &e)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	return out, nil
}

func (r *EventRepository) Update(_ context.Context, saveID, eventID string, fields map[string]any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := childKey{saveID, eventID}
	e, ok := r.events[key]
	if !ok {
		return fmt.Errorf("saves/%s/events/%s: %w", saveID, eventID, db.ErrNotFound)
	}
	for path, v := range fields {
		s := v.(string)
		switch path {
		case "title":
			e.Title = s
		case "description":
			e.Description = s
		case "type":
			e.Type = s
		case "imageURL":
			e.ImageURL = s
		case "eventDate":
			e.EventDate = s
		default:
			return fmt.Errorf("dbtest: unknown event field %q", path)
		}
	}
	r.events[key] = e
	return nil
}

func (r *EventRepository) Delete(_ context.Context, saveID, eventID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.events, childKey{saveID, eventID})
	return nil
}

// PostRepository is an in-memory db.PostRepository.
type PostRepository struct {
	mu    sync.Mutex
	posts map[childKey]models.Post
}

func NewPostRepository() *PostRepository {
	return &PostRepository{posts: make(map[childKey]models.Post)}
}

func (r *PostRepository) Create(_ context.Context, saveID string, post *models.Post) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	post.ID = uuid.NewString()
	r.posts[childKey{saveID, post.ID}] = *post
	return post.ID, nil
}

func (r *PostRepository) GetByID(_ context.Context, saveID, postID string) (*models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts[childKey{saveID, postID}]
	if !ok {
		return nil, fmt.Errorf("saves/%s/posts/%s: %w", saveID, postID, db.ErrNotFound)
	}
	return &p, nil
}

func (r *PostRepository) ListBySaveID(_ context.Context, saveID string) ([]*models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.Post, 0)
	for k, p := range r.posts {
		if k.parent != saveID {
			continue
		}
		out = append(out, &p)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	return out, nil
}

func (r *PostRepository) Update(_ context.Context, saveID, postID string, fields map[string]any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := childKey{saveID, postID}
	p, ok := r.posts[key]
	if !ok {
		return fmt.Errorf("saves/%s/posts/%s: %w", saveID, postID, db.ErrNotFound)
	}
	for path, v := range fields {
		s := v.(string)
		switch path {
		case "title":
			p.Title = s
		case "vibe":
			p.Vibe = s
		case "mediaStyle":
			p.MediaStyle = s
		case "description":
			p.Description = s
		case "imageURL":
			p.ImageURL = s
		default:
			return fmt.Errorf("dbtest: unknown post field %q", path)
		}
	}
	r.posts[key] = p
	return nil
}

func (r *PostRepository) Delete(_ context.Context, saveID, postID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.posts, childKey{saveID, postID})
	return nil
}

var (
	_ db.UserRepository  = (*UserRepository)(nil)
	_ db.SaveRepository  = (*SaveRepository)(nil)
	_ db.EventRepository = (*EventRepository)(nil)
	_ db.PostRepository  = (*PostRepository)(nil)
)
