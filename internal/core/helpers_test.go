package core

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"firebase.google.com/go/v4/auth"
	"github.com/stretchr/testify/require"

	"statstory-backend-go/internal/db/dbtest"
	"statstory-backend-go/internal/models"
)

// stepClock returns a clock that advances one second per call.
func stepClock() func() time.Time {
	var mu sync.Mutex
	t := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t = t.Add(time.Second)
		return t
	}
}

type fixture struct {
	saves  *dbtest.SaveRepository
	events *dbtest.EventRepository
	posts  *dbtest.PostRepository

	saveSvc  SaveService
	eventSvc EventService
	postSvc  PostService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	clock := stepClock()
	f := &fixture{
		saves:  dbtest.NewSaveRepository(),
		events: dbtest.NewEventRepository(),
		posts:  dbtest.NewPostRepository(),
	}
	f.saveSvc = NewSaveService(f.saves, clock)
	f.eventSvc = NewEventService(f.events, f.saves, clock)
	f.postSvc = NewPostService(f.posts, f.saves, clock)
	return f
}

func (f *fixture) createSave(t *testing.T, userID, name, sport string) *models.Save {
	t.Helper()
	save, err := f.saveSvc.CreateSave(context.Background(), userID, models.CreateSaveRequest{Name: name, Sport: sport})
	require.NoError(t, err)
	return save
}

func strPtr(s string) *string { return &s }

// fakeIdentity is an in-memory IdentityProvider.
type fakeIdentity struct {
	mu        sync.Mutex
	tokens    map[string]*auth.Token
	created   int
	verifyErr error
}

func newFakeIdentity() *fakeIdentity {
	return &fakeIdentity{tokens: make(map[string]*auth.Token)}
}

func (f *fakeIdentity) VerifyIDToken(_ context.Context, idToken string) (*auth.Token, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.verifyErr != nil {
		return nil, f.verifyErr
	}
	tok, ok := f.tokens[idToken]
	if !ok {
		return nil, errors.New("ID token has invalid signature")
	}
	return tok, nil
}

func (f *fakeIdentity) CreateUser(_ context.Context, _ *auth.UserToCreate) (*auth.UserRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created++
	uid := "anon-" + string(rune('a'+f.created-1))
	return &auth.UserRecord{UserInfo: &auth.UserInfo{UID: uid}}, nil
}

func (f *fakeIdentity) CustomToken(_ context.Context, uid string) (string, error) {
	return "custom-" + uid, nil
}
