package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"statstory-backend-go/internal/config"
	"statstory-backend-go/internal/core"
	"statstory-backend-go/internal/db/dbtest"
	"statstory-backend-go/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubIdentity accepts "token-<uid>" bearer tokens.
type stubIdentity struct{}

func (stubIdentity) VerifyIDToken(_ context.Context, idToken string) (*auth.Token, error) {
	const prefix = "token-"
	if len(idToken) <= len(prefix) || idToken[:len(prefix)] != prefix {
		return nil, errors.New("invalid signature")
	}
	return &auth.Token{UID: idToken[len(prefix):], Claims: map[string]interface{}{}}, nil
}

func (stubIdentity) CreateUser(_ context.Context, _ *auth.UserToCreate) (*auth.UserRecord, error) {
	return &auth.UserRecord{UserInfo: &auth.UserInfo{UID: "anon-1"}}, nil
}

func (stubIdentity) CustomToken(_ context.Context, uid string) (string, error) {
	return "custom-" + uid, nil
}

type stubGenerator struct{ err error }

func (s stubGenerator) Generate(_ context.Context, req models.GenerateImageRequest) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	if req.Description == "" {
		return "", core.NewValidationError("Description is required")
	}
	return "aW1n", nil
}

type stubAnalyzer struct{}

func (stubAnalyzer) Analyze(_ context.Context, _ string) (*models.CharacterTraits, error) {
	t := &models.CharacterTraits{HairStyle: "bald"}
	t.FillUnknown()
	return t, nil
}

type testServer struct {
	router http.Handler
	users  *dbtest.UserRepository
}

func newTestServer(t *testing.T, gen core.ImageGenerator, env string) *testServer {
	t.Helper()
	cfg := &config.Config{AppEnv: env, AppVersion: "1.2.3", ClientURL: "*", MaxBodyBytes: 1 << 20}
	saves := dbtest.NewSaveRepository()
	users := dbtest.NewUserRepository()
	identity := stubIdentity{}

	services := Services{
		Auth:   core.NewAuthService(identity, users, time.Now, zap.NewNop()),
		Users:  core.NewUserService(users),
		Saves:  core.NewSaveService(saves, time.Now),
		Events: core.NewEventService(dbtest.NewEventRepository(), saves, time.Now),
		Posts:  core.NewPostService(dbtest.NewPostRepository(), saves, time.Now),
		Images: gen,
		Vision: stubAnalyzer{},
	}
	router := NewRouter(cfg, zap.NewNop(), identity, services, time.Now().Add(-(26*time.Hour + 3*time.Minute + 4*time.Second)))
	return &testServer{router: router, users: users}
}

func (s *testServer) do(t *testing.T, method, path, uid string, body any) (*httptest.ResponseRecorder, Response) {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if uid != "" {
		req.Header.Set("Authorization", "Bearer token-"+uid)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var resp Response
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func dataMap(t *testing.T, resp Response) map[string]any {
	t.Helper()
	m, ok := resp.Data.(map[string]any)
	require.True(t, ok, "data is %T", resp.Data)
	return m
}

func TestRouter_SaveOwnershipScenario(t *testing.T) {
	s := newTestServer(t, stubGenerator{}, "development")

	w, resp := s.do(t, http.MethodPost, "/api/saves", "u1", map[string]string{"name": "Career 1", "sport": "Soccer"})
	require.Equal(t, http.StatusCreated, w.Code)
	require.True(t, resp.Success)
	save := dataMap(t, resp)
	saveID := save["id"].(string)
	require.NotEmpty(t, saveID)
	require.Equal(t, "u1", save["userId"])

	w, resp = s.do(t, http.MethodGet, "/api/saves/"+saveID, "u2", nil)
	require.Equal(t, http.StatusForbidden, w.Code)
	require.False(t, resp.Success)

	w, resp = s.do(t, http.MethodGet, "/api/saves/"+saveID, "u1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Career 1", dataMap(t, resp)["name"])

	w, resp = s.do(t, http.MethodGet, "/api/saves", "u2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, []any{}, resp.Data)

	w, _ = s.do(t, http.MethodGet, "/api/saves/"+saveID, "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_EventLifecycle(t *testing.T) {
	s := newTestServer(t, stubGenerator{}, "development")
	_, resp := s.do(t, http.MethodPost, "/api/saves", "u1", map[string]string{"name": "Career 1", "sport": "Soccer"})
	saveID := dataMap(t, resp)["id"].(string)
	base := "/api/saves/" + saveID + "/events"

	w, resp := s.do(t, http.MethodPost, base, "u1", map[string]string{"description": "x"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Description and type are required", resp.Error)

	w, resp = s.do(t, http.MethodPost, "/api/saves/missing/events", "u1", map[string]string{"description": "x", "type": "match"})
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "Save not found", resp.Error)

	w, resp = s.do(t, http.MethodPost, base, "u1", map[string]string{"description": "Derby win", "type": "  Match  "})
	require.Equal(t, http.StatusCreated, w.Code)
	event := dataMap(t, resp)
	require.Equal(t, "match", event["type"])
	eventID := event["id"].(string)

	w, resp = s.do(t, http.MethodPut, base+"/"+eventID, "u1", map[string]string{"title": "Derby"})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Derby", dataMap(t, resp)["title"])

	w, resp = s.do(t, http.MethodDelete, base+"/"+eventID, "u1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Event deleted successfully", resp.Message)

	w, resp = s.do(t, http.MethodDelete, base+"/"+eventID, "u1", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "Event not found", resp.Error)
}

func TestRouter_MalformedJSON(t *testing.T) {
	s := newTestServer(t, stubGenerator{}, "production")

	w, resp := s.do(t, http.MethodPost, "/api/saves", "u1", "{not json")
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Invalid request payload", resp.Error)
	require.Empty(t, resp.Details)
}

func TestRouter_AuthEndpoints(t *testing.T) {
	s := newTestServer(t, stubGenerator{}, "development")

	w, resp := s.do(t, http.MethodPost, "/api/auth/anonymous", "", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	data := dataMap(t, resp)
	require.Equal(t, "anon-1", data["userId"])
	require.Equal(t, "custom-anon-1", data["token"])
	require.EqualValues(t, 3600, data["expiresIn"])

	w, resp = s.do(t, http.MethodPost, "/api/auth/token", "", map[string]string{})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "ID token is required", resp.Error)

	w, resp = s.do(t, http.MethodPost, "/api/auth/token", "", map[string]string{"idToken": "garbage"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "Authentication failed", resp.Error)

	w, _ = s.do(t, http.MethodPost, "/api/auth/token", "", map[string]string{"idToken": "token-u9"})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 2, s.users.Len())

	w, resp = s.do(t, http.MethodGet, "/api/users/me", "u9", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "u9", dataMap(t, resp)["id"])

	w, _ = s.do(t, http.MethodGet, "/api/users/me", "nobody", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_Images(t *testing.T) {
	s := newTestServer(t, stubGenerator{}, "development")

	w, resp := s.do(t, http.MethodPost, "/api/images/generate", "u1", map[string]string{"description": "d", "mediaStyle": "ESPN", "vibe": "Hype"})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "aW1n", dataMap(t, resp)["imageBase64"])

	w, resp = s.do(t, http.MethodPost, "/api/images/analyze", "u1", map[string]string{"imageBase64": "aGk="})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "unknown", dataMap(t, resp)["tattoos"])

	w, _ = s.do(t, http.MethodPost, "/api/images/generate", "", map[string]string{"description": "d"})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	failing := newTestServer(t, stubGenerator{err: &core.UpstreamError{StatusCode: http.StatusTooManyRequests, Message: "Image edit failed: Rate limit reached"}}, "development")
	w, resp = failing.do(t, http.MethodPost, "/api/images/generate", "u1", map[string]string{"description": "d"})
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	require.Equal(t, "Image edit failed: Rate limit reached", resp.Error)
}

func TestRouter_SystemEndpoints(t *testing.T) {
	s := newTestServer(t, stubGenerator{}, "staging")

	w, resp := s.do(t, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	health := dataMap(t, resp)
	require.Equal(t, "healthy", health["status"])
	require.Equal(t, "staging", health["environment"])
	require.Equal(t, "1.2.3", health["version"])
	require.Regexp(t, regexp.MustCompile(`^1d 2h 3m [0-9]+s$`), health["uptime"])

	w, _ = s.do(t, http.MethodGet, "/api/test/ping", "u1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var ping map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ping))
	require.Equal(t, "pong", ping["message"])
	require.Equal(t, "u1", ping["userId"])

	w, resp = s.do(t, http.MethodGet, "/nope?x=1", "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "Not Found - /nope?x=1", resp.Error)
}

func TestFormatUptime(t *testing.T) {
	require.Equal(t, "0d 0h 0m 0s", formatUptime(0))
	require.Equal(t, "2d 1h 0m 59s", formatUptime(49*time.Hour+59*time.Second))
}
