package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubVerifier map[string]*auth.Token

func (s stubVerifier) VerifyIDToken(_ context.Context, idToken string) (*auth.Token, error) {
	if tok, ok := s[idToken]; ok {
		return tok, nil
	}
	return nil, errors.New("token expired")
}

func newVerifier() stubVerifier {
	return stubVerifier{"good": {UID: "u1", Claims: map[string]interface{}{"email": "u1@example.com"}}}
}

func identityEcho(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"userID": UserID(c), "email": c.GetString(UserEmailKey)})
}

func do(r http.Handler, method, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestAuthMiddleware_Required(t *testing.T) {
	tests := []struct {
		name        string
		header      string
		expose      bool
		wantStatus  int
		wantError   string
		wantDetails string
	}{
		{name: "missing header", wantStatus: http.StatusUnauthorized, wantError: "Unauthorized: No token provided"},
		{name: "wrong scheme", header: "Basic abc", wantStatus: http.StatusUnauthorized, wantError: "Unauthorized: No token provided"},
		{name: "empty token", header: "Bearer ", wantStatus: http.StatusUnauthorized, wantError: "Unauthorized: No token provided"},
		{name: "invalid token", header: "Bearer bad", wantStatus: http.StatusUnauthorized, wantError: "Unauthorized: Invalid token"},
		{name: "invalid token with details", header: "Bearer bad", expose: true, wantStatus: http.StatusUnauthorized, wantError: "Unauthorized: Invalid token", wantDetails: "token expired"},
		{name: "lowercase scheme", header: "bearer good", wantStatus: http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/x", NewAuthMiddleware(newVerifier(), tt.expose, zap.NewNop()).Required(), identityEcho)

			w := do(r, http.MethodGet, "/x", tt.header)
			require.Equal(t, tt.wantStatus, w.Code)
			body := decode(t, w)
			if tt.wantStatus == http.StatusOK {
				require.Equal(t, "u1", body["userID"])
				require.Equal(t, "u1@example.com", body["email"])
				return
			}
			require.Equal(t, false, body["success"])
			require.Equal(t, tt.wantError, body["error"])
			if tt.wantDetails != "" {
				require.Equal(t, tt.wantDetails, body["details"])
			} else {
				require.NotContains(t, body, "details")
			}
		})
	}
}

func TestAuthMiddleware_Optional(t *testing.T) {
	r := gin.New()
	r.GET("/x", NewAuthMiddleware(newVerifier(), false, zap.NewNop()).Optional(), identityEcho)

	require.Equal(t, "", decode(t, do(r, http.MethodGet, "/x", ""))["userID"])
	require.Equal(t, "", decode(t, do(r, http.MethodGet, "/x", "Bearer bad"))["userID"])
	require.Equal(t, "u1", decode(t, do(r, http.MethodGet, "/x", "Bearer good"))["userID"])
}

func TestRecoveryMiddleware(t *testing.T) {
	for _, expose := range []bool{false, true} {
		r := gin.New()
		r.Use(RecoveryMiddleware(zap.NewNop(), expose))
		r.GET("/boom", func(*gin.Context) { panic("kaboom") })

		w := do(r, http.MethodGet, "/boom", "")
		require.Equal(t, http.StatusInternalServerError, w.Code)
		body := decode(t, w)
		require.Equal(t, "Internal Server Error", body["error"])
		if expose {
			require.Contains(t, body["details"], "kaboom")
		} else {
			require.NotContains(t, body, "details")
		}
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/x", func(c *gin.Context) { c.String(http.StatusOK, RequestID(c)) })

	w := do(r, http.MethodGet, "/x", "")
	require.Len(t, w.Body.String(), 36)
	require.Equal(t, w.Body.String(), w.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, "abc-123", w.Body.String())
}

func TestBodyLimit(t *testing.T) {
	r := gin.New()
	r.Use(BodyLimit(8))
	r.POST("/x", func(c *gin.Context) {
		if _, err := io.ReadAll(c.Request.Body); err != nil {
			c.Status(http.StatusRequestEntityTooLarge)
			return
		}
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/x", strings.NewReader("0123456789")))
	require.Equal(t, http.StatusRequestEntityTooLarge, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/x", strings.NewReader("0123")))
	require.Equal(t, http.StatusOK, w.Code)
}

func TestCORSMiddleware_AllowList(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware("https://app.example.com, https://admin.example.com"))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "https://admin.example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, "https://admin.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusForbidden, w.Code)
}
