package middleware

import (
	"context"
	"net/http"
	"strings"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TokenVerifier verifies Firebase ID tokens. *auth.Client satisfies it.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

// AuthMiddleware provides Gin middleware for Firebase bearer-token authentication.
type AuthMiddleware struct {
	verifier      TokenVerifier
	exposeDetails bool
	logger        *zap.Logger
}

// NewAuthMiddleware creates a new AuthMiddleware. With exposeDetails set,
// verification errors are echoed to the client under "details".
func NewAuthMiddleware(verifier TokenVerifier, exposeDetails bool, logger *zap.Logger) *AuthMiddleware {
	if verifier == nil {
		panic("AuthMiddleware requires a non-nil TokenVerifier")
	}
	return &AuthMiddleware{verifier: verifier, exposeDetails: exposeDetails, logger: logger}
}

// bearerToken extracts the token from "Bearer <token>". The scheme is case-insensitive.
func bearerToken(header string) (string, bool) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

func (m *AuthMiddleware) verify(c *gin.Context, idToken string) (*auth.Token, error) {
	return m.verifier.VerifyIDToken(c.Request.Context(), idToken)
}

func setIdentity(c *gin.Context, token *auth.Token) {
	c.Set(UserIDKey, token.UID)
	if email, ok := token.Claims["email"].(string); ok && email != "" {
		c.Set(UserEmailKey, email)
	}
}

// Required rejects requests without a valid bearer token.
func (m *AuthMiddleware) Required() gin.HandlerFunc {
	return func(c *gin.Context) {
		idToken, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse{Error: "Unauthorized: No token provided"})
			return
		}

		token, err := m.verify(c, idToken)
		if err != nil {
			m.logger.Warn("token verification failed", zap.String("request_id", RequestID(c)), zap.Error(err))
			resp := errorResponse{Error: "Unauthorized: Invalid token"}
			if m.exposeDetails {
				resp.Details = err.Error()
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, resp)
			return
		}

		setIdentity(c, token)
		c.Next()
	}
}

// Optional binds the identity when a valid token is present and otherwise
// lets the request through anonymously.
func (m *AuthMiddleware) Optional() gin.HandlerFunc {
	return func(c *gin.Context) {
		if idToken, ok := bearerToken(c.GetHeader("Authorization")); ok {
			if token, err := m.verify(c, idToken); err == nil {
				setIdentity(c, token)
			} else {
				m.logger.Debug("optional auth: ignoring invalid token", zap.Error(err))
			}
		}
		c.Next()
	}
}
