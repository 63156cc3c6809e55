package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"statstory-backend-go/internal/core"
	"statstory-backend-go/internal/models"
)

// AuthHandler handles authentication related API endpoints.
type AuthHandler struct {
	authService core.AuthService
	errs        errorResponder
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(as core.AuthService, errs errorResponder) *AuthHandler {
	return &AuthHandler{authService: as, errs: errs}
}

// CreateAnonymousUser handles POST /api/auth/anonymous.
func (h *AuthHandler) CreateAnonymousUser(c *gin.Context) {
	resp, err := h.authService.CreateAnonymousUser(c.Request.Context())
	if err != nil {
		h.errs.respond(c, err, "Failed to create anonymous user")
		return
	}
	respondData(c, http.StatusCreated, resp)
}

// SignInWithToken handles POST /api/auth/token.
func (h *AuthHandler) SignInWithToken(c *gin.Context) {
	var req models.AuthTokenRequest
	if !h.errs.bindJSON(c, &req) {
		return
	}

	resp, err := h.authService.SignInWithToken(c.Request.Context(), req.IDToken)
	if err != nil {
		if errors.Is(err, core.ErrUnauthorized) {
			h.errs.abort(c, http.StatusUnauthorized, "Authentication failed", err)
			return
		}
		h.errs.respond(c, err, "Authentication failed")
		return
	}
	respondData(c, http.StatusOK, resp)
}
