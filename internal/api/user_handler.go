package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"statstory-backend-go/internal/core"
)

// UserHandler serves the caller's own user document.
type UserHandler struct {
	userService core.UserService
	errs        errorResponder
}

func NewUserHandler(us core.UserService, errs errorResponder) *UserHandler {
	return &UserHandler{userService: us, errs: errs}
}

// GetCurrentUser handles GET /api/users/me.
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	user, err := h.userService.GetByID(c.Request.Context(), userID)
	if err != nil {
		h.errs.respond(c, err, "Failed to get user")
		return
	}
	respondData(c, http.StatusOK, user)
}
