package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"statstory-backend-go/internal/middleware"
)

// requireUser returns the authenticated user ID or answers 401.
func requireUser(c *gin.Context) (string, bool) {
	userID := middleware.UserID(c)
	if userID == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, Response{Error: "Unauthorized: No token provided"})
		return "", false
	}
	return userID, true
}
