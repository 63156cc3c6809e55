package middleware

import "github.com/gin-gonic/gin"

// Keys under which middleware stores request-scoped values in the gin context.
const (
	UserIDKey    = "userID"
	UserEmailKey = "userEmail"
	RequestIDKey = "requestID"
)

// errorResponse mirrors the api envelope for failures raised before a handler runs.
type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// UserID returns the authenticated user's ID, or "" for anonymous requests.
func UserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}

// RequestID returns the ID assigned by RequestID.
func RequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}
