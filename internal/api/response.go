package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"statstory-backend-go/internal/core"
	"statstory-backend-go/internal/middleware"
)

// Response is the envelope every API endpoint answers with.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
	Details string `json:"details,omitempty"`
}

func respondData(c *gin.Context, status int, data any) {
	c.JSON(status, Response{Success: true, Data: data})
}

func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, Response{Success: true, Message: message})
}

// errorResponder maps service errors to the envelope in one place.
type errorResponder struct {
	logger        *zap.Logger
	exposeDetails bool
}

func (r errorResponder) abort(c *gin.Context, status int, msg string, cause error) {
	resp := Response{Success: false, Error: msg}
	if r.exposeDetails && cause != nil {
		resp.Details = cause.Error()
	}
	c.AbortWithStatusJSON(status, resp)
}

// respond writes err as an envelope. fallback is the client message for
// internal failures, whose cause is only logged.
func (r errorResponder) respond(c *gin.Context, err error, fallback string) {
	var (
		verr     *core.ValidationError
		upstream *core.UpstreamError
	)

	switch {
	case errors.As(err, &verr):
		r.abort(c, http.StatusBadRequest, verr.Message, nil)
	case errors.Is(err, core.ErrUnauthorized):
		r.abort(c, http.StatusUnauthorized, "Unauthorized", err)
	case errors.Is(err, core.ErrForbiddenAccess):
		r.abort(c, http.StatusForbidden, "Forbidden: you do not have access to this save", nil)
	case errors.Is(err, core.ErrSaveNotFound):
		r.abort(c, http.StatusNotFound, "Save not found", nil)
	case errors.Is(err, core.ErrEventNotFound):
		r.abort(c, http.StatusNotFound, "Event not found", nil)
	case errors.Is(err, core.ErrPostNotFound):
		r.abort(c, http.StatusNotFound, "Post not found", nil)
	case errors.Is(err, core.ErrUserNotFound):
		r.abort(c, http.StatusNotFound, "User not found", nil)
	case errors.As(err, &upstream):
		status := upstream.StatusCode
		if status < http.StatusBadRequest || status > 599 {
			status = http.StatusInternalServerError
		}
		r.logger.Error("upstream provider failure",
			zap.Int("status", status),
			zap.String("request_id", middleware.RequestID(c)),
			zap.Error(err),
		)
		r.abort(c, status, upstream.Message, upstream.Err)
	default:
		r.logger.Error(fallback,
			zap.String("path", c.Request.URL.Path),
			zap.String("request_id", middleware.RequestID(c)),
			zap.Error(err),
		)
		r.abort(c, http.StatusInternalServerError, fallback, err)
	}
}

// bindJSON decodes the body into dst. An empty body leaves dst zeroed.
// It writes the error response itself and reports whether to continue.
func (r errorResponder) bindJSON(c *gin.Context, dst any) bool {
	err := c.ShouldBindJSON(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		r.abort(c, http.StatusRequestEntityTooLarge, "Request body too large", nil)
		return false
	}
	r.abort(c, http.StatusBadRequest, "Invalid request payload", err)
	return false
}
