package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RecoveryMiddleware turns handler panics into a 500 envelope. The stack is
// always logged and only sent to the client when exposeDetails is set.
func RecoveryMiddleware(logger *zap.Logger, exposeDetails bool) gin.HandlerFunc {
	if logger == nil {
		panic("RecoveryMiddleware requires a non-nil zap.Logger instance")
	}
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				stack := string(debug.Stack())
				logger.Error("Panic recovered",
					zap.Any("error", rec),
					zap.String("stacktrace", stack),
					zap.String("path", c.Request.URL.Path),
					zap.String("method", c.Request.Method),
					zap.String("request_id", RequestID(c)),
				)

				if !c.Writer.Written() {
					resp := errorResponse{Error: "Internal Server Error"}
					if exposeDetails {
						resp.Details = fmt.Sprintf("%v\n%s", rec, stack)
					}
					c.JSON(http.StatusInternalServerError, resp)
				}
				c.Abort()
			}
		}()

		c.Next()
	}
}
