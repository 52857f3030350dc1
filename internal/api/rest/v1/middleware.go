package v1

import (
	"github.com/google/uuid"

	"github.com/gin-gonic/gin"
)

// RequestIDHeader is the response header carrying the per-request id.
const RequestIDHeader = "X-Request-ID"

// RequestID assigns a uuid to every request, stores it in the gin context
// and echoes it in the response headers. Incoming ids are reused so that
// callers can correlate retries.
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		requestID := ctx.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		ctx.Set("request_id", requestID)
		ctx.Writer.Header().Set(RequestIDHeader, requestID)

		ctx.Next()
	}
}
