package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/haloiq/tax-api/internal/types/api/responses"
)

// DefaultMaxBodySize caps JSON request bodies
const DefaultMaxBodySize int64 = 64 << 10

// BodyTooLargeMessage is the error reported for bodies over maxBytes
func BodyTooLargeMessage(maxBytes int64) string {
	return fmt.Sprintf("Request body too large. Maximum size: %d bytes", maxBytes)
}

// BodySizeLimit rejects requests whose declared length exceeds maxBytes and
// bounds how much of an undeclared body the handler can read. Handlers report
// a read that hits the bound as 413 via IsBodyTooLarge.
func BodySizeLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if maxBytes <= 0 || c.Request.Body == nil {
			c.Next()
			return
		}

		if c.Request.ContentLength > maxBytes {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, responses.ErrorResponse{
				OK:    false,
				Error: BodyTooLargeMessage(maxBytes),
			})
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// IsBodyTooLarge reports whether err came from reading past the body limit
func IsBodyTooLarge(err error) (int64, bool) {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return maxBytesErr.Limit, true
	}
	return 0, false
}
