package identity

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderName is the trusted caller-identity header set by the upstream gateway.
const HeaderName = "X-Sharer-User-Id"

// Required is a Gin middleware that extracts the caller's user id from the
// X-Sharer-User-Id header. The gateway in front of this service authenticates
// the caller; this service only validates the header's shape.
func Required() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(HeaderName)
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "missing " + HeaderName + " header",
			})
			return
		}

		if _, err := uuid.Parse(header); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error": "invalid " + HeaderName + " header",
			})
			return
		}

		// Store user id into Gin context for later handlers.
		c.Set(contextKey, header)

		c.Next()
	}
}
