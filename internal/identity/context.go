package identity

import "github.com/gin-gonic/gin"

const contextKey = "callerUserID"

// GetUserID returns the calling user's id or empty string.
func GetUserID(c *gin.Context) string {
	if v, ok := c.Get(contextKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
