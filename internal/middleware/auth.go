package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// DefaultAPIKeyHeader is the header the static key is read from unless the
// configuration overrides it.
const DefaultAPIKeyHeader = "X-API-Key"

// RequireAPIKey compares the configured static key byte-for-byte against the
// request header and rejects the request with 401 on any mismatch. One
// global secret, no scoping.
func RequireAPIKey(header, apiKey string) gin.HandlerFunc {
	if header == "" {
		header = DefaultAPIKeyHeader
	}

	return func(c *gin.Context) {
		if c.GetHeader(header) != apiKey {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Invalid API key"})
			return
		}
		c.Next()
	}
}
