package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// corsMiddleware attaches the cross-origin headers to every response for the
// single configured origin, including 401 rejections so browser clients can
// read them instead of seeing an opaque network error. Preflight OPTIONS
// requests carry no credentials and short-circuit before authentication.
func corsMiddleware(allowedOrigin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", allowedOrigin)
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, PATCH, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "*")
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Header("Access-Control-Expose-Headers", "Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
