// Package middleware provides HTTP middleware functions.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/212121-ts/masters-tournament-app/internal/config"
)

// CORS returns a middleware that handles cross-origin requests from the
// configured frontend. With FRONTEND_URL "*" every origin is allowed;
// otherwise only the configured origin and local development on port
// 3000. Preflight OPTIONS requests are answered with 204.
func CORS(cfg config.CORSConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			if allowed := allowedOrigin(cfg, origin); allowed != "" {
				c.Header("Access-Control-Allow-Origin", allowed)
				c.Header("Access-Control-Allow-Credentials", "true")
				c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
				c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, Accept")
				c.Header("Access-Control-Max-Age", "86400")
			}
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// allowedOrigin returns the origin value to echo back, or "" when the
// origin is not allowed.
func allowedOrigin(cfg config.CORSConfig, origin string) string {
	if cfg.AllowAllOrigins() {
		return origin
	}
	for _, allowed := range cfg.AllowedOrigins() {
		if origin == allowed {
			return origin
		}
	}
	return ""
}
