// Package auth provides the basic-auth gate for admin endpoints.
package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/212121-ts/masters-tournament-app/internal/config"
)

// Basic returns a middleware that verifies HTTP basic credentials
// against the single configured admin identity. Both the username and
// the SHA-256 digest of the password are compared in constant time; a
// mismatch aborts the request with 401 before any mutation runs.
func Basic(cfg config.AdminConfig, logger *zap.SugaredLogger) gin.HandlerFunc {
	wantUser := []byte(cfg.Username)
	wantHash := []byte(cfg.PasswordHash())

	return func(c *gin.Context) {
		username, password, ok := c.Request.BasicAuth()

		sum := sha256.Sum256([]byte(password))
		gotHash := []byte(hex.EncodeToString(sum[:]))

		userOK := subtle.ConstantTimeCompare([]byte(username), wantUser) == 1
		passOK := subtle.ConstantTimeCompare(gotHash, wantHash) == 1

		if !ok || !userOK || !passOK {
			logger.Warnw("admin authentication failed",
				"path", c.Request.URL.Path,
				"method", c.Request.Method,
				"client_ip", c.ClientIP(),
			)
			c.Header("WWW-Authenticate", `Basic realm="admin"`)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "Invalid admin credentials",
				},
			})
			return
		}

		c.Next()
	}
}
