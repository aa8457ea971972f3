package middleware

import (
	"net/http"

	"agencyportal/internal/identity"
	"agencyportal/internal/logger"

	"github.com/gin-gonic/gin"
)

// AdminBoundary guards administrative routes. Every entry runs a fresh
// privilege check against the gate; the result is never cached across
// requests. Denied callers are redirected to the login path with no
// detail about why.
func AdminBoundary(gate *identity.Gate, loginPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, ok := GetIdentity(c)
		if !ok {
			deny(c, loginPath, "", "no identity")
			return
		}

		if !gate.IsPrivileged(c.Request.Context(), ident) {
			deny(c, loginPath, ident.Email, "not privileged")
			return
		}

		c.Next()
	}
}

func deny(c *gin.Context, loginPath, email, reason string) {
	logger.Warn("admin boundary denied",
		"path", c.Request.URL.Path,
		"email", email,
		"reason", reason)
	c.Abort()
	c.Redirect(http.StatusSeeOther, loginPath)
}
