package middleware

import (
	"context"
	"net/http"
	"strings"

	"agencyportal/internal/identity"
	"agencyportal/pkg/contextkeys"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware parses the bearer token and places the caller's
// Identity in the request context. Requests without a valid token are
// rejected with 401.
func AuthMiddleware(tokens *identity.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, ok := identityFromHeader(c, tokens)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing or invalid"})
			return
		}
		setIdentity(c, ident)
		c.Next()
	}
}

// OptionalAuthMiddleware resolves an identity when a valid token is
// present but lets anonymous requests through.
func OptionalAuthMiddleware(tokens *identity.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if ident, ok := identityFromHeader(c, tokens); ok {
			setIdentity(c, ident)
		}
		c.Next()
	}
}

func identityFromHeader(c *gin.Context, tokens *identity.TokenManager) (*identity.Identity, bool) {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return nil, false
	}

	claims, err := tokens.Parse(strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil {
		return nil, false
	}

	return &identity.Identity{
		ID:          claims.UserID,
		Email:       claims.Email,
		DisplayName: claims.DisplayName,
	}, true
}

func setIdentity(c *gin.Context, ident *identity.Identity) {
	ctx := context.WithValue(c.Request.Context(), contextkeys.IdentityContextKey, ident)
	c.Request = c.Request.WithContext(ctx)
}

// GetIdentity extracts the caller's identity from the request context.
func GetIdentity(c *gin.Context) (*identity.Identity, bool) {
	ident, ok := c.Request.Context().Value(contextkeys.IdentityContextKey).(*identity.Identity)
	return ident, ok && ident != nil
}
