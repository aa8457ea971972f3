package routes

import (
	"agencyportal/internal/handlers"
	"agencyportal/internal/identity"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every HTTP route onto the router.
func RegisterRoutes(
	r *gin.Engine,
	h *handlers.AppHandlers,
	tokens *identity.TokenManager,
	gate *identity.Gate,
	loginPath string,
) {
	api := r.Group("/api/v1")

	registerPublicRoutes(api, h, tokens)
	registerAdminRoutes(api, h, tokens, gate, loginPath)
}
