package routes

import (
	"agencyportal/internal/handlers"
	"agencyportal/internal/identity"
	"agencyportal/internal/middleware"

	"github.com/gin-gonic/gin"
)

func registerPublicRoutes(api *gin.RouterGroup, h *handlers.AppHandlers, tokens *identity.TokenManager) {
	auth := api.Group("/auth")
	{
		auth.POST("/register", h.AuthHandler.Register)
		auth.POST("/login", h.AuthHandler.Login)
		auth.POST("/google", h.AuthHandler.FederatedLogin)
		auth.POST("/refresh", h.AuthHandler.Refresh)
		auth.POST("/logout", h.AuthHandler.Logout)
	}

	// Public catalog and content.
	api.GET("/models", h.ModelHandler.ListPublic)
	api.GET("/blog", h.BlogHandler.ListPublic)
	api.GET("/blog/:id", h.BlogHandler.GetPublic)
	api.GET("/website", h.SettingsHandler.GetWebsiteContent)

	// Public submissions.
	api.POST("/applications", h.ApplicationHandler.Submit)
	api.POST("/bookings", h.BookingHandler.Create)

	// First-run admin seeding; inert once a grant exists.
	api.POST("/admin-setup", h.AdminHandler.Setup)

	// Authenticated but not privileged.
	authed := api.Group("", middleware.AuthMiddleware(tokens))
	{
		authed.GET("/profile", h.ProfileHandler.Get)
		authed.PUT("/profile", h.ProfileHandler.Save)
		authed.POST("/auth/change-password", h.AuthHandler.ChangePassword)
	}
}
