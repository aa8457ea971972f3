package routes

import (
	"agencyportal/internal/handlers"
	"agencyportal/internal/identity"
	"agencyportal/internal/middleware"

	"github.com/gin-gonic/gin"
)

func registerAdminRoutes(
	api *gin.RouterGroup,
	h *handlers.AppHandlers,
	tokens *identity.TokenManager,
	gate *identity.Gate,
	loginPath string,
) {
	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(tokens), middleware.AdminBoundary(gate, loginPath))
	{
		admin.GET("/dashboard", h.DashboardHandler.Snapshot)
		admin.GET("/dashboard/stats", h.DashboardHandler.Stats)

		admin.GET("/models", h.ModelHandler.List)
		admin.GET("/models/:id", h.ModelHandler.Get)
		admin.POST("/models", h.ModelHandler.Create)
		admin.PUT("/models/:id", h.ModelHandler.Update)
		admin.DELETE("/models/:id", h.ModelHandler.Delete)

		admin.GET("/applications", h.ApplicationHandler.List)
		admin.GET("/applications/:id", h.ApplicationHandler.Get)
		admin.PUT("/applications/:id/status", h.ApplicationHandler.SetStatus)
		admin.DELETE("/applications/:id", h.ApplicationHandler.Delete)

		admin.GET("/bookings", h.BookingHandler.List)
		admin.GET("/bookings/:id", h.BookingHandler.Get)
		admin.PUT("/bookings/:id/status", h.BookingHandler.SetStatus)
		admin.DELETE("/bookings/:id", h.BookingHandler.Delete)

		admin.GET("/blog", h.BlogHandler.List)
		admin.POST("/blog", h.BlogHandler.Save)
		admin.DELETE("/blog/:id", h.BlogHandler.Delete)

		admin.GET("/settings", h.SettingsHandler.GetSettings)
		admin.PUT("/settings", h.SettingsHandler.SaveSettings)
		admin.GET("/website", h.SettingsHandler.GetWebsiteContent)
		admin.PUT("/website", h.SettingsHandler.SaveWebsiteContent)

		admin.GET("/admins", h.AdminHandler.ListAdmins)
		admin.POST("/admins", h.AdminHandler.GrantAdmin)
	}
}
