package handlers

// AppHandlers bundles every handler for route registration.
type AppHandlers struct {
	AuthHandler        *AuthHandler
	ModelHandler       *ModelHandler
	ApplicationHandler *ApplicationHandler
	BookingHandler     *BookingHandler
	BlogHandler        *BlogHandler
	SettingsHandler    *SettingsHandler
	DashboardHandler   *DashboardHandler
	ProfileHandler     *ProfileHandler
	AdminHandler       *AdminHandler
}
