package handlers

import (
	"net/http"

	"agencyportal/internal/models"
	"agencyportal/internal/repositories"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	*BaseHandler
	settings repositories.SettingsRepository
	website  repositories.WebsiteRepository
}

func NewSettingsHandler(base *BaseHandler, settings repositories.SettingsRepository, website repositories.WebsiteRepository) *SettingsHandler {
	return &SettingsHandler{BaseHandler: base, settings: settings, website: website}
}

func (h *SettingsHandler) GetSettings(c *gin.Context) {
	s, err := h.settings.Load(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// SaveSettings overwrites the whole settings document.
func (h *SettingsHandler) SaveSettings(c *gin.Context) {
	var s models.SiteSettings
	if !h.BindAndValidate(c, &s) {
		return
	}
	if err := h.settings.Save(c.Request.Context(), s); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *SettingsHandler) GetWebsiteContent(c *gin.Context) {
	content, err := h.website.Load(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, content)
}

func (h *SettingsHandler) SaveWebsiteContent(c *gin.Context) {
	var content models.WebsiteContent
	if !h.BindAndValidate(c, &content) {
		return
	}
	if err := h.website.Save(c.Request.Context(), content); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, content)
}
