package handlers

import (
	"net/http"

	"agencyportal/internal/dto"
	"agencyportal/internal/repositories"
	"agencyportal/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	*BaseHandler
	grants       repositories.AdminGrantRepository
	setupEnabled bool
}

func NewAdminHandler(base *BaseHandler, grants repositories.AdminGrantRepository, setupEnabled bool) *AdminHandler {
	return &AdminHandler{BaseHandler: base, grants: grants, setupEnabled: setupEnabled}
}

// Setup grants the first administrator. It only works while the setup
// flag is enabled in config and no grant exists yet; after that the
// endpoint is inert and grants go through an existing admin.
func (h *AdminHandler) Setup(c *gin.Context) {
	if !h.setupEnabled {
		h.HandleServiceError(c, apperrors.NewForbiddenError("Admin setup is disabled"))
		return
	}

	existing, err := h.grants.List(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	if len(existing) > 0 {
		h.HandleServiceError(c, apperrors.NewForbiddenError("Admin setup already completed"))
		return
	}

	var req dto.AdminSetupRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	grant, err := h.grants.Grant(c.Request.Context(), req.Email)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, grant)
}

// GrantAdmin adds a privilege grant; reachable only behind the admin
// boundary.
func (h *AdminHandler) GrantAdmin(c *gin.Context) {
	var req dto.AdminSetupRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	grant, err := h.grants.Grant(c.Request.Context(), req.Email)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, grant)
}

// ListAdmins returns every privilege grant.
func (h *AdminHandler) ListAdmins(c *gin.Context) {
	grants, err := h.grants.List(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"admins": grants})
}
