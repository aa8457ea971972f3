package handlers

import (
	"net/http"

	"agencyportal/internal/assets"
	"agencyportal/internal/dto"
	"agencyportal/internal/models"
	"agencyportal/internal/repositories"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	*BaseHandler
	repo repositories.ProfileRepository
}

func NewProfileHandler(base *BaseHandler, repo repositories.ProfileRepository) *ProfileHandler {
	return &ProfileHandler{BaseHandler: base, repo: repo}
}

func (h *ProfileHandler) Get(c *gin.Context) {
	ident, ok := h.RequireIdentity(c)
	if !ok {
		return
	}

	profile, err := h.repo.Load(c.Request.Context(), ident)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) Save(c *gin.Context) {
	ident, ok := h.RequireIdentity(c)
	if !ok {
		return
	}

	var form dto.ProfileForm
	if !h.BindAndValidate(c, &form) {
		return
	}

	avatar, err := FormFile(c, "avatar")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	if avatar != nil {
		defer CloseFiles([]assets.File{*avatar})
	}

	profile, err := h.repo.Save(c.Request.Context(), ident, models.UserProfile{
		DisplayName:  form.DisplayName,
		Bio:          form.Bio,
		Location:     form.Location,
		Phone:        form.Phone,
		Experience:   form.Experience,
		Height:       form.Height,
		Measurements: form.Measurements,
		Instagram:    form.Instagram,
	}, avatar)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
