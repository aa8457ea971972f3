package handlers

import (
	"net/http"

	"agencyportal/internal/dto"
	"agencyportal/internal/models"
	"agencyportal/internal/repositories"

	"github.com/gin-gonic/gin"
)

type ModelHandler struct {
	*BaseHandler
	repo repositories.ModelRepository
}

func NewModelHandler(base *BaseHandler, repo repositories.ModelRepository) *ModelHandler {
	return &ModelHandler{BaseHandler: base, repo: repo}
}

// ListPublic serves the public catalog, active models only.
func (h *ModelHandler) ListPublic(c *gin.Context) {
	list, err := h.repo.List(c.Request.Context(), models.ModelStatusActive)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"models": list})
}

// List serves the admin catalog with an optional status filter.
func (h *ModelHandler) List(c *gin.Context) {
	status := models.ModelStatus(c.Query("status"))
	list, err := h.repo.List(c.Request.Context(), status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"models": list})
}

func (h *ModelHandler) Get(c *gin.Context) {
	m, err := h.repo.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *ModelHandler) Create(c *gin.Context) {
	var form dto.ModelForm
	if !h.BindAndValidate(c, &form) {
		return
	}

	photos, err := FormFiles(c, "photos")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	defer CloseFiles(photos)

	m, err := h.repo.Add(c.Request.Context(), models.Model{
		Name:         form.Name,
		Age:          form.Age,
		Height:       form.Height,
		Measurements: form.Measurements,
		Experience:   form.Experience,
		Category:     form.Category,
		Status:       models.ModelStatus(form.Status),
	}, photos)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

func (h *ModelHandler) Update(c *gin.Context) {
	var req dto.ModelUpdateRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	upd := models.ModelUpdate{
		Name:         req.Name,
		Age:          req.Age,
		Height:       req.Height,
		Measurements: req.Measurements,
		Experience:   req.Experience,
		Category:     req.Category,
	}
	if req.Status != nil {
		status := models.ModelStatus(*req.Status)
		upd.Status = &status
	}

	m, err := h.repo.Update(c.Request.Context(), c.Param("id"), upd)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *ModelHandler) Delete(c *gin.Context) {
	if err := h.repo.Remove(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Model deleted"})
}
