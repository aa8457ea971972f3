package handlers

import (
	"net/http"

	"agencyportal/internal/dto"
	"agencyportal/internal/models"
	"agencyportal/internal/repositories"
	"agencyportal/internal/services"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	*BaseHandler
	repo          repositories.ApplicationRepository
	notifications services.NotificationService
}

func NewApplicationHandler(base *BaseHandler, repo repositories.ApplicationRepository, notifications services.NotificationService) *ApplicationHandler {
	return &ApplicationHandler{BaseHandler: base, repo: repo, notifications: notifications}
}

// Submit accepts a public talent application. The stored status is
// always pending regardless of the submitted body.
func (h *ApplicationHandler) Submit(c *gin.Context) {
	var req dto.ApplicationRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	app, err := h.repo.Create(c.Request.Context(), models.Application{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Age:        req.Age,
		Height:     req.Height,
		Experience: req.Experience,
		Message:    req.Message,
	})
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.notifications.ApplicationReceived(c.Request.Context(), app)
	c.JSON(http.StatusCreated, app)
}

func (h *ApplicationHandler) List(c *gin.Context) {
	status := models.ApplicationStatus(c.Query("status"))
	list, err := h.repo.List(c.Request.Context(), status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": list})
}

func (h *ApplicationHandler) Get(c *gin.Context) {
	app, err := h.repo.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

func (h *ApplicationHandler) SetStatus(c *gin.Context) {
	var req dto.StatusUpdateRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	app, err := h.repo.SetStatus(c.Request.Context(), c.Param("id"), models.ApplicationStatus(req.Status))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

func (h *ApplicationHandler) Delete(c *gin.Context) {
	if err := h.repo.Remove(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Application deleted"})
}
