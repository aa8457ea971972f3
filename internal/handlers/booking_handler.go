package handlers

import (
	"net/http"

	"agencyportal/internal/dto"
	"agencyportal/internal/models"
	"agencyportal/internal/repositories"
	"agencyportal/internal/services"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	*BaseHandler
	repo          repositories.BookingRepository
	notifications services.NotificationService
}

func NewBookingHandler(base *BaseHandler, repo repositories.BookingRepository, notifications services.NotificationService) *BookingHandler {
	return &BookingHandler{BaseHandler: base, repo: repo, notifications: notifications}
}

func (h *BookingHandler) Create(c *gin.Context) {
	var req dto.BookingRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	b, err := h.repo.Create(c.Request.Context(), models.Booking{
		ClientName: req.ClientName,
		ModelName:  req.ModelName,
		Date:       req.Date,
		Time:       req.Time,
		Type:       req.Type,
		Location:   req.Location,
		Notes:      req.Notes,
	})
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.notifications.BookingReceived(c.Request.Context(), b)
	c.JSON(http.StatusCreated, b)
}

func (h *BookingHandler) List(c *gin.Context) {
	list, err := h.repo.List(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": list})
}

func (h *BookingHandler) Get(c *gin.Context) {
	b, err := h.repo.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) SetStatus(c *gin.Context) {
	var req dto.StatusUpdateRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	b, err := h.repo.SetStatus(c.Request.Context(), c.Param("id"), models.BookingStatus(req.Status))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) Delete(c *gin.Context) {
	if err := h.repo.Remove(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted"})
}
