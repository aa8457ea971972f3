package handlers

import (
	"net/http"

	"agencyportal/internal/assets"
	"agencyportal/internal/dto"
	"agencyportal/internal/models"
	"agencyportal/internal/repositories"
	"agencyportal/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type BlogHandler struct {
	*BaseHandler
	repo repositories.BlogRepository
}

func NewBlogHandler(base *BaseHandler, repo repositories.BlogRepository) *BlogHandler {
	return &BlogHandler{BaseHandler: base, repo: repo}
}

// ListPublic serves published posts, optionally filtered by category.
func (h *BlogHandler) ListPublic(c *gin.Context) {
	category := models.BlogCategory(c.Query("category"))
	posts, err := h.repo.ListPublished(c.Request.Context(), category)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

func (h *BlogHandler) GetPublic(c *gin.Context) {
	post, err := h.repo.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	// Drafts stay invisible on the public surface.
	if post.Status != models.BlogStatusPublished {
		h.HandleServiceError(c, apperrors.ErrNotFound(nil))
		return
	}
	c.JSON(http.StatusOK, post)
}

// List serves every post including drafts, for the admin view.
func (h *BlogHandler) List(c *gin.Context) {
	posts, err := h.repo.ListAll(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// Save creates or updates a post; an id in the form selects update.
func (h *BlogHandler) Save(c *gin.Context) {
	var form dto.BlogForm
	if !h.BindAndValidate(c, &form) {
		return
	}

	image, err := FormFile(c, "image")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	if image != nil {
		defer CloseFiles([]assets.File{*image})
	}

	post, err := h.repo.Save(c.Request.Context(), models.BlogPost{
		ID:       form.ID,
		Title:    form.Title,
		Content:  form.Content,
		Category: models.BlogCategory(form.Category),
		Status:   models.BlogStatus(form.Status),
	}, image)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	code := http.StatusOK
	if form.ID == "" {
		code = http.StatusCreated
	}
	c.JSON(code, post)
}

func (h *BlogHandler) Delete(c *gin.Context) {
	if err := h.repo.Remove(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post deleted"})
}
