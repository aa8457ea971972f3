package handlers

import (
	"io"

	"agencyportal/internal/assets"
	"agencyportal/internal/identity"
	"agencyportal/internal/logger"
	"agencyportal/internal/middleware"
	"agencyportal/internal/validator"
	"agencyportal/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{validator: v}
}

// BindAndValidate binds the request body (JSON or form) into obj and runs
// struct validation, writing the error response itself on failure.
func (h *BaseHandler) BindAndValidate(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBind(obj); err != nil {
		logger.FromContext(ctx).Warn("failed to bind request body",
			"error", err.Error(), "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return false
	}

	if err := h.validator.Validate(obj); err != nil {
		if vErr, ok := err.(*validator.ValidationError); ok {
			logger.FromContext(ctx).Warn("validation failed",
				"errors", vErr.Errors, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
		} else {
			logger.FromContext(ctx).Error("internal validator error",
				"error", err.Error(), "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return false
	}
	return true
}

// HandleServiceError maps repository and service errors onto responses.
// Unknown errors become opaque 500s; nothing panics past this point.
func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	var appErr *apperrors.AppError
	if apperrors.As(err, &appErr) {
		logger.FromContext(ctx).Warn("service error",
			"code", string(appErr.Code),
			"error", appErr.Message,
			"path", c.Request.URL.Path)
		apperrors.HandleError(c, appErr)
		return
	}

	logger.FromContext(ctx).Error("internal server error",
		"error", err.Error(), "path", c.Request.URL.Path)
	apperrors.HandleError(c, apperrors.InternalError(err))
}

// RequireIdentity extracts the authenticated caller, responding 401 when
// the auth middleware did not run or rejected the token.
func (h *BaseHandler) RequireIdentity(c *gin.Context) (*identity.Identity, bool) {
	ident, ok := middleware.GetIdentity(c)
	if !ok {
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("User not authenticated"))
		return nil, false
	}
	return ident, true
}

// FormFiles converts multipart uploads under the given field into asset
// files. The request must already be bound so the form is parsed.
func FormFiles(c *gin.Context, field string) ([]assets.File, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil // no multipart body
	}

	var files []assets.File
	for _, fh := range form.File[field] {
		f, err := fh.Open()
		if err != nil {
			return nil, apperrors.NewBadRequestError("Unreadable upload: " + fh.Filename)
		}
		files = append(files, assets.File{
			Name:        fh.Filename,
			Size:        fh.Size,
			ContentType: fh.Header.Get("Content-Type"),
			Reader:      f,
		})
	}
	return files, nil
}

// CloseFiles releases the multipart handles behind the asset files.
// Handlers defer it once the repository has consumed the readers.
func CloseFiles(files []assets.File) {
	for _, f := range files {
		if closer, ok := f.Reader.(io.Closer); ok {
			closer.Close()
		}
	}
}

// FormFile returns the single upload under the field, nil when absent.
func FormFile(c *gin.Context, field string) (*assets.File, error) {
	files, err := FormFiles(c, field)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}
	return &files[0], nil
}
