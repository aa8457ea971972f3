package handlers

import (
	"net/http"

	"agencyportal/internal/dto"
	"agencyportal/internal/identity"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	provider identity.Provider
}

func NewAuthHandler(base *BaseHandler, provider identity.Provider) *AuthHandler {
	return &AuthHandler{BaseHandler: base, provider: provider}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	sess, err := h.provider.Register(c.Request.Context(), req.Email, req.Password, req.DisplayName)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sessionResponse(sess))
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	sess, err := h.provider.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionResponse(sess))
}

// FederatedLogin signs the caller in with an assertion from the external
// identity issuer, provisioning an account on first use.
func (h *AuthHandler) FederatedLogin(c *gin.Context) {
	var req dto.FederatedLoginRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	sess, err := h.provider.AuthenticateFederated(c.Request.Context(), req.Assertion)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionResponse(sess))
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	sess, err := h.provider.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionResponse(sess))
}

func (h *AuthHandler) Logout(c *gin.Context) {
	var req dto.LogoutRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	if err := h.provider.SignOut(c.Request.Context(), req.RefreshToken); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	ident, ok := h.RequireIdentity(c)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	err := h.provider.ChangePassword(c.Request.Context(), ident.ID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password changed"})
}

func sessionResponse(sess *identity.Session) dto.SessionResponse {
	return dto.SessionResponse{
		User: dto.UserResponse{
			ID:          sess.Identity.ID,
			Email:       sess.Identity.Email,
			DisplayName: sess.Identity.DisplayName,
			AvatarURL:   sess.Identity.AvatarURL,
		},
		AccessToken:  sess.AccessToken,
		RefreshToken: sess.RefreshToken,
	}
}
