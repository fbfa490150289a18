package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/secretaria-online/secretaria-api/internal/http/middleware"
	"github.com/secretaria-online/secretaria-api/internal/model"
	"github.com/secretaria-online/secretaria-api/internal/service"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Email string     `json:"email"`
	Role  model.Role `json:"role"`
}

func newUserResponse(user *model.User) userResponse {
	return userResponse{
		ID:    user.ID.String(),
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, CodeValidation, "invalid request body")
		return
	}

	result, err := h.svc.Auth.Login(c.Request.Context(), service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	respondOK(c, gin.H{
		"token": result.Token,
		"user":  newUserResponse(result.User),
	})
}

func (h *Handler) me(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, CodeTokenMissing, "authentication required")
		return
	}

	user, err := h.svc.Auth.Me(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondOK(c, newUserResponse(user))
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func (h *Handler) changePassword(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, CodeTokenMissing, "authentication required")
		return
	}

	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, CodeValidation, "invalid request body")
		return
	}

	err := h.svc.Auth.ChangePassword(c.Request.Context(), principal, service.ChangePasswordInput{
		Current: req.CurrentPassword,
		New:     req.NewPassword,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	respondOK(c, gin.H{"changed": true})
}
