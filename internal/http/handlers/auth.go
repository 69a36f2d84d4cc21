package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/artistdash-backend/internal/http/response"
	apperr "github.com/yungbote/artistdash-backend/internal/pkg/errors"
	"github.com/yungbote/artistdash-backend/internal/platform/ctxutil"
	"github.com/yungbote/artistdash-backend/internal/services"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (ah *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondServiceError(c, fmt.Errorf("login body: %v: %w", err, apperr.ErrInvalidArgument))
		return
	}
	res, err := ah.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, res)
}

func (ah *AuthHandler) Logout(c *gin.Context) {
	if err := ah.authService.Logout(c.Request.Context(), ctxutil.GetRequestData(c.Request.Context())); err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}
