// internal/handlers/auth.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/sportsfed/fedsite/internal/i18n"
	"github.com/sportsfed/fedsite/internal/services"
	"github.com/sportsfed/fedsite/internal/utils"
)

type AuthHandler struct {
	authService  *services.AuthService
	adminService *services.AdminService
}

func NewAuthHandler(authService *services.AuthService, adminService *services.AdminService) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		adminService: adminService,
	}
}

// POST /api/admin/login
func (h *AuthHandler) Login(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.LoginRequest
	if !bindJSON(c, &req) {
		return
	}
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.UnauthorizedResponse(c, i18n.T(lang, i18n.KeyAuthInvalidCredentials))
			return
		}
		respondError(c, err, "Admin")
		return
	}

	utils.SuccessResponse(c, resp)
}

// GET /api/admin/me
func (h *AuthHandler) Me(c *gin.Context) {
	adminID, ok := utils.GetAdminIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	admin, err := h.adminService.GetAdmin(c.Request.Context(), adminID)
	if err != nil {
		respondError(c, err, "Admin")
		return
	}
	utils.SuccessResponse(c, admin)
}

// PATCH /api/admin/me/password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	adminID, ok := utils.GetAdminIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req services.ChangePasswordRequest
	if !bindJSON(c, &req) {
		return
	}
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	if err := h.authService.ChangePassword(c.Request.Context(), adminID, &req); err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyAuthWrongPassword))
			return
		}
		respondError(c, err, "Admin")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyAdminPasswordSaved),
	})
}
