// internal/handlers/admin.go
package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sportsfed/fedsite/internal/i18n"
	"github.com/sportsfed/fedsite/internal/services"
	"github.com/sportsfed/fedsite/internal/utils"
)

// AdminHandler manages admin accounts. Every route requires a super-admin.
type AdminHandler struct {
	adminService *services.AdminService
}

func NewAdminHandler(adminService *services.AdminService) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
	}
}

// GET /api/admins
func (h *AdminHandler) ListAdmins(c *gin.Context) {
	admins, err := h.adminService.ListAdmins(c.Request.Context())
	if err != nil {
		respondError(c, err, "Admin")
		return
	}
	utils.SuccessResponse(c, admins)
}

// POST /api/admins
func (h *AdminHandler) CreateAdmin(c *gin.Context) {
	var req services.CreateAdminRequest
	if !bindJSON(c, &req) {
		return
	}
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	admin, err := h.adminService.CreateAdmin(c.Request.Context(), &req)
	if err != nil {
		h.respondAdminError(c, err)
		return
	}
	utils.CreatedResponse(c, admin)
}

// PATCH /api/admins/:id
func (h *AdminHandler) UpdateAdmin(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req services.UpdateAdminRequest
	if !bindPatchJSON(c, &req) {
		return
	}
	if validationErrors := utils.GetValidationErrors(utils.ValidatePartial(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	admin, err := h.adminService.UpdateAdmin(c.Request.Context(), id, &req)
	if err != nil {
		h.respondAdminError(c, err)
		return
	}
	utils.SuccessResponse(c, admin)
}

// DELETE /api/admins/:id
func (h *AdminHandler) DeleteAdmin(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	actorID, exists := utils.GetAdminIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	if err := h.adminService.DeleteAdmin(c.Request.Context(), id, actorID); err != nil {
		h.respondAdminError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

// GET /api/audit-logs
func (h *AdminHandler) ListAuditLogs(c *gin.Context) {
	params, _ := utils.GetPaginationParams(c)
	if params.Page == 0 {
		params = utils.PaginationParams{Page: 1, Limit: 50}
	}

	filter := services.AuditLogFilter{PaginationParams: params}
	if v := c.Query("adminId"); v != "" {
		if id, err := strconv.ParseUint(v, 10, 32); err == nil {
			adminID := uint(id)
			filter.AdminID = &adminID
		}
	}

	logs, total, err := h.adminService.ListAuditLogs(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, "Audit log")
		return
	}

	utils.SetPaginationHeaders(c, utils.CreatePaginationResult(total, params))
	utils.SuccessResponse(c, logs)
}

func (h *AdminHandler) respondAdminError(c *gin.Context, err error) {
	lang := utils.GetLangFromContext(c)

	switch {
	case errors.Is(err, services.ErrConflict):
		utils.ConflictResponse(c, i18n.T(lang, i18n.KeyAdminEmailExists))
	case errors.Is(err, services.ErrSelfDelete):
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyAdminSelfDelete))
	case errors.Is(err, services.ErrLastSuperAdmin):
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyAdminLastSuper))
	case errors.Is(err, services.ErrProtectedAdmin):
		utils.ForbiddenResponse(c, i18n.T(lang, i18n.KeyAdminProtected))
	default:
		respondError(c, err, "Admin")
	}
}
