// internal/middleware/auth.go
package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/sportsfed/fedsite/internal/i18n"
	"github.com/sportsfed/fedsite/internal/models"
	"github.com/sportsfed/fedsite/internal/services"
	"github.com/sportsfed/fedsite/internal/utils"
)

// Authenticator resolves a bearer token to a stored admin account.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*models.Admin, error)
}

// AdminRequired admits any signed-in admin.
func AdminRequired(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := authenticate(c, auth); !ok {
			return
		}
		c.Next()
	}
}

// SuperAdminRequired admits only admins whose stored role is super-admin.
func SuperAdminRequired(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		admin, ok := authenticate(c, auth)
		if !ok {
			return
		}
		if !admin.IsSuperAdmin() {
			utils.ForbiddenResponse(c, "")
			return
		}
		c.Next()
	}
}

func authenticate(c *gin.Context, auth Authenticator) (*models.Admin, bool) {
	lang := utils.GetLangFromContext(c)

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		utils.UnauthorizedResponse(c, i18n.T(lang, i18n.KeyAuthRequired))
		return nil, false
	}

	// Extract token from "Bearer <token>"
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		utils.UnauthorizedResponse(c, i18n.T(lang, i18n.KeyAuthInvalidToken))
		return nil, false
	}

	admin, err := auth.Authenticate(c.Request.Context(), strings.TrimSpace(parts[1]))
	switch {
	case err == nil:
	case errors.Is(err, utils.ErrTokenExpired):
		utils.UnauthorizedResponse(c, i18n.T(lang, i18n.KeyAuthTokenExpired))
		return nil, false
	case errors.Is(err, utils.ErrInvalidToken):
		utils.UnauthorizedResponse(c, i18n.T(lang, i18n.KeyAuthInvalidToken))
		return nil, false
	case errors.Is(err, services.ErrNotFound):
		utils.UnauthorizedResponse(c, i18n.T(lang, i18n.KeyAuthAdminGone))
		return nil, false
	default:
		logrus.WithError(err).Error("Failed to authenticate admin")
		utils.InternalErrorResponse(c)
		return nil, false
	}

	c.Set("admin_id", admin.ID)
	c.Set("admin_role", string(admin.Role))
	c.Set("admin_email", admin.Email)
	return admin, true
}
