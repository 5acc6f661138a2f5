// internal/services/admin_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sportsfed/fedsite/internal/config"
	"github.com/sportsfed/fedsite/internal/database"
	"github.com/sportsfed/fedsite/internal/models"
	"github.com/sportsfed/fedsite/internal/utils"
)

type AdminService struct {
	db *gorm.DB
}

type CreateAdminRequest struct {
	Name     *string `json:"name" validate:"required,notblank"`
	Email    *string `json:"email" validate:"required,notblank,opt_email"`
	Password *string `json:"password" validate:"required,min=8"`
	Role     *string `json:"role" validate:"omitempty,oneof=admin super-admin"`
}

// UpdateAdminRequest changes any subset of an account's fields.
type UpdateAdminRequest struct {
	Name     *string `json:"name" validate:"omitempty,notblank"`
	Email    *string `json:"email" validate:"omitempty,notblank,opt_email"`
	Password *string `json:"password" validate:"omitempty,min=8"`
	Role     *string `json:"role" validate:"omitempty,oneof=admin super-admin"`
}

type AuditLogFilter struct {
	utils.PaginationParams
	AdminID *uint
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{db: db}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *AdminService) ListAdmins(ctx context.Context) ([]models.Admin, error) {
	admins := make([]models.Admin, 0)
	if err := s.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&admins).Error; err != nil {
		return nil, fmt.Errorf("listing admins: %w", err)
	}
	return admins, nil
}

func (s *AdminService) GetAdmin(ctx context.Context, id uint) (*models.Admin, error) {
	var admin models.Admin
	if err := s.db.WithContext(ctx).First(&admin, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("loading admin %d: %w", id, err)
	}
	return &admin, nil
}

func (s *AdminService) CreateAdmin(ctx context.Context, req *CreateAdminRequest) (*models.Admin, error) {
	email := normalizeEmail(*req.Email)
	if err := s.checkEmailFree(ctx, email, 0); err != nil {
		return nil, err
	}

	role := models.RoleAdmin
	if req.Role != nil && *req.Role != "" {
		role = models.AdminRole(*req.Role)
	}

	admin := &models.Admin{
		Name:  strings.TrimSpace(*req.Name),
		Email: email,
		Role:  role,
	}
	if err := admin.SetPassword(*req.Password); err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	if err := s.db.WithContext(ctx).Create(admin).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("creating admin: %w", err)
	}
	return admin, nil
}

// UpdateAdmin refuses to demote the only remaining super-admin.
func (s *AdminService) UpdateAdmin(ctx context.Context, id uint, req *UpdateAdminRequest) (*models.Admin, error) {
	var updated *models.Admin
	err := database.WithTransaction(s.db.WithContext(ctx), func(tx *gorm.DB) error {
		var admin models.Admin
		if err := tx.First(&admin, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		changes := map[string]interface{}{}
		if req.Name != nil {
			changes["name"] = strings.TrimSpace(*req.Name)
		}
		if req.Email != nil {
			email := normalizeEmail(*req.Email)
			if email != admin.Email {
				if err := checkEmailFree(tx, email, admin.ID); err != nil {
					return err
				}
			}
			changes["email"] = email
		}
		if req.Password != nil {
			if err := admin.SetPassword(*req.Password); err != nil {
				return fmt.Errorf("hashing password: %w", err)
			}
			changes["password_hash"] = admin.PasswordHash
		}
		if req.Role != nil {
			role := models.AdminRole(*req.Role)
			if admin.IsSuperAdmin() && role != models.RoleSuperAdmin {
				supers, err := countSuperAdmins(tx)
				if err != nil {
					return err
				}
				if supers <= 1 {
					return ErrLastSuperAdmin
				}
			}
			changes["role"] = role
		}

		if len(changes) > 0 {
			if err := tx.Model(&admin).Updates(changes).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return ErrConflict
				}
				return err
			}
		}

		if err := tx.First(&admin, id).Error; err != nil {
			return err
		}
		updated = &admin
		return nil
	})
	if err != nil {
		return nil, wrapAdminError("updating admin", id, err)
	}
	return updated, nil
}

// DeleteAdmin removes an account. actorID is the admin making the request.
func (s *AdminService) DeleteAdmin(ctx context.Context, id, actorID uint) error {
	if id == actorID {
		return ErrSelfDelete
	}

	err := database.WithTransaction(s.db.WithContext(ctx), func(tx *gorm.DB) error {
		var admin models.Admin
		if err := tx.First(&admin, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if admin.Protected {
			return ErrProtectedAdmin
		}
		if admin.IsSuperAdmin() {
			supers, err := countSuperAdmins(tx)
			if err != nil {
				return err
			}
			if supers <= 1 {
				return ErrLastSuperAdmin
			}
		}
		return tx.Delete(&admin).Error
	})
	return wrapAdminError("deleting admin", id, err)
}

// EnsureBootstrapAdmin makes sure the configured account exists as a
// protected super-admin. Its password is only set on creation. Without
// configured credentials an existing protected super-admin is returned,
// and ErrNoBootstrapAdmin when there is none.
func (s *AdminService) EnsureBootstrapAdmin(ctx context.Context, cfg config.BootstrapConfig) (*models.Admin, error) {
	if cfg.Email == "" || cfg.Password == "" {
		var admin models.Admin
		err := s.db.WithContext(ctx).
			Where("role = ? AND protected = ?", models.RoleSuperAdmin, true).
			Order("id ASC").
			First(&admin).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, ErrNoBootstrapAdmin
		case err != nil:
			return nil, fmt.Errorf("loading protected super admin: %w", err)
		}
		return &admin, nil
	}

	email := normalizeEmail(cfg.Email)
	var admin models.Admin
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&admin).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		admin = models.Admin{
			Name:      cfg.Name,
			Email:     email,
			Role:      models.RoleSuperAdmin,
			Protected: true,
		}
		if err := admin.SetPassword(cfg.Password); err != nil {
			return nil, fmt.Errorf("hashing bootstrap password: %w", err)
		}
		if err := s.db.WithContext(ctx).Create(&admin).Error; err != nil {
			return nil, fmt.Errorf("creating bootstrap admin: %w", err)
		}
		logrus.WithField("email", email).Info("Bootstrap super admin created")
		return &admin, nil
	case err != nil:
		return nil, fmt.Errorf("loading bootstrap admin: %w", err)
	}

	if !admin.IsSuperAdmin() || !admin.Protected {
		if err := s.db.WithContext(ctx).Model(&admin).Updates(map[string]interface{}{
			"role":      models.RoleSuperAdmin,
			"protected": true,
		}).Error; err != nil {
			return nil, fmt.Errorf("promoting bootstrap admin: %w", err)
		}
		admin.Role = models.RoleSuperAdmin
		admin.Protected = true
	}
	return &admin, nil
}

// RecordAudit stores one audit entry.
func (s *AdminService) RecordAudit(ctx context.Context, entry *models.AuditLog) error {
	return s.db.WithContext(ctx).Create(entry).Error
}

// ListAuditLogs returns audit entries newest first.
func (s *AdminService) ListAuditLogs(ctx context.Context, filter AuditLogFilter) ([]models.AuditLog, int64, error) {
	query := s.db.WithContext(ctx).Model(&models.AuditLog{})
	if filter.AdminID != nil {
		query = query.Where("admin_id = ?", *filter.AdminID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("counting audit logs: %w", err)
	}

	logs := make([]models.AuditLog, 0)
	if err := utils.ApplyPagination(query.Order("created_at DESC, id DESC"), filter.PaginationParams).Find(&logs).Error; err != nil {
		return nil, 0, fmt.Errorf("listing audit logs: %w", err)
	}
	return logs, total, nil
}

func (s *AdminService) checkEmailFree(ctx context.Context, email string, exceptID uint) error {
	return checkEmailFree(s.db.WithContext(ctx), email, exceptID)
}

func checkEmailFree(db *gorm.DB, email string, exceptID uint) error {
	query := db.Model(&models.Admin{}).Where("email = ?", email)
	if exceptID != 0 {
		query = query.Where("id <> ?", exceptID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return fmt.Errorf("checking admin email: %w", err)
	}
	if count > 0 {
		return ErrConflict
	}
	return nil
}

// countSuperAdmins locks the super-admin rows until tx ends.
func countSuperAdmins(tx *gorm.DB) (int, error) {
	var ids []uint
	err := tx.Model(&models.Admin{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("role = ?", models.RoleSuperAdmin).
		Pluck("id", &ids).Error
	return len(ids), err
}

func wrapAdminError(op string, id uint, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrConflict),
		errors.Is(err, ErrLastSuperAdmin), errors.Is(err, ErrProtectedAdmin):
		return err
	default:
		return fmt.Errorf("%s %d: %w", op, id, err)
	}
}
