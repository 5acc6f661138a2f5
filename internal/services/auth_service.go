// internal/services/auth_service.go
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/jonboulle/clockwork"
	"gorm.io/gorm"

	"github.com/sportsfed/fedsite/internal/models"
	"github.com/sportsfed/fedsite/internal/utils"
)

type AuthService struct {
	db    *gorm.DB
	jwt   *utils.JWTManager
	clock clockwork.Clock
}

type LoginRequest struct {
	Email    *string `json:"email" validate:"required,notblank,opt_email"`
	Password *string `json:"password" validate:"required,notblank"`
}

type ChangePasswordRequest struct {
	CurrentPassword *string `json:"currentPassword" validate:"required,notblank"`
	NewPassword     *string `json:"newPassword" validate:"required,min=8"`
}

type LoginResponse struct {
	Token     string        `json:"token"`
	TokenType string        `json:"tokenType"`
	ExpiresIn int64         `json:"expiresIn"`
	Admin     *models.Admin `json:"admin"`
}

func NewAuthService(db *gorm.DB, jwt *utils.JWTManager) *AuthService {
	return &AuthService{db: db, jwt: jwt, clock: clockwork.NewRealClock()}
}

func NewAuthServiceWithClock(db *gorm.DB, jwt *utils.JWTManager, clock clockwork.Clock) *AuthService {
	return &AuthService{db: db, jwt: jwt, clock: clock}
}

// Login checks the credentials and issues a bearer token. Unknown emails and
// wrong passwords both yield ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	var admin models.Admin
	if err := s.db.WithContext(ctx).Where("email = ?", normalizeEmail(*req.Email)).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("loading admin: %w", err)
	}

	if err := admin.CheckPassword(*req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	now := s.clock.Now().UTC()
	if err := s.db.WithContext(ctx).Model(&admin).Update("last_login_at", now).Error; err != nil {
		return nil, fmt.Errorf("recording login: %w", err)
	}
	admin.LastLoginAt = &now

	token, err := s.jwt.GenerateJWT(admin.ID, admin.Email, string(admin.Role))
	if err != nil {
		return nil, fmt.Errorf("signing token: %w", err)
	}

	return &LoginResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: int64(s.jwt.TTL().Seconds()),
		Admin:     &admin,
	}, nil
}

// Authenticate resolves a bearer token to the admin it was issued to. The
// role is read from the stored account, not from the token.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*models.Admin, error) {
	claims, err := s.jwt.ValidateJWT(token)
	if err != nil {
		return nil, err
	}

	var admin models.Admin
	if err := s.db.WithContext(ctx).First(&admin, claims.AdminID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("loading admin %d: %w", claims.AdminID, err)
	}
	return &admin, nil
}

func (s *AuthService) ChangePassword(ctx context.Context, adminID uint, req *ChangePasswordRequest) error {
	var admin models.Admin
	if err := s.db.WithContext(ctx).First(&admin, adminID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("loading admin %d: %w", adminID, err)
	}

	if err := admin.CheckPassword(*req.CurrentPassword); err != nil {
		return ErrInvalidCredentials
	}
	if err := admin.SetPassword(*req.NewPassword); err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	return s.db.WithContext(ctx).Model(&admin).Update("password_hash", admin.PasswordHash).Error
}
