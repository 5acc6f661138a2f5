// internal/models/admin.go
package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

type Admin struct {
	BaseModel
	Name         string     `json:"name" gorm:"size:255;not null"`
	Email        string     `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string     `json:"-" gorm:"size:255;not null"`
	Role         AdminRole  `json:"role" gorm:"type:varchar(20);not null;index"`
	Protected    bool       `json:"protected" gorm:"not null"`
	LastLoginAt  *time.Time `json:"lastLoginAt"`
}

func (a *Admin) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	a.PasswordHash = string(hashedPassword)
	return nil
}

func (a *Admin) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password))
}

func (a *Admin) IsSuperAdmin() bool {
	return a.Role == RoleSuperAdmin
}

// AuditLog records one admin write request.
type AuditLog struct {
	BaseModel
	AdminID      *uint  `json:"adminId" gorm:"index"`
	Action       string `json:"action" gorm:"size:100;not null;index"`
	ResourceType string `json:"resourceType" gorm:"size:50;not null;index"`
	ResourceID   *uint  `json:"resourceId" gorm:"index"`
	Status       int    `json:"status" gorm:"not null"`
	IPAddress    string `json:"ipAddress" gorm:"size:45"`
	UserAgent    string `json:"userAgent" gorm:"type:text"`
}
