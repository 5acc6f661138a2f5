// internal/models/common.go
package models

import (
	"time"
)

// BaseModel carries the server-assigned columns shared by every entity.
// Neither field is ever bound from a request body.
type BaseModel struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"createdAt" gorm:"not null;index"`
}

// Enums
type AdminRole string

const (
	RoleAdmin      AdminRole = "admin"
	RoleSuperAdmin AdminRole = "super-admin"
)

func (r AdminRole) Valid() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// All returns every model managed by migrations, in creation order.
func All() []interface{} {
	return []interface{}{
		&HeroSlide{},
		&News{},
		&Event{},
		&Player{},
		&Club{},
		&MemberState{},
		&Leader{},
		&Media{},
		&Affiliation{},
		&Contact{},
		&SiteSetting{},
		&Admin{},
		&AuditLog{},
	}
}
