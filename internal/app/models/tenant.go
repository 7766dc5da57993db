package models

import "time"

// Tenant is an institution and the unit of data isolation. Every
// tenant-scoped entity carries its id; deactivation is soft via IsActive.
type Tenant struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	Name      string    `json:"name" db:"name" example:"Example University"`
	Code      string    `json:"code" db:"code" example:"EXU"` // globally unique
	IsActive  bool      `json:"isActive" db:"is_active" example:"true"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
