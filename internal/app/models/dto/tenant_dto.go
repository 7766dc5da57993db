package dto

import (
	"time"

	"github.com/campuscore/campuscore/internal/app/models"
)

// TenantResponse is the public representation of a tenant.
type TenantResponse struct {
	ID        int64     `json:"id" example:"1"`
	Name      string    `json:"name" example:"Example University"`
	Code      string    `json:"code" example:"EXU"`
	IsActive  bool      `json:"isActive" example:"true"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToTenantResponse maps a tenant model to its public representation.
func ToTenantResponse(t *models.Tenant) TenantResponse {
	return TenantResponse{
		ID:        t.ID,
		Name:      t.Name,
		Code:      t.Code,
		IsActive:  t.IsActive,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

// CreateTenantRequest carries the fields for registering a new tenant.
type CreateTenantRequest struct {
	Name string `json:"name" binding:"required,min=2,max=200" example:"Example University"`
	Code string `json:"code" binding:"required,min=2,max=20" example:"EXU"`
}

// UpdateTenantRequest carries the editable fields of a tenant.
type UpdateTenantRequest struct {
	Name     *string `json:"name,omitempty" binding:"omitempty,min=2,max=200"`
	Code     *string `json:"code,omitempty" binding:"omitempty,min=2,max=20"`
	IsActive *bool   `json:"isActive,omitempty"`
}
