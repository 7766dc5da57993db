package dto

import (
	"time"

	"github.com/campuscore/campuscore/internal/app/models"
)

// UserResponse is the public representation of a user account.
type UserResponse struct {
	ID        int64     `json:"id" example:"1"`
	Email     string    `json:"email" example:"jane.doe@uni.edu"`
	FirstName string    `json:"firstName" example:"Jane"`
	LastName  string    `json:"lastName" example:"Doe"`
	Role      string    `json:"role" example:"STUDENT"`
	Suspended bool      `json:"suspended" example:"false"`
	TenantID  int64     `json:"tenantId" example:"1"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToUserResponse maps a user model to its public representation.
func ToUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      string(user.Role),
		Suspended: user.Suspended,
		TenantID:  user.TenantID,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// MeResponse is the caller's own profile: the account plus every tenant they
// are affiliated with.
type MeResponse struct {
	UserResponse
	TenantIDs []int64 `json:"tenantIds"`
}

// UpdateUserRequest carries the editable fields of a user account. All fields
// are optional; absent fields are left unchanged.
type UpdateUserRequest struct {
	Email     *string `json:"email,omitempty" binding:"omitempty,email"`
	Password  *string `json:"password,omitempty" binding:"omitempty,min=8"`
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Role      *string `json:"role,omitempty"`
	Suspended *bool   `json:"suspended,omitempty"`
	TenantID  *int64  `json:"tenantId,omitempty"`
}

// ListUsersQuery holds filters for listing user accounts.
type ListUsersQuery struct {
	TenantID *int64 `form:"tenantId"`
	Role     string `form:"role"`
	Search   string `form:"search"`
	Page     int    `form:"page,default=1" binding:"omitempty,min=1"`
	PageSize int    `form:"pageSize,default=20" binding:"omitempty,min=1,max=100"`
}
