package models

import "time"

// User defines an account based on the 'users' table. TenantID is the primary
// tenant embedded in issued tokens; additional affiliations live in
// 'user_tenants' (see UserTenant).
type User struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	Email     string    `json:"email" db:"email" example:"admin@example.edu"` // globally unique
	Password  string    `json:"-" db:"password"`                             // bcrypt hash, excluded from JSON
	FirstName string    `json:"firstName" db:"first_name" example:"John"`
	LastName  string    `json:"lastName" db:"last_name" example:"Doe"`
	Role      RoleType  `json:"role" db:"role" example:"SCHOOL_ADMIN"`
	Suspended bool      `json:"suspended" db:"suspended" example:"false"`
	TenantID  int64     `json:"tenantId" db:"tenant_id" example:"1"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// UserTenant is one affiliation row: a user present at a tenant. The row with
// IsPrimary set mirrors User.TenantID.
type UserTenant struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	TenantID  int64     `json:"tenantId" db:"tenant_id"`
	IsPrimary bool      `json:"isPrimary" db:"is_primary"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
