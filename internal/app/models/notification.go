package models

import "time"

// Notification is addressed to one user and records an administrative action
// on some account (who did what, and which fields changed).
type Notification struct {
	ID            int64              `json:"id" db:"id"`
	UserID        int64              `json:"userId" db:"user_id"`
	Action        NotificationAction `json:"action" db:"action"`
	TargetEmail   string             `json:"targetEmail" db:"target_email"`
	ActorName     string             `json:"actorName" db:"actor_name"`
	ActorRole     RoleType           `json:"actorRole" db:"actor_role"`
	TenantName    string             `json:"tenantName" db:"tenant_name"`
	ChangedFields []string           `json:"changedFields" db:"changed_fields"`
	Read          bool               `json:"read" db:"read"`
	CreatedAt     time.Time          `json:"createdAt" db:"created_at"`
}
