package dto

import (
	"time"

	"github.com/campuscore/campuscore/internal/app/models"
)

// NotificationResponse is the public representation of one notification.
type NotificationResponse struct {
	ID            int64     `json:"id"`
	Action        string    `json:"action" example:"UPDATED"`
	TargetEmail   string    `json:"targetEmail"`
	ActorName     string    `json:"actorName"`
	ActorRole     string    `json:"actorRole"`
	TenantName    string    `json:"tenantName"`
	ChangedFields []string  `json:"changedFields"`
	Read          bool      `json:"read"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ToNotificationResponse maps a notification model to its public representation.
func ToNotificationResponse(n *models.Notification) NotificationResponse {
	return NotificationResponse{
		ID:            n.ID,
		Action:        string(n.Action),
		TargetEmail:   n.TargetEmail,
		ActorName:     n.ActorName,
		ActorRole:     string(n.ActorRole),
		TenantName:    n.TenantName,
		ChangedFields: n.ChangedFields,
		Read:          n.Read,
		CreatedAt:     n.CreatedAt,
	}
}

// UnreadCountResponse carries the caller's unread notification count.
type UnreadCountResponse struct {
	Count int `json:"count" example:"3"`
}
