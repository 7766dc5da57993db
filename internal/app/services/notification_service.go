package services

import (
	"context"

	"github.com/campuscore/campuscore/internal/app/models"
	"github.com/campuscore/campuscore/internal/app/models/dto"
	"github.com/campuscore/campuscore/internal/app/repositories"
	"github.com/campuscore/campuscore/internal/pkg/logger"
)

// NotificationService records and serves per-user notifications about
// administrative account actions.
type NotificationService struct {
	notificationRepo *repositories.NotificationRepository
	userRepo         *repositories.UserRepository
	tenantRepo       *repositories.TenantRepository
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(
	notificationRepo *repositories.NotificationRepository,
	userRepo *repositories.UserRepository,
	tenantRepo *repositories.TenantRepository,
) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		tenantRepo:       tenantRepo,
	}
}

// NotifyUserAction fans out a notification about an account action. Platform
// admin actions go to the target tenant's school admins; school admin actions
// go to the affected user. Failures are logged and swallowed so the action
// itself never fails on notification trouble.
func (s *NotificationService) NotifyUserAction(ctx context.Context, actor Identity, target *models.User, action models.NotificationAction, changedFields []string) {
	actorUser, err := s.userRepo.GetUserByID(ctx, actor.UserID)
	if err != nil {
		logger.Warn().Err(err).Int64("actorID", actor.UserID).Msg("Skipping notification, actor lookup failed")
		return
	}

	tenantName := ""
	if tenant, err := s.tenantRepo.GetTenantByID(ctx, target.TenantID); err == nil {
		tenantName = tenant.Name
	}

	var recipients []int64
	switch actor.Role {
	case models.RolePlatformAdmin:
		admins, err := s.userRepo.ListSchoolAdminsByTenant(ctx, target.TenantID)
		if err != nil {
			logger.Warn().Err(err).Int64("tenantID", target.TenantID).Msg("Skipping notification, admin lookup failed")
			return
		}
		for _, admin := range admins {
			if admin.ID == actor.UserID {
				continue
			}
			recipients = append(recipients, admin.ID)
		}
	case models.RoleSchoolAdmin:
		if target.ID != actor.UserID && action != models.ActionDeleted {
			recipients = append(recipients, target.ID)
		}
	}

	if len(recipients) == 0 {
		return
	}

	if changedFields == nil {
		changedFields = []string{}
	}

	notifications := make([]*models.Notification, 0, len(recipients))
	for _, userID := range recipients {
		notifications = append(notifications, &models.Notification{
			UserID:        userID,
			Action:        action,
			TargetEmail:   target.Email,
			ActorName:     actorUser.FirstName + " " + actorUser.LastName,
			ActorRole:     actor.Role,
			TenantName:    tenantName,
			ChangedFields: changedFields,
		})
	}

	if err := s.notificationRepo.CreateNotifications(ctx, notifications); err != nil {
		logger.Warn().Err(err).Msg("Failed to store notifications")
	}
}

// ListNotifications retrieves the caller's notifications, newest first.
func (s *NotificationService) ListNotifications(ctx context.Context, identity Identity, unreadOnly bool) ([]dto.NotificationResponse, error) {
	notifications, err := s.notificationRepo.ListNotifications(ctx, identity.UserID, unreadOnly)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		responses = append(responses, dto.ToNotificationResponse(n))
	}

	return responses, nil
}

// CountUnread returns the caller's unread notification count.
func (s *NotificationService) CountUnread(ctx context.Context, identity Identity) (int, error) {
	return s.notificationRepo.CountUnread(ctx, identity.UserID)
}

// MarkRead marks one of the caller's notifications read. Idempotent; another
// user's notification id is silently a no-op.
func (s *NotificationService) MarkRead(ctx context.Context, identity Identity, notificationID int64) error {
	return s.notificationRepo.MarkRead(ctx, identity.UserID, notificationID)
}

// MarkAllRead marks all of the caller's notifications read.
func (s *NotificationService) MarkAllRead(ctx context.Context, identity Identity) error {
	return s.notificationRepo.MarkAllRead(ctx, identity.UserID)
}
