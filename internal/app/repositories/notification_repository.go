package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campuscore/campuscore/internal/app/models"
	"github.com/campuscore/campuscore/internal/pkg/logger"
)

// NotificationRepository handles notification database operations
type NotificationRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewNotificationRepository creates a new NotificationRepository
func NewNotificationRepository(db *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateNotifications inserts a batch of notifications in one statement.
func (r *NotificationRepository) CreateNotifications(ctx context.Context, notifications []*models.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	builder := r.sb.Insert("notifications").
		Columns("user_id", "action", "target_email", "actor_name", "actor_role", "tenant_name", "changed_fields")

	for _, n := range notifications {
		builder = builder.Values(n.UserID, n.Action, n.TargetEmail, n.ActorName, n.ActorRole, n.TenantName, n.ChangedFields)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create notifications query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Int("count", len(notifications)).Msg("Error inserting notifications")
		return fmt.Errorf("error creating notifications: %w", err)
	}

	return nil
}

// ListNotifications retrieves a user's notifications, newest first.
func (r *NotificationRepository) ListNotifications(ctx context.Context, userID int64, unreadOnly bool) ([]*models.Notification, error) {
	base := r.sb.Select("id", "user_id", "action", "target_email", "actor_name", "actor_role",
		"tenant_name", "changed_fields", "read", "created_at").
		From("notifications").
		Where(squirrel.Eq{"user_id": userID})

	if unreadOnly {
		base = base.Where(squirrel.Eq{"read": false})
	}

	sql, args, err := base.OrderBy("created_at DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list notifications query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying notifications: %w", err)
	}
	defer rows.Close()

	var notifications []*models.Notification
	for rows.Next() {
		n := &models.Notification{}
		err := rows.Scan(&n.ID, &n.UserID, &n.Action, &n.TargetEmail, &n.ActorName,
			&n.ActorRole, &n.TenantName, &n.ChangedFields, &n.Read, &n.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning notification row: %w", err)
		}
		notifications = append(notifications, n)
	}

	return notifications, rows.Err()
}

// CountUnread returns the user's unread notification count.
func (r *NotificationRepository) CountUnread(ctx context.Context, userID int64) (int, error) {
	sql, args, err := r.sb.Select("COUNT(*)").
		From("notifications").
		Where(squirrel.Eq{"user_id": userID, "read": false}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count unread query: %w", err)
	}

	var count int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting unread notifications: %w", err)
	}

	return count, nil
}

// MarkRead marks one notification read, scoped to its owner. Marking an
// already-read or unknown notification is a no-op.
func (r *NotificationRepository) MarkRead(ctx context.Context, userID, notificationID int64) error {
	sql, args, err := r.sb.Update("notifications").
		Set("read", true).
		Where(squirrel.Eq{"id": notificationID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build mark read query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error marking notification read: %w", err)
	}

	return nil
}

// MarkAllRead marks all of a user's notifications read.
func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID int64) error {
	sql, args, err := r.sb.Update("notifications").
		Set("read", true).
		Where(squirrel.Eq{"user_id": userID, "read": false}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build mark all read query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error marking all notifications read: %w", err)
	}

	return nil
}
