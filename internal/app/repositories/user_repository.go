package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campuscore/campuscore/internal/app/models"
	"github.com/campuscore/campuscore/internal/pkg/apperrors"
	"github.com/campuscore/campuscore/internal/pkg/dberrors"
	"github.com/campuscore/campuscore/internal/pkg/logger"
)

// UserRepository handles user database operations
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = "id, email, password, first_name, last_name, role, suspended, tenant_id, created_at, updated_at"

func scanUser(row pgx.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID, &user.Email, &user.Password, &user.FirstName, &user.LastName,
		&user.Role, &user.Suspended, &user.TenantID, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// CreateUser inserts a new user and records their primary tenant affiliation
// in the same transaction.
func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	err = tx.QueryRow(ctx,
		`INSERT INTO users (email, password, first_name, last_name, role, suspended, tenant_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at, updated_at`,
		user.Email, user.Password, user.FirstName, user.LastName, user.Role, user.Suspended, user.TenantID,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		logger.Error().Err(err).Str("email", user.Email).Msg("Error creating user")
		return 0, fmt.Errorf("error creating user: %w", err)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO user_tenants (user_id, tenant_id, is_primary) VALUES ($1, $2, TRUE)`,
		user.ID, user.TenantID,
	)
	if err != nil {
		return 0, fmt.Errorf("error creating user tenant affiliation: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return user.ID, nil
}

// GetUserByID retrieves a user by ID
func (r *UserRepository) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx,
		"SELECT "+userColumns+" FROM users WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error getting user by ID: %w", err)
	}
	return user, nil
}

// GetUserByEmail retrieves a user by email
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx,
		"SELECT "+userColumns+" FROM users WHERE email = $1", email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error getting user by email: %w", err)
	}
	return user, nil
}

// UserFilter narrows ListUsers results.
type UserFilter struct {
	TenantID *int64
	Role     string
	Search   string
	Offset   int
	Limit    int
}

// ListUsers retrieves users matching the filter together with the total count.
func (r *UserRepository) ListUsers(ctx context.Context, filter UserFilter) ([]*models.User, int, error) {
	var conditions []string
	var args []interface{}
	argPos := 1

	addCondition := func(cond string, value interface{}) {
		conditions = append(conditions, fmt.Sprintf(cond, argPos))
		args = append(args, value)
		argPos++
	}

	if filter.TenantID != nil {
		addCondition("tenant_id = $%d", *filter.TenantID)
	}
	if filter.Role != "" {
		addCondition("role = $%d", filter.Role)
	}
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(email ILIKE $%d OR first_name ILIKE $%d OR last_name ILIKE $%d)", argPos, argPos, argPos))
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM users"+whereClause, args...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("error counting users: %w", err)
	}

	query := "SELECT " + userColumns + " FROM users" + whereClause +
		fmt.Sprintf(" ORDER BY id ASC LIMIT $%d OFFSET $%d", argPos, argPos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error querying users: %w", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning user row: %w", err)
		}
		users = append(users, user)
	}

	return users, total, rows.Err()
}

// ListSchoolAdminsByTenant retrieves all school admin users of a tenant.
func (r *UserRepository) ListSchoolAdminsByTenant(ctx context.Context, tenantID int64) ([]*models.User, error) {
	rows, err := r.db.Query(ctx,
		"SELECT "+userColumns+" FROM users WHERE tenant_id = $1 AND role = $2",
		tenantID, models.RoleSchoolAdmin)
	if err != nil {
		return nil, fmt.Errorf("error querying school admins: %w", err)
	}
	defer rows.Close()

	var admins []*models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning user row: %w", err)
		}
		admins = append(admins, user)
	}

	return admins, rows.Err()
}

// UpdateUser persists all mutable fields of the user.
func (r *UserRepository) UpdateUser(ctx context.Context, user *models.User) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE users
		 SET email = $1, password = $2, first_name = $3, last_name = $4,
		     role = $5, suspended = $6, tenant_id = $7, updated_at = NOW()
		 WHERE id = $8`,
		user.Email, user.Password, user.FirstName, user.LastName,
		user.Role, user.Suspended, user.TenantID, user.ID,
	)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrEmailAlreadyExists
		}
		logger.Error().Err(err).Int64("userID", user.ID).Msg("Error updating user")
		return fmt.Errorf("error updating user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// DeleteUser removes a user by ID.
func (r *UserRepository) DeleteUser(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("error deleting user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// AddUserTenant records an additional tenant affiliation for a user. Adding an
// existing affiliation is a no-op.
func (r *UserRepository) AddUserTenant(ctx context.Context, userID, tenantID int64) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO user_tenants (user_id, tenant_id, is_primary)
		 VALUES ($1, $2, FALSE)
		 ON CONFLICT (user_id, tenant_id) DO NOTHING`,
		userID, tenantID)
	if err != nil {
		return fmt.Errorf("error adding user tenant affiliation: %w", err)
	}
	return nil
}

// GetUserTenantIDs retrieves the IDs of all tenants a user is affiliated with.
func (r *UserRepository) GetUserTenantIDs(ctx context.Context, userID int64) ([]int64, error) {
	rows, err := r.db.Query(ctx,
		"SELECT tenant_id FROM user_tenants WHERE user_id = $1", userID)
	if err != nil {
		return nil, fmt.Errorf("error querying user tenants: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning tenant id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}
