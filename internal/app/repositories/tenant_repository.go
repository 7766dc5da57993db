package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campuscore/campuscore/internal/app/models"
	"github.com/campuscore/campuscore/internal/pkg/apperrors"
	"github.com/campuscore/campuscore/internal/pkg/dberrors"
	"github.com/campuscore/campuscore/internal/pkg/logger"
)

// TenantRepository handles tenant database operations
type TenantRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewTenantRepository creates a new TenantRepository
func NewTenantRepository(db *pgxpool.Pool) *TenantRepository {
	return &TenantRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateTenant inserts a new tenant and returns its ID.
func (r *TenantRepository) CreateTenant(ctx context.Context, tenant *models.Tenant) (int64, error) {
	sql, args, err := r.sb.Insert("tenants").
		Columns("name", "code", "is_active").
		Values(tenant.Name, tenant.Code, tenant.IsActive).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create tenant query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&tenant.ID, &tenant.CreatedAt, &tenant.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrTenantCodeExists
		}
		logger.Error().Err(err).Msg("Error executing create tenant query")
		return 0, fmt.Errorf("error creating tenant: %w", err)
	}

	return tenant.ID, nil
}

// GetTenantByID retrieves a tenant by ID
func (r *TenantRepository) GetTenantByID(ctx context.Context, id int64) (*models.Tenant, error) {
	sql, args, err := r.sb.Select("id", "name", "code", "is_active", "created_at", "updated_at").
		From("tenants").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get tenant query: %w", err)
	}

	tenant := &models.Tenant{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&tenant.ID, &tenant.Name, &tenant.Code, &tenant.IsActive, &tenant.CreatedAt, &tenant.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTenantNotFound
		}
		logger.Error().Err(err).Int64("tenantID", id).Msg("Error scanning tenant row")
		return nil, fmt.Errorf("error getting tenant by ID: %w", err)
	}

	return tenant, nil
}

// GetTenantByCode retrieves a tenant by its unique code
func (r *TenantRepository) GetTenantByCode(ctx context.Context, code string) (*models.Tenant, error) {
	sql, args, err := r.sb.Select("id", "name", "code", "is_active", "created_at", "updated_at").
		From("tenants").
		Where(squirrel.Eq{"code": code}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get tenant by code query: %w", err)
	}

	tenant := &models.Tenant{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&tenant.ID, &tenant.Name, &tenant.Code, &tenant.IsActive, &tenant.CreatedAt, &tenant.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTenantNotFound
		}
		return nil, fmt.Errorf("error getting tenant by code: %w", err)
	}

	return tenant, nil
}

// GetAllTenants retrieves all tenants ordered by name
func (r *TenantRepository) GetAllTenants(ctx context.Context) ([]*models.Tenant, error) {
	sql, args, err := r.sb.Select("id", "name", "code", "is_active", "created_at", "updated_at").
		From("tenants").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all tenants query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying tenants: %w", err)
	}
	defer rows.Close()

	var tenants []*models.Tenant
	for rows.Next() {
		tenant := &models.Tenant{}
		if err := rows.Scan(&tenant.ID, &tenant.Name, &tenant.Code, &tenant.IsActive, &tenant.CreatedAt, &tenant.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error scanning tenant row: %w", err)
		}
		tenants = append(tenants, tenant)
	}

	return tenants, rows.Err()
}

// UpdateTenant updates a tenant's fields.
func (r *TenantRepository) UpdateTenant(ctx context.Context, tenant *models.Tenant) error {
	sql, args, err := r.sb.Update("tenants").
		Set("name", tenant.Name).
		Set("code", tenant.Code).
		Set("is_active", tenant.IsActive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": tenant.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update tenant query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrTenantCodeExists
		}
		logger.Error().Err(err).Int64("tenantID", tenant.ID).Msg("Error executing update tenant query")
		return fmt.Errorf("error updating tenant: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrTenantNotFound
	}

	return nil
}

// DeactivateTenant clears the active flag. Tenant rows are never removed;
// their scoped data stays intact.
func (r *TenantRepository) DeactivateTenant(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Update("tenants").
		Set("is_active", false).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build deactivate tenant query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deactivating tenant: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrTenantNotFound
	}

	return nil
}
