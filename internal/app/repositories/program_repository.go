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
)

// ProgramRepository handles study program database operations
type ProgramRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewProgramRepository creates a new ProgramRepository
func NewProgramRepository(db *pgxpool.Pool) *ProgramRepository {
	return &ProgramRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateProgram inserts a new program at version 1.
func (r *ProgramRepository) CreateProgram(ctx context.Context, program *models.Program) (int64, error) {
	sql, args, err := r.sb.Insert("programs").
		Columns("tenant_id", "name", "code", "version", "is_active").
		Values(program.TenantID, program.Name, program.Code, program.Version, program.IsActive).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create program query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&program.ID, &program.CreatedAt, &program.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.NewConflictError("program with this code already exists")
		}
		return 0, fmt.Errorf("error creating program: %w", err)
	}

	return program.ID, nil
}

// GetProgramByID retrieves a program within a tenant.
func (r *ProgramRepository) GetProgramByID(ctx context.Context, tenantID, id int64) (*models.Program, error) {
	sql, args, err := r.sb.Select("id", "tenant_id", "name", "code", "version", "is_active", "created_at", "updated_at").
		From("programs").
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get program query: %w", err)
	}

	program := &models.Program{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&program.ID, &program.TenantID, &program.Name, &program.Code,
		&program.Version, &program.IsActive, &program.CreatedAt, &program.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProgramNotFound
		}
		return nil, fmt.Errorf("error getting program by ID: %w", err)
	}

	return program, nil
}

// ListPrograms retrieves all programs of a tenant ordered by code.
func (r *ProgramRepository) ListPrograms(ctx context.Context, tenantID int64) ([]*models.Program, error) {
	sql, args, err := r.sb.Select("id", "tenant_id", "name", "code", "version", "is_active", "created_at", "updated_at").
		From("programs").
		Where(squirrel.Eq{"tenant_id": tenantID}).
		OrderBy("code ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list programs query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying programs: %w", err)
	}
	defer rows.Close()

	var programs []*models.Program
	for rows.Next() {
		program := &models.Program{}
		err := rows.Scan(&program.ID, &program.TenantID, &program.Name, &program.Code,
			&program.Version, &program.IsActive, &program.CreatedAt, &program.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning program row: %w", err)
		}
		programs = append(programs, program)
	}

	return programs, rows.Err()
}

// UpdateProgram persists the mutable fields, including the bumped version.
func (r *ProgramRepository) UpdateProgram(ctx context.Context, program *models.Program) error {
	sql, args, err := r.sb.Update("programs").
		Set("name", program.Name).
		Set("code", program.Code).
		Set("version", program.Version).
		Set("is_active", program.IsActive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": program.ID, "tenant_id": program.TenantID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update program query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewConflictError("program with this code already exists")
		}
		return fmt.Errorf("error updating program: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrProgramNotFound
	}

	return nil
}

// DeleteProgram removes a program within a tenant.
func (r *ProgramRepository) DeleteProgram(ctx context.Context, tenantID, id int64) error {
	sql, args, err := r.sb.Delete("programs").
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete program query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting program: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrProgramNotFound
	}

	return nil
}
