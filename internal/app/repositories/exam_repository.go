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

// ExamRepository handles exam period and exam term database operations
type ExamRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewExamRepository creates a new ExamRepository
func NewExamRepository(db *pgxpool.Pool) *ExamRepository {
	return &ExamRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreatePeriod inserts a new exam period.
func (r *ExamRepository) CreatePeriod(ctx context.Context, period *models.ExamPeriod) (int64, error) {
	sql, args, err := r.sb.Insert("exam_periods").
		Columns("tenant_id", "name", "term", "year").
		Values(period.TenantID, period.Name, period.Term, period.Year).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create exam period query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&period.ID, &period.CreatedAt, &period.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.NewConflictError("exam period already exists for this term and year")
		}
		return 0, fmt.Errorf("error creating exam period: %w", err)
	}

	return period.ID, nil
}

// GetPeriodByID retrieves an exam period within a tenant.
func (r *ExamRepository) GetPeriodByID(ctx context.Context, tenantID, id int64) (*models.ExamPeriod, error) {
	sql, args, err := r.sb.Select("id", "tenant_id", "name", "term", "year", "created_at", "updated_at").
		From("exam_periods").
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get exam period query: %w", err)
	}

	period := &models.ExamPeriod{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&period.ID, &period.TenantID, &period.Name, &period.Term,
		&period.Year, &period.CreatedAt, &period.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPeriodNotFound
		}
		return nil, fmt.Errorf("error getting exam period by ID: %w", err)
	}

	return period, nil
}

// ListPeriods retrieves all exam periods of a tenant, newest first.
func (r *ExamRepository) ListPeriods(ctx context.Context, tenantID int64) ([]*models.ExamPeriod, error) {
	sql, args, err := r.sb.Select("id", "tenant_id", "name", "term", "year", "created_at", "updated_at").
		From("exam_periods").
		Where(squirrel.Eq{"tenant_id": tenantID}).
		OrderBy("year DESC", "term ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list exam periods query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying exam periods: %w", err)
	}
	defer rows.Close()

	var periods []*models.ExamPeriod
	for rows.Next() {
		period := &models.ExamPeriod{}
		err := rows.Scan(&period.ID, &period.TenantID, &period.Name, &period.Term,
			&period.Year, &period.CreatedAt, &period.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning exam period row: %w", err)
		}
		periods = append(periods, period)
	}

	return periods, rows.Err()
}

// DeletePeriod removes an exam period and its scheduled exams.
func (r *ExamRepository) DeletePeriod(ctx context.Context, tenantID, id int64) error {
	sql, args, err := r.sb.Delete("exam_periods").
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete exam period query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting exam period: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrPeriodNotFound
	}

	return nil
}

// CreateTerm schedules one exam inside a period.
func (r *ExamRepository) CreateTerm(ctx context.Context, term *models.ExamTerm) (int64, error) {
	sql, args, err := r.sb.Insert("exam_terms").
		Columns("tenant_id", "exam_period_id", "course_offering_id", "date").
		Values(term.TenantID, term.ExamPeriodID, term.CourseOfferingID, term.Date).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create exam term query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&term.ID, &term.CreatedAt, &term.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.NewConflictError("exam is already scheduled for this offering in the period")
		}
		return 0, fmt.Errorf("error creating exam term: %w", err)
	}

	return term.ID, nil
}

// GetTermByID retrieves an exam term within a tenant.
func (r *ExamRepository) GetTermByID(ctx context.Context, tenantID, id int64) (*models.ExamTerm, error) {
	sql, args, err := r.sb.Select("id", "tenant_id", "exam_period_id", "course_offering_id", "date", "created_at", "updated_at").
		From("exam_terms").
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get exam term query: %w", err)
	}

	term := &models.ExamTerm{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&term.ID, &term.TenantID, &term.ExamPeriodID, &term.CourseOfferingID,
		&term.Date, &term.CreatedAt, &term.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("exam term not found")
		}
		return nil, fmt.Errorf("error getting exam term by ID: %w", err)
	}

	return term, nil
}

// ListTermsByPeriod retrieves all exams of one period ordered by date.
func (r *ExamRepository) ListTermsByPeriod(ctx context.Context, tenantID, periodID int64) ([]*models.ExamTerm, error) {
	sql, args, err := r.sb.Select("id", "tenant_id", "exam_period_id", "course_offering_id", "date", "created_at", "updated_at").
		From("exam_terms").
		Where(squirrel.Eq{"tenant_id": tenantID, "exam_period_id": periodID}).
		OrderBy("date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list exam terms query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying exam terms: %w", err)
	}
	defer rows.Close()

	var terms []*models.ExamTerm
	for rows.Next() {
		term := &models.ExamTerm{}
		err := rows.Scan(&term.ID, &term.TenantID, &term.ExamPeriodID,
			&term.CourseOfferingID, &term.Date, &term.CreatedAt, &term.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning exam term row: %w", err)
		}
		terms = append(terms, term)
	}

	return terms, rows.Err()
}

// UpdateTerm reschedules an exam.
func (r *ExamRepository) UpdateTerm(ctx context.Context, term *models.ExamTerm) error {
	sql, args, err := r.sb.Update("exam_terms").
		Set("date", term.Date).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": term.ID, "tenant_id": term.TenantID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update exam term query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating exam term: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("exam term not found")
	}

	return nil
}

// DeleteTerm removes a scheduled exam within a tenant.
func (r *ExamRepository) DeleteTerm(ctx context.Context, tenantID, id int64) error {
	sql, args, err := r.sb.Delete("exam_terms").
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete exam term query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting exam term: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("exam term not found")
	}

	return nil
}
