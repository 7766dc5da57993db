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
)

// FinanceRepository handles tuition and payment database operations
type FinanceRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewFinanceRepository creates a new FinanceRepository
func NewFinanceRepository(db *pgxpool.Pool) *FinanceRepository {
	return &FinanceRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateTuition inserts a new tuition fee.
func (r *FinanceRepository) CreateTuition(ctx context.Context, tuition *models.Tuition) (int64, error) {
	sql, args, err := r.sb.Insert("tuitions").
		Columns("tenant_id", "name", "amount").
		Values(tuition.TenantID, tuition.Name, tuition.Amount).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create tuition query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&tuition.ID, &tuition.CreatedAt, &tuition.UpdatedAt)
	if err != nil {
		return 0, fmt.Errorf("error creating tuition: %w", err)
	}

	return tuition.ID, nil
}

// GetTuitionByID retrieves a tuition within a tenant.
func (r *FinanceRepository) GetTuitionByID(ctx context.Context, tenantID, id int64) (*models.Tuition, error) {
	sql, args, err := r.sb.Select("id", "tenant_id", "name", "amount", "created_at", "updated_at").
		From("tuitions").
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get tuition query: %w", err)
	}

	tuition := &models.Tuition{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&tuition.ID, &tuition.TenantID, &tuition.Name, &tuition.Amount,
		&tuition.CreatedAt, &tuition.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTuitionNotFound
		}
		return nil, fmt.Errorf("error getting tuition by ID: %w", err)
	}

	return tuition, nil
}

// ListTuitions retrieves all tuitions of a tenant.
func (r *FinanceRepository) ListTuitions(ctx context.Context, tenantID int64) ([]*models.Tuition, error) {
	sql, args, err := r.sb.Select("id", "tenant_id", "name", "amount", "created_at", "updated_at").
		From("tuitions").
		Where(squirrel.Eq{"tenant_id": tenantID}).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list tuitions query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying tuitions: %w", err)
	}
	defer rows.Close()

	var tuitions []*models.Tuition
	for rows.Next() {
		tuition := &models.Tuition{}
		err := rows.Scan(&tuition.ID, &tuition.TenantID, &tuition.Name, &tuition.Amount,
			&tuition.CreatedAt, &tuition.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning tuition row: %w", err)
		}
		tuitions = append(tuitions, tuition)
	}

	return tuitions, rows.Err()
}

// UpdateTuition persists the mutable fields of a tuition.
func (r *FinanceRepository) UpdateTuition(ctx context.Context, tuition *models.Tuition) error {
	sql, args, err := r.sb.Update("tuitions").
		Set("name", tuition.Name).
		Set("amount", tuition.Amount).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": tuition.ID, "tenant_id": tuition.TenantID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update tuition query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating tuition: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrTuitionNotFound
	}

	return nil
}

// DeleteTuition removes a tuition within a tenant.
func (r *FinanceRepository) DeleteTuition(ctx context.Context, tenantID, id int64) error {
	sql, args, err := r.sb.Delete("tuitions").
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete tuition query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting tuition: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrTuitionNotFound
	}

	return nil
}

// CreatePayment records a payment.
func (r *FinanceRepository) CreatePayment(ctx context.Context, payment *models.Payment) (int64, error) {
	sql, args, err := r.sb.Insert("payments").
		Columns("tenant_id", "student_id", "tuition_id", "amount", "paid_at").
		Values(payment.TenantID, payment.StudentID, payment.TuitionID, payment.Amount, payment.PaidAt).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create payment query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&payment.ID, &payment.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("error creating payment: %w", err)
	}

	return payment.ID, nil
}

// ListPaymentsByStudent retrieves a student's payments within a tenant, newest
// first.
func (r *FinanceRepository) ListPaymentsByStudent(ctx context.Context, tenantID, studentID int64) ([]*models.Payment, error) {
	sql, args, err := r.sb.Select("id", "tenant_id", "student_id", "tuition_id", "amount", "paid_at", "created_at").
		From("payments").
		Where(squirrel.Eq{"tenant_id": tenantID, "student_id": studentID}).
		OrderBy("paid_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list payments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying payments: %w", err)
	}
	defer rows.Close()

	var payments []*models.Payment
	for rows.Next() {
		payment := &models.Payment{}
		err := rows.Scan(&payment.ID, &payment.TenantID, &payment.StudentID,
			&payment.TuitionID, &payment.Amount, &payment.PaidAt, &payment.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning payment row: %w", err)
		}
		payments = append(payments, payment)
	}

	return payments, rows.Err()
}

// SumPayments returns the total amount a student has paid toward a tuition.
func (r *FinanceRepository) SumPayments(ctx context.Context, tenantID, studentID, tuitionID int64) (int64, error) {
	sql, args, err := r.sb.Select("COALESCE(SUM(amount), 0)").
		From("payments").
		Where(squirrel.Eq{"tenant_id": tenantID, "student_id": studentID, "tuition_id": tuitionID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build sum payments query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("error summing payments: %w", err)
	}

	return total, nil
}
