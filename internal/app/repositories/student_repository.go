package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campuscore/campuscore/internal/app/models"
	"github.com/campuscore/campuscore/internal/db"
	"github.com/campuscore/campuscore/internal/pkg/apperrors"
	"github.com/campuscore/campuscore/internal/pkg/dberrors"
	"github.com/campuscore/campuscore/internal/pkg/logger"
)

// StudentRepository handles student and enrollment database operations
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateStudentWithEnrollment inserts the person and their first enrollment
// atomically. A duplicate index number within the tenant rolls everything back.
func (r *StudentRepository) CreateStudentWithEnrollment(ctx context.Context, student *models.Student, enrollment *models.Enrollment) error {
	return db.WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx,
			`INSERT INTO students (first_name, last_name, status)
			 VALUES ($1, $2, $3)
			 RETURNING id, created_at, updated_at`,
			student.FirstName, student.LastName, student.Status,
		).Scan(&student.ID, &student.CreatedAt, &student.UpdatedAt)
		if err != nil {
			return fmt.Errorf("error creating student: %w", err)
		}

		enrollment.StudentID = student.ID
		err = tx.QueryRow(ctx,
			`INSERT INTO enrollments (student_id, tenant_id, index_number, program_id)
			 VALUES ($1, $2, $3, $4)
			 RETURNING id, created_at, updated_at`,
			enrollment.StudentID, enrollment.TenantID, enrollment.IndexNumber, enrollment.ProgramID,
		).Scan(&enrollment.ID, &enrollment.CreatedAt, &enrollment.UpdatedAt)
		if err != nil {
			if dberrors.IsUniqueViolation(err) {
				return apperrors.ErrIndexNumberExists
			}
			return fmt.Errorf("error creating enrollment: %w", err)
		}

		return nil
	})
}

// GetStudentByID retrieves a student person record by ID
func (r *StudentRepository) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	sql, args, err := r.sb.Select("id", "first_name", "last_name", "status", "created_at", "updated_at").
		From("students").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student := &models.Student{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&student.ID, &student.FirstName, &student.LastName, &student.Status,
		&student.CreatedAt, &student.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Int64("studentID", id).Msg("Error scanning student row")
		return nil, fmt.Errorf("error getting student by ID: %w", err)
	}

	return student, nil
}

// StudentFilter narrows ListStudents results.
type StudentFilter struct {
	TenantID int64
	Status   string
	Search   string
	Offset   int
	Limit    int
}

// ListStudents retrieves a tenant's enrolled students with the total count.
func (r *StudentRepository) ListStudents(ctx context.Context, filter StudentFilter) ([]*models.StudentListItem, int, error) {
	base := r.sb.Select().
		From("enrollments e").
		Join("students s ON s.id = e.student_id").
		Join("tenants t ON t.id = e.tenant_id").
		Where(squirrel.Eq{"e.tenant_id": filter.TenantID})

	if filter.Status != "" {
		base = base.Where(squirrel.Eq{"s.status": filter.Status})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		base = base.Where(squirrel.Or{
			squirrel.ILike{"s.first_name": pattern},
			squirrel.ILike{"s.last_name": pattern},
			squirrel.ILike{"e.index_number": pattern},
		})
	}

	countSQL, countArgs, err := base.Columns("COUNT(*)").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count students query: %w", err)
	}

	var total int
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting students: %w", err)
	}

	listSQL, listArgs, err := base.
		Columns("e.id", "s.id", "e.tenant_id", "e.index_number",
			"s.first_name", "s.last_name", "s.status", "t.name", "e.program_id").
		OrderBy("e.index_number ASC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list students query: %w", err)
	}

	rows, err := r.db.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	var items []*models.StudentListItem
	for rows.Next() {
		item := &models.StudentListItem{}
		err := rows.Scan(
			&item.EnrollmentID, &item.StudentID, &item.TenantID, &item.IndexNumber,
			&item.FirstName, &item.LastName, &item.Status, &item.TenantName, &item.ProgramID,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning student row: %w", err)
		}
		items = append(items, item)
	}

	return items, total, rows.Err()
}

// GetEnrollments retrieves all enrollments of a student, with tenant names.
func (r *StudentRepository) GetEnrollments(ctx context.Context, studentID int64) ([]*models.Enrollment, map[int64]string, error) {
	sql, args, err := r.sb.Select("e.id", "e.student_id", "e.tenant_id", "e.index_number",
		"e.program_id", "e.created_at", "e.updated_at", "t.name").
		From("enrollments e").
		Join("tenants t ON t.id = e.tenant_id").
		Where(squirrel.Eq{"e.student_id": studentID}).
		OrderBy("e.created_at ASC").
		ToSql()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build get enrollments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("error querying enrollments: %w", err)
	}
	defer rows.Close()

	var enrollments []*models.Enrollment
	tenantNames := make(map[int64]string)
	for rows.Next() {
		e := &models.Enrollment{}
		var tenantName string
		err := rows.Scan(&e.ID, &e.StudentID, &e.TenantID, &e.IndexNumber,
			&e.ProgramID, &e.CreatedAt, &e.UpdatedAt, &tenantName)
		if err != nil {
			return nil, nil, fmt.Errorf("error scanning enrollment row: %w", err)
		}
		tenantNames[e.TenantID] = tenantName
		enrollments = append(enrollments, e)
	}

	return enrollments, tenantNames, rows.Err()
}

// GetEnrollment retrieves one enrollment of a student within a tenant.
func (r *StudentRepository) GetEnrollment(ctx context.Context, studentID, tenantID int64) (*models.Enrollment, error) {
	sql, args, err := r.sb.Select("id", "student_id", "tenant_id", "index_number",
		"program_id", "created_at", "updated_at").
		From("enrollments").
		Where(squirrel.Eq{"student_id": studentID, "tenant_id": tenantID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get enrollment query: %w", err)
	}

	e := &models.Enrollment{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&e.ID, &e.StudentID, &e.TenantID, &e.IndexNumber, &e.ProgramID, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("error getting enrollment: %w", err)
	}

	return e, nil
}

// CreateEnrollment enrolls an existing student into a tenant.
func (r *StudentRepository) CreateEnrollment(ctx context.Context, enrollment *models.Enrollment) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO enrollments (student_id, tenant_id, index_number, program_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		enrollment.StudentID, enrollment.TenantID, enrollment.IndexNumber, enrollment.ProgramID,
	).Scan(&enrollment.ID, &enrollment.CreatedAt, &enrollment.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "enrollments_student_id_tenant_id_key") {
			return apperrors.ErrAlreadyEnrolled
		}
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrIndexNumberExists
		}
		return fmt.Errorf("error creating enrollment: %w", err)
	}
	return nil
}

// UpdateStudent persists the mutable person fields.
func (r *StudentRepository) UpdateStudent(ctx context.Context, student *models.Student) error {
	sql, args, err := r.sb.Update("students").
		Set("first_name", student.FirstName).
		Set("last_name", student.LastName).
		Set("status", student.Status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": student.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update student query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", student.ID).Msg("Error updating student")
		return fmt.Errorf("error updating student: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// UpdateEnrollment persists the mutable fields of one enrollment.
func (r *StudentRepository) UpdateEnrollment(ctx context.Context, enrollment *models.Enrollment) error {
	sql, args, err := r.sb.Update("enrollments").
		Set("index_number", enrollment.IndexNumber).
		Set("program_id", enrollment.ProgramID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": enrollment.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update enrollment query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrIndexNumberExists
		}
		return fmt.Errorf("error updating enrollment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrEnrollmentNotFound
	}

	return nil
}

// DeleteEnrollment removes a student's enrollment in a tenant. The person
// record stays; other tenants' enrollments are untouched.
func (r *StudentRepository) DeleteEnrollment(ctx context.Context, studentID, tenantID int64) error {
	tag, err := r.db.Exec(ctx,
		"DELETE FROM enrollments WHERE student_id = $1 AND tenant_id = $2",
		studentID, tenantID)
	if err != nil {
		return fmt.Errorf("error deleting enrollment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrEnrollmentNotFound
	}
	return nil
}
