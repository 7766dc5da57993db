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

// CourseRepository handles course and course offering database operations
type CourseRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateCourse inserts a new course.
func (r *CourseRepository) CreateCourse(ctx context.Context, course *models.Course) (int64, error) {
	sql, args, err := r.sb.Insert("courses").
		Columns("tenant_id", "name", "code", "program_id", "professor_id").
		Values(course.TenantID, course.Name, course.Code, course.ProgramID, course.ProfessorID).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create course query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&course.ID, &course.CreatedAt, &course.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.NewConflictError("course with this code already exists")
		}
		return 0, fmt.Errorf("error creating course: %w", err)
	}

	return course.ID, nil
}

// GetCourseByID retrieves a course within a tenant.
func (r *CourseRepository) GetCourseByID(ctx context.Context, tenantID, id int64) (*models.Course, error) {
	sql, args, err := r.sb.Select("id", "tenant_id", "name", "code", "program_id", "professor_id", "created_at", "updated_at").
		From("courses").
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get course query: %w", err)
	}

	course := &models.Course{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&course.ID, &course.TenantID, &course.Name, &course.Code,
		&course.ProgramID, &course.ProfessorID, &course.CreatedAt, &course.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error getting course by ID: %w", err)
	}

	return course, nil
}

// ListCourses retrieves all courses of a tenant ordered by code.
func (r *CourseRepository) ListCourses(ctx context.Context, tenantID int64) ([]*models.Course, error) {
	sql, args, err := r.sb.Select("id", "tenant_id", "name", "code", "program_id", "professor_id", "created_at", "updated_at").
		From("courses").
		Where(squirrel.Eq{"tenant_id": tenantID}).
		OrderBy("code ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying courses: %w", err)
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		course := &models.Course{}
		err := rows.Scan(&course.ID, &course.TenantID, &course.Name, &course.Code,
			&course.ProgramID, &course.ProfessorID, &course.CreatedAt, &course.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning course row: %w", err)
		}
		courses = append(courses, course)
	}

	return courses, rows.Err()
}

// UpdateCourse persists the mutable fields of a course.
func (r *CourseRepository) UpdateCourse(ctx context.Context, course *models.Course) error {
	sql, args, err := r.sb.Update("courses").
		Set("name", course.Name).
		Set("code", course.Code).
		Set("program_id", course.ProgramID).
		Set("professor_id", course.ProfessorID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": course.ID, "tenant_id": course.TenantID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update course query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewConflictError("course with this code already exists")
		}
		return fmt.Errorf("error updating course: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// DeleteCourse removes a course within a tenant.
func (r *CourseRepository) DeleteCourse(ctx context.Context, tenantID, id int64) error {
	sql, args, err := r.sb.Delete("courses").
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete course query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// CreateOffering schedules one run of a course.
func (r *CourseRepository) CreateOffering(ctx context.Context, offering *models.CourseOffering) (int64, error) {
	sql, args, err := r.sb.Insert("course_offerings").
		Columns("tenant_id", "course_id", "year", "term").
		Values(offering.TenantID, offering.CourseID, offering.Year, offering.Term).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create offering query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&offering.ID, &offering.CreatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.NewConflictError("course is already offered in this year and term")
		}
		return 0, fmt.Errorf("error creating offering: %w", err)
	}

	return offering.ID, nil
}

// GetOfferingByID retrieves a course offering within a tenant.
func (r *CourseRepository) GetOfferingByID(ctx context.Context, tenantID, id int64) (*models.CourseOffering, error) {
	sql, args, err := r.sb.Select("id", "tenant_id", "course_id", "year", "term", "created_at").
		From("course_offerings").
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get offering query: %w", err)
	}

	offering := &models.CourseOffering{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&offering.ID, &offering.TenantID, &offering.CourseID,
		&offering.Year, &offering.Term, &offering.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrOfferingNotFound
		}
		return nil, fmt.Errorf("error getting offering by ID: %w", err)
	}

	return offering, nil
}

// ListOfferings retrieves a tenant's course offerings, optionally filtered by
// year and term.
func (r *CourseRepository) ListOfferings(ctx context.Context, tenantID int64, year int, term string) ([]*models.CourseOffering, error) {
	base := r.sb.Select("id", "tenant_id", "course_id", "year", "term", "created_at").
		From("course_offerings").
		Where(squirrel.Eq{"tenant_id": tenantID})

	if year > 0 {
		base = base.Where(squirrel.Eq{"year": year})
	}
	if term != "" {
		base = base.Where(squirrel.Eq{"term": term})
	}

	sql, args, err := base.OrderBy("year DESC", "term ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list offerings query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying offerings: %w", err)
	}
	defer rows.Close()

	var offerings []*models.CourseOffering
	for rows.Next() {
		offering := &models.CourseOffering{}
		err := rows.Scan(&offering.ID, &offering.TenantID, &offering.CourseID,
			&offering.Year, &offering.Term, &offering.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning offering row: %w", err)
		}
		offerings = append(offerings, offering)
	}

	return offerings, rows.Err()
}

// DeleteOffering removes a course offering within a tenant.
func (r *CourseRepository) DeleteOffering(ctx context.Context, tenantID, id int64) error {
	sql, args, err := r.sb.Delete("course_offerings").
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete offering query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting offering: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrOfferingNotFound
	}

	return nil
}
