package services

import (
	"context"

	"github.com/campuscore/campuscore/internal/app/models"
	"github.com/campuscore/campuscore/internal/app/models/dto"
	"github.com/campuscore/campuscore/internal/app/repositories"
	"github.com/campuscore/campuscore/internal/pkg/apperrors"
	"github.com/campuscore/campuscore/internal/pkg/helpers"
	"github.com/campuscore/campuscore/internal/pkg/logger"
)

// StudentRepository is the store surface the student service needs.
type StudentRepository interface {
	CreateStudentWithEnrollment(ctx context.Context, student *models.Student, enrollment *models.Enrollment) error
	GetStudentByID(ctx context.Context, id int64) (*models.Student, error)
	ListStudents(ctx context.Context, filter repositories.StudentFilter) ([]*models.StudentListItem, int, error)
	GetEnrollments(ctx context.Context, studentID int64) ([]*models.Enrollment, map[int64]string, error)
	GetEnrollment(ctx context.Context, studentID, tenantID int64) (*models.Enrollment, error)
	CreateEnrollment(ctx context.Context, enrollment *models.Enrollment) error
	UpdateStudent(ctx context.Context, student *models.Student) error
	UpdateEnrollment(ctx context.Context, enrollment *models.Enrollment) error
	DeleteEnrollment(ctx context.Context, studentID, tenantID int64) error
}

// StudentService handles student persons and their per-tenant enrollments.
type StudentService struct {
	studentRepo StudentRepository
}

// NewStudentService creates a new StudentService
func NewStudentService(studentRepo StudentRepository) *StudentService {
	return &StudentService{studentRepo: studentRepo}
}

// CreateStudent creates the person and their first enrollment in the acting
// tenant.
func (s *StudentService) CreateStudent(ctx context.Context, identity Identity, tenantID *int64, req dto.CreateStudentRequest) (*dto.StudentDetailResponse, error) {
	scope, err := ResolveTenantScope(identity, tenantID)
	if err != nil {
		return nil, err
	}

	student := &models.Student{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Status:    models.StudentActive,
	}
	enrollment := &models.Enrollment{
		TenantID:    scope,
		IndexNumber: req.IndexNumber,
		ProgramID:   req.ProgramID,
	}

	if err := s.studentRepo.CreateStudentWithEnrollment(ctx, student, enrollment); err != nil {
		return nil, err
	}

	logger.Info().
		Int64("studentID", student.ID).
		Int64("tenantID", scope).
		Str("indexNumber", enrollment.IndexNumber).
		Msg("Student created")

	return &dto.StudentDetailResponse{
		StudentResponse: dto.ToStudentResponse(student),
		Enrollments:     []dto.EnrollmentResponse{dto.ToEnrollmentResponse(enrollment)},
	}, nil
}

// ListStudents lists the enrolled students of the scoped tenant.
func (s *StudentService) ListStudents(ctx context.Context, identity Identity, query dto.ListStudentsQuery) ([]*models.StudentListItem, *dto.PageInfo, error) {
	scope, err := ResolveTenantScope(identity, query.TenantID)
	if err != nil {
		return nil, nil, err
	}

	if query.Status != "" && !models.ValidStudentStatus(query.Status) {
		return nil, nil, apperrors.NewBadRequestError("unknown student status: " + query.Status)
	}

	page, pageSize, offset := helpers.NormalizePagination(query.Page, query.PageSize)

	items, total, err := s.studentRepo.ListStudents(ctx, repositories.StudentFilter{
		TenantID: scope,
		Status:   query.Status,
		Search:   query.Search,
		Offset:   offset,
		Limit:    pageSize,
	})
	if err != nil {
		return nil, nil, err
	}

	paged := dto.NewPagedResponse(nil, page, pageSize, total)
	return items, &paged.PageInfo, nil
}

// GetStudent retrieves a student with their enrollments. School-scoped callers
// must hold an enrollment for the student in their tenant; they see all of the
// student's enrollments once access is established.
func (s *StudentService) GetStudent(ctx context.Context, identity Identity, studentID int64) (*dto.StudentDetailResponse, error) {
	student, err := s.studentRepo.GetStudentByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	enrollments, tenantNames, err := s.studentRepo.GetEnrollments(ctx, studentID)
	if err != nil {
		return nil, err
	}

	if !identity.IsPlatformAdmin() {
		visible := false
		for _, e := range enrollments {
			if e.TenantID == identity.TenantID {
				visible = true
				break
			}
		}
		if !visible {
			return nil, apperrors.ErrStudentNotFound
		}
	}

	resp := &dto.StudentDetailResponse{
		StudentResponse: dto.ToStudentResponse(student),
		Enrollments:     make([]dto.EnrollmentResponse, 0, len(enrollments)),
	}
	for _, e := range enrollments {
		er := dto.ToEnrollmentResponse(e)
		er.TenantName = tenantNames[e.TenantID]
		resp.Enrollments = append(resp.Enrollments, er)
	}

	return resp, nil
}

// requireEnrollment checks that the student is enrolled in the scoped tenant
// before the caller may touch the person record.
func (s *StudentService) requireEnrollment(ctx context.Context, studentID, tenantID int64) error {
	if _, err := s.studentRepo.GetEnrollment(ctx, studentID, tenantID); err != nil {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// UpdateStudent applies a partial update to the person record.
func (s *StudentService) UpdateStudent(ctx context.Context, identity Identity, tenantID *int64, studentID int64, req dto.UpdateStudentRequest) (*dto.StudentResponse, error) {
	scope, err := ResolveTenantScope(identity, tenantID)
	if err != nil {
		return nil, err
	}
	if err := s.requireEnrollment(ctx, studentID, scope); err != nil {
		return nil, err
	}

	student, err := s.studentRepo.GetStudentByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		student.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		student.LastName = *req.LastName
	}
	if req.Status != nil {
		if !models.ValidStudentStatus(*req.Status) {
			return nil, apperrors.NewBadRequestError("unknown student status: " + *req.Status)
		}
		student.Status = models.StudentStatus(*req.Status)
	}

	if err := s.studentRepo.UpdateStudent(ctx, student); err != nil {
		return nil, err
	}

	resp := dto.ToStudentResponse(student)
	return &resp, nil
}

// EnrollStudent enrolls an existing student into the scoped tenant.
func (s *StudentService) EnrollStudent(ctx context.Context, identity Identity, tenantID *int64, req dto.EnrollStudentRequest) (*dto.EnrollmentResponse, error) {
	scope, err := ResolveTenantScope(identity, tenantID)
	if err != nil {
		return nil, err
	}

	if _, err := s.studentRepo.GetStudentByID(ctx, req.StudentID); err != nil {
		return nil, err
	}

	enrollment := &models.Enrollment{
		StudentID:   req.StudentID,
		TenantID:    scope,
		IndexNumber: req.IndexNumber,
		ProgramID:   req.ProgramID,
	}

	if err := s.studentRepo.CreateEnrollment(ctx, enrollment); err != nil {
		return nil, err
	}

	logger.Info().
		Int64("studentID", req.StudentID).
		Int64("tenantID", scope).
		Msg("Student enrolled")

	resp := dto.ToEnrollmentResponse(enrollment)
	return &resp, nil
}

// UpdateEnrollment changes the index number or program of the student's
// enrollment in the scoped tenant.
func (s *StudentService) UpdateEnrollment(ctx context.Context, identity Identity, tenantID *int64, studentID int64, req dto.UpdateEnrollmentRequest) (*dto.EnrollmentResponse, error) {
	scope, err := ResolveTenantScope(identity, tenantID)
	if err != nil {
		return nil, err
	}

	enrollment, err := s.studentRepo.GetEnrollment(ctx, studentID, scope)
	if err != nil {
		return nil, err
	}

	if req.IndexNumber != nil {
		enrollment.IndexNumber = *req.IndexNumber
	}
	if req.ProgramID != nil {
		enrollment.ProgramID = req.ProgramID
	}

	if err := s.studentRepo.UpdateEnrollment(ctx, enrollment); err != nil {
		return nil, err
	}

	resp := dto.ToEnrollmentResponse(enrollment)
	return &resp, nil
}

// RemoveStudent withdraws the student from the scoped tenant. The person
// record and enrollments elsewhere are untouched.
func (s *StudentService) RemoveStudent(ctx context.Context, identity Identity, tenantID *int64, studentID int64) error {
	scope, err := ResolveTenantScope(identity, tenantID)
	if err != nil {
		return err
	}

	if err := s.studentRepo.DeleteEnrollment(ctx, studentID, scope); err != nil {
		return err
	}

	logger.Info().Int64("studentID", studentID).Int64("tenantID", scope).Msg("Student withdrawn")
	return nil
}
