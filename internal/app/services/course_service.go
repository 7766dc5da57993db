package services

import (
	"context"

	"github.com/campuscore/campuscore/internal/app/models"
	"github.com/campuscore/campuscore/internal/app/models/dto"
	"github.com/campuscore/campuscore/internal/app/repositories"
	"github.com/campuscore/campuscore/internal/pkg/apperrors"
)

// CourseService handles courses and course offerings.
type CourseService struct {
	courseRepo  *repositories.CourseRepository
	programRepo *repositories.ProgramRepository
}

// NewCourseService creates a new CourseService
func NewCourseService(courseRepo *repositories.CourseRepository, programRepo *repositories.ProgramRepository) *CourseService {
	return &CourseService{courseRepo: courseRepo, programRepo: programRepo}
}

// CreateCourse defines a new course, optionally attached to one of the
// tenant's programs.
func (s *CourseService) CreateCourse(ctx context.Context, identity Identity, tenantID *int64, req dto.CreateCourseRequest) (*models.Course, error) {
	scope, err := ResolveTenantScope(identity, tenantID)
	if err != nil {
		return nil, err
	}

	if req.ProgramID != nil {
		if _, err := s.programRepo.GetProgramByID(ctx, scope, *req.ProgramID); err != nil {
			return nil, err
		}
	}

	course := &models.Course{
		TenantID:    scope,
		Name:        req.Name,
		Code:        req.Code,
		ProgramID:   req.ProgramID,
		ProfessorID: req.ProfessorID,
	}

	if _, err := s.courseRepo.CreateCourse(ctx, course); err != nil {
		return nil, err
	}

	return course, nil
}

// GetCourse retrieves one course of the scoped tenant.
func (s *CourseService) GetCourse(ctx context.Context, identity Identity, tenantID *int64, id int64) (*models.Course, error) {
	scope, err := ResolveTenantScope(identity, tenantID)
	if err != nil {
		return nil, err
	}
	return s.courseRepo.GetCourseByID(ctx, scope, id)
}

// ListCourses retrieves all courses of the scoped tenant.
func (s *CourseService) ListCourses(ctx context.Context, identity Identity, tenantID *int64) ([]*models.Course, error) {
	scope, err := ResolveTenantScope(identity, tenantID)
	if err != nil {
		return nil, err
	}
	return s.courseRepo.ListCourses(ctx, scope)
}

// UpdateCourse applies a partial update to a course.
func (s *CourseService) UpdateCourse(ctx context.Context, identity Identity, tenantID *int64, id int64, req dto.UpdateCourseRequest) (*models.Course, error) {
	scope, err := ResolveTenantScope(identity, tenantID)
	if err != nil {
		return nil, err
	}

	course, err := s.courseRepo.GetCourseByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		course.Name = *req.Name
	}
	if req.Code != nil {
		course.Code = *req.Code
	}
	if req.ProgramID != nil {
		if _, err := s.programRepo.GetProgramByID(ctx, scope, *req.ProgramID); err != nil {
			return nil, err
		}
		course.ProgramID = req.ProgramID
	}
	if req.ProfessorID != nil {
		course.ProfessorID = req.ProfessorID
	}

	if err := s.courseRepo.UpdateCourse(ctx, course); err != nil {
		return nil, err
	}

	return course, nil
}

// DeleteCourse removes a course of the scoped tenant.
func (s *CourseService) DeleteCourse(ctx context.Context, identity Identity, tenantID *int64, id int64) error {
	scope, err := ResolveTenantScope(identity, tenantID)
	if err != nil {
		return err
	}
	return s.courseRepo.DeleteCourse(ctx, scope, id)
}

// CreateOffering schedules one run of a course in a year and term.
func (s *CourseService) CreateOffering(ctx context.Context, identity Identity, tenantID *int64, req dto.CreateOfferingRequest) (*models.CourseOffering, error) {
	scope, err := ResolveTenantScope(identity, tenantID)
	if err != nil {
		return nil, err
	}

	if !models.ValidTerm(req.Term) {
		return nil, apperrors.NewBadRequestError("unknown term: " + req.Term)
	}

	// The course must belong to the same tenant.
	if _, err := s.courseRepo.GetCourseByID(ctx, scope, req.CourseID); err != nil {
		return nil, err
	}

	offering := &models.CourseOffering{
		TenantID: scope,
		CourseID: req.CourseID,
		Year:     req.Year,
		Term:     models.Term(req.Term),
	}

	if _, err := s.courseRepo.CreateOffering(ctx, offering); err != nil {
		return nil, err
	}

	return offering, nil
}

// ListOfferings retrieves the scoped tenant's offerings, optionally filtered
// by year and term.
func (s *CourseService) ListOfferings(ctx context.Context, identity Identity, tenantID *int64, year int, term string) ([]*models.CourseOffering, error) {
	scope, err := ResolveTenantScope(identity, tenantID)
	if err != nil {
		return nil, err
	}

	if term != "" && !models.ValidTerm(term) {
		return nil, apperrors.NewBadRequestError("unknown term: " + term)
	}

	return s.courseRepo.ListOfferings(ctx, scope, year, term)
}

// DeleteOffering removes a course offering of the scoped tenant.
func (s *CourseService) DeleteOffering(ctx context.Context, identity Identity, tenantID *int64, id int64) error {
	scope, err := ResolveTenantScope(identity, tenantID)
	if err != nil {
		return err
	}
	return s.courseRepo.DeleteOffering(ctx, scope, id)
}
