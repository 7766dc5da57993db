package services

import (
	"context"

	"github.com/campuscore/campuscore/internal/app/models"
	"github.com/campuscore/campuscore/internal/app/models/dto"
	"github.com/campuscore/campuscore/internal/app/repositories"
	"github.com/campuscore/campuscore/internal/pkg/apperrors"
)

// ExamService handles exam periods and scheduled exams.
type ExamService struct {
	examRepo   *repositories.ExamRepository
	courseRepo *repositories.CourseRepository
}

// NewExamService creates a new ExamService
func NewExamService(examRepo *repositories.ExamRepository, courseRepo *repositories.CourseRepository) *ExamService {
	return &ExamService{examRepo: examRepo, courseRepo: courseRepo}
}

// CreatePeriod defines a new exam period.
func (s *ExamService) CreatePeriod(ctx context.Context, identity Identity, tenantID *int64, req dto.CreateExamPeriodRequest) (*models.ExamPeriod, error) {
	scope, err := ResolveTenantScope(identity, tenantID)
	if err != nil {
		return nil, err
	}

	if !models.ValidTerm(req.Term) {
		return nil, apperrors.NewBadRequestError("unknown term: " + req.Term)
	}

	period := &models.ExamPeriod{
		TenantID: scope,
		Name:     req.Name,
		Term:     models.Term(req.Term),
		Year:     req.Year,
	}

	if _, err := s.examRepo.CreatePeriod(ctx, period); err != nil {
		return nil, err
	}

	return period, nil
}

// ListPeriods retrieves the scoped tenant's exam periods.
func (s *ExamService) ListPeriods(ctx context.Context, identity Identity, tenantID *int64) ([]*models.ExamPeriod, error) {
	scope, err := ResolveTenantScope(identity, tenantID)
	if err != nil {
		return nil, err
	}
	return s.examRepo.ListPeriods(ctx, scope)
}

// DeletePeriod removes an exam period and everything scheduled in it.
func (s *ExamService) DeletePeriod(ctx context.Context, identity Identity, tenantID *int64, id int64) error {
	scope, err := ResolveTenantScope(identity, tenantID)
	if err != nil {
		return err
	}
	return s.examRepo.DeletePeriod(ctx, scope, id)
}

// ScheduleExam places an exam for a course offering inside a period. Both must
// belong to the scoped tenant.
func (s *ExamService) ScheduleExam(ctx context.Context, identity Identity, tenantID *int64, periodID int64, req dto.CreateExamTermRequest) (*models.ExamTerm, error) {
	scope, err := ResolveTenantScope(identity, tenantID)
	if err != nil {
		return nil, err
	}

	if _, err := s.examRepo.GetPeriodByID(ctx, scope, periodID); err != nil {
		return nil, err
	}
	if _, err := s.courseRepo.GetOfferingByID(ctx, scope, req.CourseOfferingID); err != nil {
		return nil, err
	}

	term := &models.ExamTerm{
		TenantID:         scope,
		ExamPeriodID:     periodID,
		CourseOfferingID: req.CourseOfferingID,
		Date:             req.Date,
	}

	if _, err := s.examRepo.CreateTerm(ctx, term); err != nil {
		return nil, err
	}

	return term, nil
}

// ListExams retrieves the exams of one period ordered by date.
func (s *ExamService) ListExams(ctx context.Context, identity Identity, tenantID *int64, periodID int64) ([]*models.ExamTerm, error) {
	scope, err := ResolveTenantScope(identity, tenantID)
	if err != nil {
		return nil, err
	}

	if _, err := s.examRepo.GetPeriodByID(ctx, scope, periodID); err != nil {
		return nil, err
	}

	return s.examRepo.ListTermsByPeriod(ctx, scope, periodID)
}

// RescheduleExam moves a scheduled exam to a new date.
func (s *ExamService) RescheduleExam(ctx context.Context, identity Identity, tenantID *int64, examID int64, req dto.UpdateExamTermRequest) (*models.ExamTerm, error) {
	scope, err := ResolveTenantScope(identity, tenantID)
	if err != nil {
		return nil, err
	}

	term, err := s.examRepo.GetTermByID(ctx, scope, examID)
	if err != nil {
		return nil, err
	}

	if req.Date != nil {
		term.Date = *req.Date
	}

	if err := s.examRepo.UpdateTerm(ctx, term); err != nil {
		return nil, err
	}

	return term, nil
}

// CancelExam removes a scheduled exam.
func (s *ExamService) CancelExam(ctx context.Context, identity Identity, tenantID *int64, examID int64) error {
	scope, err := ResolveTenantScope(identity, tenantID)
	if err != nil {
		return err
	}
	return s.examRepo.DeleteTerm(ctx, scope, examID)
}
