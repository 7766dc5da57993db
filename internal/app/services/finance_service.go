package services

import (
	"context"
	"time"

	"github.com/campuscore/campuscore/internal/app/models"
	"github.com/campuscore/campuscore/internal/app/models/dto"
	"github.com/campuscore/campuscore/internal/app/repositories"
	"github.com/campuscore/campuscore/internal/pkg/apperrors"
	"github.com/campuscore/campuscore/internal/pkg/logger"
)

// FinanceService handles tuitions, payments and balances.
type FinanceService struct {
	financeRepo *repositories.FinanceRepository
	studentRepo *repositories.StudentRepository
}

// NewFinanceService creates a new FinanceService
func NewFinanceService(financeRepo *repositories.FinanceRepository, studentRepo *repositories.StudentRepository) *FinanceService {
	return &FinanceService{financeRepo: financeRepo, studentRepo: studentRepo}
}

// CreateTuition defines a named fee for the scoped tenant.
func (s *FinanceService) CreateTuition(ctx context.Context, identity Identity, tenantID *int64, req dto.CreateTuitionRequest) (*models.Tuition, error) {
	scope, err := ResolveTenantScope(identity, tenantID)
	if err != nil {
		return nil, err
	}

	tuition := &models.Tuition{
		TenantID: scope,
		Name:     req.Name,
		Amount:   req.Amount,
	}

	if _, err := s.financeRepo.CreateTuition(ctx, tuition); err != nil {
		return nil, err
	}

	return tuition, nil
}

// ListTuitions retrieves the scoped tenant's tuitions.
func (s *FinanceService) ListTuitions(ctx context.Context, identity Identity, tenantID *int64) ([]*models.Tuition, error) {
	scope, err := ResolveTenantScope(identity, tenantID)
	if err != nil {
		return nil, err
	}
	return s.financeRepo.ListTuitions(ctx, scope)
}

// UpdateTuition applies a partial update to a tuition.
func (s *FinanceService) UpdateTuition(ctx context.Context, identity Identity, tenantID *int64, id int64, req dto.UpdateTuitionRequest) (*models.Tuition, error) {
	scope, err := ResolveTenantScope(identity, tenantID)
	if err != nil {
		return nil, err
	}

	tuition, err := s.financeRepo.GetTuitionByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		tuition.Name = *req.Name
	}
	if req.Amount != nil {
		tuition.Amount = *req.Amount
	}

	if err := s.financeRepo.UpdateTuition(ctx, tuition); err != nil {
		return nil, err
	}

	return tuition, nil
}

// DeleteTuition removes a tuition of the scoped tenant.
func (s *FinanceService) DeleteTuition(ctx context.Context, identity Identity, tenantID *int64, id int64) error {
	scope, err := ResolveTenantScope(identity, tenantID)
	if err != nil {
		return err
	}
	return s.financeRepo.DeleteTuition(ctx, scope, id)
}

// RecordPayment records a student paying toward a tuition. The student must be
// enrolled and the tuition defined in the scoped tenant.
func (s *FinanceService) RecordPayment(ctx context.Context, identity Identity, tenantID *int64, req dto.RecordPaymentRequest) (*models.Payment, error) {
	scope, err := ResolveTenantScope(identity, tenantID)
	if err != nil {
		return nil, err
	}

	if _, err := s.studentRepo.GetEnrollment(ctx, req.StudentID, scope); err != nil {
		return nil, apperrors.ErrStudentNotFound
	}
	if _, err := s.financeRepo.GetTuitionByID(ctx, scope, req.TuitionID); err != nil {
		return nil, err
	}

	paidAt := time.Now()
	if req.PaidAt != nil {
		paidAt = *req.PaidAt
	}

	payment := &models.Payment{
		TenantID:  scope,
		StudentID: req.StudentID,
		TuitionID: req.TuitionID,
		Amount:    req.Amount,
		PaidAt:    paidAt,
	}

	if _, err := s.financeRepo.CreatePayment(ctx, payment); err != nil {
		return nil, err
	}

	logger.Info().
		Int64("studentID", req.StudentID).
		Int64("tuitionID", req.TuitionID).
		Int64("amount", req.Amount).
		Msg("Payment recorded")

	return payment, nil
}

// ListPayments retrieves a student's payments within the scoped tenant.
func (s *FinanceService) ListPayments(ctx context.Context, identity Identity, tenantID *int64, studentID int64) ([]*models.Payment, error) {
	scope, err := ResolveTenantScope(identity, tenantID)
	if err != nil {
		return nil, err
	}
	return s.financeRepo.ListPaymentsByStudent(ctx, scope, studentID)
}

// GetBalance summarizes a student's standing against one tuition.
func (s *FinanceService) GetBalance(ctx context.Context, identity Identity, tenantID *int64, studentID, tuitionID int64) (*dto.StudentBalanceResponse, error) {
	scope, err := ResolveTenantScope(identity, tenantID)
	if err != nil {
		return nil, err
	}

	tuition, err := s.financeRepo.GetTuitionByID(ctx, scope, tuitionID)
	if err != nil {
		return nil, err
	}

	paid, err := s.financeRepo.SumPayments(ctx, scope, studentID, tuitionID)
	if err != nil {
		return nil, err
	}

	return &dto.StudentBalanceResponse{
		StudentID: studentID,
		TuitionID: tuitionID,
		Owed:      tuition.Amount,
		Paid:      paid,
		Balance:   tuition.Amount - paid,
	}, nil
}
