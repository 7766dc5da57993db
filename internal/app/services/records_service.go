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

// RecordsService handles transcript generation and retrieval.
type RecordsService struct {
	transcriptRepo *repositories.TranscriptRepository
	studentRepo    *repositories.StudentRepository
}

// NewRecordsService creates a new RecordsService
func NewRecordsService(transcriptRepo *repositories.TranscriptRepository, studentRepo *repositories.StudentRepository) *RecordsService {
	return &RecordsService{transcriptRepo: transcriptRepo, studentRepo: studentRepo}
}

// GenerateTranscript snapshots the student's record in the scoped tenant.
func (s *RecordsService) GenerateTranscript(ctx context.Context, identity Identity, tenantID *int64, req dto.GenerateTranscriptRequest) (*models.Transcript, error) {
	scope, err := ResolveTenantScope(identity, tenantID)
	if err != nil {
		return nil, err
	}

	if _, err := s.studentRepo.GetEnrollment(ctx, req.StudentID, scope); err != nil {
		return nil, apperrors.ErrStudentNotFound
	}

	transcript := &models.Transcript{
		TenantID:    scope,
		StudentID:   req.StudentID,
		GeneratedAt: time.Now(),
		GPA:         req.GPA,
	}

	if _, err := s.transcriptRepo.CreateTranscript(ctx, transcript); err != nil {
		return nil, err
	}

	logger.Info().
		Int64("studentID", req.StudentID).
		Int64("tenantID", scope).
		Msg("Transcript generated")

	return transcript, nil
}

// GetTranscript retrieves one transcript of the scoped tenant.
func (s *RecordsService) GetTranscript(ctx context.Context, identity Identity, tenantID *int64, id int64) (*models.Transcript, error) {
	scope, err := ResolveTenantScope(identity, tenantID)
	if err != nil {
		return nil, err
	}
	return s.transcriptRepo.GetTranscriptByID(ctx, scope, id)
}

// ListTranscripts retrieves a student's transcripts within the scoped tenant,
// newest first.
func (s *RecordsService) ListTranscripts(ctx context.Context, identity Identity, tenantID *int64, studentID int64) ([]*models.Transcript, error) {
	scope, err := ResolveTenantScope(identity, tenantID)
	if err != nil {
		return nil, err
	}
	return s.transcriptRepo.ListTranscriptsByStudent(ctx, scope, studentID)
}
