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

// TranscriptRepository handles transcript database operations
type TranscriptRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewTranscriptRepository creates a new TranscriptRepository
func NewTranscriptRepository(db *pgxpool.Pool) *TranscriptRepository {
	return &TranscriptRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateTranscript records a generated transcript snapshot.
func (r *TranscriptRepository) CreateTranscript(ctx context.Context, transcript *models.Transcript) (int64, error) {
	sql, args, err := r.sb.Insert("transcripts").
		Columns("tenant_id", "student_id", "generated_at", "gpa").
		Values(transcript.TenantID, transcript.StudentID, transcript.GeneratedAt, transcript.GPA).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create transcript query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&transcript.ID, &transcript.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("error creating transcript: %w", err)
	}

	return transcript.ID, nil
}

// GetTranscriptByID retrieves a transcript within a tenant.
func (r *TranscriptRepository) GetTranscriptByID(ctx context.Context, tenantID, id int64) (*models.Transcript, error) {
	sql, args, err := r.sb.Select("id", "tenant_id", "student_id", "generated_at", "gpa", "created_at").
		From("transcripts").
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get transcript query: %w", err)
	}

	transcript := &models.Transcript{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&transcript.ID, &transcript.TenantID, &transcript.StudentID,
		&transcript.GeneratedAt, &transcript.GPA, &transcript.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTranscriptNotFound
		}
		return nil, fmt.Errorf("error getting transcript by ID: %w", err)
	}

	return transcript, nil
}

// ListTranscriptsByStudent retrieves a student's transcripts within a tenant,
// newest first.
func (r *TranscriptRepository) ListTranscriptsByStudent(ctx context.Context, tenantID, studentID int64) ([]*models.Transcript, error) {
	sql, args, err := r.sb.Select("id", "tenant_id", "student_id", "generated_at", "gpa", "created_at").
		From("transcripts").
		Where(squirrel.Eq{"tenant_id": tenantID, "student_id": studentID}).
		OrderBy("generated_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list transcripts query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying transcripts: %w", err)
	}
	defer rows.Close()

	var transcripts []*models.Transcript
	for rows.Next() {
		transcript := &models.Transcript{}
		err := rows.Scan(&transcript.ID, &transcript.TenantID, &transcript.StudentID,
			&transcript.GeneratedAt, &transcript.GPA, &transcript.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning transcript row: %w", err)
		}
		transcripts = append(transcripts, transcript)
	}

	return transcripts, rows.Err()
}
