package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campuscore/campuscore/internal/app/models"
	"github.com/campuscore/campuscore/internal/pkg/apperrors"
)

// TicketRepository handles support ticket database operations
type TicketRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewTicketRepository creates a new TicketRepository
func NewTicketRepository(db *pgxpool.Pool) *TicketRepository {
	return &TicketRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateTicket inserts a new ticket.
func (r *TicketRepository) CreateTicket(ctx context.Context, ticket *models.Ticket) (int64, error) {
	sql, args, err := r.sb.Insert("tickets").
		Columns("tenant_id", "created_by", "subject", "description", "status", "is_priority").
		Values(ticket.TenantID, ticket.CreatedByID, ticket.Subject, ticket.Description, ticket.Status, ticket.IsPriority).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create ticket query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&ticket.ID, &ticket.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("error creating ticket: %w", err)
	}

	return ticket.ID, nil
}

// GetTicketByID retrieves a ticket by ID.
func (r *TicketRepository) GetTicketByID(ctx context.Context, id int64) (*models.Ticket, error) {
	sql, args, err := r.sb.Select("id", "tenant_id", "created_by", "subject", "description", "status", "is_priority", "created_at").
		From("tickets").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get ticket query: %w", err)
	}

	ticket := &models.Ticket{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&ticket.ID, &ticket.TenantID, &ticket.CreatedByID, &ticket.Subject,
		&ticket.Description, &ticket.Status, &ticket.IsPriority, &ticket.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTicketNotFound
		}
		return nil, fmt.Errorf("error getting ticket by ID: %w", err)
	}

	return ticket, nil
}

// GetLastTicketTime returns when the user last submitted a ticket; the zero
// time when they never have.
func (r *TicketRepository) GetLastTicketTime(ctx context.Context, userID int64) (time.Time, error) {
	sql, args, err := r.sb.Select("created_at").
		From("tickets").
		Where(squirrel.Eq{"created_by": userID}).
		OrderBy("created_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to build last ticket query: %w", err)
	}

	var last time.Time
	err = r.db.QueryRow(ctx, sql, args...).Scan(&last)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return time.Time{}, nil
		}
		return time.Time{}, fmt.Errorf("error getting last ticket time: %w", err)
	}

	return last, nil
}

// TicketFilter narrows ListTickets results.
type TicketFilter struct {
	Status   string
	TenantID *int64
	Offset   int
	Limit    int
}

// ListTickets retrieves tickets joined with tenant and reporter details,
// priority first, with the total count.
func (r *TicketRepository) ListTickets(ctx context.Context, filter TicketFilter) ([]*models.TicketListItem, int, error) {
	base := r.sb.Select().
		From("tickets tk").
		Join("tenants t ON t.id = tk.tenant_id").
		Join("users u ON u.id = tk.created_by")

	if filter.Status != "" {
		base = base.Where(squirrel.Eq{"tk.status": filter.Status})
	}
	if filter.TenantID != nil {
		base = base.Where(squirrel.Eq{"tk.tenant_id": *filter.TenantID})
	}

	countSQL, countArgs, err := base.Columns("COUNT(*)").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count tickets query: %w", err)
	}

	var total int
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting tickets: %w", err)
	}

	listSQL, listArgs, err := base.
		Columns("tk.id", "tk.subject", "tk.status", "tk.is_priority", "tk.created_at",
			"tk.tenant_id", "t.name", "u.first_name || ' ' || u.last_name", "u.email", "u.role").
		OrderBy("tk.is_priority DESC", "tk.created_at DESC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list tickets query: %w", err)
	}

	rows, err := r.db.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("error querying tickets: %w", err)
	}
	defer rows.Close()

	var items []*models.TicketListItem
	for rows.Next() {
		item := &models.TicketListItem{}
		err := rows.Scan(&item.ID, &item.Subject, &item.Status, &item.IsPriority, &item.CreatedAt,
			&item.TenantID, &item.TenantName, &item.ReporterName, &item.ReporterEmail, &item.ReporterRole)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning ticket row: %w", err)
		}
		items = append(items, item)
	}

	return items, total, rows.Err()
}

// UpdateTicketStatus moves a ticket to a new status.
func (r *TicketRepository) UpdateTicketStatus(ctx context.Context, id int64, status models.TicketStatus) error {
	sql, args, err := r.sb.Update("tickets").
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update ticket query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating ticket status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrTicketNotFound
	}

	return nil
}
