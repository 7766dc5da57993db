package services

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/campuscore/campuscore/internal/app/models"
	"github.com/campuscore/campuscore/internal/app/models/dto"
	"github.com/campuscore/campuscore/internal/app/repositories"
	"github.com/campuscore/campuscore/internal/pkg/apperrors"
	"github.com/campuscore/campuscore/internal/pkg/helpers"
	"github.com/campuscore/campuscore/internal/pkg/logger"
)

// Ticket submission limits, applied after trimming.
const (
	ticketSubjectMin     = 5
	ticketSubjectMax     = 200
	ticketDescriptionMin = 10
	ticketDescriptionMax = 2000
	ticketCooldown       = 60 * time.Second
)

// TicketRepository is the store surface the ticket service needs.
type TicketRepository interface {
	CreateTicket(ctx context.Context, ticket *models.Ticket) (int64, error)
	GetTicketByID(ctx context.Context, id int64) (*models.Ticket, error)
	GetLastTicketTime(ctx context.Context, userID int64) (time.Time, error)
	ListTickets(ctx context.Context, filter repositories.TicketFilter) ([]*models.TicketListItem, int, error)
	UpdateTicketStatus(ctx context.Context, id int64, status models.TicketStatus) error
}

// TicketService handles support ticket submission and triage.
type TicketService struct {
	ticketRepo TicketRepository
	now        func() time.Time
}

// NewTicketService creates a new TicketService
func NewTicketService(ticketRepo TicketRepository) *TicketService {
	return &TicketService{ticketRepo: ticketRepo, now: time.Now}
}

// CreateTicket submits a ticket for the caller's tenant. One ticket per user
// per minute; school admin reports are flagged priority.
func (s *TicketService) CreateTicket(ctx context.Context, identity Identity, req dto.CreateTicketRequest) (*models.Ticket, error) {
	subject := strings.TrimSpace(req.Subject)
	description := strings.TrimSpace(req.Description)

	if n := utf8.RuneCountInString(subject); n < ticketSubjectMin || n > ticketSubjectMax {
		return nil, apperrors.NewBadRequestError("subject must be between 5 and 200 characters")
	}
	if n := utf8.RuneCountInString(description); n < ticketDescriptionMin || n > ticketDescriptionMax {
		return nil, apperrors.NewBadRequestError("description must be between 10 and 2000 characters")
	}

	last, err := s.ticketRepo.GetLastTicketTime(ctx, identity.UserID)
	if err != nil {
		return nil, err
	}
	if !last.IsZero() && s.now().Sub(last) < ticketCooldown {
		return nil, apperrors.ErrCooldownActive
	}

	ticket := &models.Ticket{
		TenantID:    identity.TenantID,
		CreatedByID: identity.UserID,
		Subject:     subject,
		Description: description,
		Status:      models.TicketNew,
		IsPriority:  identity.Role == models.RoleSchoolAdmin,
	}

	if _, err := s.ticketRepo.CreateTicket(ctx, ticket); err != nil {
		return nil, err
	}

	logger.Info().
		Int64("ticketID", ticket.ID).
		Int64("userID", identity.UserID).
		Bool("priority", ticket.IsPriority).
		Msg("Ticket created")

	return ticket, nil
}

// ListTickets lists tickets for triage, priority first. Platform admins see
// every tenant and may filter by one; school admins are pinned to their own.
func (s *TicketService) ListTickets(ctx context.Context, identity Identity, query dto.ListTicketsQuery) ([]*models.TicketListItem, *dto.PageInfo, error) {
	if query.Status != "" && !models.ValidTicketStatus(query.Status) {
		return nil, nil, apperrors.NewBadRequestError("unknown ticket status: " + query.Status)
	}

	tenantID := query.TenantID
	if !identity.IsPlatformAdmin() {
		if tenantID != nil && *tenantID != identity.TenantID {
			return nil, nil, apperrors.ErrPermissionDenied
		}
		tenantID = &identity.TenantID
	}

	page, pageSize, offset := helpers.NormalizePagination(query.Page, query.PageSize)

	items, total, err := s.ticketRepo.ListTickets(ctx, repositories.TicketFilter{
		Status:   query.Status,
		TenantID: tenantID,
		Offset:   offset,
		Limit:    pageSize,
	})
	if err != nil {
		return nil, nil, err
	}

	paged := dto.NewPagedResponse(nil, page, pageSize, total)
	return items, &paged.PageInfo, nil
}

// GetTicket retrieves one ticket. A ticket from another tenant reads as
// absent for non-platform callers.
func (s *TicketService) GetTicket(ctx context.Context, identity Identity, id int64) (*models.Ticket, error) {
	ticket, err := s.ticketRepo.GetTicketByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !identity.IsPlatformAdmin() && ticket.TenantID != identity.TenantID {
		return nil, apperrors.ErrTicketNotFound
	}
	return ticket, nil
}

// UpdateTicketStatus moves a ticket through its workflow.
func (s *TicketService) UpdateTicketStatus(ctx context.Context, identity Identity, id int64, req dto.UpdateTicketStatusRequest) (*models.Ticket, error) {
	if !models.ValidTicketStatus(req.Status) {
		return nil, apperrors.NewBadRequestError("unknown ticket status: " + req.Status)
	}

	ticket, err := s.ticketRepo.GetTicketByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !identity.IsPlatformAdmin() && ticket.TenantID != identity.TenantID {
		return nil, apperrors.ErrTicketNotFound
	}

	if err := s.ticketRepo.UpdateTicketStatus(ctx, id, models.TicketStatus(req.Status)); err != nil {
		return nil, err
	}

	ticket.Status = models.TicketStatus(req.Status)
	return ticket, nil
}
