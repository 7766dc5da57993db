package services

import (
	"context"
	"strings"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"

	"github.com/campuscore/campuscore/internal/app/models"
	"github.com/campuscore/campuscore/internal/app/models/dto"
	"github.com/campuscore/campuscore/internal/app/repositories"
	"github.com/campuscore/campuscore/internal/pkg/apperrors"
)

type fakeTicketRepo struct {
	tickets  []*models.Ticket
	lastByID map[int64]time.Time
	nextID   int64
}

func (f *fakeTicketRepo) CreateTicket(_ context.Context, ticket *models.Ticket) (int64, error) {
	f.nextID++
	ticket.ID = f.nextID
	f.tickets = append(f.tickets, ticket)
	return ticket.ID, nil
}

func (f *fakeTicketRepo) GetTicketByID(_ context.Context, id int64) (*models.Ticket, error) {
	for _, t := range f.tickets {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, apperrors.ErrTicketNotFound
}

func (f *fakeTicketRepo) GetLastTicketTime(_ context.Context, userID int64) (time.Time, error) {
	return f.lastByID[userID], nil
}

func (f *fakeTicketRepo) ListTickets(_ context.Context, filter repositories.TicketFilter) ([]*models.TicketListItem, int, error) {
	var items []*models.TicketListItem
	for _, t := range f.tickets {
		if filter.TenantID != nil && t.TenantID != *filter.TenantID {
			continue
		}
		items = append(items, &models.TicketListItem{
			ID: t.ID, Subject: t.Subject, Status: t.Status,
			IsPriority: t.IsPriority, TenantID: t.TenantID,
		})
	}
	return items, len(items), nil
}

func (f *fakeTicketRepo) UpdateTicketStatus(_ context.Context, id int64, status models.TicketStatus) error {
	for _, t := range f.tickets {
		if t.ID == id {
			t.Status = status
			return nil
		}
	}
	return apperrors.ErrTicketNotFound
}

func TestCreateTicket(t *testing.T) {
	c := qt.New(t)

	student := Identity{UserID: 10, TenantID: 3, Role: models.RoleStudent}
	admin := Identity{UserID: 11, TenantID: 3, Role: models.RoleSchoolAdmin}

	newSvc := func() (*TicketService, *fakeTicketRepo) {
		repo := &fakeTicketRepo{lastByID: map[int64]time.Time{}}
		svc := NewTicketService(repo)
		return svc, repo
	}

	c.Run("valid ticket is stored trimmed", func(c *qt.C) {
		svc, repo := newSvc()
		ticket, err := svc.CreateTicket(context.Background(), student, dto.CreateTicketRequest{
			Subject:     "  Broken grades page  ",
			Description: "  The page is blank after login.  ",
		})
		c.Assert(err, qt.IsNil)
		c.Assert(ticket.Subject, qt.Equals, "Broken grades page")
		c.Assert(ticket.Description, qt.Equals, "The page is blank after login.")
		c.Assert(ticket.Status, qt.Equals, models.TicketNew)
		c.Assert(ticket.IsPriority, qt.IsFalse)
		c.Assert(ticket.TenantID, qt.Equals, int64(3))
		c.Assert(repo.tickets, qt.HasLen, 1)
	})

	c.Run("school admin reports are priority", func(c *qt.C) {
		svc, _ := newSvc()
		ticket, err := svc.CreateTicket(context.Background(), admin, dto.CreateTicketRequest{
			Subject:     "Billing outage",
			Description: "Nobody can record payments today.",
		})
		c.Assert(err, qt.IsNil)
		c.Assert(ticket.IsPriority, qt.IsTrue)
	})

	c.Run("subject too short after trim", func(c *qt.C) {
		svc, _ := newSvc()
		_, err := svc.CreateTicket(context.Background(), student, dto.CreateTicketRequest{
			Subject:     "  ab  ",
			Description: "Long enough description here.",
		})
		c.Assert(err, qt.ErrorIs, apperrors.ErrBadRequest)
	})

	c.Run("description too long", func(c *qt.C) {
		svc, _ := newSvc()
		_, err := svc.CreateTicket(context.Background(), student, dto.CreateTicketRequest{
			Subject:     "Valid subject",
			Description: strings.Repeat("x", 2001),
		})
		c.Assert(err, qt.ErrorIs, apperrors.ErrBadRequest)
	})

	c.Run("bounds count characters, not bytes", func(c *qt.C) {
		svc, _ := newSvc()
		// Six accented characters are within bounds despite the byte length.
		_, err := svc.CreateTicket(context.Background(), student, dto.CreateTicketRequest{
			Subject:     "ügyfél",
			Description: "Ötszáz hallgató nem tud belépni.",
		})
		c.Assert(err, qt.IsNil)

		// 201 two-byte runes exceed the subject bound.
		_, err = svc.CreateTicket(context.Background(), admin, dto.CreateTicketRequest{
			Subject:     strings.Repeat("é", 201),
			Description: "Long enough description here.",
		})
		c.Assert(err, qt.ErrorIs, apperrors.ErrBadRequest)
	})

	c.Run("second ticket within a minute is refused", func(c *qt.C) {
		svc, repo := newSvc()
		base := time.Now()
		svc.now = func() time.Time { return base }

		_, err := svc.CreateTicket(context.Background(), student, dto.CreateTicketRequest{
			Subject:     "First report",
			Description: "Something broke, details inside.",
		})
		c.Assert(err, qt.IsNil)
		repo.lastByID[student.UserID] = base

		svc.now = func() time.Time { return base.Add(30 * time.Second) }
		_, err = svc.CreateTicket(context.Background(), student, dto.CreateTicketRequest{
			Subject:     "Second report",
			Description: "Something else broke as well.",
		})
		c.Assert(err, qt.ErrorIs, apperrors.ErrCooldownActive)

		svc.now = func() time.Time { return base.Add(61 * time.Second) }
		_, err = svc.CreateTicket(context.Background(), student, dto.CreateTicketRequest{
			Subject:     "Second report",
			Description: "Something else broke as well.",
		})
		c.Assert(err, qt.IsNil)
	})
}

func TestUpdateTicketStatus(t *testing.T) {
	c := qt.New(t)

	platform := Identity{UserID: 1, TenantID: 1, Role: models.RolePlatformAdmin}
	admin := Identity{UserID: 11, TenantID: 3, Role: models.RoleSchoolAdmin}

	repo := &fakeTicketRepo{lastByID: map[int64]time.Time{}}
	svc := NewTicketService(repo)
	repo.tickets = append(repo.tickets,
		&models.Ticket{ID: 1, TenantID: 3, Status: models.TicketNew},
		&models.Ticket{ID: 2, TenantID: 4, Status: models.TicketNew},
	)

	c.Run("moves through the workflow", func(c *qt.C) {
		ticket, err := svc.UpdateTicketStatus(context.Background(), platform, 1, dto.UpdateTicketStatusRequest{Status: "IN_PROGRESS"})
		c.Assert(err, qt.IsNil)
		c.Assert(ticket.Status, qt.Equals, models.TicketInProgress)
	})

	c.Run("school admin updates own tenant's tickets", func(c *qt.C) {
		ticket, err := svc.UpdateTicketStatus(context.Background(), admin, 1, dto.UpdateTicketStatusRequest{Status: "RESOLVED"})
		c.Assert(err, qt.IsNil)
		c.Assert(ticket.Status, qt.Equals, models.TicketResolved)
	})

	c.Run("another tenant's ticket reads as absent", func(c *qt.C) {
		_, err := svc.UpdateTicketStatus(context.Background(), admin, 2, dto.UpdateTicketStatusRequest{Status: "RESOLVED"})
		c.Assert(err, qt.ErrorIs, apperrors.ErrTicketNotFound)

		_, err = svc.GetTicket(context.Background(), admin, 2)
		c.Assert(err, qt.ErrorIs, apperrors.ErrTicketNotFound)
	})

	c.Run("unknown status is a bad request", func(c *qt.C) {
		_, err := svc.UpdateTicketStatus(context.Background(), platform, 1, dto.UpdateTicketStatusRequest{Status: "CLOSED"})
		c.Assert(err, qt.ErrorIs, apperrors.ErrBadRequest)
	})

	c.Run("unknown ticket is not found", func(c *qt.C) {
		_, err := svc.UpdateTicketStatus(context.Background(), platform, 99, dto.UpdateTicketStatusRequest{Status: "RESOLVED"})
		c.Assert(err, qt.ErrorIs, apperrors.ErrTicketNotFound)
	})
}

func TestListTickets(t *testing.T) {
	c := qt.New(t)

	platform := Identity{UserID: 1, TenantID: 1, Role: models.RolePlatformAdmin}
	admin := Identity{UserID: 11, TenantID: 3, Role: models.RoleSchoolAdmin}

	repo := &fakeTicketRepo{lastByID: map[int64]time.Time{}}
	svc := NewTicketService(repo)
	repo.tickets = append(repo.tickets,
		&models.Ticket{ID: 1, TenantID: 3, Status: models.TicketNew},
		&models.Ticket{ID: 2, TenantID: 4, Status: models.TicketNew},
	)

	c.Run("platform admin sees every tenant", func(c *qt.C) {
		items, _, err := svc.ListTickets(context.Background(), platform, dto.ListTicketsQuery{})
		c.Assert(err, qt.IsNil)
		c.Assert(items, qt.HasLen, 2)
	})

	c.Run("school admin is pinned to own tenant", func(c *qt.C) {
		items, _, err := svc.ListTickets(context.Background(), admin, dto.ListTicketsQuery{})
		c.Assert(err, qt.IsNil)
		c.Assert(items, qt.HasLen, 1)
		c.Assert(items[0].TenantID, qt.Equals, int64(3))
	})

	c.Run("school admin naming another tenant is refused", func(c *qt.C) {
		other := int64(4)
		_, _, err := svc.ListTickets(context.Background(), admin, dto.ListTicketsQuery{TenantID: &other})
		c.Assert(err, qt.ErrorIs, apperrors.ErrPermissionDenied)
	})
}
