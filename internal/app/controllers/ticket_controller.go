package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campuscore/campuscore/internal/app/models/dto"
	"github.com/campuscore/campuscore/internal/app/services"
	"github.com/campuscore/campuscore/internal/middleware"
)

// TicketController handles support ticket endpoints
type TicketController struct {
	ticketService *services.TicketService
}

// NewTicketController creates a new TicketController
func NewTicketController(ticketService *services.TicketService) *TicketController {
	return &TicketController{ticketService: ticketService}
}

// CreateTicket godoc
// @Summary Submit a support ticket
// @Description One ticket per user per minute; subject and description are trimmed before validation
// @Tags tickets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateTicketRequest true "Ticket"
// @Success 201 {object} dto.APIResponse{data=models.Ticket}
// @Failure 400 {object} dto.ErrorResponse "Subject or description out of bounds"
// @Failure 429 {object} dto.ErrorResponse "Cooldown active"
// @Router /tickets [post]
func (ctrl *TicketController) CreateTicket(c *gin.Context) {
	var req dto.CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	ticket, err := ctrl.ticketService.CreateTicket(c.Request.Context(), middleware.GetIdentity(c), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAPIResponse(ticket))
}

// ListTickets godoc
// @Summary List tickets for triage
// @Description Priority tickets first, then newest; school admins see their own tenant only
// @Tags tickets
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter"
// @Param tenantId query int false "Tenant filter"
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Success 200 {object} dto.PagedResponse
// @Router /tickets [get]
func (ctrl *TicketController) ListTickets(c *gin.Context) {
	var query dto.ListTicketsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	items, pageInfo, err := ctrl.ticketService.ListTickets(c.Request.Context(), middleware.GetIdentity(c), query)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PagedResponse{Data: items, PageInfo: *pageInfo})
}

// GetTicket godoc
// @Summary Retrieve one ticket
// @Tags tickets
// @Produce json
// @Security BearerAuth
// @Param id path int true "Ticket ID"
// @Success 200 {object} dto.APIResponse{data=models.Ticket}
// @Failure 404 {object} dto.ErrorResponse
// @Router /tickets/{id} [get]
func (ctrl *TicketController) GetTicket(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ticket, err := ctrl.ticketService.GetTicket(c.Request.Context(), middleware.GetIdentity(c), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(ticket))
}

// UpdateTicketStatus godoc
// @Summary Move a ticket through its workflow
// @Tags tickets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Ticket ID"
// @Param request body dto.UpdateTicketStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse{data=models.Ticket}
// @Failure 400 {object} dto.ErrorResponse "Unknown status"
// @Failure 404 {object} dto.ErrorResponse
// @Router /tickets/{id}/status [patch]
func (ctrl *TicketController) UpdateTicketStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateTicketStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	ticket, err := ctrl.ticketService.UpdateTicketStatus(c.Request.Context(), middleware.GetIdentity(c), id, req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(ticket))
}
