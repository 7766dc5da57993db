package dto

// CreateTicketRequest submits a support ticket. Subject and description are
// trimmed before length checks.
type CreateTicketRequest struct {
	Subject     string `json:"subject" binding:"required" example:"Grades page broken"`
	Description string `json:"description" binding:"required" example:"The grades page returns a blank screen after login."`
}

// UpdateTicketStatusRequest moves a ticket through its workflow.
type UpdateTicketStatusRequest struct {
	Status string `json:"status" binding:"required" example:"IN_PROGRESS"`
}

// ListTicketsQuery holds filters for listing tickets.
type ListTicketsQuery struct {
	Status   string `form:"status"`
	TenantID *int64 `form:"tenantId"`
	Page     int    `form:"page,default=1" binding:"omitempty,min=1"`
	PageSize int    `form:"pageSize,default=20" binding:"omitempty,min=1,max=100"`
}
