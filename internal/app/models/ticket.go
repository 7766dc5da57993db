package models

import "time"

// Ticket is a support/bug report submitted by a user for their tenant.
type Ticket struct {
	ID          int64        `json:"id" db:"id"`
	TenantID    int64        `json:"tenantId" db:"tenant_id"`
	CreatedByID int64        `json:"createdById" db:"created_by"`
	Subject     string       `json:"subject" db:"subject"`
	Description string       `json:"description" db:"description"`
	Status      TicketStatus `json:"status" db:"status"`
	IsPriority  bool         `json:"isPriority" db:"is_priority"`
	CreatedAt   time.Time    `json:"createdAt" db:"created_at"`
}

// TicketListItem is a ticket joined with tenant and reporter details for
// admin listings.
type TicketListItem struct {
	ID            int64        `json:"id"`
	Subject       string       `json:"subject"`
	Status        TicketStatus `json:"status"`
	IsPriority    bool         `json:"isPriority"`
	CreatedAt     time.Time    `json:"createdAt"`
	TenantID      int64        `json:"tenantId"`
	TenantName    string       `json:"tenantName"`
	ReporterName  string       `json:"reporterName"`
	ReporterEmail string       `json:"reporterEmail"`
	ReporterRole  RoleType     `json:"reporterRole"`
}
