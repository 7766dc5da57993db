package dto

import "time"

// CreateTuitionRequest defines a named fee. Amount is in minor currency units.
type CreateTuitionRequest struct {
	Name   string `json:"name" binding:"required,min=2,max=200" example:"Winter semester fee"`
	Amount int64  `json:"amount" binding:"required,min=1" example:"120000"`
}

// UpdateTuitionRequest carries the editable fields of a tuition.
type UpdateTuitionRequest struct {
	Name   *string `json:"name,omitempty" binding:"omitempty,min=2,max=200"`
	Amount *int64  `json:"amount,omitempty" binding:"omitempty,min=1"`
}

// RecordPaymentRequest records a student paying toward a tuition.
type RecordPaymentRequest struct {
	StudentID int64      `json:"studentId" binding:"required" example:"7"`
	TuitionID int64      `json:"tuitionId" binding:"required" example:"2"`
	Amount    int64      `json:"amount" binding:"required,min=1" example:"60000"`
	PaidAt    *time.Time `json:"paidAt,omitempty"`
}

// StudentBalanceResponse summarizes a student's financial standing against one
// tuition: how much is owed, how much was paid so far.
type StudentBalanceResponse struct {
	StudentID int64 `json:"studentId"`
	TuitionID int64 `json:"tuitionId"`
	Owed      int64 `json:"owed"`
	Paid      int64 `json:"paid"`
	Balance   int64 `json:"balance"`
}

// GenerateTranscriptRequest snapshots a student's academic record. GPA is
// supplied by the registrar until grade bookkeeping lands.
type GenerateTranscriptRequest struct {
	StudentID int64    `json:"studentId" binding:"required" example:"7"`
	GPA       *float64 `json:"gpa,omitempty" binding:"omitempty,min=0,max=10"`
}

// TranscriptResponse is the public representation of a generated transcript.
type TranscriptResponse struct {
	ID          int64     `json:"id"`
	StudentID   int64     `json:"studentId"`
	TenantID    int64     `json:"tenantId"`
	GeneratedAt time.Time `json:"generatedAt"`
	GPA         *float64  `json:"gpa,omitempty"`
}
