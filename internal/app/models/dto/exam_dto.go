package dto

import "time"

// CreateExamPeriodRequest defines a new exam period for a tenant.
type CreateExamPeriodRequest struct {
	Name string `json:"name" binding:"required,min=2,max=200" example:"January 2026"`
	Term string `json:"term" binding:"required" example:"FALL"`
	Year int    `json:"year" binding:"required,min=2000,max=2100" example:"2026"`
}

// CreateExamTermRequest schedules one exam inside a period.
type CreateExamTermRequest struct {
	CourseOfferingID int64     `json:"courseOfferingId" binding:"required" example:"3"`
	Date             time.Time `json:"date" binding:"required" example:"2026-01-20T09:00:00Z"`
}

// UpdateExamTermRequest reschedules an exam.
type UpdateExamTermRequest struct {
	Date *time.Time `json:"date,omitempty"`
}
