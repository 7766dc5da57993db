package models

import "time"

// ExamPeriod groups exam terms for a tenant (e.g. "January 2026").
type ExamPeriod struct {
	ID        int64     `json:"id" db:"id"`
	TenantID  int64     `json:"tenantId" db:"tenant_id"`
	Name      string    `json:"name" db:"name"`
	Term      Term      `json:"term" db:"term"`
	Year      int       `json:"year" db:"year"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// ExamTerm is a single scheduled exam inside a period for a course offering.
type ExamTerm struct {
	ID               int64     `json:"id" db:"id"`
	TenantID         int64     `json:"tenantId" db:"tenant_id"`
	ExamPeriodID     int64     `json:"examPeriodId" db:"exam_period_id"`
	CourseOfferingID int64     `json:"courseOfferingId" db:"course_offering_id"`
	Date             time.Time `json:"date" db:"date"`
	CreatedAt        time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time `json:"updatedAt" db:"updated_at"`
}
