package models

import "time"

// Tuition is a named fee defined by a tenant. Amount is in minor currency
// units (cents) to avoid float rounding.
type Tuition struct {
	ID        int64     `json:"id" db:"id"`
	TenantID  int64     `json:"tenantId" db:"tenant_id"`
	Name      string    `json:"name" db:"name"`
	Amount    int64     `json:"amount" db:"amount"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// Payment records a student paying toward a tuition.
type Payment struct {
	ID        int64     `json:"id" db:"id"`
	TenantID  int64     `json:"tenantId" db:"tenant_id"`
	StudentID int64     `json:"studentId" db:"student_id"`
	TuitionID int64     `json:"tuitionId" db:"tuition_id"`
	Amount    int64     `json:"amount" db:"amount"`
	PaidAt    time.Time `json:"paidAt" db:"paid_at"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// Transcript is a generated academic record snapshot for a student.
type Transcript struct {
	ID          int64     `json:"id" db:"id"`
	TenantID    int64     `json:"tenantId" db:"tenant_id"`
	StudentID   int64     `json:"studentId" db:"student_id"`
	GeneratedAt time.Time `json:"generatedAt" db:"generated_at"`
	GPA         *float64  `json:"gpa,omitempty" db:"gpa"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}
