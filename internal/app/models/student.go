package models

import "time"

// Student is a person record independent of any tenant. Presence at an
// institution is modeled by Enrollment rows only.
type Student struct {
	ID        int64         `json:"id" db:"id"`
	FirstName string        `json:"firstName" db:"first_name"`
	LastName  string        `json:"lastName" db:"last_name"`
	Status    StudentStatus `json:"status" db:"status" example:"ACTIVE"`
	CreatedAt time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time     `json:"updatedAt" db:"updated_at"`
}

// Enrollment links a Student to a Tenant. IndexNumber is unique within the
// tenant; the same student may hold different index numbers elsewhere.
type Enrollment struct {
	ID          int64     `json:"id" db:"id"`
	StudentID   int64     `json:"studentId" db:"student_id"`
	TenantID    int64     `json:"tenantId" db:"tenant_id"`
	IndexNumber string    `json:"indexNumber" db:"index_number"`
	ProgramID   *int64    `json:"programId,omitempty" db:"program_id"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// StudentListItem is one row of a tenant's student list: the enrollment joined
// with the person and tenant name.
type StudentListItem struct {
	EnrollmentID int64         `json:"enrollmentId"`
	StudentID    int64         `json:"studentId"`
	TenantID     int64         `json:"tenantId"`
	IndexNumber  string        `json:"indexNumber"`
	FirstName    string        `json:"firstName"`
	LastName     string        `json:"lastName"`
	Status       StudentStatus `json:"status"`
	TenantName   string        `json:"tenantName"`
	ProgramID    *int64        `json:"programId,omitempty"`
}
