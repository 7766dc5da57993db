package models

import "time"

// Program is a study program offered by a tenant.
type Program struct {
	ID        int64     `json:"id" db:"id"`
	TenantID  int64     `json:"tenantId" db:"tenant_id"`
	Name      string    `json:"name" db:"name"`
	Code      string    `json:"code" db:"code"`
	Version   int       `json:"version" db:"version"`
	IsActive  bool      `json:"isActive" db:"is_active"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// Course is a course defined by a tenant, optionally bound to a program and a
// professor user.
type Course struct {
	ID          int64     `json:"id" db:"id"`
	TenantID    int64     `json:"tenantId" db:"tenant_id"`
	Name        string    `json:"name" db:"name"`
	Code        string    `json:"code" db:"code"`
	ProgramID   *int64    `json:"programId,omitempty" db:"program_id"`
	ProfessorID *int64    `json:"professorId,omitempty" db:"professor_id"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// CourseOffering is one run of a course in a given year and term.
type CourseOffering struct {
	ID        int64     `json:"id" db:"id"`
	TenantID  int64     `json:"tenantId" db:"tenant_id"`
	CourseID  int64     `json:"courseId" db:"course_id"`
	Year      int       `json:"year" db:"year"`
	Term      Term      `json:"term" db:"term"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
