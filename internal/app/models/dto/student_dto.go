package dto

import (
	"time"

	"github.com/campuscore/campuscore/internal/app/models"
)

// CreateStudentRequest creates a student person together with their first
// enrollment in the acting tenant.
type CreateStudentRequest struct {
	FirstName   string `json:"firstName" binding:"required" example:"Jane"`
	LastName    string `json:"lastName" binding:"required" example:"Doe"`
	IndexNumber string `json:"indexNumber" binding:"required" example:"2024/0042"`
	ProgramID   *int64 `json:"programId,omitempty" example:"3"`
}

// UpdateStudentRequest carries the editable person fields of a student.
type UpdateStudentRequest struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Status    *string `json:"status,omitempty" example:"GRADUATED"`
}

// EnrollStudentRequest enrolls an existing student into the acting tenant.
type EnrollStudentRequest struct {
	StudentID   int64  `json:"studentId" binding:"required" example:"7"`
	IndexNumber string `json:"indexNumber" binding:"required" example:"2026/0001"`
	ProgramID   *int64 `json:"programId,omitempty"`
}

// UpdateEnrollmentRequest carries the editable fields of one enrollment.
type UpdateEnrollmentRequest struct {
	IndexNumber *string `json:"indexNumber,omitempty"`
	ProgramID   *int64  `json:"programId,omitempty"`
}

// ListStudentsQuery holds filters for listing a tenant's students.
type ListStudentsQuery struct {
	TenantID *int64 `form:"tenantId"`
	Status   string `form:"status"`
	Search   string `form:"search"`
	Page     int    `form:"page,default=1" binding:"omitempty,min=1"`
	PageSize int    `form:"pageSize,default=20" binding:"omitempty,min=1,max=100"`
}

// EnrollmentResponse is the public representation of one enrollment.
type EnrollmentResponse struct {
	ID          int64     `json:"id"`
	TenantID    int64     `json:"tenantId"`
	TenantName  string    `json:"tenantName,omitempty"`
	IndexNumber string    `json:"indexNumber"`
	ProgramID   *int64    `json:"programId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// StudentResponse is the public representation of a student person.
type StudentResponse struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// StudentDetailResponse is a student together with all their enrollments.
type StudentDetailResponse struct {
	StudentResponse
	Enrollments []EnrollmentResponse `json:"enrollments"`
}

// ToStudentResponse maps a student model to its public representation.
func ToStudentResponse(s *models.Student) StudentResponse {
	return StudentResponse{
		ID:        s.ID,
		FirstName: s.FirstName,
		LastName:  s.LastName,
		Status:    string(s.Status),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// ToEnrollmentResponse maps an enrollment model to its public representation.
func ToEnrollmentResponse(e *models.Enrollment) EnrollmentResponse {
	return EnrollmentResponse{
		ID:          e.ID,
		TenantID:    e.TenantID,
		IndexNumber: e.IndexNumber,
		ProgramID:   e.ProgramID,
		CreatedAt:   e.CreatedAt,
	}
}
