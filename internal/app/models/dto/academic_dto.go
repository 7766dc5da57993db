package dto

// CreateProgramRequest carries the fields for defining a study program.
type CreateProgramRequest struct {
	Name string `json:"name" binding:"required,min=2,max=200" example:"Computer Science"`
	Code string `json:"code" binding:"required,min=2,max=20" example:"CS"`
}

// UpdateProgramRequest carries the editable fields of a program. Changing the
// curriculum bumps the version.
type UpdateProgramRequest struct {
	Name     *string `json:"name,omitempty" binding:"omitempty,min=2,max=200"`
	Code     *string `json:"code,omitempty" binding:"omitempty,min=2,max=20"`
	IsActive *bool   `json:"isActive,omitempty"`
}

// CreateCourseRequest carries the fields for defining a course.
type CreateCourseRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=200" example:"Algorithms"`
	Code        string `json:"code" binding:"required,min=2,max=20" example:"CS201"`
	ProgramID   *int64 `json:"programId,omitempty"`
	ProfessorID *int64 `json:"professorId,omitempty"`
}

// UpdateCourseRequest carries the editable fields of a course.
type UpdateCourseRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,min=2,max=200"`
	Code        *string `json:"code,omitempty" binding:"omitempty,min=2,max=20"`
	ProgramID   *int64  `json:"programId,omitempty"`
	ProfessorID *int64  `json:"professorId,omitempty"`
}

// CreateOfferingRequest schedules one run of a course in a year and term.
type CreateOfferingRequest struct {
	CourseID int64  `json:"courseId" binding:"required" example:"5"`
	Year     int    `json:"year" binding:"required,min=2000,max=2100" example:"2026"`
	Term     string `json:"term" binding:"required" example:"FALL"`
}
