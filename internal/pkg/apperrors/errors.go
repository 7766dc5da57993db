package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrAccountSuspended   = errors.New("account is suspended")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Rate limiting
	ErrCooldownActive = errors.New("please wait before submitting another report")
)

// User errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("user with this email already exists")
	ErrSelfDelete         = errors.New("you cannot delete your own account")
)

// Tenant errors
var (
	ErrTenantNotFound      = errors.New("tenant not found")
	ErrTenantCodeExists    = errors.New("tenant code already exists")
	ErrTenantIDRequired    = errors.New("tenant id is required")
	ErrTenantQueryRequired = errors.New("platform admin must provide a tenantId")
)

// Student errors
var (
	ErrStudentNotFound    = errors.New("student not found")
	ErrEnrollmentNotFound = errors.New("enrollment not found")
	ErrIndexNumberExists  = errors.New("student index already exists in this institution")
	ErrAlreadyEnrolled    = errors.New("student is already enrolled in this institution")
)

// Academic errors
var (
	ErrProgramNotFound  = errors.New("program not found")
	ErrCourseNotFound   = errors.New("course not found")
	ErrOfferingNotFound = errors.New("course offering not found")
	ErrPeriodNotFound   = errors.New("exam period not found")
)

// Finance and records errors
var (
	ErrTuitionNotFound    = errors.New("tuition not found")
	ErrTranscriptNotFound = errors.New("transcript not found")
)

// Ticket errors
var (
	ErrTicketNotFound = errors.New("ticket not found")
)

// NewNotFoundError creates a wrapped not-found error with a message
func NewNotFoundError(message string) error {
	return &CustomError{Err: ErrResourceNotFound, Message: message}
}

// NewConflictError creates a wrapped conflict error with a message
func NewConflictError(message string) error {
	return &CustomError{Err: ErrConflict, Message: message}
}

// NewForbiddenError creates a wrapped permission-denied error with a message
func NewForbiddenError(message string) error {
	return &CustomError{Err: ErrPermissionDenied, Message: message}
}

// NewBadRequestError creates a wrapped bad-request error with a message
func NewBadRequestError(message string) error {
	return &CustomError{Err: ErrBadRequest, Message: message}
}

// CustomError carries an underlying sentinel plus a caller-facing message.
type CustomError struct {
	Err     error
	Message string
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}
