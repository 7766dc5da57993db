package dto

// ErrorCode is a stable, machine-readable error identifier.
type ErrorCode string

const (
	ErrorCodeBadRequest       ErrorCode = "BAD_REQUEST"
	ErrorCodeUnauthorized     ErrorCode = "UNAUTHORIZED"
	ErrorCodeForbidden        ErrorCode = "FORBIDDEN"
	ErrorCodeNotFound         ErrorCode = "NOT_FOUND"
	ErrorCodeConflict         ErrorCode = "CONFLICT"
	ErrorCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrorCodeTooManyRequests  ErrorCode = "TOO_MANY_REQUESTS"
	ErrorCodeInternalError    ErrorCode = "INTERNAL_ERROR"
)

// ErrorDetail carries the code and message for a single error.
type ErrorDetail struct {
	Code    ErrorCode `json:"code" example:"NOT_FOUND"`
	Message string    `json:"message" example:"Resource not found"`
}

// ErrorResponse is the standard error envelope for all endpoints.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// NewErrorResponse creates an ErrorResponse with the given code and message.
func NewErrorResponse(code ErrorCode, message string) ErrorResponse {
	return ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	}
}
