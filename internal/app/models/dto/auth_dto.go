package dto

// LoginRequest represents the login credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"admin@campuscore.app"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

// LoginResponse carries the issued token and the authenticated user.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ForgotPasswordRequest asks for a password reset mail.
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email" example:"jane.doe@uni.edu"`
}

// RegisterRequest represents a new account registration.
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email" example:"jane.doe@uni.edu"`
	Password  string `json:"password" binding:"required,min=8" example:"secret123"`
	FirstName string `json:"firstName" binding:"required" example:"Jane"`
	LastName  string `json:"lastName" binding:"required" example:"Doe"`
	Role      string `json:"role" binding:"required" example:"STUDENT"`
	TenantID  *int64 `json:"tenantId,omitempty" example:"1"`
}
