package models

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Email
	// required: true
	// example: john@example.com
	Email string `json:"email" validate:"required,email,max=255"`

	// Password, at least 6 characters
	// required: true
	// example: secret123
	Password string `json:"password" validate:"required,min=6,max=72"`

	// Display name
	// required: true
	// example: John
	Name string `json:"name" validate:"required,max=255"`
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Email
	// required: true
	// example: john@example.com
	Email string `json:"email" validate:"required"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest represents the JSON body for a profile update
// swagger:model UpdateProfileRequest
type UpdateProfileRequest struct {
	// New display name
	// required: true
	// example: Johnny
	Name string `json:"name" validate:"required,max=255"`
}

// AuthResponse is returned by register and login
// swagger:model AuthResponse
type AuthResponse struct {
	// Signed JWT
	// example: JWT_TOKEN
	AccessToken string `json:"access_token"`

	// Authenticated user
	User UserSummary `json:"user"`
}

// MessageResponse carries a plain acknowledgement
// swagger:model MessageResponse
type MessageResponse struct {
	// example: Logged out successfully
	Message string `json:"message"`
}

// ErrorResponse represents an error payload
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: Invalid credentials
	Error string `json:"error"`
}
