package models

// CreateUserRequest represents the JSON body for creating a user
// swagger:model CreateUserRequest
type CreateUserRequest struct {
	// Name
	// required: true
	// example: Tanaka
	Name string `json:"name" validate:"required"`

	// Email
	// required: true
	// example: t@example.com
	Email string `json:"email" validate:"required"`
}

// UpdateUserRequest represents the JSON body for updating a user
// swagger:model UpdateUserRequest
type UpdateUserRequest struct {
	// User ID
	// required: true
	// example: ddc63b72-b8c4-4888-9fd2-c0a4d1c266cd
	ID string `json:"id" validate:"required,uuid"`

	// Name
	// required: true
	// example: Tanaka
	Name string `json:"name" validate:"required"`

	// Email
	// required: true
	// example: t@example.com
	Email string `json:"email" validate:"required"`
}

// MessageResponse represents a successful response without a payload
// swagger:model MessageResponse
type MessageResponse struct {
	// Success message
	// example: User deleted successfully
	Message string `json:"message"`
}

// ErrorResponse represents an error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: Invalid user id
	Error string `json:"error"`
}
