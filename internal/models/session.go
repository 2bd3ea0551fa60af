package models

// Role is the role carried by an admin session.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleNone  Role = "none"
)

// AdminSession is the client-local session record. It is persisted across
// restarts under a fixed storage key and is never stored server-side.
type AdminSession struct {
	IsAuthenticated bool `json:"is_authenticated"`
	Role            Role `json:"role"`
}

// LoginRequest represents the request body for credential submission
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse represents the response after successful verification
type LoginResponse struct {
	Token   string       `json:"token"`
	Session AdminSession `json:"session"`
}

// UpdateCredentialsRequest represents the request body for rotating admin credentials
type UpdateCredentialsRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewUsername     string `json:"new_username"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

// AssignRoleRequest represents the request body for granting a role to a subject
type AssignRoleRequest struct {
	Subject string `json:"subject" validate:"required"`
	Role    Role   `json:"role" validate:"required,oneof=admin none"`
}
