package models

// Roles known to the backend.
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// User is a cafe system account. Status is a stringified boolean
// ("true" = active, "false" = inactive) on the wire.
type User struct {
	UserID      int    `json:"userId"`
	UserName    string `json:"userName"`
	UserEmail   string `json:"userEmail"`
	UserPhoneNo string `json:"userPhoneNo"`
	Status      string `json:"status"`
	Role        string `json:"role"`
}

// LoginRequest is the payload for POST /user/login.
type LoginRequest struct {
	UserEmail string `json:"userEmail"`
	Password  string `json:"password"`
}

// SignupRequest is the payload for POST /user/signup.
type SignupRequest struct {
	UserName    string `json:"userName"`
	UserEmail   string `json:"userEmail"`
	Password    string `json:"password"`
	UserPhoneNo string `json:"userPhoneNo"`
}

// ForgotPasswordRequest is the payload for POST /user/forgotPassword.
type ForgotPasswordRequest struct {
	UserEmail string `json:"userEmail"`
}

// UpdateUserRequest is the payload for PATCH /user/update. Used by the
// admin view to toggle account status and edit profile fields.
type UpdateUserRequest struct {
	UserName    string `json:"userName,omitempty"`
	UserEmail   string `json:"userEmail,omitempty"`
	UserPhoneNo string `json:"userPhoneNo,omitempty"`
	Status      string `json:"status,omitempty"`
}

// TokenResponse is the body returned by the auth endpoints.
type TokenResponse struct {
	Token string `json:"token"`
}
