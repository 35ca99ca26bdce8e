package models

// LoginRequest is the body of POST /api/auth/login.
// Both fields are required; surrounding whitespace is trimmed by the server.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserInfo is the public view of a [User] returned after a successful login.
type UserInfo struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
	Name  string `json:"name"`
}

// LoginResponse is returned by POST /api/auth/login on success.
type LoginResponse struct {
	Token string   `json:"token"`
	User  UserInfo `json:"user"`
}

// MessageResponse is the JSON body used for error replies and simple
// informational endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}
