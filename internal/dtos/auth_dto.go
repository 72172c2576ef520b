package dtos

import "github.com/justsurfingit/job-platform/internal/models"

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func NewLoginRequest(email, password string) LoginRequest {
	return LoginRequest{Email: email, Password: password}
}

// RegisterRequest carries an optional client-side id; it is never used as the
// stored primary key.
type RegisterRequest struct {
	ID       *int64      `json:"id,omitempty"`
	Name     string      `json:"name" binding:"required"`
	Email    string      `json:"email" binding:"required,email"`
	Password string      `json:"password" binding:"required,min=6"`
	Role     models.Role `json:"role"`
}

func NewRegisterRequest(id *int64, name, email, password string, role models.Role) RegisterRequest {
	return RegisterRequest{ID: id, Name: name, Email: email, Password: password, Role: role}
}

type AuthResponse struct {
	Token string      `json:"token"`
	Email string      `json:"email"`
	Name  string      `json:"name"`
	Role  models.Role `json:"role"`
}

func NewAuthResponse(token, email, name string, role models.Role) AuthResponse {
	return AuthResponse{Token: token, Email: email, Name: name, Role: role}
}
