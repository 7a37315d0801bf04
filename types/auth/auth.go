package auth

import (
	"fmt"
	"strings"

	"stagelink/models/user"
)

// RegisterRequest is the payload for creating an account
type RegisterRequest struct {
	Name     string `json:"name" validate:"omitempty,max=100"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=100"`
	Role     string `json:"role" validate:"omitempty,oneof=fan artist venue"`
}

// LoginRequest is the payload for signing in
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r RegisterRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" {
		return fmt.Errorf("email is required")
	}
	if len(r.Password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}
	if r.Role != "" && !user.IsValidRole(r.Role) {
		return fmt.Errorf("role must be fan, artist, or venue")
	}
	if r.Role == user.RoleAdmin {
		return fmt.Errorf("admin accounts cannot be self-registered")
	}
	return nil
}

func (r LoginRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" {
		return fmt.Errorf("email is required")
	}
	if r.Password == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}
