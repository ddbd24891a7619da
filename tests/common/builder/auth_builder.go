//go:build unit || e2e

package builder

import (
	reqdto "parkspot/internal/handler/dto/request"
)

type AuthBuilder struct {
	Email    string
	Password string
	Name     string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email:    "test@example.com",
		Password: "password123",
		Name:     "Test User",
	}
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildRegisterDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Email:    a.Email,
		Password: a.Password,
		Name:     a.Name,
	}
}
