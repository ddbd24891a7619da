package request

import "parkspot/internal/usecase/commands"

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (r *LoginRequest) ToInput() commands.LoginInput {
	return commands.LoginInput{Email: r.Email, Password: r.Password}
}

// RegisterRequest leaves password strength and name length to the domain rules.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
}

func (r *RegisterRequest) ToInput() commands.RegisterInput {
	return commands.RegisterInput{Email: r.Email, Password: r.Password, Name: r.Name}
}
