package response

import (
	"time"

	"github.com/jinzhu/copier"

	"parkspot/internal/usecase/commands"
	"parkspot/internal/usecase/queries"
)

type UserResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}

type RegisterResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"user_id"`
}

type MeResponse struct {
	UserResponse
	LastLogin *time.Time `json:"last_login,omitempty"`
}

func FromLoginResult(res *commands.LoginResult) (*LoginResponse, error) {
	out := &LoginResponse{Token: res.Token, ExpiresAt: res.ExpiresAt}
	if err := copier.Copy(&out.User, &res.User); err != nil {
		return nil, err
	}
	return out, nil
}

func FromAuthorizedUser(v *queries.AuthorizedUserView) (*MeResponse, error) {
	out := &MeResponse{LastLogin: v.LastLogin}
	if err := copier.Copy(&out.UserResponse, v); err != nil {
		return nil, err
	}
	return out, nil
}
