package auth

import (
	"errors"

	"parkspot/internal/domain/user"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type Credentials struct {
	email    user.Email
	password user.Password
}

func NewCredentials(emailStr, passwordStr string) (Credentials, error) {
	email, err := user.NewEmail(emailStr)
	if err != nil {
		return Credentials{}, err
	}

	password, err := user.NewPassword(passwordStr)
	if err != nil {
		return Credentials{}, err
	}

	return Credentials{
		email:    email,
		password: password,
	}, nil
}

func (c Credentials) Email() user.Email {
	return c.email
}

func (c Credentials) Password() user.Password {
	return c.password
}

// Registration is the validated input of a new account.
type Registration struct {
	Credentials
	name user.Name
}

func NewRegistration(emailStr, passwordStr, nameStr string) (Registration, error) {
	creds, err := NewCredentials(emailStr, passwordStr)
	if err != nil {
		return Registration{}, err
	}

	name, err := user.NewName(nameStr)
	if err != nil {
		return Registration{}, err
	}

	return Registration{Credentials: creds, name: name}, nil
}

func (r Registration) Name() user.Name {
	return r.name
}
