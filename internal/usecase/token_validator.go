package usecase

import (
	"parkspot/internal/domain/user"
	"parkspot/internal/pkg/jwt"
)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (int64, user.Role, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (int64, user.Role, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return 0, "", err
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return 0, "", jwt.ErrInvalidToken
	}

	return claims.UserID, role, nil
}
