//go:build unit || e2e

package builder

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"parkspot/internal/domain/user"
	"parkspot/internal/infra/query"
	"parkspot/internal/usecase/queries"
)

type UserBuilder struct {
	ID           int64
	Email        string
	Name         string
	PasswordHash string
	Role         string
	IsActive     bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:           1,
		Email:        "test@example.com",
		Name:         "Test User",
		PasswordHash: "hashed_password",
		Role:         "user",
		IsActive:     true,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}
	name, err := user.NewName(u.Name)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}

	if !u.IsActive {
		return user.ReconstructUser(u.ID, email, name, u.PasswordHash, role, nil, false, time.Time{}), nil
	}
	return user.NewUser(email, name, u.PasswordHash, role), nil
}

func (u *UserBuilder) BuildInfra() query.User {
	now := time.Now()
	return query.User{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Name:         u.Name,
		Role:         u.Role,
		IsActive:     u.IsActive,
		LastLogin:    pgtype.Timestamptz{},
		CreatedAt:    pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt:    pgtype.Timestamptz{Time: now, Valid: true},
	}
}

func (u *UserBuilder) BuildReadModel() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:       u.ID,
		Email:    u.Email,
		Name:     u.Name,
		Role:     u.Role,
		IsActive: u.IsActive,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithID(id int64) *UserBuilder {
	u.ID = id
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithName(name string) *UserBuilder {
	u.Name = name
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}
