package user

import (
	"time"
)

// User is a registered account. The ID is assigned by the store on insert.
type User struct {
	id           int64
	email        Email
	name         Name
	passwordHash string
	role         Role
	lastLogin    *time.Time
	isActive     bool
	createdAt    time.Time
}

// NewUser builds an account that has not been persisted yet.
func NewUser(email Email, name Name, passwordHash string, role Role) *User {
	return &User{
		email:        email,
		name:         name,
		passwordHash: passwordHash,
		role:         role,
		isActive:     true,
	}
}

func ReconstructUser(
	id int64,
	email Email,
	name Name,
	passwordHash string,
	role Role,
	lastLogin *time.Time,
	isActive bool,
	createdAt time.Time,
) *User {
	return &User{
		id:           id,
		email:        email,
		name:         name,
		passwordHash: passwordHash,
		role:         role,
		lastLogin:    lastLogin,
		isActive:     isActive,
		createdAt:    createdAt,
	}
}

func (u *User) ID() int64             { return u.id }
func (u *User) Email() Email          { return u.email }
func (u *User) Name() Name            { return u.name }
func (u *User) PasswordHash() string  { return u.passwordHash }
func (u *User) Role() Role            { return u.role }
func (u *User) LastLogin() *time.Time { return u.lastLogin }
func (u *User) IsActive() bool        { return u.isActive }
func (u *User) CreatedAt() time.Time  { return u.createdAt }
