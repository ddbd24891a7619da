package commands

import (
	"context"
	"log/slog"
	"time"

	"parkspot/internal/domain/auth"
	"parkspot/internal/domain/user"
	"parkspot/internal/infra"
	"parkspot/internal/pkg/errs"
	"parkspot/internal/pkg/password"
	"parkspot/internal/usecase/shared"
)

var (
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUserInactive         = errs.New("user inactive")
	ErrEmailTaken           = errs.New("email already registered")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrRegistrationFailed   = errs.New("registration failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

type RegisterInput struct {
	Email    string
	Password string
	Name     string
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      AuthenticatedUser
}

type AuthenticatedUser struct {
	ID    int64
	Email string
	Name  string
	Role  string
}

type TokenIssuer interface {
	GenerateToken(userID int64, role user.Role) (string, time.Time, error)
}

type AuthCommands interface {
	Register(ctx context.Context, in RegisterInput) (int64, error)
	Login(ctx context.Context, in LoginInput) (*LoginResult, error)
}

type authCommandsImpl struct {
	uow    shared.UnitOfWork
	hasher password.Hasher
	tokens TokenIssuer
}

func NewAuthCommands(uow shared.UnitOfWork, hasher password.Hasher, tokens TokenIssuer) AuthCommands {
	return &authCommandsImpl{
		uow:    uow,
		hasher: hasher,
		tokens: tokens,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, in RegisterInput) (int64, error) {
	registration, err := auth.NewRegistration(in.Email, in.Password, in.Name)
	if err != nil {
		return 0, errs.Mark(err, ErrValidation)
	}

	hash, err := a.hasher.Hash(registration.Password().Value())
	if err != nil {
		return 0, errs.Mark(err, ErrRegistrationFailed)
	}

	newUser := user.NewUser(registration.Email(), registration.Name(), hash, user.RoleUser)

	var userID int64
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, createErr := tx.Users().Create(ctx, newUser)
		if createErr != nil {
			return createErr
		}
		userID = id
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return 0, errs.Mark(err, ErrEmailTaken)
		}
		return 0, errs.Mark(err, ErrRegistrationFailed)
	}

	slog.Info("user registered", "user_id", userID)
	return userID, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	credentials, err := auth.NewCredentials(in.Email, in.Password)
	if err != nil {
		// Malformed input gets the same answer as a wrong password.
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	snap, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(snap.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	token, expiresAt, err := a.tokens.GenerateToken(snap.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, snap.ID)
	})
	if err != nil {
		// Login already succeeded; only the last_login bookkeeping failed.
		slog.Warn("failed to update last login", "user_id", snap.ID, "error", err.Error())
	}

	return &LoginResult{
		Token:     token,
		ExpiresAt: expiresAt,
		User: AuthenticatedUser{
			ID:    snap.ID,
			Email: snap.Email,
			Name:  snap.Name,
			Role:  snap.Role,
		},
	}, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, credentials auth.Credentials) (*shared.UserCredentialSnapshot, error) {
	snap, err := a.uow.CommandReads().UserByEmail(ctx, credentials.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Same error as a password mismatch to prevent user enumeration
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	if err := a.hasher.Compare(snap.PasswordHash, credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !snap.IsActive {
		return nil, ErrUserInactive
	}

	return snap, nil
}
