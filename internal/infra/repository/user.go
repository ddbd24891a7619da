package repository

import (
	"context"

	"parkspot/internal/domain/user"
	"parkspot/internal/infra"
	"parkspot/internal/infra/query"
)

type UserWriteQueries interface {
	CreateUser(ctx context.Context, db query.DBTX, arg query.CreateUserParams) (int64, error)
	UpdateUserLastLogin(ctx context.Context, db query.DBTX, id int64) error
}

type UserRepository struct {
	queries UserWriteQueries
	db      query.DBTX
}

func NewUserRepository(queries UserWriteQueries, db query.DBTX) *UserRepository {
	return &UserRepository{
		queries: queries,
		db:      db,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) (int64, error) {
	id, err := r.queries.CreateUser(ctx, r.db, query.CreateUserParams{
		Email:        u.Email().Value(),
		PasswordHash: u.PasswordHash(),
		Name:         u.Name().Value(),
		Role:         u.Role().String(),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create user", err)
	}
	return id, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID int64) error {
	err := r.queries.UpdateUserLastLogin(ctx, r.db, userID)
	if err != nil {
		return infra.WrapRepoErr("failed to update user last login", err)
	}
	return nil
}
