package readstore

import (
	"context"

	"parkspot/internal/infra"
	"parkspot/internal/infra/query"
	"parkspot/internal/pkg/pgconv"
	"parkspot/internal/usecase/queries"
)

type UserReadQueries interface {
	FindUserByID(ctx context.Context, db query.DBTX, id int64) (query.User, error)
	FindUserByEmail(ctx context.Context, db query.DBTX, email string) (query.User, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      query.DBTX
}

func NewUserReadStore(queries UserReadQueries, db query.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id int64) (*queries.AuthorizedUserView, error) {
	row, err := r.queries.FindUserByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return toAuthorizedUserView(row), nil
}

// FindByEmail also returns the stored password hash for credential checks.
func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	row, err := r.queries.FindUserByEmail(ctx, r.db, email)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}

	return toAuthorizedUserView(row), row.PasswordHash, nil
}

func toAuthorizedUserView(row query.User) *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:        row.ID,
		Email:     row.Email,
		Name:      row.Name,
		Role:      row.Role,
		IsActive:  row.IsActive,
		LastLogin: pgconv.TimePtrFromPgtype(row.LastLogin),
	}
}
