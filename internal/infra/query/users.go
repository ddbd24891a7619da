package query

import (
	"context"
)

const userColumns = `id, email, password_hash, name, role, is_active, last_login, created_at, updated_at`

func scanUser(row interface{ Scan(dest ...any) error }) (User, error) {
	var u User
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.Name,
		&u.Role,
		&u.IsActive,
		&u.LastLogin,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	return u, err
}

type CreateUserParams struct {
	Email        string
	PasswordHash string
	Name         string
	Role         string
}

const createUser = `INSERT INTO users (email, password_hash, name, role)
VALUES ($1, $2, $3, $4)
RETURNING id`

func (q *Queries) CreateUser(ctx context.Context, db DBTX, arg CreateUserParams) (int64, error) {
	var id int64
	err := db.QueryRow(ctx, createUser, arg.Email, arg.PasswordHash, arg.Name, arg.Role).Scan(&id)
	return id, err
}

const findUserByEmail = `SELECT ` + userColumns + `
FROM users
WHERE email = $1`

func (q *Queries) FindUserByEmail(ctx context.Context, db DBTX, email string) (User, error) {
	return scanUser(db.QueryRow(ctx, findUserByEmail, email))
}

const findUserByID = `SELECT ` + userColumns + `
FROM users
WHERE id = $1`

func (q *Queries) FindUserByID(ctx context.Context, db DBTX, id int64) (User, error) {
	return scanUser(db.QueryRow(ctx, findUserByID, id))
}

const updateUserLastLogin = `UPDATE users
SET last_login = now(), updated_at = now()
WHERE id = $1`

func (q *Queries) UpdateUserLastLogin(ctx context.Context, db DBTX, id int64) error {
	_, err := db.Exec(ctx, updateUserLastLogin, id)
	return err
}
