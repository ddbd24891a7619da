package shared

import (
	"context"

	"parkspot/internal/domain/reservation"
	"parkspot/internal/domain/spot"
	"parkspot/internal/domain/user"
	"parkspot/internal/infra/query"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db query.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Spots() SpotRepository
	Reservations() ReservationRepository
	Users() UserRepository
	DB() query.DBTX
}

type CommandReads interface {
	SpotByID(ctx context.Context, id int64) (*SpotSnapshot, error)
	UserByEmail(ctx context.Context, email string) (*UserCredentialSnapshot, error)
}

type SpotRepository interface {
	// GetForUpdate reads the spot and holds its row lock until the transaction ends.
	GetForUpdate(ctx context.Context, id int64) (*spot.Spot, error)
	// IncrementOccupancy reports false when the conditional update found no free capacity.
	IncrementOccupancy(ctx context.Context, id int64) (bool, error)
	DecrementOccupancy(ctx context.Context, id int64) (bool, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) (int64, error)
	GetForUpdate(ctx context.Context, id int64) (*reservation.Reservation, error)
	Complete(ctx context.Context, res *reservation.Reservation) error
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) (int64, error)
	UpdateLastLogin(ctx context.Context, userID int64) error
}
