//go:build unit

package commands

import (
	"context"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"parkspot/internal/domain/reservation"
	"parkspot/internal/domain/spot"
	"parkspot/internal/domain/user"
	"parkspot/internal/infra"
	"parkspot/internal/infra/query"
	"parkspot/internal/usecase/shared"
)

type spotRow struct {
	total, occupied int
	priceCents      int64
	active          bool
}

type reservationRow struct {
	userID, spotID int64
	start          string
	hours          int
	costCents      int64
	status         string
	createdAt      time.Time
	endedAt        *time.Time
}

type userRow struct {
	email, name, hash, role string
	active                  bool
	lastLogin               *time.Time
}

type memState struct {
	spots        map[int64]spotRow
	reservations map[int64]reservationRow
	users        map[int64]userRow
	nextResID    int64
	nextUserID   int64
}

func (s memState) clone() memState {
	c := memState{
		spots:        make(map[int64]spotRow, len(s.spots)),
		reservations: make(map[int64]reservationRow, len(s.reservations)),
		users:        make(map[int64]userRow, len(s.users)),
		nextResID:    s.nextResID,
		nextUserID:   s.nextUserID,
	}
	for k, v := range s.spots {
		c.spots[k] = v
	}
	for k, v := range s.reservations {
		c.reservations[k] = v
	}
	for k, v := range s.users {
		c.users[k] = v
	}
	return c
}

// memUoW serializes transactions and restores the pre-transaction state when fn fails.
type memUoW struct {
	mu    sync.Mutex
	state memState

	failIncrement error
	failCreate    error
	failLastLogin error
	readErr       error
}

func newMemUoW() *memUoW {
	return &memUoW{state: memState{
		spots:        map[int64]spotRow{},
		reservations: map[int64]reservationRow{},
		users:        map[int64]userRow{},
	}}
}

func (u *memUoW) addSpot(id int64, total, occupied int, priceCents int64, active bool) {
	u.state.spots[id] = spotRow{total: total, occupied: occupied, priceCents: priceCents, active: active}
}

func (u *memUoW) spot(id int64) spotRow {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.state.spots[id]
}

func (u *memUoW) reservationCount() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.state.reservations)
}

func (u *memUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	saved := u.state.clone()
	if err := fn(ctx, &memTx{u: u}); err != nil {
		u.state = saved
		return err
	}
	return nil
}

func (u *memUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db query.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *memUoW) CommandReads() shared.CommandReads {
	return &memReads{u: u}
}

type memReads struct{ u *memUoW }

func (r *memReads) SpotByID(_ context.Context, id int64) (*shared.SpotSnapshot, error) {
	if r.u.readErr != nil {
		return nil, infra.WrapRepoErr("read failed", r.u.readErr)
	}
	r.u.mu.Lock()
	defer r.u.mu.Unlock()
	row, ok := r.u.state.spots[id]
	if !ok {
		return nil, infra.WrapRepoErr("parking spot not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return &shared.SpotSnapshot{ID: id, TotalSpots: row.total, OccupiedSpots: row.occupied, PricePerHourCents: row.priceCents, IsActive: row.active}, nil
}

func (r *memReads) UserByEmail(_ context.Context, email string) (*shared.UserCredentialSnapshot, error) {
	r.u.mu.Lock()
	defer r.u.mu.Unlock()
	for id, row := range r.u.state.users {
		if row.email == email {
			return &shared.UserCredentialSnapshot{ID: id, Email: row.email, Name: row.name, Role: row.role, PasswordHash: row.hash, IsActive: row.active}, nil
		}
	}
	return nil, infra.WrapRepoErr("user not found", pgx.ErrNoRows, infra.KindNotFound)
}

type memTx struct{ u *memUoW }

func (t *memTx) Spots() shared.SpotRepository               { return &memSpots{u: t.u} }
func (t *memTx) Reservations() shared.ReservationRepository { return &memReservations{u: t.u} }
func (t *memTx) Users() shared.UserRepository               { return &memUsers{u: t.u} }
func (t *memTx) DB() query.DBTX                             { return nil }

type memSpots struct{ u *memUoW }

func (s *memSpots) GetForUpdate(_ context.Context, id int64) (*spot.Spot, error) {
	row, ok := s.u.state.spots[id]
	if !ok {
		return nil, infra.WrapRepoErr("failed to lock parking spot", pgx.ErrNoRows)
	}
	return spot.Reconstruct(spot.Params{
		ID: id, Name: "spot", TotalSpots: row.total, OccupiedSpots: row.occupied,
		PricePerHourCents: row.priceCents, IsActive: row.active,
	})
}

func (s *memSpots) IncrementOccupancy(_ context.Context, id int64) (bool, error) {
	if s.u.failIncrement != nil {
		return false, infra.WrapRepoErr("failed to increment spot occupancy", s.u.failIncrement)
	}
	row, ok := s.u.state.spots[id]
	if !ok || !row.active || row.occupied >= row.total {
		return false, nil
	}
	row.occupied++
	s.u.state.spots[id] = row
	return true, nil
}

func (s *memSpots) DecrementOccupancy(_ context.Context, id int64) (bool, error) {
	row, ok := s.u.state.spots[id]
	if !ok || row.occupied == 0 {
		return false, nil
	}
	row.occupied--
	s.u.state.spots[id] = row
	return true, nil
}

type memReservations struct{ u *memUoW }

func (r *memReservations) Create(_ context.Context, res *reservation.Reservation) (int64, error) {
	if r.u.failCreate != nil {
		return 0, infra.WrapRepoErr("failed to create reservation", r.u.failCreate)
	}
	r.u.state.nextResID++
	id := r.u.state.nextResID
	r.u.state.reservations[id] = reservationRow{
		userID:    res.UserID(),
		spotID:    res.SpotID(),
		start:     res.StartTime().String(),
		hours:     res.DurationHours().Hours(),
		costCents: res.TotalCost().Cents(),
		status:    res.Status().String(),
		createdAt: res.CreatedAt(),
	}
	return id, nil
}

func (r *memReservations) GetForUpdate(_ context.Context, id int64) (*reservation.Reservation, error) {
	row, ok := r.u.state.reservations[id]
	if !ok {
		return nil, infra.WrapRepoErr("failed to lock reservation", pgx.ErrNoRows)
	}
	start, _ := reservation.NewStartTime(row.start)
	dur, _ := reservation.NewDurationHours(row.hours)
	cost, _ := reservation.NewMoney(row.costCents)
	status, _ := reservation.NewStatus(row.status)
	return reservation.ReconstructReservation(id, row.userID, row.spotID, start, dur, cost, status, row.createdAt, row.endedAt), nil
}

func (r *memReservations) Complete(_ context.Context, res *reservation.Reservation) error {
	row := r.u.state.reservations[res.ID()]
	if row.status != "active" {
		return infra.WrapRepoErr("reservation is not active", nil, infra.KindConflict)
	}
	row.status = res.Status().String()
	row.endedAt = res.EndedAt()
	r.u.state.reservations[res.ID()] = row
	return nil
}

type memUsers struct{ u *memUoW }

func (m *memUsers) Create(_ context.Context, usr *user.User) (int64, error) {
	for _, row := range m.u.state.users {
		if row.email == usr.Email().Value() {
			return 0, infra.WrapRepoErr("failed to create user", &pgconn.PgError{Code: "23505"})
		}
	}
	m.u.state.nextUserID++
	id := m.u.state.nextUserID
	m.u.state.users[id] = userRow{
		email:  usr.Email().Value(),
		name:   usr.Name().Value(),
		hash:   usr.PasswordHash(),
		role:   usr.Role().String(),
		active: true,
	}
	return id, nil
}

func (m *memUsers) UpdateLastLogin(_ context.Context, id int64) error {
	if m.u.failLastLogin != nil {
		return infra.WrapRepoErr("failed to update user last login", m.u.failLastLogin)
	}
	row := m.u.state.users[id]
	now := time.Now()
	row.lastLogin = &now
	m.u.state.users[id] = row
	return nil
}

type countingInvalidator struct {
	mu    sync.Mutex
	calls int
}

func (c *countingInvalidator) Invalidate(context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
}

func (c *countingInvalidator) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}
