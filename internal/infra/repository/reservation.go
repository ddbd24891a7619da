package repository

import (
	"context"

	"parkspot/internal/domain/reservation"
	"parkspot/internal/infra"
	"parkspot/internal/infra/query"
	"parkspot/internal/infra/repository/converter"
)

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db query.DBTX, arg query.CreateReservationParams) (int64, error)
	GetReservationByIDForUpdate(ctx context.Context, db query.DBTX, id int64) (query.Reservation, error)
	CompleteReservation(ctx context.Context, db query.DBTX, arg query.CompleteReservationParams) (int64, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
	db      query.DBTX
}

func NewReservationRepository(queries ReservationWriteQueries, db query.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) (int64, error) {
	params, err := converter.ReservationToCreateParams(res)
	if err != nil {
		return 0, infra.WrapRepoErr("invalid reservation", err, infra.KindDBFailure)
	}

	id, err := r.queries.CreateReservation(ctx, r.db, params)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create reservation", err)
	}
	return id, nil
}

func (r *ReservationRepository) GetForUpdate(ctx context.Context, id int64) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationByIDForUpdate(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock reservation", err)
	}

	res, err := converter.ReservationFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load reservation", err, infra.KindDBFailure)
	}
	return res, nil
}

// Complete persists an ended reservation. It reports KindConflict when the
// stored row was no longer active.
func (r *ReservationRepository) Complete(ctx context.Context, res *reservation.Reservation) error {
	endedAt := res.EndedAt()
	if endedAt == nil || res.IsActive() {
		return infra.WrapRepoErr("reservation has not been ended", nil, infra.KindConflict)
	}

	n, err := r.queries.CompleteReservation(ctx, r.db, query.CompleteReservationParams{
		ID:      res.ID(),
		Status:  res.Status().String(),
		EndedAt: *endedAt,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to complete reservation", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("reservation is not active", nil, infra.KindConflict)
	}
	return nil
}
