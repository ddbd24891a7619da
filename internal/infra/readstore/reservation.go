package readstore

import (
	"context"

	"parkspot/internal/infra"
	"parkspot/internal/infra/query"
	"parkspot/internal/pkg/pgconv"
	"parkspot/internal/usecase/queries"
)

type ReservationViewQueries interface {
	GetReservationDetail(ctx context.Context, db query.DBTX, id int64) (query.ReservationDetailRow, error)
	ListReservationsByUser(ctx context.Context, db query.DBTX, arg query.ListReservationsByUserParams) ([]query.ReservationDetailRow, error)
}

// ReservationReadStore runs on whatever handle the caller passes, usually a
// read-only transaction opened by the unit of work.
type ReservationReadStore struct {
	queries ReservationViewQueries
}

func NewReservationReadStore(queries ReservationViewQueries) *ReservationReadStore {
	return &ReservationReadStore{queries: queries}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, db query.DBTX, id int64) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationDetail(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	return toReservationView(row), nil
}

func (r *ReservationReadStore) FindByUserID(ctx context.Context, db query.DBTX, userID int64, limit, offset int32) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListReservationsByUser(ctx, db, query.ListReservationsByUserParams{
		UserID: userID,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by user", err)
	}

	result := make([]*queries.ReservationView, len(rows))
	for i, row := range rows {
		result[i] = toReservationView(row)
	}
	return result, nil
}

func toReservationView(row query.ReservationDetailRow) *queries.ReservationView {
	return &queries.ReservationView{
		ID:             row.ID,
		UserID:         row.UserID,
		ParkingSpotID:  row.ParkingSpotID,
		SpotName:       row.SpotName,
		SpotAddress:    row.SpotAddress,
		StartTime:      row.StartTime,
		DurationHours:  int(row.DurationHours),
		TotalCostCents: row.TotalCostCents,
		Status:         row.Status,
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		EndedAt:        pgconv.TimePtrFromPgtype(row.EndedAt),
	}
}
