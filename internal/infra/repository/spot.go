package repository

import (
	"context"

	"parkspot/internal/domain/spot"
	"parkspot/internal/infra"
	"parkspot/internal/infra/query"
	"parkspot/internal/infra/repository/converter"
)

type SpotWriteQueries interface {
	GetSpotByIDForUpdate(ctx context.Context, db query.DBTX, id int64) (query.ParkingSpot, error)
	IncrementSpotOccupancy(ctx context.Context, db query.DBTX, id int64) (int64, error)
	DecrementSpotOccupancy(ctx context.Context, db query.DBTX, id int64) (int64, error)
}

type SpotRepository struct {
	queries SpotWriteQueries
	db      query.DBTX
}

func NewSpotRepository(queries SpotWriteQueries, db query.DBTX) *SpotRepository {
	return &SpotRepository{
		queries: queries,
		db:      db,
	}
}

func (r *SpotRepository) GetForUpdate(ctx context.Context, id int64) (*spot.Spot, error) {
	row, err := r.queries.GetSpotByIDForUpdate(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock parking spot", err)
	}

	s, err := converter.SpotFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load parking spot", err, infra.KindDBFailure)
	}
	return s, nil
}

func (r *SpotRepository) IncrementOccupancy(ctx context.Context, id int64) (bool, error) {
	n, err := r.queries.IncrementSpotOccupancy(ctx, r.db, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to increment spot occupancy", err)
	}
	return n == 1, nil
}

func (r *SpotRepository) DecrementOccupancy(ctx context.Context, id int64) (bool, error) {
	n, err := r.queries.DecrementSpotOccupancy(ctx, r.db, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to decrement spot occupancy", err)
	}
	return n == 1, nil
}
