package readstore

import (
	"context"

	"parkspot/internal/infra"
	"parkspot/internal/infra/query"
	"parkspot/internal/pkg/pgconv"
	"parkspot/internal/usecase/queries"
)

type SpotViewQueries interface {
	ListActiveSpots(ctx context.Context, db query.DBTX) ([]query.ParkingSpot, error)
	GetSpotByID(ctx context.Context, db query.DBTX, id int64) (query.ParkingSpot, error)
}

type SpotReadStore struct {
	queries SpotViewQueries
	db      query.DBTX
}

func NewSpotReadStore(queries SpotViewQueries, db query.DBTX) *SpotReadStore {
	return &SpotReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *SpotReadStore) FindActive(ctx context.Context) ([]*queries.SpotView, error) {
	rows, err := r.queries.ListActiveSpots(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list parking spots", err)
	}

	result := make([]*queries.SpotView, len(rows))
	for i, row := range rows {
		result[i] = toSpotView(row)
	}
	return result, nil
}

func (r *SpotReadStore) FindByID(ctx context.Context, id int64) (*queries.SpotView, error) {
	row, err := r.queries.GetSpotByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("parking spot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find parking spot by ID", err)
	}
	return toSpotView(row), nil
}

func toSpotView(row query.ParkingSpot) *queries.SpotView {
	return &queries.SpotView{
		ID:                row.ID,
		Name:              row.Name,
		Address:           row.Address,
		Latitude:          row.Latitude,
		Longitude:         row.Longitude,
		TotalSpots:        int(row.TotalSpots),
		OccupiedSpots:     int(row.OccupiedSpots),
		AvailableSpots:    int(row.TotalSpots - row.OccupiedSpots),
		PricePerHourCents: row.PricePerHourCents,
		IsActive:          row.IsActive,
	}
}
