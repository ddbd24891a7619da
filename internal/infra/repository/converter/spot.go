package converter

import (
	"parkspot/internal/domain/spot"
	"parkspot/internal/infra/query"
	"parkspot/internal/pkg/errs"
)

func SpotFromRow(row query.ParkingSpot) (*spot.Spot, error) {
	s, err := spot.Reconstruct(spot.Params{
		ID:                row.ID,
		Name:              row.Name,
		Address:           row.Address,
		Latitude:          row.Latitude,
		Longitude:         row.Longitude,
		TotalSpots:        int(row.TotalSpots),
		OccupiedSpots:     int(row.OccupiedSpots),
		PricePerHourCents: row.PricePerHourCents,
		IsActive:          row.IsActive,
	})
	if err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "parking spot %d", row.ID), ErrCorruptRow)
	}
	return s, nil
}
