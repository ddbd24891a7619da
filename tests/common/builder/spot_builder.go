//go:build unit || e2e

package builder

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"parkspot/internal/domain/spot"
	"parkspot/internal/infra/query"
	"parkspot/internal/usecase/queries"
)

type SpotBuilder struct {
	ID                int64
	Name              string
	Address           string
	Latitude          float64
	Longitude         float64
	TotalSpots        int
	OccupiedSpots     int
	PricePerHourCents int64
	IsActive          bool
}

func NewSpotBuilder() *SpotBuilder {
	return &SpotBuilder{
		ID:                1,
		Name:              "Bahnhofplatz",
		Address:           "Bahnhofplatz 1, 8001 Zürich",
		Latitude:          47.3779,
		Longitude:         8.5403,
		TotalSpots:        10,
		OccupiedSpots:     0,
		PricePerHourCents: 450,
		IsActive:          true,
	}
}

func (s *SpotBuilder) With(mutate func(*SpotBuilder)) *SpotBuilder {
	mutate(s)
	return s
}

func (s *SpotBuilder) BuildDomain() (*spot.Spot, error) {
	return spot.Reconstruct(spot.Params{
		ID:                s.ID,
		Name:              s.Name,
		Address:           s.Address,
		Latitude:          s.Latitude,
		Longitude:         s.Longitude,
		TotalSpots:        s.TotalSpots,
		OccupiedSpots:     s.OccupiedSpots,
		PricePerHourCents: s.PricePerHourCents,
		IsActive:          s.IsActive,
	})
}

func (s *SpotBuilder) BuildInfra() query.ParkingSpot {
	now := time.Now()
	return query.ParkingSpot{
		ID:                s.ID,
		Name:              s.Name,
		Address:           s.Address,
		Latitude:          s.Latitude,
		Longitude:         s.Longitude,
		TotalSpots:        int32(s.TotalSpots),
		OccupiedSpots:     int32(s.OccupiedSpots),
		PricePerHourCents: s.PricePerHourCents,
		IsActive:          s.IsActive,
		CreatedAt:         pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt:         pgtype.Timestamptz{Time: now, Valid: true},
	}
}

func (s *SpotBuilder) BuildReadModel() *queries.SpotView {
	return &queries.SpotView{
		ID:                s.ID,
		Name:              s.Name,
		Address:           s.Address,
		Latitude:          s.Latitude,
		Longitude:         s.Longitude,
		TotalSpots:        s.TotalSpots,
		OccupiedSpots:     s.OccupiedSpots,
		AvailableSpots:    s.TotalSpots - s.OccupiedSpots,
		PricePerHourCents: s.PricePerHourCents,
		IsActive:          s.IsActive,
	}
}

func (s *SpotBuilder) WithID(id int64) *SpotBuilder {
	s.ID = id
	return s
}

func (s *SpotBuilder) WithName(name string) *SpotBuilder {
	s.Name = name
	return s
}

func (s *SpotBuilder) WithCapacity(total, occupied int) *SpotBuilder {
	s.TotalSpots = total
	s.OccupiedSpots = occupied
	return s
}

func (s *SpotBuilder) WithPricePerHourCents(cents int64) *SpotBuilder {
	s.PricePerHourCents = cents
	return s
}

func (s *SpotBuilder) AsInactive() *SpotBuilder {
	s.IsActive = false
	return s
}
