package query

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type ParkingSpot struct {
	ID                int64
	Name              string
	Address           string
	Latitude          float64
	Longitude         float64
	TotalSpots        int32
	OccupiedSpots     int32
	PricePerHourCents int64
	IsActive          bool
	CreatedAt         pgtype.Timestamptz
	UpdatedAt         pgtype.Timestamptz
}

type Reservation struct {
	ID             int64
	UserID         int64
	ParkingSpotID  int64
	StartTime      string
	DurationHours  int32
	TotalCostCents int64
	Status         string
	CreatedAt      pgtype.Timestamptz
	EndedAt        pgtype.Timestamptz
}

type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Name         string
	Role         string
	IsActive     bool
	LastLogin    pgtype.Timestamptz
	CreatedAt    pgtype.Timestamptz
	UpdatedAt    pgtype.Timestamptz
}
