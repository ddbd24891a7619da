package queries

//go:generate mockgen -destination=../../../tests/mock/queries/mock.go -package=queriesmock parkspot/internal/usecase/queries ReservationQueries,SpotQueries,UserQueries

import (
	"time"
)

// SpotView is the catalog row with the derived free capacity.
type SpotView struct {
	ID                int64   `json:"id"`
	Name              string  `json:"name"`
	Address           string  `json:"address"`
	Latitude          float64 `json:"latitude"`
	Longitude         float64 `json:"longitude"`
	TotalSpots        int     `json:"total_spots"`
	OccupiedSpots     int     `json:"occupied_spots"`
	AvailableSpots    int     `json:"available_spots"`
	PricePerHourCents int64   `json:"price_per_hour_cents"`
	IsActive          bool    `json:"is_active"`
}

type ReservationView struct {
	ID             int64      `json:"id"`
	UserID         int64      `json:"user_id"`
	ParkingSpotID  int64      `json:"parking_spot_id"`
	SpotName       string     `json:"spot_name"`
	SpotAddress    string     `json:"spot_address"`
	StartTime      string     `json:"start_time"`
	DurationHours  int        `json:"duration_hours"`
	TotalCostCents int64      `json:"total_cost_cents"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
	EndedAt        *time.Time `json:"ended_at,omitempty"`
}

type AuthorizedUserView struct {
	ID        int64      `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}
