package shared

// Write-side snapshots keep commands independent of read-side view types.

type SpotSnapshot struct {
	ID                int64
	TotalSpots        int
	OccupiedSpots     int
	PricePerHourCents int64
	IsActive          bool
}

func (s SpotSnapshot) Available() int {
	return s.TotalSpots - s.OccupiedSpots
}

type UserCredentialSnapshot struct {
	ID           int64
	Email        string
	Name         string
	Role         string
	PasswordHash string
	IsActive     bool
}
