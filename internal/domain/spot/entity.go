package spot

import (
	"errors"
	"strings"
)

var (
	ErrInactive        = errors.New("parking spot is not active")
	ErrFull            = errors.New("parking spot has no free capacity")
	ErrInvalidCapacity = errors.New("occupied spots must be between 0 and total spots")
	ErrNegativePrice   = errors.New("price per hour cannot be negative")
	ErrInvalidName     = errors.New("parking spot name is required")
)

// Spot is a parking location with a finite capacity and a live occupancy counter.
// Invariant: 0 <= occupied <= total.
type Spot struct {
	id                int64
	name              string
	address           string
	latitude          float64
	longitude         float64
	totalSpots        int
	occupiedSpots     int
	pricePerHourCents int64
	isActive          bool
}

type Params struct {
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

// Reconstruct rebuilds a spot from stored state and rejects rows that break the capacity invariant.
func Reconstruct(p Params) (*Spot, error) {
	if strings.TrimSpace(p.Name) == "" {
		return nil, ErrInvalidName
	}
	if p.TotalSpots < 0 || p.OccupiedSpots < 0 || p.OccupiedSpots > p.TotalSpots {
		return nil, ErrInvalidCapacity
	}
	if p.PricePerHourCents < 0 {
		return nil, ErrNegativePrice
	}

	return &Spot{
		id:                p.ID,
		name:              p.Name,
		address:           p.Address,
		latitude:          p.Latitude,
		longitude:         p.Longitude,
		totalSpots:        p.TotalSpots,
		occupiedSpots:     p.OccupiedSpots,
		pricePerHourCents: p.PricePerHourCents,
		isActive:          p.IsActive,
	}, nil
}

func (s *Spot) Available() int {
	return s.totalSpots - s.occupiedSpots
}

// CheckReservable reports why the spot cannot take one more reservation, if it cannot.
func (s *Spot) CheckReservable() error {
	if !s.isActive {
		return ErrInactive
	}
	if s.Available() <= 0 {
		return ErrFull
	}
	return nil
}

func (s *Spot) ID() int64                { return s.id }
func (s *Spot) Name() string             { return s.name }
func (s *Spot) Address() string          { return s.address }
func (s *Spot) Latitude() float64        { return s.latitude }
func (s *Spot) Longitude() float64       { return s.longitude }
func (s *Spot) TotalSpots() int          { return s.totalSpots }
func (s *Spot) OccupiedSpots() int       { return s.occupiedSpots }
func (s *Spot) PricePerHourCents() int64 { return s.pricePerHourCents }
func (s *Spot) IsActive() bool           { return s.isActive }
