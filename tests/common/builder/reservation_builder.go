//go:build unit || e2e

package builder

import (
	"time"

	reqdto "parkspot/internal/handler/dto/request"
	"parkspot/internal/usecase/queries"
)

type ReservationBuilder struct {
	ID             int64
	UserID         int64
	SpotID         int64
	StartTime      string
	DurationHours  int
	TotalCostCents int64
	Status         string
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:             1,
		UserID:         1,
		SpotID:         1,
		StartTime:      "2026-10-18T09:00",
		DurationHours:  2,
		TotalCostCents: 900,
		Status:         "active",
	}
}

func (r *ReservationBuilder) WithID(id int64) *ReservationBuilder {
	r.ID = id
	return r
}

func (r *ReservationBuilder) WithUserID(id int64) *ReservationBuilder {
	r.UserID = id
	return r
}

func (r *ReservationBuilder) WithSpotID(id int64) *ReservationBuilder {
	r.SpotID = id
	return r
}

func (r *ReservationBuilder) WithDurationHours(h int) *ReservationBuilder {
	r.DurationHours = h
	return r
}

func (r *ReservationBuilder) BuildDTO() reqdto.ReserveRequest {
	return reqdto.ReserveRequest{
		ParkingSpotID: r.SpotID,
		StartTime:     r.StartTime,
		DurationHours: r.DurationHours,
	}
}

func (r *ReservationBuilder) BuildReadModel() *queries.ReservationView {
	return &queries.ReservationView{
		ID:             r.ID,
		UserID:         r.UserID,
		ParkingSpotID:  r.SpotID,
		SpotName:       "Bahnhofplatz",
		SpotAddress:    "Bahnhofplatz 1, 8001 Zürich",
		StartTime:      r.StartTime,
		DurationHours:  r.DurationHours,
		TotalCostCents: r.TotalCostCents,
		Status:         r.Status,
		CreatedAt:      time.Date(2026, 10, 18, 8, 0, 0, 0, time.UTC),
	}
}
