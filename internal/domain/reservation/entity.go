package reservation

import (
	"errors"
	"time"
)

var (
	ErrInvalidStatus = errors.New("invalid reservation status")
	ErrNotActive     = errors.New("reservation is not active")
	ErrNotOwner      = errors.New("reservation belongs to another user")
)

// Reservation links a user to a spot for a priced duration.
// The total cost is frozen when the reservation is created.
type Reservation struct {
	id            int64
	userID        int64
	spotID        int64
	startTime     StartTime
	durationHours DurationHours
	totalCost     Money
	status        Status
	createdAt     time.Time
	endedAt       *time.Time
}

func ReconstructReservation(
	id, userID, spotID int64,
	startTime StartTime,
	durationHours DurationHours,
	totalCost Money,
	status Status,
	createdAt time.Time,
	endedAt *time.Time,
) *Reservation {
	return &Reservation{
		id:            id,
		userID:        userID,
		spotID:        spotID,
		startTime:     startTime,
		durationHours: durationHours,
		totalCost:     totalCost,
		status:        status,
		createdAt:     createdAt,
		endedAt:       endedAt,
	}
}

// End completes an active reservation owned by userID.
func (r *Reservation) End(userID int64, now time.Time) error {
	if r.userID != userID {
		return ErrNotOwner
	}
	if r.status != StatusActive {
		return ErrNotActive
	}
	r.status = StatusCompleted
	r.endedAt = &now
	return nil
}

func (r *Reservation) IsActive() bool {
	return r.status == StatusActive
}

func (r *Reservation) ID() int64                    { return r.id }
func (r *Reservation) UserID() int64                { return r.userID }
func (r *Reservation) SpotID() int64                { return r.spotID }
func (r *Reservation) StartTime() StartTime         { return r.startTime }
func (r *Reservation) DurationHours() DurationHours { return r.durationHours }
func (r *Reservation) TotalCost() Money             { return r.totalCost }
func (r *Reservation) Status() Status               { return r.status }
func (r *Reservation) CreatedAt() time.Time         { return r.createdAt }
func (r *Reservation) EndedAt() *time.Time          { return r.endedAt }
