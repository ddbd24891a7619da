package converter

import (
	"math"

	"parkspot/internal/domain/reservation"
	"parkspot/internal/infra/query"
	"parkspot/internal/pkg/errs"
	"parkspot/internal/pkg/pgconv"
)

var ErrCorruptRow = errs.New("stored row violates domain rules")

func ReservationToCreateParams(res *reservation.Reservation) (query.CreateReservationParams, error) {
	hours := res.DurationHours().Hours()
	if hours > math.MaxInt32 {
		return query.CreateReservationParams{}, reservation.ErrDurationTooLong
	}

	return query.CreateReservationParams{
		UserID:         res.UserID(),
		ParkingSpotID:  res.SpotID(),
		StartTime:      res.StartTime().String(),
		DurationHours:  int32(hours), // #nosec G115 -- bounded above
		TotalCostCents: res.TotalCost().Cents(),
		Status:         res.Status().String(),
		CreatedAt:      res.CreatedAt(),
	}, nil
}

func ReservationFromRow(row query.Reservation) (*reservation.Reservation, error) {
	start, err := reservation.NewStartTime(row.StartTime)
	if err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "reservation %d", row.ID), ErrCorruptRow)
	}
	dur, err := reservation.NewDurationHours(int(row.DurationHours))
	if err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "reservation %d", row.ID), ErrCorruptRow)
	}
	cost, err := reservation.NewMoney(row.TotalCostCents)
	if err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "reservation %d", row.ID), ErrCorruptRow)
	}
	status, err := reservation.NewStatus(row.Status)
	if err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "reservation %d", row.ID), ErrCorruptRow)
	}

	return reservation.ReconstructReservation(
		row.ID,
		row.UserID,
		row.ParkingSpotID,
		start,
		dur,
		cost,
		status,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimePtrFromPgtype(row.EndedAt),
	), nil
}
