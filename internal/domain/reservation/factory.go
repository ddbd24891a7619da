package reservation

import (
	"parkspot/internal/domain/spot"
	"parkspot/internal/pkg/clock"
)

type Factory struct {
	Clock           clock.Clock
	PriceCalculator PriceCalculator
}

func NewFactory(clock clock.Clock, priceCalculator PriceCalculator) *Factory {
	return &Factory{
		Clock:           clock,
		PriceCalculator: priceCalculator,
	}
}

// CreateReservation validates the spot can take one more booking and prices it.
// The spot must be the copy read under the row lock, not an earlier snapshot.
func (f *Factory) CreateReservation(
	spotEntity *spot.Spot,
	userID int64,
	startTime StartTime,
	duration DurationHours,
) (*Reservation, error) {
	if err := spotEntity.CheckReservable(); err != nil {
		return nil, err
	}

	pricePerHour, err := NewMoney(spotEntity.PricePerHourCents())
	if err != nil {
		return nil, err
	}

	totalCost, err := f.PriceCalculator.TotalCost(pricePerHour, duration)
	if err != nil {
		return nil, err
	}

	return &Reservation{
		userID:        userID,
		spotID:        spotEntity.ID(),
		startTime:     startTime,
		durationHours: duration,
		totalCost:     totalCost,
		status:        StatusActive,
		createdAt:     f.Clock.Now(),
	}, nil
}
