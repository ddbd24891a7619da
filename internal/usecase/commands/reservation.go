package commands

//go:generate mockgen -destination=../../../tests/mock/commands/mock.go -package=commandsmock parkspot/internal/usecase/commands AuthCommands,ReservationCommands

import (
	"context"
	"errors"
	"log/slog"

	"parkspot/internal/domain/reservation"
	"parkspot/internal/domain/spot"
	"parkspot/internal/infra"
	"parkspot/internal/pkg/clock"
	"parkspot/internal/pkg/errs"
	"parkspot/internal/pkg/metrics"
	"parkspot/internal/usecase/shared"
)

var (
	ErrSpotNotFound         = errs.New("parking spot does not exist")
	ErrSpotInactive         = errs.New("parking spot is deactivated")
	ErrSpotFull             = errs.New("parking spot is full")
	ErrValidation           = errs.New("validation failed")
	ErrTransactionFailure   = errs.New("reservation transaction failed")
	ErrReservationNotFound  = errs.New("reservation does not exist")
	ErrReservationNotActive = errs.New("reservation has already ended")

	errInvalidSpotID = errors.New("parking_spot_id must be a positive integer")
)

// IsSpotUnavailable reports the three ways a spot can refuse a booking.
func IsSpotUnavailable(err error) bool {
	return errs.IsAny(err, ErrSpotNotFound, ErrSpotInactive, ErrSpotFull)
}

type ReserveInput struct {
	SpotID        int64
	StartTime     string
	DurationHours int
}

type ReserveResult struct {
	ReservationID int64
	TotalCost     reservation.Money
}

// SpotCacheInvalidator drops cached availability after a committed occupancy change.
type SpotCacheInvalidator interface {
	Invalidate(ctx context.Context)
}

type ReservationCommands interface {
	Reserve(ctx context.Context, userID int64, in ReserveInput) (*ReserveResult, error)
	End(ctx context.Context, userID, reservationID int64) error
}

type reservationCommandsImpl struct {
	uow     shared.UnitOfWork
	factory *reservation.Factory
	cache   SpotCacheInvalidator
	clock   clock.Clock
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	factory *reservation.Factory,
	cache SpotCacheInvalidator,
	clock clock.Clock,
) ReservationCommands {
	return &reservationCommandsImpl{
		uow:     uow,
		factory: factory,
		cache:   cache,
		clock:   clock,
	}
}

func (r *reservationCommandsImpl) Reserve(ctx context.Context, userID int64, in ReserveInput) (*ReserveResult, error) {
	start, duration, err := validateReserveInput(in)
	if err != nil {
		metrics.RecordReservation(metrics.OutcomeInvalid)
		return nil, err
	}

	if err := r.checkAvailability(ctx, in.SpotID); err != nil {
		r.recordFailure(err)
		return nil, err
	}

	var result *ReserveResult
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, err := tx.Spots().GetForUpdate(ctx, in.SpotID)
		if err != nil {
			return mapSpotLoadError(err)
		}

		res, err := r.factory.CreateReservation(s, userID, start, duration)
		if err != nil {
			return mapReserveDomainError(err)
		}

		id, err := tx.Reservations().Create(ctx, res)
		if err != nil {
			return errs.Mark(err, ErrTransactionFailure)
		}

		applied, err := tx.Spots().IncrementOccupancy(ctx, in.SpotID)
		if err != nil {
			if infra.IsKind(err, infra.KindCheckViolated) {
				return errs.Mark(err, ErrSpotFull)
			}
			return errs.Mark(err, ErrTransactionFailure)
		}
		if !applied {
			return ErrSpotFull
		}

		result = &ReserveResult{
			ReservationID: id,
			TotalCost:     res.TotalCost(),
		}
		return nil
	})
	if err != nil {
		if !IsSpotUnavailable(err) && !errs.IsAny(err, ErrValidation, ErrTransactionFailure) {
			err = errs.Mark(err, ErrTransactionFailure)
		}
		r.recordFailure(err)
		return nil, err
	}

	r.cache.Invalidate(ctx)
	metrics.RecordReservation(metrics.OutcomeSuccess)
	slog.Info("reservation committed",
		"reservation_id", result.ReservationID,
		"user_id", userID,
		"spot_id", in.SpotID,
		"total_cost_cents", result.TotalCost.Cents())

	return result, nil
}

// End completes the caller's active reservation and frees its unit of capacity.
func (r *reservationCommandsImpl) End(ctx context.Context, userID, reservationID int64) error {
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().GetForUpdate(ctx, reservationID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrReservationNotFound)
			}
			return errs.Mark(err, ErrTransactionFailure)
		}

		if err := res.End(userID, r.clock.Now()); err != nil {
			switch {
			case errs.Is(err, reservation.ErrNotOwner):
				return errs.Mark(err, ErrReservationNotFound)
			case errs.Is(err, reservation.ErrNotActive):
				return errs.Mark(err, ErrReservationNotActive)
			default:
				return errs.Mark(err, ErrValidation)
			}
		}

		if err := tx.Reservations().Complete(ctx, res); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(err, ErrReservationNotActive)
			}
			return errs.Mark(err, ErrTransactionFailure)
		}

		applied, err := tx.Spots().DecrementOccupancy(ctx, res.SpotID())
		if err != nil {
			return errs.Mark(err, ErrTransactionFailure)
		}
		if !applied {
			slog.Warn("spot occupancy already zero on release",
				"spot_id", res.SpotID(),
				"reservation_id", reservationID)
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.cache.Invalidate(ctx)
	metrics.RecordRelease()
	slog.Info("reservation ended", "reservation_id", reservationID, "user_id", userID)
	return nil
}

func validateReserveInput(in ReserveInput) (reservation.StartTime, reservation.DurationHours, error) {
	if in.SpotID <= 0 {
		return reservation.StartTime{}, reservation.DurationHours{}, errs.Mark(errInvalidSpotID, ErrValidation)
	}
	start, err := reservation.NewStartTime(in.StartTime)
	if err != nil {
		return reservation.StartTime{}, reservation.DurationHours{}, errs.Mark(err, ErrValidation)
	}
	duration, err := reservation.NewDurationHours(in.DurationHours)
	if err != nil {
		return reservation.StartTime{}, reservation.DurationHours{}, errs.Mark(err, ErrValidation)
	}
	return start, duration, nil
}

// checkAvailability is advisory; the locked re-read inside the transaction decides.
func (r *reservationCommandsImpl) checkAvailability(ctx context.Context, spotID int64) error {
	snap, err := r.uow.CommandReads().SpotByID(ctx, spotID)
	if err != nil {
		return mapSpotLoadError(err)
	}
	if !snap.IsActive {
		return ErrSpotInactive
	}
	if snap.Available() <= 0 {
		return ErrSpotFull
	}
	return nil
}

func mapSpotLoadError(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, ErrSpotNotFound)
	}
	return errs.Mark(err, ErrTransactionFailure)
}

func mapReserveDomainError(err error) error {
	switch {
	case errs.Is(err, spot.ErrInactive):
		return errs.Mark(err, ErrSpotInactive)
	case errs.Is(err, spot.ErrFull):
		return errs.Mark(err, ErrSpotFull)
	case errs.Is(err, reservation.ErrCostOverflow):
		return errs.Mark(err, ErrValidation)
	default:
		return errs.Mark(err, ErrTransactionFailure)
	}
}

func (r *reservationCommandsImpl) recordFailure(err error) {
	switch {
	case IsSpotUnavailable(err):
		metrics.RecordReservation(metrics.OutcomeUnavailable)
	case errs.Is(err, ErrValidation):
		metrics.RecordReservation(metrics.OutcomeInvalid)
	default:
		metrics.RecordReservation(metrics.OutcomeFailure)
	}
}
