package reservation

import (
	"errors"
	"math"
	"strings"
)

var (
	ErrInvalidDuration  = errors.New("duration_hours must be a positive integer")
	ErrDurationTooLong  = errors.New("duration_hours exceeds the maximum booking length")
	ErrEmptyStartTime   = errors.New("start_time is required")
	ErrStartTimeTooLong = errors.New("start_time is too long")
	ErrNegativeMoney    = errors.New("money cannot be negative")
	ErrCostOverflow     = errors.New("total cost overflows")
)

const (
	MaxDurationHours  = 24 * 31
	maxStartTimeRunes = 64
)

// DurationHours is the booked length in whole hours, always > 0.
type DurationHours struct {
	hours int
}

func NewDurationHours(h int) (DurationHours, error) {
	if h <= 0 {
		return DurationHours{}, ErrInvalidDuration
	}
	if h > MaxDurationHours {
		return DurationHours{}, ErrDurationTooLong
	}
	return DurationHours{hours: h}, nil
}

func (d DurationHours) Hours() int {
	return d.hours
}

// StartTime is kept as the caller supplied it; only emptiness and length are checked.
type StartTime struct {
	value string
}

func NewStartTime(s string) (StartTime, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return StartTime{}, ErrEmptyStartTime
	}
	if len([]rune(s)) > maxStartTimeRunes {
		return StartTime{}, ErrStartTimeTooLong
	}
	return StartTime{value: s}, nil
}

func (s StartTime) String() string {
	return s.value
}

// Money is an amount in cents.
type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeMoney
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

// Amount returns the decimal value, e.g. 450 cents -> 4.5.
func (m Money) Amount() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) Times(n int) (Money, error) {
	if n < 0 {
		return Money{}, ErrNegativeMoney
	}
	if n != 0 && m.cents > math.MaxInt64/int64(n) {
		return Money{}, ErrCostOverflow
	}
	return Money{cents: m.cents * int64(n)}, nil
}
