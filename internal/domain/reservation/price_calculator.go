package reservation

type PriceCalculator interface {
	TotalCost(pricePerHour Money, duration DurationHours) (Money, error)
}

// HourlyPriceCalculator charges the spot's hourly price for every booked hour.
type HourlyPriceCalculator struct{}

func NewHourlyPriceCalculator() *HourlyPriceCalculator {
	return &HourlyPriceCalculator{}
}

func (pc *HourlyPriceCalculator) TotalCost(pricePerHour Money, duration DurationHours) (Money, error) {
	return pricePerHour.Times(duration.Hours())
}
