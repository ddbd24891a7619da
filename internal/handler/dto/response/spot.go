package response

import (
	"github.com/jinzhu/copier"

	"parkspot/internal/usecase/queries"
)

type SpotResponse struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Address        string  `json:"address"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	TotalSpots     int     `json:"total_spots"`
	OccupiedSpots  int     `json:"occupied_spots"`
	PricePerHour   float64 `json:"price_per_hour"`
	IsActive       bool    `json:"is_active"`
	AvailableSpots int     `json:"available_spots"`
}

func FromSpotView(v *queries.SpotView) (*SpotResponse, error) {
	out := &SpotResponse{}
	if err := copier.Copy(out, v); err != nil {
		return nil, err
	}
	out.PricePerHour = centsToAmount(v.PricePerHourCents)
	return out, nil
}

func FromSpotViews(views []*queries.SpotView) ([]*SpotResponse, error) {
	out := make([]*SpotResponse, 0, len(views))
	for _, v := range views {
		resp, err := FromSpotView(v)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}

func centsToAmount(cents int64) float64 {
	return float64(cents) / 100
}
