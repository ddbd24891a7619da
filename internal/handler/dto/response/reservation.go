package response

import (
	"time"

	"github.com/jinzhu/copier"

	"parkspot/internal/usecase/commands"
	"parkspot/internal/usecase/queries"
)

type ReservationResponse struct {
	ID            int64      `json:"id"`
	UserID        int64      `json:"user_id"`
	ParkingSpotID int64      `json:"parking_spot_id"`
	SpotName      string     `json:"spot_name"`
	SpotAddress   string     `json:"spot_address"`
	StartTime     string     `json:"start_time"`
	DurationHours int        `json:"duration_hours"`
	TotalCost     float64    `json:"total_cost"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	EndedAt       *time.Time `json:"ended_at,omitempty"`
}

type ReserveResponse struct {
	Message       string  `json:"message"`
	ReservationID int64   `json:"reservation_id"`
	TotalCost     float64 `json:"total_cost"`
}

type EndReservationResponse struct {
	Message       string `json:"message"`
	ReservationID int64  `json:"reservation_id"`
}

func FromReserveResult(res *commands.ReserveResult) *ReserveResponse {
	return &ReserveResponse{
		Message:       "Reservation successful",
		ReservationID: res.ReservationID,
		TotalCost:     res.TotalCost.Amount(),
	}
}

func FromReservationView(v *queries.ReservationView) (*ReservationResponse, error) {
	out := &ReservationResponse{}
	if err := copier.Copy(out, v); err != nil {
		return nil, err
	}
	out.TotalCost = centsToAmount(v.TotalCostCents)
	return out, nil
}

func FromReservationViews(views []*queries.ReservationView) ([]*ReservationResponse, error) {
	out := make([]*ReservationResponse, 0, len(views))
	for _, v := range views {
		resp, err := FromReservationView(v)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}
