package request

import "parkspot/internal/usecase/commands"

// ReserveRequest decodes POST /reserve. A non-numeric id or duration fails binding;
// range checks happen in the domain.
type ReserveRequest struct {
	ParkingSpotID int64  `json:"parking_spot_id" binding:"required"`
	StartTime     string `json:"start_time"`
	DurationHours int    `json:"duration_hours"`
}

func (r *ReserveRequest) ToInput() commands.ReserveInput {
	return commands.ReserveInput{
		SpotID:        r.ParkingSpotID,
		StartTime:     r.StartTime,
		DurationHours: r.DurationHours,
	}
}

type ListReservationsQuery struct {
	Limit  int `form:"limit" binding:"omitempty,min=1"`
	Offset int `form:"offset" binding:"omitempty,min=0"`
}
