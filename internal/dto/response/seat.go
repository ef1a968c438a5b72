package response

import (
	"theater-booking/internal/data/entity"
)

type SeatResponse struct {
	RowNo  int `json:"row_no"`
	SeatNo int `json:"seat_no"`
}

func SeatToResponse(seat *entity.Seat) SeatResponse {
	return SeatResponse{RowNo: seat.RowNo, SeatNo: seat.SeatNo}
}

func SeatsToResponse(seats []*entity.Seat) []SeatResponse {
	out := make([]SeatResponse, len(seats))
	for i, seat := range seats {
		out[i] = SeatToResponse(seat)
	}
	return out
}

type SeatAvailabilityResponse struct {
	RowNo    int  `json:"row_no"`
	SeatNo   int  `json:"seat_no"`
	IsBooked bool `json:"is_booked"`
}

func AvailabilityToResponse(availability []entity.SeatAvailability) []SeatAvailabilityResponse {
	out := make([]SeatAvailabilityResponse, len(availability))
	for i, seat := range availability {
		out[i] = SeatAvailabilityResponse{
			RowNo:    seat.RowNo,
			SeatNo:   seat.SeatNo,
			IsBooked: seat.IsBooked,
		}
	}
	return out
}

type DeleteAllSeatsResponse struct {
	DeletedCount int64 `json:"deleted_count"`
}
