package response

import (
	"time"

	"theater-booking/internal/data/entity"
)

type ShowTimeResponse struct {
	PlayID      string    `json:"play_id"`
	DateAndTime time.Time `json:"date_and_time"`
}

func ShowTimeToResponse(showtime *entity.ShowTime) ShowTimeResponse {
	return ShowTimeResponse{
		PlayID:      showtime.PlayID.String(),
		DateAndTime: showtime.DateAndTime,
	}
}

func ShowTimesToResponse(showtimes []*entity.ShowTime) []ShowTimeResponse {
	out := make([]ShowTimeResponse, len(showtimes))
	for i, showtime := range showtimes {
		out[i] = ShowTimeToResponse(showtime)
	}
	return out
}
