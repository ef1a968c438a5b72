package response

import (
	"theater-booking/internal/data/entity"
)

type PlayResponse struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Duration int     `json:"duration"`
	Price    float64 `json:"price"`
	Genre    string  `json:"genre,omitempty"`
	Synopsis string  `json:"synopsis,omitempty"`
}

func PlayToResponse(play *entity.Play) PlayResponse {
	return PlayResponse{
		ID:       play.ID.String(),
		Title:    play.Title,
		Duration: play.Duration,
		Price:    play.Price,
		Genre:    play.Genre,
		Synopsis: play.Synopsis,
	}
}

func PlaysToResponse(plays []*entity.Play) []PlayResponse {
	out := make([]PlayResponse, len(plays))
	for i, play := range plays {
		out[i] = PlayToResponse(play)
	}
	return out
}
