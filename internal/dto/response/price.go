package response

import (
	"time"

	"theater-booking/internal/data/entity"
)

type PriceResponse struct {
	RowNo       int       `json:"row_no"`
	SeatNo      int       `json:"seat_no"`
	PlayID      string    `json:"play_id"`
	DateAndTime time.Time `json:"date_and_time"`
	Price       float64   `json:"price"`
}

func PriceToResponse(price *entity.ShowTimePrice) PriceResponse {
	return PriceResponse{
		RowNo:       price.RowNo,
		SeatNo:      price.SeatNo,
		PlayID:      price.PlayID.String(),
		DateAndTime: price.DateAndTime,
		Price:       price.Price,
	}
}

func PricesToResponse(prices []*entity.ShowTimePrice) []PriceResponse {
	out := make([]PriceResponse, len(prices))
	for i, price := range prices {
		out[i] = PriceToResponse(price)
	}
	return out
}
