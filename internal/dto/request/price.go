package request

import "time"

type CreatePriceRequest struct {
	RowNo       int       `json:"row_no" validate:"gte=1"`
	SeatNo      int       `json:"seat_no" validate:"gte=1"`
	PlayID      string    `json:"play_id" validate:"required,uuid"`
	DateAndTime time.Time `json:"date_and_time" validate:"required"`
	Price       float64   `json:"price" validate:"gte=0"`
}

type PriceKeyRequest struct {
	RowNo       int       `json:"row_no" validate:"gte=1"`
	SeatNo      int       `json:"seat_no" validate:"gte=1"`
	PlayID      string    `json:"play_id" validate:"required,uuid"`
	DateAndTime time.Time `json:"date_and_time" validate:"required"`
}
