package request

import "time"

type CreateShowTimeRequest struct {
	PlayID      string    `json:"play_id" validate:"required,uuid"`
	DateAndTime time.Time `json:"date_and_time" validate:"required"`
}

type UpdateShowTimeRequest struct {
	PlayID              string    `json:"play_id" validate:"required,uuid"`
	OriginalDateAndTime time.Time `json:"original_date_and_time" validate:"required"`
	NewDateAndTime      time.Time `json:"new_date_and_time" validate:"required"`
}

type DeleteShowTimeRequest struct {
	PlayID      string    `json:"play_id" validate:"required,uuid"`
	DateAndTime time.Time `json:"date_and_time" validate:"required"`
}
