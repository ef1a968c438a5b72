package request

type SeatRequest struct {
	RowNo  int `json:"row_no" validate:"gte=1"`
	SeatNo int `json:"seat_no" validate:"gte=1"`
}
