package entity

// Seat identity is venue-wide: (row_no, seat_no) is the composite
// primary key, there is no per-showtime seat row.
type Seat struct {
	RowNo  int `db:"row_no"`
	SeatNo int `db:"seat_no"`
}
