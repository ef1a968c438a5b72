package entity

import (
	"time"

	"github.com/google/uuid"
)

// ShowTime is keyed by (play_id, date_and_time). Deleting a play
// cascades to its showtimes.
type ShowTime struct {
	PlayID      uuid.UUID `db:"play_id"`
	DateAndTime time.Time `db:"date_and_time"`
}
