package database

import (
	"context"
	"fmt"
)

// Migrate creates the schema if it does not exist. The composite
// primary keys on seats, showtimes, showtime_prices and tickets are
// the uniqueness invariants of the booking domain: the tickets PK
// spans (row_no, seat_no, play_id, date_and_time) so a seat can hold
// at most one ticket per showtime across all customers.
func Migrate(ctx context.Context, db PgxIface) error {
	schema := `
	CREATE TABLE IF NOT EXISTS customers (
		id UUID PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		email VARCHAR(100) NOT NULL UNIQUE,
		password VARCHAR(255) NOT NULL,
		telephone_no VARCHAR(100),
		role VARCHAR(20) NOT NULL DEFAULT 'customer',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	);

	CREATE TABLE IF NOT EXISTS plays (
		id UUID PRIMARY KEY,
		title VARCHAR(100) NOT NULL,
		duration INT NOT NULL,
		price NUMERIC(10,2) NOT NULL,
		genre VARCHAR(20),
		synopsis VARCHAR(2000),
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	);

	CREATE TABLE IF NOT EXISTS actors (
		id UUID PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		gender CHAR(1),
		birth_year INT,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	);

	CREATE TABLE IF NOT EXISTS directors (
		id UUID PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		birth_year INT,
		citizenship VARCHAR(100),
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	);

	CREATE TABLE IF NOT EXISTS actor_play (
		actor_id UUID NOT NULL REFERENCES actors(id) ON DELETE RESTRICT,
		play_id UUID NOT NULL REFERENCES plays(id) ON DELETE CASCADE,
		PRIMARY KEY (actor_id, play_id)
	);

	CREATE TABLE IF NOT EXISTS director_play (
		director_id UUID NOT NULL REFERENCES directors(id) ON DELETE CASCADE,
		play_id UUID NOT NULL REFERENCES plays(id) ON DELETE CASCADE,
		PRIMARY KEY (director_id, play_id)
	);

	CREATE TABLE IF NOT EXISTS seats (
		row_no INT NOT NULL,
		seat_no INT NOT NULL,
		PRIMARY KEY (row_no, seat_no)
	);

	CREATE TABLE IF NOT EXISTS showtimes (
		play_id UUID NOT NULL REFERENCES plays(id) ON DELETE CASCADE,
		date_and_time TIMESTAMPTZ NOT NULL,
		PRIMARY KEY (play_id, date_and_time)
	);

	CREATE TABLE IF NOT EXISTS showtime_prices (
		row_no INT NOT NULL,
		seat_no INT NOT NULL,
		play_id UUID NOT NULL,
		date_and_time TIMESTAMPTZ NOT NULL,
		price NUMERIC(10,2) NOT NULL,
		PRIMARY KEY (row_no, seat_no, play_id, date_and_time),
		FOREIGN KEY (row_no, seat_no) REFERENCES seats(row_no, seat_no)
			ON DELETE CASCADE ON UPDATE CASCADE,
		FOREIGN KEY (play_id, date_and_time) REFERENCES showtimes(play_id, date_and_time)
			ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS tickets (
		row_no INT NOT NULL,
		seat_no INT NOT NULL,
		play_id UUID NOT NULL,
		date_and_time TIMESTAMPTZ NOT NULL,
		customer_id UUID NOT NULL REFERENCES customers(id),
		ticket_no VARCHAR(10) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		PRIMARY KEY (row_no, seat_no, play_id, date_and_time),
		FOREIGN KEY (row_no, seat_no) REFERENCES seats(row_no, seat_no)
			ON DELETE CASCADE ON UPDATE CASCADE,
		FOREIGN KEY (play_id, date_and_time) REFERENCES showtimes(play_id, date_and_time)
			ON DELETE CASCADE
	);
	`

	if _, err := db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	return nil
}
