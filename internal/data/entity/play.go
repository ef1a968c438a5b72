package entity

type Play struct {
	Base
	Title    string  `db:"title"`
	Duration int     `db:"duration"` // minutes
	Price    float64 `db:"price"`
	Genre    string  `db:"genre"`
	Synopsis string  `db:"synopsis"`
}
