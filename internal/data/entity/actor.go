package entity

type Actor struct {
	Base
	Name      string `db:"name"`
	Gender    string `db:"gender"` // single char, e.g. M / F
	BirthYear int    `db:"birth_year"`
}
