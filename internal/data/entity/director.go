package entity

type Director struct {
	Base
	Name        string `db:"name"`
	BirthYear   int    `db:"birth_year"`
	Citizenship string `db:"citizenship"`
}
