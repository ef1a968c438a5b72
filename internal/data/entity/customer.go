package entity

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

type Customer struct {
	Base
	Name         string  `db:"name"`
	Email        string  `db:"email"`
	PasswordHash string  `db:"password"`
	TelephoneNo  *string `db:"telephone_no"`
	Role         Role    `db:"role"`
}
