package request

type RegisterRequest struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Email       string  `json:"email" validate:"required,email"`
	Password    string  `json:"password" validate:"required,min=8"`
	TelephoneNo *string `json:"telephone_no,omitempty" validate:"omitempty,max=100"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
