package request

type UpdateCustomerRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
	Password    *string `json:"password,omitempty" validate:"omitempty,min=8"`
	TelephoneNo *string `json:"telephone_no,omitempty" validate:"omitempty,max=100"`
}
