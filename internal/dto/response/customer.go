package response

import (
	"theater-booking/internal/data/entity"
)

type CustomerResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	TelephoneNo *string `json:"telephone_no,omitempty"`
	Role        string  `json:"role"`
}

func CustomerToResponse(customer *entity.Customer) CustomerResponse {
	return CustomerResponse{
		ID:          customer.ID.String(),
		Name:        customer.Name,
		Email:       customer.Email,
		TelephoneNo: customer.TelephoneNo,
		Role:        string(customer.Role),
	}
}
