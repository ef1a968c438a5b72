package request

type CreateActorRequest struct {
	Name      string `json:"name" validate:"required,max=100"`
	Gender    string `json:"gender" validate:"omitempty,len=1"`
	BirthYear int    `json:"birth_year" validate:"omitempty,gte=1850"`
}

type UpdateActorRequest struct {
	Name      *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Gender    *string `json:"gender,omitempty" validate:"omitempty,len=1"`
	BirthYear *int    `json:"birth_year,omitempty" validate:"omitempty,gte=1850"`
}
