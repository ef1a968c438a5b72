package request

type CreateDirectorRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	BirthYear   int    `json:"birth_year" validate:"omitempty,gte=1850"`
	Citizenship string `json:"citizenship" validate:"max=100"`
}

type UpdateDirectorRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,max=100"`
	BirthYear   *int    `json:"birth_year,omitempty" validate:"omitempty,gte=1850"`
	Citizenship *string `json:"citizenship,omitempty" validate:"omitempty,max=100"`
}
