package response

import (
	"theater-booking/internal/data/entity"
)

type DirectorResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	BirthYear   int    `json:"birth_year,omitempty"`
	Citizenship string `json:"citizenship,omitempty"`
}

func DirectorToResponse(director *entity.Director) DirectorResponse {
	return DirectorResponse{
		ID:          director.ID.String(),
		Name:        director.Name,
		BirthYear:   director.BirthYear,
		Citizenship: director.Citizenship,
	}
}

func DirectorsToResponse(directors []*entity.Director) []DirectorResponse {
	out := make([]DirectorResponse, len(directors))
	for i, director := range directors {
		out[i] = DirectorToResponse(director)
	}
	return out
}
