package response

import (
	"theater-booking/internal/data/entity"
)

type ActorResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Gender    string `json:"gender,omitempty"`
	BirthYear int    `json:"birth_year,omitempty"`
}

func ActorToResponse(actor *entity.Actor) ActorResponse {
	return ActorResponse{
		ID:        actor.ID.String(),
		Name:      actor.Name,
		Gender:    actor.Gender,
		BirthYear: actor.BirthYear,
	}
}

func ActorsToResponse(actors []*entity.Actor) []ActorResponse {
	out := make([]ActorResponse, len(actors))
	for i, actor := range actors {
		out[i] = ActorToResponse(actor)
	}
	return out
}
