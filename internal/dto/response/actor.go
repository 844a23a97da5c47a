package response

import (
	"cinema-catalog/internal/data/entity"
	"time"
)

type ActorResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Helper converter
func ActorToResponse(actor *entity.Actor) ActorResponse {
	return ActorResponse{
		ID:        actor.ID.String(),
		Name:      actor.Name,
		CreatedAt: actor.CreatedAt,
	}
}
