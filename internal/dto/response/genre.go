package response

import (
	"cinema-catalog/internal/data/entity"
	"time"
)

type GenreResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Helper converter
func GenreToResponse(genre *entity.Genre) GenreResponse {
	return GenreResponse{
		ID:        genre.ID.String(),
		Name:      genre.Name,
		CreatedAt: genre.CreatedAt,
	}
}
