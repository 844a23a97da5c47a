package response

import (
	"cinema-catalog/internal/data/entity"
	"time"
)

type MovieResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Duration    int       `json:"duration"`
	Genres      []string  `json:"genres"`
	Actors      []string  `json:"actors"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Helper converter
func MovieToResponse(movie *entity.Movie, genres, actors []string) MovieResponse {
	// Genres dan actors harus selalu array, bukan null
	if genres == nil {
		genres = []string{}
	}
	if actors == nil {
		actors = []string{}
	}

	return MovieResponse{
		ID:          movie.ID.String(),
		Title:       movie.Title,
		Description: movie.Description,
		Duration:    movie.Duration,
		Genres:      genres,
		Actors:      actors,
		CreatedAt:   movie.CreatedAt,
		UpdatedAt:   movie.UpdatedAt,
	}
}
