package request

import "github.com/google/uuid"

type MovieRequest struct {
	Title       string   `json:"title" validate:"required,min=1,max=200"`
	Description string   `json:"description" validate:"required"`
	Duration    int      `json:"duration" validate:"required,min=1,max=999"`
	GenreIDs    []string `json:"genres,omitempty" validate:"dive,uuid4"`
	ActorIDs    []string `json:"actors,omitempty" validate:"dive,uuid4"`
}

type MovieUpdateRequest struct {
	Title       *string   `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string   `json:"description,omitempty"`
	Duration    *int      `json:"duration,omitempty" validate:"omitempty,min=1,max=999"`
	GenreIDs    *[]string `json:"genres,omitempty" validate:"omitempty,dive,uuid4"`
	ActorIDs    *[]string `json:"actors,omitempty" validate:"omitempty,dive,uuid4"`
}

// MovieListRequest membawa filter list movie yang sudah diparse dari query params
type MovieListRequest struct {
	PaginatedRequest
	Title    string
	GenreIDs []uuid.UUID
	ActorIDs []uuid.UUID
}
