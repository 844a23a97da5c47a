package adaptor

import (
	"cinema-catalog/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth  *AuthHandler
	User  *UserHandler
	Movie *MovieHandler
	Genre *GenreHandler
	Actor *ActorHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:  NewAuthHandler(service.Auth, log),
		User:  NewUserHandler(service.User, log),
		Movie: NewMovieHandler(service.Movie, log),
		Genre: NewGenreHandler(service.Genre, log),
		Actor: NewActorHandler(service.Actor, log),
	}
}
