package usecase

import (
	"cinema-catalog/internal/data/repository"
	"cinema-catalog/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth  AuthService
	User  UserService
	Movie MovieService
	Genre GenreService
	Actor ActorService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:  NewAuthService(repo, config, log),
		User:  NewUserService(repo.User, repo.Session, log),
		Movie: NewMovieService(repo, log),
		Genre: NewGenreService(repo, log),
		Actor: NewActorService(repo, log),
	}
}
