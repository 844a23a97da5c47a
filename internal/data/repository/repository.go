package repository

import (
	"cinema-catalog/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User       UserRepository
	Session    SessionRepository
	Movie      MovieRepository
	Genre      GenreRepository
	Actor      ActorRepository
	MovieGenre MovieGenreRepository
	MovieActor MovieActorRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:       NewUserRepository(db, log),
		Session:    NewSessionRepository(db, log),
		Movie:      NewMovieRepository(db, log),
		Genre:      NewGenreRepository(db, log),
		Actor:      NewActorRepository(db, log),
		MovieGenre: NewMovieGenreRepository(db, log),
		MovieActor: NewMovieActorRepository(db, log),
	}
}
