package repository

import (
	"cinema-catalog/internal/data/entity"
	"cinema-catalog/pkg/database"
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MovieActorRepository interface {
	// Bridge table operations
	FindByMovieID(ctx context.Context, movieID uuid.UUID) ([]*entity.MovieActor, error)
	DeleteByMovieID(ctx context.Context, movieID uuid.UUID) error
	DeleteByActorID(ctx context.Context, actorID uuid.UUID) error

	// Batch operations
	CreateBatch(ctx context.Context, movieActors []*entity.MovieActor) error
}

type movieActorRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieActorRepository(db database.PgxIface, log *zap.Logger) MovieActorRepository {
	return &movieActorRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie_actor")),
	}
}

func (r *movieActorRepository) FindByMovieID(ctx context.Context, movieID uuid.UUID) ([]*entity.MovieActor, error) {
	query := `SELECT id, movie_id, actor_id, created_at FROM movie_actors WHERE movie_id = $1`

	rows, err := r.db.Query(ctx, query, movieID)
	if err != nil {
		r.log.Error("Failed to find movie_actors by movie ID",
			zap.Error(err),
			zap.String("movie_id", movieID.String()),
		)
		return nil, fmt.Errorf("failed to find movie_actors: %w", err)
	}
	defer rows.Close()

	var movieActors []*entity.MovieActor
	for rows.Next() {
		var ma entity.MovieActor
		err := rows.Scan(
			&ma.ID,
			&ma.MovieID,
			&ma.ActorID,
			&ma.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan movie_actor row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan movie_actor: %w", err)
		}
		movieActors = append(movieActors, &ma)
	}

	return movieActors, nil
}

func (r *movieActorRepository) DeleteByMovieID(ctx context.Context, movieID uuid.UUID) error {
	query := `DELETE FROM movie_actors WHERE movie_id = $1`

	_, err := r.db.Exec(ctx, query, movieID)
	if err != nil {
		r.log.Error("Failed to delete movie_actors by movie ID",
			zap.Error(err),
			zap.String("movie_id", movieID.String()),
		)
		return fmt.Errorf("failed to delete movie_actors: %w", err)
	}

	return nil
}

func (r *movieActorRepository) DeleteByActorID(ctx context.Context, actorID uuid.UUID) error {
	query := `DELETE FROM movie_actors WHERE actor_id = $1`

	_, err := r.db.Exec(ctx, query, actorID)
	if err != nil {
		r.log.Error("Failed to delete movie_actors by actor ID",
			zap.Error(err),
			zap.String("actor_id", actorID.String()),
		)
		return fmt.Errorf("failed to delete movie_actors: %w", err)
	}

	return nil
}

func (r *movieActorRepository) CreateBatch(ctx context.Context, movieActors []*entity.MovieActor) error {
	if len(movieActors) == 0 {
		return nil
	}

	// Build batch insert
	query := `INSERT INTO movie_actors (id, movie_id, actor_id, created_at) VALUES `
	args := []interface{}{}

	for i, ma := range movieActors {
		if i > 0 {
			query += ", "
		}
		query += fmt.Sprintf("($%d, $%d, $%d, $%d)",
			i*4+1, i*4+2, i*4+3, i*4+4)

		args = append(args, ma.ID, ma.MovieID, ma.ActorID, ma.CreatedAt)
	}

	_, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to create batch movie_actors",
			zap.Error(err),
			zap.Int("count", len(movieActors)),
		)
		return fmt.Errorf("failed to create batch movie_actors: %w", err)
	}

	return nil
}
