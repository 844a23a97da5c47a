package usecase

import (
	"context"
	"fmt"
	"time"

	"cinema-catalog/internal/data/entity"
	"cinema-catalog/internal/data/repository"
	"cinema-catalog/internal/dto/request"
	"cinema-catalog/internal/dto/response"
	"cinema-catalog/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MovieService interface {
	GetMovies(ctx context.Context, req *request.MovieListRequest) ([]response.MovieResponse, int64, error)
	GetMovieByID(ctx context.Context, movieID string) (*response.MovieResponse, error)
	CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error)
	UpdateMovie(ctx context.Context, movieID string, req *request.MovieUpdateRequest) (*response.MovieResponse, error)
	DeleteMovie(ctx context.Context, movieID string) error
}

type movieService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMovieService(
	repo *repository.Repository,
	log *zap.Logger,
) MovieService {
	return &movieService{
		repo: repo,
		log:  log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) GetMovies(ctx context.Context, req *request.MovieListRequest) ([]response.MovieResponse, int64, error) {
	limit := req.Limit()
	offset := req.Offset()

	filter := repository.MovieFilter{
		Title:    req.Title,
		GenreIDs: req.GenreIDs,
		ActorIDs: req.ActorIDs,
	}

	// Get movies with pagination and filters
	movies, err := s.repo.Movie.FindAll(ctx, offset, limit, filter)
	if err != nil {
		s.log.Error("Failed to get movies",
			zap.Error(err),
			zap.Int("page", req.Page),
			zap.Int("per_page", req.PerPage),
			zap.String("title", req.Title),
		)
		return nil, 0, fmt.Errorf("get movies: %w", err)
	}

	// Get total count for pagination metadata
	total, err := s.repo.Movie.CountAll(ctx, filter)
	if err != nil {
		s.log.Error("Failed to count movies",
			zap.Error(err),
			zap.String("title", req.Title),
		)
		return nil, 0, fmt.Errorf("count movies: %w", err)
	}

	// Convert each movie to response with its associations
	movieResponses := make([]response.MovieResponse, len(movies))
	for i, movie := range movies {
		genreIDs, actorIDs := s.movieAssociationIDs(ctx, movie.ID)
		movieResponses[i] = response.MovieToResponse(movie, genreIDs, actorIDs)
	}

	s.log.Info("Movies retrieved",
		zap.Int("count", len(movies)),
		zap.Int64("total", total),
		zap.Int("page", req.Page),
		zap.Int("per_page", req.PerPage),
	)

	return movieResponses, total, nil
}

func (s *movieService) GetMovieByID(ctx context.Context, movieID string) (*response.MovieResponse, error) {
	id, err := uuid.Parse(movieID)
	if err != nil {
		s.log.Warn("Invalid movie ID format",
			zap.String("movie_id", movieID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("movie not found")
	}

	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get movie by ID",
			zap.Error(err),
			zap.String("movie_id", movieID),
		)
		return nil, fmt.Errorf("get movie by id: %w", err)
	}

	if movie == nil {
		return nil, fmt.Errorf("movie not found")
	}

	genreIDs, actorIDs := s.movieAssociationIDs(ctx, movie.ID)

	s.log.Info("Movie retrieved",
		zap.String("movie_id", movieID),
		zap.String("title", movie.Title),
	)

	movieResp := response.MovieToResponse(movie, genreIDs, actorIDs)
	return &movieResp, nil
}

func (s *movieService) CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error) {
	// Validate request data
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create movie validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// Validate genres and actors
	genreUUIDs, err := s.resolveGenreIDs(ctx, req.GenreIDs)
	if err != nil {
		return nil, err
	}

	actorUUIDs, err := s.resolveActorIDs(ctx, req.ActorIDs)
	if err != nil {
		return nil, err
	}

	// Create movie
	now := time.Now()
	movie := &entity.Movie{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:       req.Title,
		Description: req.Description,
		Duration:    req.Duration,
	}

	// Save movie to database
	if err := s.repo.Movie.Create(ctx, movie); err != nil {
		s.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", req.Title),
		)
		return nil, fmt.Errorf("create movie: %w", err)
	}

	// Create movie-genre relationships in batch
	if len(genreUUIDs) > 0 {
		movieGenres := make([]*entity.MovieGenre, len(genreUUIDs))
		for i, genreID := range genreUUIDs {
			movieGenres[i] = &entity.MovieGenre{
				BaseSimple: entity.BaseSimple{
					ID:        uuid.New(),
					CreatedAt: now,
				},
				MovieID: movie.ID,
				GenreID: genreID,
			}
		}

		// Batch insert for performance
		if err := s.repo.MovieGenre.CreateBatch(ctx, movieGenres); err != nil {
			s.log.Error("Failed to create movie-genre relationships",
				zap.Error(err),
				zap.String("movie_id", movie.ID.String()),
			)
			// Rollback: delete movie if genre relationships fail
			s.repo.Movie.Delete(ctx, movie.ID)
			return nil, fmt.Errorf("create movie-genre relationships: %w", err)
		}
	}

	// Create movie-actor relationships in batch
	if len(actorUUIDs) > 0 {
		movieActors := make([]*entity.MovieActor, len(actorUUIDs))
		for i, actorID := range actorUUIDs {
			movieActors[i] = &entity.MovieActor{
				BaseSimple: entity.BaseSimple{
					ID:        uuid.New(),
					CreatedAt: now,
				},
				MovieID: movie.ID,
				ActorID: actorID,
			}
		}

		if err := s.repo.MovieActor.CreateBatch(ctx, movieActors); err != nil {
			s.log.Error("Failed to create movie-actor relationships",
				zap.Error(err),
				zap.String("movie_id", movie.ID.String()),
			)
			// Rollback: delete movie and genre relationships if actor relationships fail
			s.repo.MovieGenre.DeleteByMovieID(ctx, movie.ID)
			s.repo.Movie.Delete(ctx, movie.ID)
			return nil, fmt.Errorf("create movie-actor relationships: %w", err)
		}
	}

	s.log.Info("Movie created",
		zap.String("movie_id", movie.ID.String()),
		zap.String("title", movie.Title),
		zap.Int("genre_count", len(genreUUIDs)),
		zap.Int("actor_count", len(actorUUIDs)),
	)

	genreIDs, actorIDs := s.movieAssociationIDs(ctx, movie.ID)
	movieResp := response.MovieToResponse(movie, genreIDs, actorIDs)
	return &movieResp, nil
}

func (s *movieService) UpdateMovie(ctx context.Context, movieID string, req *request.MovieUpdateRequest) (*response.MovieResponse, error) {
	id, err := uuid.Parse(movieID)
	if err != nil {
		s.log.Warn("Invalid movie ID format",
			zap.String("movie_id", movieID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("movie not found")
	}

	// Validate request data
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update movie validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// Find existing movie
	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find movie: %w", err)
	}
	if movie == nil {
		return nil, fmt.Errorf("movie not found")
	}

	// Apply partial updates only for provided fields
	updated := false

	if req.Title != nil && *req.Title != movie.Title {
		movie.Title = *req.Title
		updated = true
	}

	if req.Description != nil && *req.Description != movie.Description {
		movie.Description = *req.Description
		updated = true
	}

	if req.Duration != nil && *req.Duration != movie.Duration {
		movie.Duration = *req.Duration
		updated = true
	}

	// Replace genre set when provided
	if req.GenreIDs != nil {
		genreUUIDs, err := s.resolveGenreIDs(ctx, *req.GenreIDs)
		if err != nil {
			return nil, err
		}

		if err := s.repo.MovieGenre.DeleteByMovieID(ctx, movie.ID); err != nil {
			s.log.Error("Failed to clear movie-genre relationships",
				zap.Error(err),
				zap.String("movie_id", movieID),
			)
			return nil, fmt.Errorf("update movie genres: %w", err)
		}

		if len(genreUUIDs) > 0 {
			movieGenres := make([]*entity.MovieGenre, len(genreUUIDs))
			for i, genreID := range genreUUIDs {
				movieGenres[i] = &entity.MovieGenre{
					BaseSimple: entity.BaseSimple{
						ID:        uuid.New(),
						CreatedAt: time.Now(),
					},
					MovieID: movie.ID,
					GenreID: genreID,
				}
			}

			if err := s.repo.MovieGenre.CreateBatch(ctx, movieGenres); err != nil {
				s.log.Error("Failed to create movie-genre relationships",
					zap.Error(err),
					zap.String("movie_id", movieID),
				)
				return nil, fmt.Errorf("update movie genres: %w", err)
			}
		}

		updated = true
	}

	// Replace actor set when provided
	if req.ActorIDs != nil {
		actorUUIDs, err := s.resolveActorIDs(ctx, *req.ActorIDs)
		if err != nil {
			return nil, err
		}

		if err := s.repo.MovieActor.DeleteByMovieID(ctx, movie.ID); err != nil {
			s.log.Error("Failed to clear movie-actor relationships",
				zap.Error(err),
				zap.String("movie_id", movieID),
			)
			return nil, fmt.Errorf("update movie actors: %w", err)
		}

		if len(actorUUIDs) > 0 {
			movieActors := make([]*entity.MovieActor, len(actorUUIDs))
			for i, actorID := range actorUUIDs {
				movieActors[i] = &entity.MovieActor{
					BaseSimple: entity.BaseSimple{
						ID:        uuid.New(),
						CreatedAt: time.Now(),
					},
					MovieID: movie.ID,
					ActorID: actorID,
				}
			}

			if err := s.repo.MovieActor.CreateBatch(ctx, movieActors); err != nil {
				s.log.Error("Failed to create movie-actor relationships",
					zap.Error(err),
					zap.String("movie_id", movieID),
				)
				return nil, fmt.Errorf("update movie actors: %w", err)
			}
		}

		updated = true
	}

	// Update timestamp and save only if changes were made
	if updated {
		movie.UpdatedAt = time.Now()
		if err := s.repo.Movie.Update(ctx, movie); err != nil {
			s.log.Error("Failed to update movie",
				zap.Error(err),
				zap.String("movie_id", movieID),
			)
			return nil, fmt.Errorf("update movie: %w", err)
		}
	}

	genreIDs, actorIDs := s.movieAssociationIDs(ctx, movie.ID)

	s.log.Info("Movie updated",
		zap.String("movie_id", movieID),
		zap.String("title", movie.Title),
		zap.Bool("was_updated", updated),
	)

	// Return updated movie response
	movieResp := response.MovieToResponse(movie, genreIDs, actorIDs)
	return &movieResp, nil
}

func (s *movieService) DeleteMovie(ctx context.Context, movieID string) error {
	id, err := uuid.Parse(movieID)
	if err != nil {
		return fmt.Errorf("movie not found")
	}

	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find movie: %w", err)
	}
	if movie == nil {
		return fmt.Errorf("movie not found")
	}

	if err := s.repo.MovieGenre.DeleteByMovieID(ctx, id); err != nil {
		s.log.Warn("Failed to delete movie-genre relationships",
			zap.Error(err),
			zap.String("movie_id", movieID),
		)
	}

	if err := s.repo.MovieActor.DeleteByMovieID(ctx, id); err != nil {
		s.log.Warn("Failed to delete movie-actor relationships",
			zap.Error(err),
			zap.String("movie_id", movieID),
		)
	}

	if err := s.repo.Movie.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete movie",
			zap.Error(err),
			zap.String("movie_id", movieID),
		)
		return fmt.Errorf("delete movie: %w", err)
	}

	s.log.Info("Movie deleted",
		zap.String("movie_id", movieID),
		zap.String("title", movie.Title),
	)

	return nil
}

// ==================== HELPER METHODS ====================

// movieAssociationIDs membaca id genre dan actor milik satu movie
func (s *movieService) movieAssociationIDs(ctx context.Context, movieID uuid.UUID) ([]string, []string) {
	genres, err := s.repo.Genre.FindByMovieID(ctx, movieID)
	if err != nil {
		s.log.Warn("Failed to get genres for movie",
			zap.Error(err),
			zap.String("movie_id", movieID.String()),
		)
	}

	genreIDs := make([]string, len(genres))
	for i, genre := range genres {
		genreIDs[i] = genre.ID.String()
	}

	actors, err := s.repo.Actor.FindByMovieID(ctx, movieID)
	if err != nil {
		s.log.Warn("Failed to get actors for movie",
			zap.Error(err),
			zap.String("movie_id", movieID.String()),
		)
	}

	actorIDs := make([]string, len(actors))
	for i, actor := range actors {
		actorIDs[i] = actor.ID.String()
	}

	return genreIDs, actorIDs
}

func (s *movieService) resolveGenreIDs(ctx context.Context, ids []string) ([]uuid.UUID, error) {
	// Parse dan buang duplikat
	seen := make(map[uuid.UUID]bool, len(ids))
	genreUUIDs := make([]uuid.UUID, 0, len(ids))
	for _, idStr := range ids {
		genreID, err := uuid.Parse(idStr)
		if err != nil {
			return nil, fmt.Errorf("invalid genre id: %s", idStr)
		}
		if seen[genreID] {
			continue
		}
		seen[genreID] = true
		genreUUIDs = append(genreUUIDs, genreID)
	}

	if len(genreUUIDs) == 0 {
		return genreUUIDs, nil
	}

	// Check existence in one query
	genres, err := s.repo.Genre.FindByIDs(ctx, genreUUIDs)
	if err != nil {
		s.log.Error("Failed to check genre existence", zap.Error(err))
		return nil, fmt.Errorf("check genres: %w", err)
	}
	if len(genres) != len(genreUUIDs) {
		return nil, fmt.Errorf("one or more genres do not exist")
	}

	return genreUUIDs, nil
}

func (s *movieService) resolveActorIDs(ctx context.Context, ids []string) ([]uuid.UUID, error) {
	seen := make(map[uuid.UUID]bool, len(ids))
	actorUUIDs := make([]uuid.UUID, 0, len(ids))
	for _, idStr := range ids {
		actorID, err := uuid.Parse(idStr)
		if err != nil {
			return nil, fmt.Errorf("invalid actor id: %s", idStr)
		}
		if seen[actorID] {
			continue
		}
		seen[actorID] = true
		actorUUIDs = append(actorUUIDs, actorID)
	}

	if len(actorUUIDs) == 0 {
		return actorUUIDs, nil
	}

	actors, err := s.repo.Actor.FindByIDs(ctx, actorUUIDs)
	if err != nil {
		s.log.Error("Failed to check actor existence", zap.Error(err))
		return nil, fmt.Errorf("check actors: %w", err)
	}
	if len(actors) != len(actorUUIDs) {
		return nil, fmt.Errorf("one or more actors do not exist")
	}

	return actorUUIDs, nil
}
