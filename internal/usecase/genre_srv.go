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

type GenreService interface {
	GetGenres(ctx context.Context, req *request.PaginatedRequest) ([]response.GenreResponse, int64, error)
	GetGenreByID(ctx context.Context, genreID string) (*response.GenreResponse, error)
	CreateGenre(ctx context.Context, req *request.GenreRequest) (*response.GenreResponse, error)
	DeleteGenre(ctx context.Context, genreID string) error
}

type genreService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewGenreService(
	repo *repository.Repository,
	log *zap.Logger,
) GenreService {
	return &genreService{
		repo: repo,
		log:  log.With(zap.String("service", "genre")),
	}
}

func (s *genreService) GetGenres(ctx context.Context, req *request.PaginatedRequest) ([]response.GenreResponse, int64, error) {
	limit := req.Limit()
	offset := req.Offset()

	genres, err := s.repo.Genre.FindAll(ctx, offset, limit)
	if err != nil {
		s.log.Error("Failed to get genres",
			zap.Error(err),
			zap.Int("page", req.Page),
			zap.Int("per_page", req.PerPage),
		)
		return nil, 0, fmt.Errorf("get genres: %w", err)
	}

	total, err := s.repo.Genre.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count genres", zap.Error(err))
		return nil, 0, fmt.Errorf("count genres: %w", err)
	}

	genreResponses := make([]response.GenreResponse, len(genres))
	for i, genre := range genres {
		genreResponses[i] = response.GenreToResponse(genre)
	}

	s.log.Info("Genres retrieved",
		zap.Int("count", len(genres)),
		zap.Int64("total", total),
	)

	return genreResponses, total, nil
}

func (s *genreService) GetGenreByID(ctx context.Context, genreID string) (*response.GenreResponse, error) {
	id, err := uuid.Parse(genreID)
	if err != nil {
		s.log.Warn("Invalid genre ID format",
			zap.String("genre_id", genreID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("genre not found")
	}

	genre, err := s.repo.Genre.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get genre by ID",
			zap.Error(err),
			zap.String("genre_id", genreID),
		)
		return nil, fmt.Errorf("get genre by id: %w", err)
	}

	if genre == nil {
		return nil, fmt.Errorf("genre not found")
	}

	genreResp := response.GenreToResponse(genre)
	return &genreResp, nil
}

func (s *genreService) CreateGenre(ctx context.Context, req *request.GenreRequest) (*response.GenreResponse, error) {
	// Validate request data
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create genre validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	genre := &entity.Genre{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name: req.Name,
	}

	if err := s.repo.Genre.Create(ctx, genre); err != nil {
		s.log.Error("Failed to create genre",
			zap.Error(err),
			zap.String("name", req.Name),
		)
		return nil, fmt.Errorf("create genre: %w", err)
	}

	s.log.Info("Genre created",
		zap.String("genre_id", genre.ID.String()),
		zap.String("name", genre.Name),
	)

	genreResp := response.GenreToResponse(genre)
	return &genreResp, nil
}

func (s *genreService) DeleteGenre(ctx context.Context, genreID string) error {
	id, err := uuid.Parse(genreID)
	if err != nil {
		return fmt.Errorf("genre not found")
	}

	genre, err := s.repo.Genre.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find genre: %w", err)
	}
	if genre == nil {
		return fmt.Errorf("genre not found")
	}

	// Lepas relasi ke movie dulu
	if err := s.repo.MovieGenre.DeleteByGenreID(ctx, id); err != nil {
		s.log.Warn("Failed to delete movie-genre relationships",
			zap.Error(err),
			zap.String("genre_id", genreID),
		)
	}

	if err := s.repo.Genre.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete genre",
			zap.Error(err),
			zap.String("genre_id", genreID),
		)
		return fmt.Errorf("delete genre: %w", err)
	}

	s.log.Info("Genre deleted",
		zap.String("genre_id", genreID),
		zap.String("name", genre.Name),
	)

	return nil
}
