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

type ActorService interface {
	GetActors(ctx context.Context, req *request.PaginatedRequest) ([]response.ActorResponse, int64, error)
	GetActorByID(ctx context.Context, actorID string) (*response.ActorResponse, error)
	CreateActor(ctx context.Context, req *request.ActorRequest) (*response.ActorResponse, error)
	DeleteActor(ctx context.Context, actorID string) error
}

type actorService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewActorService(
	repo *repository.Repository,
	log *zap.Logger,
) ActorService {
	return &actorService{
		repo: repo,
		log:  log.With(zap.String("service", "actor")),
	}
}

func (s *actorService) GetActors(ctx context.Context, req *request.PaginatedRequest) ([]response.ActorResponse, int64, error) {
	limit := req.Limit()
	offset := req.Offset()

	actors, err := s.repo.Actor.FindAll(ctx, offset, limit)
	if err != nil {
		s.log.Error("Failed to get actors",
			zap.Error(err),
			zap.Int("page", req.Page),
			zap.Int("per_page", req.PerPage),
		)
		return nil, 0, fmt.Errorf("get actors: %w", err)
	}

	total, err := s.repo.Actor.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count actors", zap.Error(err))
		return nil, 0, fmt.Errorf("count actors: %w", err)
	}

	actorResponses := make([]response.ActorResponse, len(actors))
	for i, actor := range actors {
		actorResponses[i] = response.ActorToResponse(actor)
	}

	s.log.Info("Actors retrieved",
		zap.Int("count", len(actors)),
		zap.Int64("total", total),
	)

	return actorResponses, total, nil
}

func (s *actorService) GetActorByID(ctx context.Context, actorID string) (*response.ActorResponse, error) {
	id, err := uuid.Parse(actorID)
	if err != nil {
		s.log.Warn("Invalid actor ID format",
			zap.String("actor_id", actorID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("actor not found")
	}

	actor, err := s.repo.Actor.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get actor by ID",
			zap.Error(err),
			zap.String("actor_id", actorID),
		)
		return nil, fmt.Errorf("get actor by id: %w", err)
	}

	if actor == nil {
		return nil, fmt.Errorf("actor not found")
	}

	actorResp := response.ActorToResponse(actor)
	return &actorResp, nil
}

func (s *actorService) CreateActor(ctx context.Context, req *request.ActorRequest) (*response.ActorResponse, error) {
	// Validate request data
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create actor validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	actor := &entity.Actor{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name: req.Name,
	}

	if err := s.repo.Actor.Create(ctx, actor); err != nil {
		s.log.Error("Failed to create actor",
			zap.Error(err),
			zap.String("name", req.Name),
		)
		return nil, fmt.Errorf("create actor: %w", err)
	}

	s.log.Info("Actor created",
		zap.String("actor_id", actor.ID.String()),
		zap.String("name", actor.Name),
	)

	actorResp := response.ActorToResponse(actor)
	return &actorResp, nil
}

func (s *actorService) DeleteActor(ctx context.Context, actorID string) error {
	id, err := uuid.Parse(actorID)
	if err != nil {
		return fmt.Errorf("actor not found")
	}

	actor, err := s.repo.Actor.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find actor: %w", err)
	}
	if actor == nil {
		return fmt.Errorf("actor not found")
	}

	// Lepas relasi ke movie dulu
	if err := s.repo.MovieActor.DeleteByActorID(ctx, id); err != nil {
		s.log.Warn("Failed to delete movie-actor relationships",
			zap.Error(err),
			zap.String("actor_id", actorID),
		)
	}

	if err := s.repo.Actor.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete actor",
			zap.Error(err),
			zap.String("actor_id", actorID),
		)
		return fmt.Errorf("delete actor: %w", err)
	}

	s.log.Info("Actor deleted",
		zap.String("actor_id", actorID),
		zap.String("name", actor.Name),
	)

	return nil
}
