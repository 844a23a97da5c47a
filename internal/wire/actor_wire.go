package wire

import (
	"cinema-catalog/internal/adaptor"
	"cinema-catalog/internal/data/repository"
	"cinema-catalog/pkg/middleware"
	"cinema-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireActor(
	r chi.Router,
	actorHandler *adaptor.ActorHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/actors", func(r chi.Router) {
		// Semua route actor butuh session
		r.Use(middleware.AuthSession(repo.Session, log))

		// ==================== READ ROUTES ====================
		r.Get("/", actorHandler.GetActors)
		r.Get("/{id}", actorHandler.GetActorByID)

		// ==================== STAFF ROUTES ====================
		r.Group(func(r chi.Router) {
			r.Use(middleware.Staff(repo.User, log))

			r.Post("/", actorHandler.CreateActor)
			r.Delete("/{id}", actorHandler.DeleteActor)
		})
	})
}
