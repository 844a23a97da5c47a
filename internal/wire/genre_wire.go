package wire

import (
	"cinema-catalog/internal/adaptor"
	"cinema-catalog/internal/data/repository"
	"cinema-catalog/pkg/middleware"
	"cinema-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireGenre(
	r chi.Router,
	genreHandler *adaptor.GenreHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/genres", func(r chi.Router) {
		// Semua route genre butuh session
		r.Use(middleware.AuthSession(repo.Session, log))

		// ==================== READ ROUTES ====================
		r.Get("/", genreHandler.GetGenres)
		r.Get("/{id}", genreHandler.GetGenreByID)

		// ==================== STAFF ROUTES ====================
		r.Group(func(r chi.Router) {
			r.Use(middleware.Staff(repo.User, log))

			r.Post("/", genreHandler.CreateGenre)
			r.Delete("/{id}", genreHandler.DeleteGenre)
		})
	})
}
