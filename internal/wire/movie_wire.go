package wire

import (
	"cinema-catalog/internal/adaptor"
	"cinema-catalog/internal/data/repository"
	"cinema-catalog/pkg/middleware"
	"cinema-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireMovie(
	r chi.Router,
	movieHandler *adaptor.MovieHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/movies", func(r chi.Router) {
		// Semua route movie butuh session
		r.Use(middleware.AuthSession(repo.Session, log))

		// ==================== READ ROUTES ====================
		r.Get("/", movieHandler.GetMovies)        // List movies dengan filter
		r.Get("/{id}", movieHandler.GetMovieByID) // Movie detail

		// ==================== STAFF ROUTES ====================
		r.Group(func(r chi.Router) {
			r.Use(middleware.Staff(repo.User, log))

			r.Post("/", movieHandler.CreateMovie)       // Create movie
			r.Patch("/{id}", movieHandler.UpdateMovie)  // Partial update
			r.Put("/{id}", movieHandler.UpdateMovie)    // Full update
			r.Delete("/{id}", movieHandler.DeleteMovie) // Delete movie
		})
	})
}
