package testutil

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"cinema-catalog/internal/data/entity"
	"cinema-catalog/internal/data/repository"
)

// MemoryStore backs the repository interfaces with maps so handlers and
// services can be exercised without a database. Ordering, error strings
// and not-found semantics mirror the SQL implementations.
type MemoryStore struct {
	mu sync.Mutex

	users       map[uuid.UUID]entity.User
	sessions    map[string]entity.Session // keyed by token
	movies      map[uuid.UUID]entity.Movie
	genres      map[uuid.UUID]entity.Genre
	actors      map[uuid.UUID]entity.Actor
	movieGenres []entity.MovieGenre
	movieActors []entity.MovieActor
}

// NewMemoryRepository wires a Repository handle over a fresh in-memory
// store.
func NewMemoryRepository() (*repository.Repository, *MemoryStore) {
	s := &MemoryStore{
		users:    make(map[uuid.UUID]entity.User),
		sessions: make(map[string]entity.Session),
		movies:   make(map[uuid.UUID]entity.Movie),
		genres:   make(map[uuid.UUID]entity.Genre),
		actors:   make(map[uuid.UUID]entity.Actor),
	}

	repo := &repository.Repository{
		User:       &memoryUserRepo{s},
		Session:    &memorySessionRepo{s},
		Movie:      &memoryMovieRepo{s},
		Genre:      &memoryGenreRepo{s},
		Actor:      &memoryActorRepo{s},
		MovieGenre: &memoryMovieGenreRepo{s},
		MovieActor: &memoryMovieActorRepo{s},
	}

	return repo, s
}

type memoryUserRepo struct{ s *MemoryStore }

func (r *memoryUserRepo) Create(_ context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.users[user.ID] = *user

	return nil
}

func (r *memoryUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	user, ok := r.s.users[id]
	if !ok || user.DeletedAt != nil {
		return nil, nil
	}
	return &user, nil
}

func (r *memoryUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, user := range r.s.users {
		if user.Email == email && user.DeletedAt == nil {
			u := user
			return &u, nil
		}
	}
	return nil, nil
}

func (r *memoryUserRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var users []entity.User
	for _, user := range r.s.users {
		if user.DeletedAt == nil {
			users = append(users, user)
		}
	}
	// ORDER BY created_at DESC seperti query aslinya
	sort.Slice(users, func(i, j int) bool {
		if users[i].CreatedAt.Equal(users[j].CreatedAt) {
			return users[i].ID.String() < users[j].ID.String()
		}
		return users[i].CreatedAt.After(users[j].CreatedAt)
	})

	return pointers(window(users, offset, limit)), nil
}

func (r *memoryUserRepo) CountAll(_ context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var count int64
	for _, user := range r.s.users {
		if user.DeletedAt == nil {
			count++
		}
	}
	return count, nil
}

func (r *memoryUserRepo) Update(_ context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.users[user.ID]
	if !ok || existing.DeletedAt != nil {
		return fmt.Errorf("user %s not found or already deleted", user.ID.String())
	}
	updated := *user
	updated.CreatedAt = existing.CreatedAt
	r.s.users[user.ID] = updated

	return nil
}

func (r *memoryUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	user, ok := r.s.users[id]
	if !ok || user.DeletedAt != nil {
		return fmt.Errorf("user %s not found", id.String())
	}
	deletedAt := time.Now()
	user.DeletedAt = &deletedAt
	r.s.users[id] = user

	return nil
}

type memorySessionRepo struct{ s *MemoryStore }

func (r *memorySessionRepo) Create(_ context.Context, session *entity.Session) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.sessions[session.Token.String()] = *session

	return nil
}

func (r *memorySessionRepo) FindValidSession(_ context.Context, token string) (*entity.Session, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	session, ok := r.s.sessions[token]
	if !ok || session.RevokedAt != nil || !session.ExpiresAt.After(time.Now()) {
		return nil, nil
	}
	return &session, nil
}

func (r *memorySessionRepo) Revoke(_ context.Context, token string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	session, ok := r.s.sessions[token]
	if !ok || session.RevokedAt != nil {
		return fmt.Errorf("session not found or already revoked")
	}
	revokedAt := time.Now()
	session.RevokedAt = &revokedAt
	r.s.sessions[token] = session

	return nil
}

func (r *memorySessionRepo) RevokeAllUserSessions(_ context.Context, userID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for token, session := range r.s.sessions {
		if session.UserID == userID && session.RevokedAt == nil {
			revokedAt := time.Now()
			session.RevokedAt = &revokedAt
			r.s.sessions[token] = session
		}
	}
	return nil
}

func (r *memorySessionRepo) CleanExpiredSessions(_ context.Context) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	// Retensi 7 hari seperti query aslinya
	cutoff := time.Now().Add(-7 * 24 * time.Hour)
	for token, session := range r.s.sessions {
		if session.ExpiresAt.Before(cutoff) {
			delete(r.s.sessions, token)
		}
	}
	return nil
}

type memoryMovieRepo struct{ s *MemoryStore }

func (r *memoryMovieRepo) Create(_ context.Context, movie *entity.Movie) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.movies[movie.ID] = *movie

	return nil
}

func (r *memoryMovieRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Movie, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	movie, ok := r.s.movies[id]
	if !ok || movie.DeletedAt != nil {
		return nil, nil
	}
	return &movie, nil
}

func (r *memoryMovieRepo) matches(movie entity.Movie, filter repository.MovieFilter) bool {
	if movie.DeletedAt != nil {
		return false
	}
	if filter.Title != "" && !strings.Contains(strings.ToLower(movie.Title), strings.ToLower(filter.Title)) {
		return false
	}
	if len(filter.GenreIDs) > 0 && !r.s.linkedToAny(movie.ID, filter.GenreIDs, true) {
		return false
	}
	if len(filter.ActorIDs) > 0 && !r.s.linkedToAny(movie.ID, filter.ActorIDs, false) {
		return false
	}
	return true
}

func (s *MemoryStore) linkedToAny(movieID uuid.UUID, ids []uuid.UUID, genre bool) bool {
	wanted := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	if genre {
		for _, link := range s.movieGenres {
			if link.MovieID == movieID {
				if _, ok := wanted[link.GenreID]; ok {
					return true
				}
			}
		}
		return false
	}

	for _, link := range s.movieActors {
		if link.MovieID == movieID {
			if _, ok := wanted[link.ActorID]; ok {
				return true
			}
		}
	}
	return false
}

func (r *memoryMovieRepo) FindAll(_ context.Context, offset, limit int, filter repository.MovieFilter) ([]*entity.Movie, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var movies []entity.Movie
	for _, movie := range r.s.movies {
		if r.matches(movie, filter) {
			movies = append(movies, movie)
		}
	}
	// ORDER BY created_at, id seperti query aslinya
	sort.Slice(movies, func(i, j int) bool {
		if movies[i].CreatedAt.Equal(movies[j].CreatedAt) {
			return movies[i].ID.String() < movies[j].ID.String()
		}
		return movies[i].CreatedAt.Before(movies[j].CreatedAt)
	})

	return pointers(window(movies, offset, limit)), nil
}

func (r *memoryMovieRepo) CountAll(_ context.Context, filter repository.MovieFilter) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var count int64
	for _, movie := range r.s.movies {
		if r.matches(movie, filter) {
			count++
		}
	}
	return count, nil
}

func (r *memoryMovieRepo) Update(_ context.Context, movie *entity.Movie) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.movies[movie.ID]
	if !ok || existing.DeletedAt != nil {
		return fmt.Errorf("movie not found or already deleted")
	}
	updated := *movie
	updated.CreatedAt = existing.CreatedAt
	r.s.movies[movie.ID] = updated

	return nil
}

func (r *memoryMovieRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	movie, ok := r.s.movies[id]
	if !ok || movie.DeletedAt != nil {
		return fmt.Errorf("movie not found or already deleted")
	}
	deletedAt := time.Now()
	movie.DeletedAt = &deletedAt
	r.s.movies[id] = movie

	return nil
}

type memoryGenreRepo struct{ s *MemoryStore }

func (r *memoryGenreRepo) Create(_ context.Context, genre *entity.Genre) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.genres[genre.ID] = *genre

	return nil
}

func (r *memoryGenreRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Genre, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	genre, ok := r.s.genres[id]
	if !ok {
		return nil, nil
	}
	return &genre, nil
}

func (r *memoryGenreRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]*entity.Genre, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	wanted := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	var genres []entity.Genre
	for id, genre := range r.s.genres {
		if _, ok := wanted[id]; ok {
			genres = append(genres, genre)
		}
	}
	sort.Slice(genres, func(i, j int) bool { return genres[i].Name < genres[j].Name })

	return pointers(genres), nil
}

func (r *memoryGenreRepo) FindByMovieID(_ context.Context, movieID uuid.UUID) ([]*entity.Genre, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var genres []entity.Genre
	for _, link := range r.s.movieGenres {
		if link.MovieID == movieID {
			if genre, ok := r.s.genres[link.GenreID]; ok {
				genres = append(genres, genre)
			}
		}
	}
	sort.Slice(genres, func(i, j int) bool { return genres[i].Name < genres[j].Name })

	return pointers(genres), nil
}

func (r *memoryGenreRepo) FindAll(_ context.Context, offset, limit int) ([]*entity.Genre, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var genres []entity.Genre
	for _, genre := range r.s.genres {
		genres = append(genres, genre)
	}
	sort.Slice(genres, func(i, j int) bool { return genres[i].Name < genres[j].Name })

	return pointers(window(genres, offset, limit)), nil
}

func (r *memoryGenreRepo) CountAll(_ context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return int64(len(r.s.genres)), nil
}

func (r *memoryGenreRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.genres[id]; !ok {
		return fmt.Errorf("genre not found")
	}
	delete(r.s.genres, id)

	return nil
}

type memoryActorRepo struct{ s *MemoryStore }

func (r *memoryActorRepo) Create(_ context.Context, actor *entity.Actor) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.actors[actor.ID] = *actor

	return nil
}

func (r *memoryActorRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Actor, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	actor, ok := r.s.actors[id]
	if !ok {
		return nil, nil
	}
	return &actor, nil
}

func (r *memoryActorRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]*entity.Actor, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	wanted := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	var actors []entity.Actor
	for id, actor := range r.s.actors {
		if _, ok := wanted[id]; ok {
			actors = append(actors, actor)
		}
	}
	sort.Slice(actors, func(i, j int) bool { return actors[i].Name < actors[j].Name })

	return pointers(actors), nil
}

func (r *memoryActorRepo) FindByMovieID(_ context.Context, movieID uuid.UUID) ([]*entity.Actor, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var actors []entity.Actor
	for _, link := range r.s.movieActors {
		if link.MovieID == movieID {
			if actor, ok := r.s.actors[link.ActorID]; ok {
				actors = append(actors, actor)
			}
		}
	}
	sort.Slice(actors, func(i, j int) bool { return actors[i].Name < actors[j].Name })

	return pointers(actors), nil
}

func (r *memoryActorRepo) FindAll(_ context.Context, offset, limit int) ([]*entity.Actor, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var actors []entity.Actor
	for _, actor := range r.s.actors {
		actors = append(actors, actor)
	}
	sort.Slice(actors, func(i, j int) bool { return actors[i].Name < actors[j].Name })

	return pointers(window(actors, offset, limit)), nil
}

func (r *memoryActorRepo) CountAll(_ context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return int64(len(r.s.actors)), nil
}

func (r *memoryActorRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.actors[id]; !ok {
		return fmt.Errorf("actor not found")
	}
	delete(r.s.actors, id)

	return nil
}

type memoryMovieGenreRepo struct{ s *MemoryStore }

func (r *memoryMovieGenreRepo) CreateBatch(_ context.Context, movieGenres []*entity.MovieGenre) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, link := range movieGenres {
		r.s.movieGenres = append(r.s.movieGenres, *link)
	}
	return nil
}

func (r *memoryMovieGenreRepo) FindByMovieID(_ context.Context, movieID uuid.UUID) ([]*entity.MovieGenre, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var links []entity.MovieGenre
	for _, link := range r.s.movieGenres {
		if link.MovieID == movieID {
			links = append(links, link)
		}
	}
	return pointers(links), nil
}

func (r *memoryMovieGenreRepo) DeleteByMovieID(_ context.Context, movieID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	kept := r.s.movieGenres[:0]
	for _, link := range r.s.movieGenres {
		if link.MovieID != movieID {
			kept = append(kept, link)
		}
	}
	r.s.movieGenres = kept

	return nil
}

func (r *memoryMovieGenreRepo) DeleteByGenreID(_ context.Context, genreID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	kept := r.s.movieGenres[:0]
	for _, link := range r.s.movieGenres {
		if link.GenreID != genreID {
			kept = append(kept, link)
		}
	}
	r.s.movieGenres = kept

	return nil
}

type memoryMovieActorRepo struct{ s *MemoryStore }

func (r *memoryMovieActorRepo) CreateBatch(_ context.Context, movieActors []*entity.MovieActor) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, link := range movieActors {
		r.s.movieActors = append(r.s.movieActors, *link)
	}
	return nil
}

func (r *memoryMovieActorRepo) FindByMovieID(_ context.Context, movieID uuid.UUID) ([]*entity.MovieActor, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var links []entity.MovieActor
	for _, link := range r.s.movieActors {
		if link.MovieID == movieID {
			links = append(links, link)
		}
	}
	return pointers(links), nil
}

func (r *memoryMovieActorRepo) DeleteByMovieID(_ context.Context, movieID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	kept := r.s.movieActors[:0]
	for _, link := range r.s.movieActors {
		if link.MovieID != movieID {
			kept = append(kept, link)
		}
	}
	r.s.movieActors = kept

	return nil
}

func (r *memoryMovieActorRepo) DeleteByActorID(_ context.Context, actorID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	kept := r.s.movieActors[:0]
	for _, link := range r.s.movieActors {
		if link.ActorID != actorID {
			kept = append(kept, link)
		}
	}
	r.s.movieActors = kept

	return nil
}

func window[T any](items []T, offset, limit int) []T {
	if offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

func pointers[T any](items []T) []*T {
	if items == nil {
		return nil
	}
	out := make([]*T, len(items))
	for i := range items {
		out[i] = &items[i]
	}
	return out
}
