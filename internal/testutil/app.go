package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"cinema-catalog/internal/data/entity"
	"cinema-catalog/internal/data/repository"
	"cinema-catalog/internal/wire"
	"cinema-catalog/pkg/utils"
)

// TestApp is a fully wired router over in-memory storage.
type TestApp struct {
	Router http.Handler
	Repo   *repository.Repository
	Store  *MemoryStore

	mu   sync.Mutex
	base time.Time
	seq  int
}

func NewTestApp(t *testing.T) *TestApp {
	t.Helper()

	repo, store := NewMemoryRepository()

	config := &utils.Config{
		App:     utils.AppConfig{Name: "cinema-catalog-test"},
		Session: utils.SessionConfig{ExpiryHours: 24},
		Limiter: utils.LimiterConfig{Enable: false},
	}

	app := wire.Wiring(repo, config, zap.NewNop())

	return &TestApp{
		Router: app.Router,
		Repo:   repo,
		Store:  store,
		base:   time.Now().Add(-time.Hour),
	}
}

// nextTime returns strictly increasing timestamps so created_at ordering
// is deterministic within one test.
func (a *TestApp) nextTime() time.Time {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.seq++
	return a.base.Add(time.Duration(a.seq) * time.Millisecond)
}

// CreateUser provisions an account directly in storage. Staff accounts have
// no registration endpoint, so tests seed them here.
func (a *TestApp) CreateUser(t *testing.T, email, password string, isStaff bool) *entity.User {
	t.Helper()

	hash, err := utils.HashPassword(password)
	require.NoError(t, err)

	now := a.nextTime()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Email:        email,
		PasswordHash: hash,
		IsStaff:      isStaff,
		IsActive:     true,
	}
	require.NoError(t, a.Repo.User.Create(context.Background(), user))

	return user
}

// Authenticate issues a session token for user, bypassing the login
// endpoint.
func (a *TestApp) Authenticate(t *testing.T, user *entity.User) string {
	t.Helper()

	session := &entity.Session{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: a.nextTime(),
		},
		UserID:    user.ID,
		Token:     uuid.New(),
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}
	require.NoError(t, a.Repo.Session.Create(context.Background(), session))

	return session.Token.String()
}

// Request performs a request against the wired router. A non-empty token
// is sent as a bearer credential; a non-nil body is JSON encoded.
func (a *TestApp) Request(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	a.Router.ServeHTTP(rec, req)

	return rec
}

// DecodeJSON unmarshals the recorded response body into T.
func DecodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func (a *TestApp) SeedGenre(t *testing.T, name string) *entity.Genre {
	t.Helper()

	genre := &entity.Genre{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: a.nextTime(),
		},
		Name: name,
	}
	require.NoError(t, a.Repo.Genre.Create(context.Background(), genre))

	return genre
}

func (a *TestApp) SeedActor(t *testing.T, name string) *entity.Actor {
	t.Helper()

	actor := &entity.Actor{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: a.nextTime(),
		},
		Name: name,
	}
	require.NoError(t, a.Repo.Actor.Create(context.Background(), actor))

	return actor
}

// SeedMovie stores a movie with its associations directly, skipping the
// API surface.
func (a *TestApp) SeedMovie(t *testing.T, title, description string, duration int, genreIDs, actorIDs []uuid.UUID) *entity.Movie {
	t.Helper()

	ctx := context.Background()
	now := a.nextTime()

	movie := &entity.Movie{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:       title,
		Description: description,
		Duration:    duration,
	}
	require.NoError(t, a.Repo.Movie.Create(ctx, movie))

	var movieGenres []*entity.MovieGenre
	for _, genreID := range genreIDs {
		movieGenres = append(movieGenres, &entity.MovieGenre{
			BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: a.nextTime()},
			MovieID:    movie.ID,
			GenreID:    genreID,
		})
	}
	require.NoError(t, a.Repo.MovieGenre.CreateBatch(ctx, movieGenres))

	var movieActors []*entity.MovieActor
	for _, actorID := range actorIDs {
		movieActors = append(movieActors, &entity.MovieActor{
			BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: a.nextTime()},
			MovieID:    movie.ID,
			ActorID:    actorID,
		})
	}
	require.NoError(t, a.Repo.MovieActor.CreateBatch(ctx, movieActors))

	return movie
}
