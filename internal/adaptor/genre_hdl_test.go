package adaptor_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinema-catalog/internal/dto/response"
	"cinema-catalog/internal/testutil"
)

func TestCreateGenre(t *testing.T) {
	t.Run("creates a genre for staff", func(t *testing.T) {
		app := testutil.NewTestApp(t)
		staff := app.CreateUser(t, "admin@example.com", "s3cretpass", true)
		token := app.Authenticate(t, staff)

		rec := app.Request(t, http.MethodPost, "/api/genres", token, map[string]any{"name": "Action"})

		require.Equal(t, http.StatusCreated, rec.Code)
		got := testutil.DecodeJSON[response.GenreResponse](t, rec)
		assert.NotEmpty(t, got.ID)
		assert.Equal(t, "Action", got.Name)
	})

	t.Run("rejects non staff users", func(t *testing.T) {
		app := testutil.NewTestApp(t)
		user := app.CreateUser(t, "viewer@example.com", "s3cretpass", false)
		token := app.Authenticate(t, user)

		rec := app.Request(t, http.MethodPost, "/api/genres", token, map[string]any{"name": "Action"})

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("rejects an empty name", func(t *testing.T) {
		app := testutil.NewTestApp(t)
		staff := app.CreateUser(t, "admin@example.com", "s3cretpass", true)
		token := app.Authenticate(t, staff)

		rec := app.Request(t, http.MethodPost, "/api/genres", token, map[string]any{"name": ""})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetGenres(t *testing.T) {
	t.Run("rejects anonymous requests", func(t *testing.T) {
		app := testutil.NewTestApp(t)

		rec := app.Request(t, http.MethodGet, "/api/genres", "", nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("lists genres ordered by name", func(t *testing.T) {
		app := testutil.NewTestApp(t)
		user := app.CreateUser(t, "viewer@example.com", "s3cretpass", false)
		token := app.Authenticate(t, user)

		app.SeedGenre(t, "Drama")
		app.SeedGenre(t, "Action")

		rec := app.Request(t, http.MethodGet, "/api/genres", token, nil)

		require.Equal(t, http.StatusOK, rec.Code)
		page := testutil.DecodeJSON[response.PaginatedResponse[response.GenreResponse]](t, rec)
		assert.Equal(t, int64(2), page.Count)
		require.Len(t, page.Results, 2)
		assert.Equal(t, "Action", page.Results[0].Name)
		assert.Equal(t, "Drama", page.Results[1].Name)
	})
}

func TestGetGenreByID(t *testing.T) {
	t.Run("returns the genre", func(t *testing.T) {
		app := testutil.NewTestApp(t)
		user := app.CreateUser(t, "viewer@example.com", "s3cretpass", false)
		token := app.Authenticate(t, user)

		genre := app.SeedGenre(t, "Action")

		rec := app.Request(t, http.MethodGet, "/api/genres/"+genre.ID.String(), token, nil)

		require.Equal(t, http.StatusOK, rec.Code)
		got := testutil.DecodeJSON[response.GenreResponse](t, rec)
		assert.Equal(t, genre.ID.String(), got.ID)
	})

	t.Run("unknown id returns 404", func(t *testing.T) {
		app := testutil.NewTestApp(t)
		user := app.CreateUser(t, "viewer@example.com", "s3cretpass", false)
		token := app.Authenticate(t, user)

		rec := app.Request(t, http.MethodGet, "/api/genres/"+uuid.NewString(), token, nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed id returns 404", func(t *testing.T) {
		app := testutil.NewTestApp(t)
		user := app.CreateUser(t, "viewer@example.com", "s3cretpass", false)
		token := app.Authenticate(t, user)

		rec := app.Request(t, http.MethodGet, "/api/genres/not-a-uuid", token, nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestDeleteGenre(t *testing.T) {
	t.Run("deletes the genre and detaches movies", func(t *testing.T) {
		app := testutil.NewTestApp(t)
		staff := app.CreateUser(t, "admin@example.com", "s3cretpass", true)
		token := app.Authenticate(t, staff)

		genre := app.SeedGenre(t, "Action")
		movie := app.SeedMovie(t, "The Avengers", "Heroes.", 143, []uuid.UUID{genre.ID}, nil)

		rec := app.Request(t, http.MethodDelete, "/api/genres/"+genre.ID.String(), token, nil)
		require.Equal(t, http.StatusNoContent, rec.Code)

		rec = app.Request(t, http.MethodGet, "/api/genres/"+genre.ID.String(), token, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)

		// Movie tetap ada tanpa genre yang dihapus
		rec = app.Request(t, http.MethodGet, "/api/movies/"+movie.ID.String(), token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		got := testutil.DecodeJSON[response.MovieResponse](t, rec)
		assert.Empty(t, got.Genres)
	})

	t.Run("rejects non staff users", func(t *testing.T) {
		app := testutil.NewTestApp(t)
		user := app.CreateUser(t, "viewer@example.com", "s3cretpass", false)
		token := app.Authenticate(t, user)

		genre := app.SeedGenre(t, "Action")

		rec := app.Request(t, http.MethodDelete, "/api/genres/"+genre.ID.String(), token, nil)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("unknown id returns 404", func(t *testing.T) {
		app := testutil.NewTestApp(t)
		staff := app.CreateUser(t, "admin@example.com", "s3cretpass", true)
		token := app.Authenticate(t, staff)

		rec := app.Request(t, http.MethodDelete, "/api/genres/"+uuid.NewString(), token, nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
