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

func TestActorEndpoints(t *testing.T) {
	t.Run("write access is staff only", func(t *testing.T) {
		app := testutil.NewTestApp(t)
		user := app.CreateUser(t, "viewer@example.com", "s3cretpass", false)
		token := app.Authenticate(t, user)

		actor := app.SeedActor(t, "Christian Bale")

		rec := app.Request(t, http.MethodPost, "/api/actors", token, map[string]any{"name": "Robert Downey Jr."})
		assert.Equal(t, http.StatusForbidden, rec.Code)

		rec = app.Request(t, http.MethodDelete, "/api/actors/"+actor.ID.String(), token, nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("staff can create and delete", func(t *testing.T) {
		app := testutil.NewTestApp(t)
		staff := app.CreateUser(t, "admin@example.com", "s3cretpass", true)
		token := app.Authenticate(t, staff)

		rec := app.Request(t, http.MethodPost, "/api/actors", token, map[string]any{"name": "Robert Downey Jr."})
		require.Equal(t, http.StatusCreated, rec.Code)
		created := testutil.DecodeJSON[response.ActorResponse](t, rec)
		assert.Equal(t, "Robert Downey Jr.", created.Name)

		rec = app.Request(t, http.MethodDelete, "/api/actors/"+created.ID, token, nil)
		require.Equal(t, http.StatusNoContent, rec.Code)

		rec = app.Request(t, http.MethodGet, "/api/actors/"+created.ID, token, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("deleting an actor detaches movies", func(t *testing.T) {
		app := testutil.NewTestApp(t)
		staff := app.CreateUser(t, "admin@example.com", "s3cretpass", true)
		token := app.Authenticate(t, staff)

		actor := app.SeedActor(t, "Robert Downey Jr.")
		movie := app.SeedMovie(t, "The Avengers", "Heroes.", 143, nil, []uuid.UUID{actor.ID})

		rec := app.Request(t, http.MethodDelete, "/api/actors/"+actor.ID.String(), token, nil)
		require.Equal(t, http.StatusNoContent, rec.Code)

		rec = app.Request(t, http.MethodGet, "/api/movies/"+movie.ID.String(), token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		got := testutil.DecodeJSON[response.MovieResponse](t, rec)
		assert.Empty(t, got.Actors)
	})

	t.Run("lists actors ordered by name", func(t *testing.T) {
		app := testutil.NewTestApp(t)
		user := app.CreateUser(t, "viewer@example.com", "s3cretpass", false)
		token := app.Authenticate(t, user)

		app.SeedActor(t, "Robert Downey Jr.")
		app.SeedActor(t, "Christian Bale")

		rec := app.Request(t, http.MethodGet, "/api/actors", token, nil)

		require.Equal(t, http.StatusOK, rec.Code)
		page := testutil.DecodeJSON[response.PaginatedResponse[response.ActorResponse]](t, rec)
		assert.Equal(t, int64(2), page.Count)
		require.Len(t, page.Results, 2)
		assert.Equal(t, "Christian Bale", page.Results[0].Name)
		assert.Equal(t, "Robert Downey Jr.", page.Results[1].Name)
	})

	t.Run("listing requires authentication", func(t *testing.T) {
		app := testutil.NewTestApp(t)

		rec := app.Request(t, http.MethodGet, "/api/actors", "", nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
