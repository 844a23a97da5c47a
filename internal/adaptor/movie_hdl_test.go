package adaptor_test

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinema-catalog/internal/dto/response"
	"cinema-catalog/internal/testutil"
)

func TestGetMovies(t *testing.T) {
	t.Run("rejects anonymous requests", func(t *testing.T) {
		app := testutil.NewTestApp(t)

		rec := app.Request(t, http.MethodGet, "/api/movies", "", nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("returns every movie", func(t *testing.T) {
		app := testutil.NewTestApp(t)
		user := app.CreateUser(t, "viewer@example.com", "s3cretpass", false)
		token := app.Authenticate(t, user)

		app.SeedMovie(t, "The Avengers", "Earth's mightiest heroes.", 143, nil, nil)
		app.SeedMovie(t, "Batman Begins", "The origin of the bat.", 140, nil, nil)

		rec := app.Request(t, http.MethodGet, "/api/movies", token, nil)

		require.Equal(t, http.StatusOK, rec.Code)
		page := testutil.DecodeJSON[response.PaginatedResponse[response.MovieResponse]](t, rec)
		assert.Equal(t, int64(2), page.Count)
		require.Len(t, page.Results, 2)

		titles := []string{page.Results[0].Title, page.Results[1].Title}
		assert.Contains(t, titles, "The Avengers")
		assert.Contains(t, titles, "Batman Begins")
	})

	t.Run("filters by title substring", func(t *testing.T) {
		app := testutil.NewTestApp(t)
		user := app.CreateUser(t, "viewer@example.com", "s3cretpass", false)
		token := app.Authenticate(t, user)

		app.SeedMovie(t, "The Avengers", "Earth's mightiest heroes.", 143, nil, nil)
		app.SeedMovie(t, "Batman Begins", "The origin of the bat.", 140, nil, nil)

		for _, search := range []string{"Avengers", "avengers", "AVENG"} {
			rec := app.Request(t, http.MethodGet, "/api/movies?title="+search, token, nil)

			require.Equal(t, http.StatusOK, rec.Code)
			page := testutil.DecodeJSON[response.PaginatedResponse[response.MovieResponse]](t, rec)
			require.Len(t, page.Results, 1, "search %q", search)
			assert.Equal(t, "The Avengers", page.Results[0].Title)
		}
	})

	t.Run("filters by genre ids", func(t *testing.T) {
		app := testutil.NewTestApp(t)
		user := app.CreateUser(t, "viewer@example.com", "s3cretpass", false)
		token := app.Authenticate(t, user)

		action := app.SeedGenre(t, "Action")
		drama := app.SeedGenre(t, "Drama")
		withAction := app.SeedMovie(t, "The Avengers", "Heroes.", 143, []uuid.UUID{action.ID}, nil)
		withDrama := app.SeedMovie(t, "Marriage Story", "A divorce.", 137, []uuid.UUID{drama.ID}, nil)

		rec := app.Request(t, http.MethodGet, "/api/movies?genres="+action.ID.String(), token, nil)

		require.Equal(t, http.StatusOK, rec.Code)
		page := testutil.DecodeJSON[response.PaginatedResponse[response.MovieResponse]](t, rec)
		require.Len(t, page.Results, 1)
		assert.Equal(t, withAction.ID.String(), page.Results[0].ID)

		// inclusive OR across listed ids
		rec = app.Request(t, http.MethodGet,
			fmt.Sprintf("/api/movies?genres=%s,%s", action.ID, drama.ID), token, nil)

		require.Equal(t, http.StatusOK, rec.Code)
		page = testutil.DecodeJSON[response.PaginatedResponse[response.MovieResponse]](t, rec)
		assert.Equal(t, int64(2), page.Count)
		ids := []string{page.Results[0].ID, page.Results[1].ID}
		assert.Contains(t, ids, withAction.ID.String())
		assert.Contains(t, ids, withDrama.ID.String())
	})

	t.Run("filters by actor ids", func(t *testing.T) {
		app := testutil.NewTestApp(t)
		user := app.CreateUser(t, "viewer@example.com", "s3cretpass", false)
		token := app.Authenticate(t, user)

		downey := app.SeedActor(t, "Robert Downey Jr.")
		bale := app.SeedActor(t, "Christian Bale")
		withDowney := app.SeedMovie(t, "The Avengers", "Heroes.", 143, nil, []uuid.UUID{downey.ID})
		app.SeedMovie(t, "Batman Begins", "The bat.", 140, nil, []uuid.UUID{bale.ID})

		rec := app.Request(t, http.MethodGet, "/api/movies?actors="+downey.ID.String(), token, nil)

		require.Equal(t, http.StatusOK, rec.Code)
		page := testutil.DecodeJSON[response.PaginatedResponse[response.MovieResponse]](t, rec)
		require.Len(t, page.Results, 1)
		assert.Equal(t, withDowney.ID.String(), page.Results[0].ID)
	})

	t.Run("tolerates whitespace around filter ids", func(t *testing.T) {
		app := testutil.NewTestApp(t)
		user := app.CreateUser(t, "viewer@example.com", "s3cretpass", false)
		token := app.Authenticate(t, user)

		action := app.SeedGenre(t, "Action")
		drama := app.SeedGenre(t, "Drama")
		app.SeedMovie(t, "The Avengers", "Heroes.", 143, []uuid.UUID{action.ID}, nil)
		app.SeedMovie(t, "Marriage Story", "A divorce.", 137, []uuid.UUID{drama.ID}, nil)

		query := url.Values{}
		query.Set("genres", fmt.Sprintf(" %s , %s ", action.ID, drama.ID))

		rec := app.Request(t, http.MethodGet, "/api/movies?"+query.Encode(), token, nil)

		require.Equal(t, http.StatusOK, rec.Code)
		page := testutil.DecodeJSON[response.PaginatedResponse[response.MovieResponse]](t, rec)
		assert.Equal(t, int64(2), page.Count)
	})

	t.Run("rejects malformed filter ids", func(t *testing.T) {
		app := testutil.NewTestApp(t)
		user := app.CreateUser(t, "viewer@example.com", "s3cretpass", false)
		token := app.Authenticate(t, user)

		for _, target := range []string{
			"/api/movies?genres=not-a-uuid",
			"/api/movies?actors=123",
		} {
			rec := app.Request(t, http.MethodGet, target, token, nil)
			assert.Equal(t, http.StatusBadRequest, rec.Code, target)
		}
	})

	t.Run("paginates with next and previous links", func(t *testing.T) {
		app := testutil.NewTestApp(t)
		user := app.CreateUser(t, "viewer@example.com", "s3cretpass", false)
		token := app.Authenticate(t, user)

		for i := 1; i <= 3; i++ {
			app.SeedMovie(t, fmt.Sprintf("Movie %d", i), "A film.", 100+i, nil, nil)
		}

		rec := app.Request(t, http.MethodGet, "/api/movies?per_page=2", token, nil)

		require.Equal(t, http.StatusOK, rec.Code)
		first := testutil.DecodeJSON[response.PaginatedResponse[response.MovieResponse]](t, rec)
		assert.Equal(t, int64(3), first.Count)
		assert.Len(t, first.Results, 2)
		require.NotNil(t, first.Next)
		assert.Contains(t, *first.Next, "page=2")
		assert.Nil(t, first.Previous)

		rec = app.Request(t, http.MethodGet, "/api/movies?per_page=2&page=2", token, nil)

		require.Equal(t, http.StatusOK, rec.Code)
		second := testutil.DecodeJSON[response.PaginatedResponse[response.MovieResponse]](t, rec)
		assert.Len(t, second.Results, 1)
		assert.Nil(t, second.Next)
		require.NotNil(t, second.Previous)
		assert.Equal(t, "Movie 3", second.Results[0].Title)
	})

	t.Run("returns an empty results array when nothing matches", func(t *testing.T) {
		app := testutil.NewTestApp(t)
		user := app.CreateUser(t, "viewer@example.com", "s3cretpass", false)
		token := app.Authenticate(t, user)

		rec := app.Request(t, http.MethodGet, "/api/movies?title=nothing", token, nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"results":[]`)
	})
}

func TestGetMovieByID(t *testing.T) {
	t.Run("rejects anonymous requests", func(t *testing.T) {
		app := testutil.NewTestApp(t)

		rec := app.Request(t, http.MethodGet, "/api/movies/"+uuid.NewString(), "", nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("returns the movie with its associations", func(t *testing.T) {
		app := testutil.NewTestApp(t)
		user := app.CreateUser(t, "viewer@example.com", "s3cretpass", false)
		token := app.Authenticate(t, user)

		genre := app.SeedGenre(t, "Action")
		actor := app.SeedActor(t, "Robert Downey Jr.")
		movie := app.SeedMovie(t, "The Avengers", "Heroes.", 143, []uuid.UUID{genre.ID}, []uuid.UUID{actor.ID})

		rec := app.Request(t, http.MethodGet, "/api/movies/"+movie.ID.String(), token, nil)

		require.Equal(t, http.StatusOK, rec.Code)
		got := testutil.DecodeJSON[response.MovieResponse](t, rec)
		assert.Equal(t, movie.ID.String(), got.ID)
		assert.Equal(t, "The Avengers", got.Title)
		assert.Equal(t, "Heroes.", got.Description)
		assert.Equal(t, 143, got.Duration)
		assert.Equal(t, []string{genre.ID.String()}, got.Genres)
		assert.Equal(t, []string{actor.ID.String()}, got.Actors)
	})

	t.Run("unknown id returns 404", func(t *testing.T) {
		app := testutil.NewTestApp(t)
		user := app.CreateUser(t, "viewer@example.com", "s3cretpass", false)
		token := app.Authenticate(t, user)

		rec := app.Request(t, http.MethodGet, "/api/movies/"+uuid.NewString(), token, nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed id returns 404", func(t *testing.T) {
		app := testutil.NewTestApp(t)
		user := app.CreateUser(t, "viewer@example.com", "s3cretpass", false)
		token := app.Authenticate(t, user)

		rec := app.Request(t, http.MethodGet, "/api/movies/not-a-uuid", token, nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCreateMovie(t *testing.T) {
	payload := map[string]any{
		"title":       "Sample movie",
		"description": "Sample description",
		"duration":    120,
	}

	t.Run("rejects anonymous requests", func(t *testing.T) {
		app := testutil.NewTestApp(t)

		rec := app.Request(t, http.MethodPost, "/api/movies", "", payload)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejects non staff users", func(t *testing.T) {
		app := testutil.NewTestApp(t)
		user := app.CreateUser(t, "viewer@example.com", "s3cretpass", false)
		token := app.Authenticate(t, user)

		rec := app.Request(t, http.MethodPost, "/api/movies", token, payload)

		assert.Equal(t, http.StatusForbidden, rec.Code)

		rec = app.Request(t, http.MethodGet, "/api/movies", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		page := testutil.DecodeJSON[response.PaginatedResponse[response.MovieResponse]](t, rec)
		assert.Equal(t, int64(0), page.Count)
	})

	t.Run("creates a movie for staff", func(t *testing.T) {
		app := testutil.NewTestApp(t)
		staff := app.CreateUser(t, "admin@example.com", "s3cretpass", true)
		token := app.Authenticate(t, staff)

		rec := app.Request(t, http.MethodPost, "/api/movies", token, payload)

		require.Equal(t, http.StatusCreated, rec.Code)
		got := testutil.DecodeJSON[response.MovieResponse](t, rec)
		assert.NotEmpty(t, got.ID)
		assert.Equal(t, "Sample movie", got.Title)
		assert.Equal(t, "Sample description", got.Description)
		assert.Equal(t, 120, got.Duration)
		assert.Empty(t, got.Genres)
		assert.Empty(t, got.Actors)

		rec = app.Request(t, http.MethodGet, "/api/movies/"+got.ID, token, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("creates a movie with associations", func(t *testing.T) {
		app := testutil.NewTestApp(t)
		staff := app.CreateUser(t, "admin@example.com", "s3cretpass", true)
		token := app.Authenticate(t, staff)

		genre := app.SeedGenre(t, "Action")
		actor := app.SeedActor(t, "Robert Downey Jr.")

		rec := app.Request(t, http.MethodPost, "/api/movies", token, map[string]any{
			"title":       "The Avengers",
			"description": "Heroes.",
			"duration":    143,
			"genres":      []string{genre.ID.String()},
			"actors":      []string{actor.ID.String()},
		})

		require.Equal(t, http.StatusCreated, rec.Code)
		got := testutil.DecodeJSON[response.MovieResponse](t, rec)
		assert.Equal(t, []string{genre.ID.String()}, got.Genres)
		assert.Equal(t, []string{actor.ID.String()}, got.Actors)
	})

	t.Run("rejects invalid payloads", func(t *testing.T) {
		app := testutil.NewTestApp(t)
		staff := app.CreateUser(t, "admin@example.com", "s3cretpass", true)
		token := app.Authenticate(t, staff)

		cases := []struct {
			name string
			body map[string]any
		}{
			{"missing title", map[string]any{"description": "x", "duration": 100}},
			{"missing description", map[string]any{"title": "x", "duration": 100}},
			{"zero duration", map[string]any{"title": "x", "description": "y", "duration": 0}},
			{"negative duration", map[string]any{"title": "x", "description": "y", "duration": -5}},
			{"duration too long", map[string]any{"title": "x", "description": "y", "duration": 1000}},
			{"malformed genre id", map[string]any{"title": "x", "description": "y", "duration": 100, "genres": []string{"not-a-uuid"}}},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				rec := app.Request(t, http.MethodPost, "/api/movies", token, tc.body)
				assert.Equal(t, http.StatusBadRequest, rec.Code)
			})
		}
	})

	t.Run("rejects unknown association ids", func(t *testing.T) {
		app := testutil.NewTestApp(t)
		staff := app.CreateUser(t, "admin@example.com", "s3cretpass", true)
		token := app.Authenticate(t, staff)

		rec := app.Request(t, http.MethodPost, "/api/movies", token, map[string]any{
			"title":       "The Avengers",
			"description": "Heroes.",
			"duration":    143,
			"genres":      []string{uuid.NewString()},
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUpdateMovie(t *testing.T) {
	t.Run("rejects non staff users", func(t *testing.T) {
		app := testutil.NewTestApp(t)
		user := app.CreateUser(t, "viewer@example.com", "s3cretpass", false)
		token := app.Authenticate(t, user)

		movie := app.SeedMovie(t, "Original", "Original description.", 100, nil, nil)

		rec := app.Request(t, http.MethodPatch, "/api/movies/"+movie.ID.String(), token,
			map[string]any{"title": "Updated Title"})

		assert.Equal(t, http.StatusForbidden, rec.Code)

		rec = app.Request(t, http.MethodGet, "/api/movies/"+movie.ID.String(), token, nil)
		got := testutil.DecodeJSON[response.MovieResponse](t, rec)
		assert.Equal(t, "Original", got.Title)
	})

	t.Run("applies a partial update", func(t *testing.T) {
		app := testutil.NewTestApp(t)
		staff := app.CreateUser(t, "admin@example.com", "s3cretpass", true)
		token := app.Authenticate(t, staff)

		movie := app.SeedMovie(t, "Original", "Original description.", 100, nil, nil)

		rec := app.Request(t, http.MethodPatch, "/api/movies/"+movie.ID.String(), token,
			map[string]any{"title": "Updated Title"})

		require.Equal(t, http.StatusOK, rec.Code)
		got := testutil.DecodeJSON[response.MovieResponse](t, rec)
		assert.Equal(t, "Updated Title", got.Title)
		assert.Equal(t, "Original description.", got.Description)
		assert.Equal(t, 100, got.Duration)

		rec = app.Request(t, http.MethodGet, "/api/movies/"+movie.ID.String(), token, nil)
		persisted := testutil.DecodeJSON[response.MovieResponse](t, rec)
		assert.Equal(t, "Updated Title", persisted.Title)
	})

	t.Run("applies a full update", func(t *testing.T) {
		app := testutil.NewTestApp(t)
		staff := app.CreateUser(t, "admin@example.com", "s3cretpass", true)
		token := app.Authenticate(t, staff)

		movie := app.SeedMovie(t, "Original", "Original description.", 100, nil, nil)

		rec := app.Request(t, http.MethodPut, "/api/movies/"+movie.ID.String(), token, map[string]any{
			"title":       "New Title",
			"description": "New description.",
			"duration":    155,
		})

		require.Equal(t, http.StatusOK, rec.Code)
		got := testutil.DecodeJSON[response.MovieResponse](t, rec)
		assert.Equal(t, "New Title", got.Title)
		assert.Equal(t, "New description.", got.Description)
		assert.Equal(t, 155, got.Duration)
	})

	t.Run("replaces the association set", func(t *testing.T) {
		app := testutil.NewTestApp(t)
		staff := app.CreateUser(t, "admin@example.com", "s3cretpass", true)
		token := app.Authenticate(t, staff)

		action := app.SeedGenre(t, "Action")
		drama := app.SeedGenre(t, "Drama")
		movie := app.SeedMovie(t, "The Avengers", "Heroes.", 143, []uuid.UUID{action.ID}, nil)

		rec := app.Request(t, http.MethodPatch, "/api/movies/"+movie.ID.String(), token,
			map[string]any{"genres": []string{drama.ID.String()}})

		require.Equal(t, http.StatusOK, rec.Code)
		got := testutil.DecodeJSON[response.MovieResponse](t, rec)
		assert.Equal(t, []string{drama.ID.String()}, got.Genres)
	})

	t.Run("clears associations with an empty list", func(t *testing.T) {
		app := testutil.NewTestApp(t)
		staff := app.CreateUser(t, "admin@example.com", "s3cretpass", true)
		token := app.Authenticate(t, staff)

		action := app.SeedGenre(t, "Action")
		movie := app.SeedMovie(t, "The Avengers", "Heroes.", 143, []uuid.UUID{action.ID}, nil)

		rec := app.Request(t, http.MethodPatch, "/api/movies/"+movie.ID.String(), token,
			map[string]any{"genres": []string{}})

		require.Equal(t, http.StatusOK, rec.Code)
		got := testutil.DecodeJSON[response.MovieResponse](t, rec)
		assert.Empty(t, got.Genres)
	})

	t.Run("rejects unknown association ids", func(t *testing.T) {
		app := testutil.NewTestApp(t)
		staff := app.CreateUser(t, "admin@example.com", "s3cretpass", true)
		token := app.Authenticate(t, staff)

		action := app.SeedGenre(t, "Action")
		movie := app.SeedMovie(t, "The Avengers", "Heroes.", 143, []uuid.UUID{action.ID}, nil)

		rec := app.Request(t, http.MethodPatch, "/api/movies/"+movie.ID.String(), token,
			map[string]any{"genres": []string{uuid.NewString()}})

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		// Asosiasi lama tidak boleh berubah
		rec = app.Request(t, http.MethodGet, "/api/movies/"+movie.ID.String(), token, nil)
		got := testutil.DecodeJSON[response.MovieResponse](t, rec)
		assert.Equal(t, []string{action.ID.String()}, got.Genres)
	})

	t.Run("unknown movie returns 404", func(t *testing.T) {
		app := testutil.NewTestApp(t)
		staff := app.CreateUser(t, "admin@example.com", "s3cretpass", true)
		token := app.Authenticate(t, staff)

		rec := app.Request(t, http.MethodPatch, "/api/movies/"+uuid.NewString(), token,
			map[string]any{"title": "Updated Title"})

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestDeleteMovie(t *testing.T) {
	t.Run("rejects non staff users", func(t *testing.T) {
		app := testutil.NewTestApp(t)
		user := app.CreateUser(t, "viewer@example.com", "s3cretpass", false)
		token := app.Authenticate(t, user)

		movie := app.SeedMovie(t, "The Avengers", "Heroes.", 143, nil, nil)

		rec := app.Request(t, http.MethodDelete, "/api/movies/"+movie.ID.String(), token, nil)

		assert.Equal(t, http.StatusForbidden, rec.Code)

		rec = app.Request(t, http.MethodGet, "/api/movies/"+movie.ID.String(), token, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("deletes and hides the movie", func(t *testing.T) {
		app := testutil.NewTestApp(t)
		staff := app.CreateUser(t, "admin@example.com", "s3cretpass", true)
		token := app.Authenticate(t, staff)

		movie := app.SeedMovie(t, "The Avengers", "Heroes.", 143, nil, nil)

		rec := app.Request(t, http.MethodDelete, "/api/movies/"+movie.ID.String(), token, nil)

		require.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())

		rec = app.Request(t, http.MethodGet, "/api/movies/"+movie.ID.String(), token, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)

		rec = app.Request(t, http.MethodGet, "/api/movies", token, nil)
		page := testutil.DecodeJSON[response.PaginatedResponse[response.MovieResponse]](t, rec)
		assert.Equal(t, int64(0), page.Count)
	})

	t.Run("unknown movie returns 404", func(t *testing.T) {
		app := testutil.NewTestApp(t)
		staff := app.CreateUser(t, "admin@example.com", "s3cretpass", true)
		token := app.Authenticate(t, staff)

		rec := app.Request(t, http.MethodDelete, "/api/movies/"+uuid.NewString(), token, nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
