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

func TestGetProfile(t *testing.T) {
	t.Run("returns the current account", func(t *testing.T) {
		app := testutil.NewTestApp(t)
		user := app.CreateUser(t, "me@example.com", "s3cretpass", true)
		token := app.Authenticate(t, user)

		rec := app.Request(t, http.MethodGet, "/api/users/profile", token, nil)

		require.Equal(t, http.StatusOK, rec.Code)
		body := testutil.DecodeJSON[envelope[response.UserResponse]](t, rec)
		assert.True(t, body.Status)
		assert.Equal(t, user.ID.String(), body.Data.ID)
		assert.Equal(t, "me@example.com", body.Data.Email)
		assert.True(t, body.Data.IsStaff)
	})

	t.Run("rejects anonymous requests", func(t *testing.T) {
		app := testutil.NewTestApp(t)

		rec := app.Request(t, http.MethodGet, "/api/users/profile", "", nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejects a garbage token", func(t *testing.T) {
		app := testutil.NewTestApp(t)

		rec := app.Request(t, http.MethodGet, "/api/users/profile", "not-a-token", nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestGetAllUsers(t *testing.T) {
	t.Run("rejects non staff users", func(t *testing.T) {
		app := testutil.NewTestApp(t)
		user := app.CreateUser(t, "viewer@example.com", "s3cretpass", false)
		token := app.Authenticate(t, user)

		rec := app.Request(t, http.MethodGet, "/api/admin/users", token, nil)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("lists accounts for staff", func(t *testing.T) {
		app := testutil.NewTestApp(t)
		app.CreateUser(t, "a@example.com", "s3cretpass", false)
		app.CreateUser(t, "b@example.com", "s3cretpass", false)
		staff := app.CreateUser(t, "admin@example.com", "s3cretpass", true)
		token := app.Authenticate(t, staff)

		rec := app.Request(t, http.MethodGet, "/api/admin/users", token, nil)

		require.Equal(t, http.StatusOK, rec.Code)
		body := testutil.DecodeJSON[envelope[response.PaginatedResponse[response.UserResponse]]](t, rec)
		assert.Equal(t, int64(3), body.Data.Count)
		require.Len(t, body.Data.Results, 3)

		// Terbaru dulu
		assert.Equal(t, "admin@example.com", body.Data.Results[0].Email)
	})

	t.Run("paginates the listing", func(t *testing.T) {
		app := testutil.NewTestApp(t)
		app.CreateUser(t, "a@example.com", "s3cretpass", false)
		app.CreateUser(t, "b@example.com", "s3cretpass", false)
		staff := app.CreateUser(t, "admin@example.com", "s3cretpass", true)
		token := app.Authenticate(t, staff)

		rec := app.Request(t, http.MethodGet, "/api/admin/users?per_page=2", token, nil)

		require.Equal(t, http.StatusOK, rec.Code)
		body := testutil.DecodeJSON[envelope[response.PaginatedResponse[response.UserResponse]]](t, rec)
		assert.Equal(t, int64(3), body.Data.Count)
		assert.Len(t, body.Data.Results, 2)
		require.NotNil(t, body.Data.Next)
		assert.Contains(t, *body.Data.Next, "page=2")
		assert.Nil(t, body.Data.Previous)
	})
}

func TestDeleteUser(t *testing.T) {
	t.Run("rejects non staff users", func(t *testing.T) {
		app := testutil.NewTestApp(t)
		user := app.CreateUser(t, "viewer@example.com", "s3cretpass", false)
		token := app.Authenticate(t, user)

		rec := app.Request(t, http.MethodDelete, "/api/admin/users/"+uuid.NewString(), token, nil)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("deletes the account and revokes its sessions", func(t *testing.T) {
		app := testutil.NewTestApp(t)
		victim := app.CreateUser(t, "victim@example.com", "s3cretpass", false)
		victimToken := app.Authenticate(t, victim)
		staff := app.CreateUser(t, "admin@example.com", "s3cretpass", true)
		token := app.Authenticate(t, staff)

		rec := app.Request(t, http.MethodDelete, "/api/admin/users/"+victim.ID.String(), token, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		// Session milik user yang dihapus ikut dicabut
		rec = app.Request(t, http.MethodGet, "/api/movies", victimToken, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		// Hapus kedua kali menghasilkan 404
		rec = app.Request(t, http.MethodDelete, "/api/admin/users/"+victim.ID.String(), token, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("unknown id returns 404", func(t *testing.T) {
		app := testutil.NewTestApp(t)
		staff := app.CreateUser(t, "admin@example.com", "s3cretpass", true)
		token := app.Authenticate(t, staff)

		rec := app.Request(t, http.MethodDelete, "/api/admin/users/"+uuid.NewString(), token, nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed id returns 404", func(t *testing.T) {
		app := testutil.NewTestApp(t)
		staff := app.CreateUser(t, "admin@example.com", "s3cretpass", true)
		token := app.Authenticate(t, staff)

		rec := app.Request(t, http.MethodDelete, "/api/admin/users/not-a-uuid", token, nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
