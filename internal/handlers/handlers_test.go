package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"moviweb-backend/internal/apperror"
	"moviweb-backend/internal/handlers"
	"moviweb-backend/internal/models"
	"moviweb-backend/internal/repository"
	"moviweb-backend/internal/routes"
	"moviweb-backend/internal/services"
	"moviweb-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLookup struct {
	info *models.MovieInfo
	err  error
}

func (s *stubLookup) LookupByTitle(_ context.Context, title string) (*models.MovieInfo, error) {
	if strings.TrimSpace(title) == "" {
		return nil, apperror.ValidationFailed("title", "movie title is required")
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.info, nil
}

func newTestApp(t *testing.T, lookup services.Lookup) *fiber.App {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	store := repository.NewMemoryStore()
	svc := services.NewFavoriteService(store, lookup, log)

	app := fiber.New()
	routes.Setup(app, handlers.NewUserHandler(svc, log), handlers.NewMovieHandler(svc, log), nil)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (int, utils.StandardResponse) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var envelope utils.StandardResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return resp.StatusCode, envelope
}

func inceptionLookup() *stubLookup {
	return &stubLookup{info: &models.MovieInfo{
		ImdbID:    "tt1375666",
		Name:      "Inception",
		Director:  "Christopher Nolan",
		Genre:     "Sci-Fi",
		Year:      2010,
		Rating:    8.8,
		PosterURL: "https://example.com/inception.jpg",
	}}
}

func TestCreateUserEndpoint(t *testing.T) {
	app := newTestApp(t, inceptionLookup())

	status, envelope := doJSON(t, app, http.MethodPost, "/api/v1/users", handlers.CreateUserRequest{Name: "Alice"})
	assert.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, utils.SeveritySuccess, envelope.Severity)

	status, envelope = doJSON(t, app, http.MethodPost, "/api/v1/users", handlers.CreateUserRequest{Name: "  "})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, utils.SeverityError, envelope.Severity)
	assert.Equal(t, "user name is required", envelope.Message)
}

func TestListUsersEndpoint(t *testing.T) {
	app := newTestApp(t, inceptionLookup())

	doJSON(t, app, http.MethodPost, "/api/v1/users", handlers.CreateUserRequest{Name: "Alice"})
	doJSON(t, app, http.MethodPost, "/api/v1/users", handlers.CreateUserRequest{Name: "Bob"})

	status, envelope := doJSON(t, app, http.MethodGet, "/api/v1/users", nil)
	assert.Equal(t, fiber.StatusOK, status)

	users, ok := envelope.Data.([]any)
	require.True(t, ok)
	assert.Len(t, users, 2)
}

func TestListUsersEndpoint_Pagination(t *testing.T) {
	app := newTestApp(t, inceptionLookup())
	for _, name := range []string{"Alice", "Bob", "Charlie"} {
		doJSON(t, app, http.MethodPost, "/api/v1/users", handlers.CreateUserRequest{Name: name})
	}

	status, envelope := doJSON(t, app, http.MethodGet, "/api/v1/users?page=2&limit=2", nil)
	assert.Equal(t, fiber.StatusOK, status)

	users, ok := envelope.Data.([]any)
	require.True(t, ok)
	require.Len(t, users, 1)

	meta, ok := envelope.Meta.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(3), meta["total"])
	assert.Equal(t, float64(2), meta["total_pages"])
	assert.False(t, meta["has_next"].(bool))
	assert.True(t, meta["has_previous"].(bool))
}

func TestGetUserEndpoint_NotFound(t *testing.T) {
	app := newTestApp(t, inceptionLookup())

	status, envelope := doJSON(t, app, http.MethodGet, "/api/v1/users/99", nil)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, utils.SeverityError, envelope.Severity)
}

func TestAddMovieEndpoint(t *testing.T) {
	app := newTestApp(t, inceptionLookup())
	doJSON(t, app, http.MethodPost, "/api/v1/users", handlers.CreateUserRequest{Name: "Ana"})

	status, envelope := doJSON(t, app, http.MethodPost, "/api/v1/users/1/movies", handlers.AddMovieRequest{Title: "Inception"})
	assert.Equal(t, fiber.StatusCreated, status)

	movie, ok := envelope.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Inception", movie["name"])
	assert.Equal(t, float64(2010), movie["year"])

	// Second add of the same movie is a conflict, flashed as an info notice.
	status, envelope = doJSON(t, app, http.MethodPost, "/api/v1/users/1/movies", handlers.AddMovieRequest{Title: "Inception"})
	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, utils.SeverityInfo, envelope.Severity)

	status, envelope = doJSON(t, app, http.MethodGet, "/api/v1/users/1/movies", nil)
	assert.Equal(t, fiber.StatusOK, status)
	movies, ok := envelope.Data.([]any)
	require.True(t, ok)
	assert.Len(t, movies, 1)
}

func TestAddMovieEndpoint_Errors(t *testing.T) {
	tests := []struct {
		name         string
		lookup       services.Lookup
		path         string
		body         handlers.AddMovieRequest
		wantStatus   int
		wantSeverity string
	}{
		{
			name:         "blank title",
			lookup:       inceptionLookup(),
			path:         "/api/v1/users/1/movies",
			body:         handlers.AddMovieRequest{Title: "  "},
			wantStatus:   fiber.StatusBadRequest,
			wantSeverity: utils.SeverityError,
		},
		{
			name:         "unknown user",
			lookup:       inceptionLookup(),
			path:         "/api/v1/users/42/movies",
			body:         handlers.AddMovieRequest{Title: "Inception"},
			wantStatus:   fiber.StatusNotFound,
			wantSeverity: utils.SeverityError,
		},
		{
			name:         "movie not on OMDb",
			lookup:       &stubLookup{err: apperror.NotFoundMsg("Movie not found!")},
			path:         "/api/v1/users/1/movies",
			body:         handlers.AddMovieRequest{Title: "No Such Film"},
			wantStatus:   fiber.StatusNotFound,
			wantSeverity: utils.SeverityError,
		},
		{
			name:         "upstream down, no manual fields",
			lookup:       &stubLookup{err: apperror.Upstream("service unreachable", nil)},
			path:         "/api/v1/users/1/movies",
			body:         handlers.AddMovieRequest{Title: "Inception"},
			wantStatus:   fiber.StatusBadGateway,
			wantSeverity: utils.SeverityWarning,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t, tt.lookup)
			doJSON(t, app, http.MethodPost, "/api/v1/users", handlers.CreateUserRequest{Name: "Ana"})

			status, envelope := doJSON(t, app, http.MethodPost, tt.path, tt.body)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantSeverity, envelope.Severity)
		})
	}
}

func TestUpdateMovieEndpoint(t *testing.T) {
	app := newTestApp(t, inceptionLookup())
	doJSON(t, app, http.MethodPost, "/api/v1/users", handlers.CreateUserRequest{Name: "Ana"})
	doJSON(t, app, http.MethodPost, "/api/v1/users/1/movies", handlers.AddMovieRequest{Title: "Inception"})

	status, envelope := doJSON(t, app, http.MethodPut, "/api/v1/users/1/movies/1", map[string]any{"rating": 9.1})
	assert.Equal(t, fiber.StatusOK, status)

	movie, ok := envelope.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 9.1, movie["rating"])
	assert.Equal(t, "Inception", movie["name"], "omitted fields keep their value")

	status, _ = doJSON(t, app, http.MethodPut, "/api/v1/users/1/movies/99", map[string]any{"rating": 9.1})
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestDeleteMovieEndpoint(t *testing.T) {
	app := newTestApp(t, inceptionLookup())
	doJSON(t, app, http.MethodPost, "/api/v1/users", handlers.CreateUserRequest{Name: "Ana"})
	doJSON(t, app, http.MethodPost, "/api/v1/users/1/movies", handlers.AddMovieRequest{Title: "Inception"})

	status, _ := doJSON(t, app, http.MethodDelete, "/api/v1/users/1/movies/1", nil)
	assert.Equal(t, fiber.StatusOK, status)

	status, _ = doJSON(t, app, http.MethodDelete, "/api/v1/users/1/movies/1", nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestDeleteUserEndpoint(t *testing.T) {
	app := newTestApp(t, inceptionLookup())
	doJSON(t, app, http.MethodPost, "/api/v1/users", handlers.CreateUserRequest{Name: "Ana"})

	status, _ := doJSON(t, app, http.MethodDelete, "/api/v1/users/1", nil)
	assert.Equal(t, fiber.StatusOK, status)

	status, _ = doJSON(t, app, http.MethodGet, "/api/v1/users/1/movies", nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestLookupEndpoint(t *testing.T) {
	app := newTestApp(t, inceptionLookup())

	status, envelope := doJSON(t, app, http.MethodGet, "/api/v1/movies/lookup?title=Inception", nil)
	assert.Equal(t, fiber.StatusOK, status)

	info, ok := envelope.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "tt1375666", info["imdb_id"])

	status, _ = doJSON(t, app, http.MethodGet, "/api/v1/movies/lookup", nil)
	assert.Equal(t, fiber.StatusBadRequest, status, "missing title fails before any network call")
}

func TestInvalidIDParams(t *testing.T) {
	app := newTestApp(t, inceptionLookup())

	status, _ := doJSON(t, app, http.MethodGet, "/api/v1/users/abc/movies", nil)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = doJSON(t, app, http.MethodDelete, "/api/v1/users/abc", nil)
	assert.Equal(t, fiber.StatusBadRequest, status)
}
