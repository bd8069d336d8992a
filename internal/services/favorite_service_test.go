package services

import (
	"context"
	"io"
	"testing"

	"moviweb-backend/internal/apperror"
	"moviweb-backend/internal/models"
	"moviweb-backend/internal/repository"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLookup struct {
	info *models.MovieInfo
	err  error
}

func (s *stubLookup) LookupByTitle(_ context.Context, _ string) (*models.MovieInfo, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.info, nil
}

func newTestService(t *testing.T, lookup Lookup) (FavoriteService, *repository.MemoryStore) {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	store := repository.NewMemoryStore()
	return NewFavoriteService(store, lookup, log), store
}

func TestAddMovieToUser_LookupEnrichment(t *testing.T) {
	svc, _ := newTestService(t, &stubLookup{info: &models.MovieInfo{
		ImdbID:    "tt1375666",
		Name:      "Inception",
		Director:  "Christopher Nolan",
		Genre:     "Sci-Fi",
		Year:      2010,
		Rating:    8.8,
		PosterURL: "https://example.com/inception.jpg",
	}})
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, "Ana")
	require.NoError(t, err)

	movie, err := svc.AddMovieToUser(ctx, user.ID, AddMovieInput{Title: "inception"})
	require.NoError(t, err)
	assert.Equal(t, "Inception", movie.Name, "lookup title wins over form input")
	assert.Equal(t, 2010, movie.Year)
	assert.Equal(t, "Sci-Fi", movie.Genre)
	assert.Equal(t, "tt1375666", movie.ImdbID)

	movies, err := svc.ListUserMovies(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, "Inception", movies[0].Name)
}

func TestAddMovieToUser_BlankTitle(t *testing.T) {
	svc, _ := newTestService(t, &stubLookup{err: apperror.NotFoundMsg("should not be called")})
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, "Ana")
	require.NoError(t, err)

	_, err = svc.AddMovieToUser(ctx, user.ID, AddMovieInput{Title: "   "})
	assert.ErrorIs(t, err, apperror.ErrValidation)

	movies, err := svc.ListUserMovies(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, movies, "no record may be created on validation failure")
}

func TestAddMovieToUser_LookupNotFound(t *testing.T) {
	svc, _ := newTestService(t, &stubLookup{err: apperror.NotFoundMsg("Movie not found!")})
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, "Ana")
	require.NoError(t, err)

	// Manual fields present or not, a lookup miss must propagate.
	_, err = svc.AddMovieToUser(ctx, user.ID, AddMovieInput{Title: "No Such Film", Year: 1999})
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	movies, err := svc.ListUserMovies(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, movies)
}

func TestAddMovieToUser_UpstreamFallback(t *testing.T) {
	svc, _ := newTestService(t, &stubLookup{err: apperror.Upstream("service down", nil)})
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, "Ana")
	require.NoError(t, err)

	movie, err := svc.AddMovieToUser(ctx, user.ID, AddMovieInput{
		Title:    "Inception",
		Director: "Christopher Nolan",
		Year:     2010,
	})
	require.NoError(t, err, "manual fields carry the add when the service is down")
	assert.Equal(t, "Inception", movie.Name)
	assert.Equal(t, "Christopher Nolan", movie.Director)
	assert.Equal(t, 2010, movie.Year)
	assert.Empty(t, movie.ImdbID)
}

func TestAddMovieToUser_UpstreamNoFallback(t *testing.T) {
	svc, _ := newTestService(t, &stubLookup{err: apperror.Upstream("service down", nil)})
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, "Ana")
	require.NoError(t, err)

	_, err = svc.AddMovieToUser(ctx, user.ID, AddMovieInput{Title: "Inception"})
	assert.ErrorIs(t, err, apperror.ErrUpstream, "title alone is not enough to store blind")
}

func TestAddMovieToUser_ManualFieldsFillGaps(t *testing.T) {
	svc, _ := newTestService(t, &stubLookup{info: &models.MovieInfo{
		ImdbID: "tt0000001",
		Name:   "Obscure Film",
		// lookup found the movie but OMDb had no rating or poster
	}})
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, "Ana")
	require.NoError(t, err)

	movie, err := svc.AddMovieToUser(ctx, user.ID, AddMovieInput{
		Title:     "Obscure Film",
		Rating:    7.5,
		PosterURL: "https://example.com/custom.jpg",
	})
	require.NoError(t, err)
	assert.Equal(t, 7.5, movie.Rating)
	assert.Equal(t, "https://example.com/custom.jpg", movie.PosterURL)
}

func TestUpdateUserMovie(t *testing.T) {
	svc, _ := newTestService(t, &stubLookup{info: &models.MovieInfo{ImdbID: "tt1375666", Name: "Inception"}})
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, "Ana")
	require.NoError(t, err)
	movie, err := svc.AddMovieToUser(ctx, user.ID, AddMovieInput{Title: "Inception"})
	require.NoError(t, err)

	rating := 9.1
	updated, err := svc.UpdateUserMovie(ctx, user.ID, movie.ID, models.UpdateMovieParams{Rating: &rating})
	require.NoError(t, err)
	assert.Equal(t, 9.1, updated.Rating)

	require.NoError(t, svc.RemoveUserMovie(ctx, user.ID, movie.ID))
	err = svc.RemoveUserMovie(ctx, user.ID, movie.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}
