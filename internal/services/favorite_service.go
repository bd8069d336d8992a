package services

import (
	"context"
	"errors"
	"strings"

	"moviweb-backend/internal/apperror"
	"moviweb-backend/internal/models"
	"moviweb-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

// FavoriteService drives the user/favorite-movie workflows: user CRUD, the
// lookup-enriched add-movie path, per-user updates and removals.
type FavoriteService interface {
	CreateUser(ctx context.Context, name string) (*models.User, error)
	ListUsers(ctx context.Context, offset, limit int) ([]models.User, int64, error)
	GetUser(ctx context.Context, id uint) (*models.User, error)
	DeleteUser(ctx context.Context, id uint) error

	ListUserMovies(ctx context.Context, userID uint) ([]models.Movie, error)
	AddMovieToUser(ctx context.Context, userID uint, input AddMovieInput) (*models.Movie, error)
	UpdateUserMovie(ctx context.Context, userID, movieID uint, params models.UpdateMovieParams) (*models.Movie, error)
	RemoveUserMovie(ctx context.Context, userID, movieID uint) error

	LookupMovie(ctx context.Context, title string) (*models.MovieInfo, error)
}

// AddMovieInput carries the add-movie form: the title drives the metadata
// lookup, the remaining fields are the manual fallback when the upstream
// service is unavailable.
type AddMovieInput struct {
	Title     string  `json:"title"`
	Director  string  `json:"director"`
	Genre     string  `json:"genre"`
	Year      int     `json:"year"`
	Rating    float64 `json:"rating"`
	PosterURL string  `json:"poster_url"`
}

func (in AddMovieInput) hasManualFields() bool {
	return in.Director != "" || in.Genre != "" || in.Year != 0 || in.Rating != 0 || in.PosterURL != ""
}

type favoriteService struct {
	store   repository.Store
	lookup  Lookup
	logger  *logrus.Logger
	posters *PosterService
}

func NewFavoriteService(store repository.Store, lookup Lookup, logger *logrus.Logger) FavoriteService {
	return &favoriteService{
		store:  store,
		lookup: lookup,
		logger: logger,
	}
}

func (s *favoriteService) SetPosterService(posters *PosterService) {
	s.posters = posters
}

func (s *favoriteService) CreateUser(ctx context.Context, name string) (*models.User, error) {
	return s.store.CreateUser(ctx, name)
}

func (s *favoriteService) ListUsers(ctx context.Context, offset, limit int) ([]models.User, int64, error) {
	return s.store.ListUsers(ctx, offset, limit)
}

func (s *favoriteService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	return s.store.GetUser(ctx, id)
}

func (s *favoriteService) DeleteUser(ctx context.Context, id uint) error {
	return s.store.DeleteUser(ctx, id)
}

func (s *favoriteService) ListUserMovies(ctx context.Context, userID uint) ([]models.Movie, error) {
	return s.store.ListMoviesForUser(ctx, userID)
}

// AddMovieToUser enriches the titled movie via the metadata lookup and links
// it to the user. A lookup "not found" propagates unchanged: no partially
// filled record is ever stored. When the upstream service fails and the form
// carried manual fields, those are stored instead.
func (s *favoriteService) AddMovieToUser(ctx context.Context, userID uint, input AddMovieInput) (*models.Movie, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, apperror.ValidationFailed("title", "movie title is required")
	}

	movie := &models.Movie{Name: title}

	info, err := s.lookup.LookupByTitle(ctx, title)
	switch {
	case err == nil:
		movie.ImdbID = info.ImdbID
		movie.Name = info.Name
		movie.Director = info.Director
		movie.Genre = info.Genre
		movie.Year = info.Year
		movie.Rating = info.Rating
		movie.PosterURL = info.PosterURL
		fillGaps(movie, input)
	case errors.Is(err, apperror.ErrUpstream) && input.hasManualFields():
		s.logger.WithError(err).WithField("title", title).
			Warn("Metadata lookup failed, storing manually entered fields")
		movie.Director = input.Director
		movie.Genre = input.Genre
		movie.Year = input.Year
		movie.Rating = input.Rating
		movie.PosterURL = input.PosterURL
	default:
		return nil, err
	}

	return s.store.AddMovieForUser(ctx, userID, movie)
}

// UpdateUserMovie applies a partial update. When a bucket-hosted poster is
// being replaced, the old object is removed best-effort.
func (s *favoriteService) UpdateUserMovie(ctx context.Context, userID, movieID uint, params models.UpdateMovieParams) (*models.Movie, error) {
	if s.posters != nil && params.PosterURL != nil {
		s.cleanupReplacedPoster(ctx, userID, movieID, *params.PosterURL)
	}
	return s.store.UpdateMovie(ctx, userID, movieID, params)
}

func (s *favoriteService) RemoveUserMovie(ctx context.Context, userID, movieID uint) error {
	return s.store.DeleteMovieForUser(ctx, userID, movieID)
}

func (s *favoriteService) LookupMovie(ctx context.Context, title string) (*models.MovieInfo, error) {
	return s.lookup.LookupByTitle(ctx, title)
}

func (s *favoriteService) cleanupReplacedPoster(ctx context.Context, userID, movieID uint, newURL string) {
	movies, err := s.store.ListMoviesForUser(ctx, userID)
	if err != nil {
		return
	}
	for _, m := range movies {
		if m.ID != movieID {
			continue
		}
		if m.PosterURL != newURL && s.posters.Owns(m.PosterURL) {
			if err := s.posters.DeleteByURL(ctx, m.PosterURL); err != nil {
				s.logger.WithError(err).Warn("Failed to delete replaced poster")
			}
		}
		return
	}
}

// fillGaps copies manual form fields into whatever the lookup left empty.
func fillGaps(movie *models.Movie, input AddMovieInput) {
	if movie.Director == "" {
		movie.Director = input.Director
	}
	if movie.Genre == "" {
		movie.Genre = input.Genre
	}
	if movie.Year == 0 {
		movie.Year = input.Year
	}
	if movie.Rating == 0 {
		movie.Rating = input.Rating
	}
	if movie.PosterURL == "" {
		movie.PosterURL = input.PosterURL
	}
}
