package repository

import (
	"context"

	"moviweb-backend/internal/models"
)

// Store is the data-access contract shared by the persistent (postgres) and
// in-memory backends. Both implementations satisfy identical pre/post
// conditions, so the conformance tests apply to either.
//
// Error kinds returned through internal/apperror:
//   - ErrValidation for blank names/titles
//   - ErrNotFound for unknown users, movies, or absent associations
//   - ErrConflict when a (user, movie) association already exists
type Store interface {
	CreateUser(ctx context.Context, name string) (*models.User, error)
	// ListUsers returns one page of users ordered by id ascending, plus the
	// total user count. A limit of zero or less returns everything.
	ListUsers(ctx context.Context, offset, limit int) ([]models.User, int64, error)
	GetUser(ctx context.Context, id uint) (*models.User, error)
	DeleteUser(ctx context.Context, id uint) error

	ListMoviesForUser(ctx context.Context, userID uint) ([]models.Movie, error)
	AddMovieForUser(ctx context.Context, userID uint, movie *models.Movie) (*models.Movie, error)
	UpdateMovie(ctx context.Context, userID, movieID uint, params models.UpdateMovieParams) (*models.Movie, error)
	DeleteMovieForUser(ctx context.Context, userID, movieID uint) error
}
