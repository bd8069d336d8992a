package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"moviweb-backend/internal/apperror"
	"moviweb-backend/internal/database"
	"moviweb-backend/internal/models"

	"gorm.io/gorm"
)

// gormStore is the persistent Store backend. Multi-step writes run in a
// single transaction so a partial failure leaves no orphaned rows.
type gormStore struct {
	db      *database.Database
	timeout time.Duration
}

func NewGormStore(db *database.Database) Store {
	return &gormStore{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

var (
	_ Store = (*gormStore)(nil)
	_ Store = (*MemoryStore)(nil)
)

func (s *gormStore) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *gormStore) CreateUser(ctx context.Context, name string) (*models.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperror.ValidationFailed("name", "user name is required")
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	user := models.User{Name: name}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &user, nil
}

func (s *gormStore) ListUsers(ctx context.Context, offset, limit int) ([]models.User, int64, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var total int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	query := s.db.WithContext(ctx).
		Preload("FavoriteMovies", func(db *gorm.DB) *gorm.DB { return db.Order("movies.id ASC") }).
		Order("users.id ASC").
		Offset(offset)
	if limit > 0 {
		query = query.Limit(limit)
	}

	var users []models.User
	if err := query.Find(&users).Error; err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}
	return users, total, nil
}

func (s *gormStore) GetUser(ctx context.Context, id uint) (*models.User, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var user models.User
	err := s.db.WithContext(ctx).First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("user", id)
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &user, nil
}

func (s *gormStore) DeleteUser(ctx context.Context, id uint) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound("user", id)
			}
			return fmt.Errorf("delete user: %w", err)
		}
		// Association rows go with the user; shared movie rows stay.
		if err := tx.Where("user_id = ?", id).Delete(&models.UserMovie{}).Error; err != nil {
			return fmt.Errorf("delete user favorites: %w", err)
		}
		if err := tx.Delete(&user).Error; err != nil {
			return fmt.Errorf("delete user: %w", err)
		}
		return nil
	})
}

func (s *gormStore) ListMoviesForUser(ctx context.Context, userID uint) ([]models.Movie, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if _, err := s.GetUser(ctx, userID); err != nil {
		return nil, err
	}

	var movies []models.Movie
	err := s.db.WithContext(ctx).Model(&models.Movie{}).
		Joins("JOIN user_movies ON user_movies.movie_id = movies.id").
		Where("user_movies.user_id = ?", userID).
		Order("movies.id ASC").
		Find(&movies).Error
	if err != nil {
		return nil, fmt.Errorf("list movies for user: %w", err)
	}
	return movies, nil
}

func (s *gormStore) AddMovieForUser(ctx context.Context, userID uint, movie *models.Movie) (*models.Movie, error) {
	if movie == nil || strings.TrimSpace(movie.Name) == "" {
		return nil, apperror.ValidationFailed("name", "movie name is required")
	}
	name := strings.TrimSpace(movie.Name)

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var stored models.Movie
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound("user", userID)
			}
			return fmt.Errorf("add movie: %w", err)
		}

		// Reuse the shared movie row: by imdb id when the entry carries one,
		// by name for manual entries without one.
		lookup := tx.Where("imdb_id = ?", movie.ImdbID)
		if movie.ImdbID == "" {
			lookup = tx.Where("imdb_id = '' AND name = ?", name)
		}
		found := false
		err := lookup.First(&stored).Error
		switch {
		case err == nil:
			found = true
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return fmt.Errorf("find existing movie: %w", err)
		}
		if !found {
			stored = *movie
			stored.ID = 0
			stored.Name = name
			if err := tx.Create(&stored).Error; err != nil {
				return fmt.Errorf("create movie: %w", err)
			}
		}

		assoc := models.UserMovie{UserID: userID, MovieID: stored.ID}
		if err := tx.Create(&assoc).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperror.Conflict("movie is already in favorites")
			}
			return fmt.Errorf("create favorite: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

func (s *gormStore) UpdateMovie(ctx context.Context, userID, movieID uint, params models.UpdateMovieParams) (*models.Movie, error) {
	if params.Name != nil && strings.TrimSpace(*params.Name) == "" {
		return nil, apperror.ValidationFailed("name", "movie name cannot be blank")
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var movie models.Movie
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.requireAssociation(tx, userID, movieID); err != nil {
			return err
		}
		if err := tx.First(&movie, movieID).Error; err != nil {
			return fmt.Errorf("load movie: %w", err)
		}
		applyUpdate(&movie, params)
		if err := tx.Save(&movie).Error; err != nil {
			return fmt.Errorf("update movie: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

func (s *gormStore) DeleteMovieForUser(ctx context.Context, userID, movieID uint) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	res := s.db.WithContext(ctx).
		Where("user_id = ? AND movie_id = ?", userID, movieID).
		Delete(&models.UserMovie{})
	if res.Error != nil {
		return fmt.Errorf("delete favorite: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperror.NotFoundMsg("movie not found in user's favorites")
	}
	return nil
}

func (s *gormStore) requireAssociation(tx *gorm.DB, userID, movieID uint) error {
	var assoc models.UserMovie
	err := tx.Where("user_id = ? AND movie_id = ?", userID, movieID).First(&assoc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFoundMsg("movie not found in user's favorites")
		}
		return fmt.Errorf("check favorite: %w", err)
	}
	return nil
}
