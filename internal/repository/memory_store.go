package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"moviweb-backend/internal/apperror"
	"moviweb-backend/internal/models"
)

// MemoryStore keeps users and movies in process memory. It is a deterministic
// fixture for tests and single-process development runs; nothing is persisted
// and the RWMutex only makes it safe for the test harness, not for production
// traffic. Ids are assigned per entity type, starting at 1.
type MemoryStore struct {
	mu          sync.RWMutex
	users       map[uint]models.User
	movies      map[uint]models.Movie
	favorites   map[uint]map[uint]struct{} // userID -> set of movieIDs
	nextUserID  uint
	nextMovieID uint
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:       make(map[uint]models.User),
		movies:      make(map[uint]models.Movie),
		favorites:   make(map[uint]map[uint]struct{}),
		nextUserID:  1,
		nextMovieID: 1,
	}
}

func (s *MemoryStore) CreateUser(_ context.Context, name string) (*models.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperror.ValidationFailed("name", "user name is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user := models.User{ID: s.nextUserID, Name: name}
	s.nextUserID++
	s.users[user.ID] = user
	s.favorites[user.ID] = make(map[uint]struct{})
	return &user, nil
}

func (s *MemoryStore) ListUsers(_ context.Context, offset, limit int) ([]models.User, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		u.FavoriteMovies = s.moviesForLocked(u.ID)
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })

	total := int64(len(users))
	if offset > len(users) {
		offset = len(users)
	}
	if offset > 0 {
		users = users[offset:]
	}
	if limit > 0 && limit < len(users) {
		users = users[:limit]
	}
	return users, total, nil
}

func (s *MemoryStore) GetUser(_ context.Context, id uint) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, apperror.NotFound("user", id)
	}
	return &user, nil
}

func (s *MemoryStore) DeleteUser(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return apperror.NotFound("user", id)
	}
	// Associations go with the user; shared movie records stay.
	delete(s.favorites, id)
	delete(s.users, id)
	return nil
}

func (s *MemoryStore) ListMoviesForUser(_ context.Context, userID uint) ([]models.Movie, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.users[userID]; !ok {
		return nil, apperror.NotFound("user", userID)
	}
	return s.moviesForLocked(userID), nil
}

func (s *MemoryStore) AddMovieForUser(_ context.Context, userID uint, movie *models.Movie) (*models.Movie, error) {
	if movie == nil || strings.TrimSpace(movie.Name) == "" {
		return nil, apperror.ValidationFailed("name", "movie name is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[userID]; !ok {
		return nil, apperror.NotFound("user", userID)
	}

	name := strings.TrimSpace(movie.Name)
	stored, ok := s.findExistingLocked(movie.ImdbID, name)
	if !ok {
		stored = *movie
		stored.ID = s.nextMovieID
		s.nextMovieID++
		stored.Name = name
		s.movies[stored.ID] = stored
	}

	if _, dup := s.favorites[userID][stored.ID]; dup {
		return nil, apperror.Conflict("movie is already in favorites")
	}
	s.favorites[userID][stored.ID] = struct{}{}
	return &stored, nil
}

func (s *MemoryStore) UpdateMovie(_ context.Context, userID, movieID uint, params models.UpdateMovieParams) (*models.Movie, error) {
	if params.Name != nil && strings.TrimSpace(*params.Name) == "" {
		return nil, apperror.ValidationFailed("name", "movie name cannot be blank")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.favorites[userID][movieID]; !ok {
		return nil, apperror.NotFoundMsg("movie not found in user's favorites")
	}

	movie := s.movies[movieID]
	applyUpdate(&movie, params)
	s.movies[movieID] = movie
	return &movie, nil
}

func (s *MemoryStore) DeleteMovieForUser(_ context.Context, userID, movieID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.favorites[userID][movieID]; !ok {
		return apperror.NotFoundMsg("movie not found in user's favorites")
	}
	delete(s.favorites[userID], movieID)
	return nil
}

// moviesForLocked returns the user's favorites ordered by movie id. Caller
// holds at least the read lock.
func (s *MemoryStore) moviesForLocked(userID uint) []models.Movie {
	ids := make([]uint, 0, len(s.favorites[userID]))
	for id := range s.favorites[userID] {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	movies := make([]models.Movie, 0, len(ids))
	for _, id := range ids {
		movies = append(movies, s.movies[id])
	}
	return movies
}

// findExistingLocked resolves the shared movie row: by imdb id when the entry
// carries one, by name for manual entries without one.
func (s *MemoryStore) findExistingLocked(imdbID, name string) (models.Movie, bool) {
	for _, m := range s.movies {
		if imdbID != "" && m.ImdbID == imdbID {
			return m, true
		}
		if imdbID == "" && m.ImdbID == "" && m.Name == name {
			return m, true
		}
	}
	return models.Movie{}, false
}

func applyUpdate(movie *models.Movie, params models.UpdateMovieParams) {
	if params.Name != nil {
		movie.Name = strings.TrimSpace(*params.Name)
	}
	if params.Director != nil {
		movie.Director = *params.Director
	}
	if params.Genre != nil {
		movie.Genre = *params.Genre
	}
	if params.Year != nil {
		movie.Year = *params.Year
	}
	if params.Rating != nil {
		movie.Rating = *params.Rating
	}
	if params.PosterURL != nil {
		movie.PosterURL = *params.PosterURL
	}
}
