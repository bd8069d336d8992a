package models

import "time"

type User struct {
	ID             uint      `gorm:"primaryKey" json:"id" example:"1"`
	Name           string    `gorm:"not null;index" json:"name" example:"Alice"`
	FavoriteMovies []Movie   `gorm:"many2many:user_movies;" json:"favorite_movies,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// UserMovie is the association row linking a user to a favorite movie.
// The composite primary key keeps a given (user, movie) pair to one row.
type UserMovie struct {
	UserID    uint      `gorm:"primaryKey" json:"user_id"`
	MovieID   uint      `gorm:"primaryKey" json:"movie_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (UserMovie) TableName() string {
	return "user_movies"
}
