package models

import (
	"time"
)

// Movie is a shared entity: multiple users may reference the same row via
// the user_movies association. ImdbID stays empty for manually entered movies.
type Movie struct {
	ID        uint      `gorm:"primaryKey" json:"id" example:"1"`
	ImdbID    string    `gorm:"index;size:50" json:"imdb_id,omitempty" example:"tt1375666"`
	Name      string    `gorm:"not null;index" json:"name" example:"Inception"`
	Director  string    `json:"director,omitempty" example:"Christopher Nolan"`
	Genre     string    `json:"genre,omitempty" example:"Action, Sci-Fi"`
	Year      int       `gorm:"index" json:"year,omitempty" example:"2010"`
	Rating    float64   `gorm:"index" json:"rating,omitempty" example:"8.8"`
	PosterURL string    `json:"poster_url,omitempty" example:"https://m.media-amazon.com/images/M/inception.jpg"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Movie) TableName() string {
	return "movies"
}

// UpdateMovieParams is a partial update: nil fields are left unchanged.
type UpdateMovieParams struct {
	Name      *string  `json:"name"`
	Director  *string  `json:"director"`
	Genre     *string  `json:"genre"`
	Year      *int     `json:"year"`
	Rating    *float64 `json:"rating"`
	PosterURL *string  `json:"poster_url"`
}

// OMDbResponse mirrors the fields we read from the OMDb by-title endpoint.
// OMDb reports errors in-band: Response is the string "True" or "False".
type OMDbResponse struct {
	Title      string `json:"Title"`
	Year       string `json:"Year"`
	Director   string `json:"Director"`
	Genre      string `json:"Genre"`
	ImdbRating string `json:"imdbRating"`
	ImdbID     string `json:"imdbID"`
	Poster     string `json:"Poster"`
	Response   string `json:"Response"`
	Error      string `json:"Error"`
}

// MovieInfo is the normalized result of an OMDb lookup, ready to copy into a
// Movie row. Fields OMDb reported as "N/A" are left at their zero value.
type MovieInfo struct {
	ImdbID    string  `json:"imdb_id"`
	Name      string  `json:"name"`
	Director  string  `json:"director"`
	Genre     string  `json:"genre"`
	Year      int     `json:"year"`
	Rating    float64 `json:"rating"`
	PosterURL string  `json:"poster_url"`
}
