package handlers

// CreateUserRequest is the add-user form.
type CreateUserRequest struct {
	Name string `json:"name" example:"Alice"`
}

// AddMovieRequest is the add-movie form. Title drives the metadata lookup;
// the other fields are manual fallback values.
type AddMovieRequest struct {
	Title     string  `json:"title" example:"Inception"`
	Director  string  `json:"director,omitempty"`
	Genre     string  `json:"genre,omitempty"`
	Year      int     `json:"year,omitempty"`
	Rating    float64 `json:"rating,omitempty"`
	PosterURL string  `json:"poster_url,omitempty"`
}
