package handlers

import (
	"moviweb-backend/internal/models"
	"moviweb-backend/internal/services"
	"moviweb-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type MovieHandler struct {
	service services.FavoriteService
	logger  *logrus.Logger
}

func NewMovieHandler(service services.FavoriteService, logger *logrus.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		logger:  logger,
	}
}

// ListUserMovies godoc
// @Summary List a user's favorite movies
// @Tags movies
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} utils.StandardResponse "Favorite movies"
// @Failure 404 {object} utils.StandardResponse "User not found"
// @Router /users/{id}/movies [get]
func (h *MovieHandler) ListUserMovies(c *fiber.Ctx) error {
	userID, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	movies, err := h.service.ListUserMovies(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Movies retrieved successfully", movies)
}

// AddMovie godoc
// @Summary Add a movie to a user's favorites
// @Description Look the title up on OMDb and link the enriched movie to the user. Manual fields are stored when the lookup service is unavailable.
// @Tags movies
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param movie body AddMovieRequest true "Movie to add"
// @Success 201 {object} utils.StandardResponse "Movie added to favorites"
// @Failure 400 {object} utils.StandardResponse "Title missing or blank"
// @Failure 404 {object} utils.StandardResponse "User unknown or movie not found on OMDb"
// @Failure 409 {object} utils.StandardResponse "Movie already in favorites"
// @Failure 502 {object} utils.StandardResponse "Metadata service unavailable"
// @Router /users/{id}/movies [post]
func (h *MovieHandler) AddMovie(c *fiber.Ctx) error {
	userID, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	var req AddMovieRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	movie, err := h.service.AddMovieToUser(c.Context(), userID, services.AddMovieInput{
		Title:     req.Title,
		Director:  req.Director,
		Genre:     req.Genre,
		Year:      req.Year,
		Rating:    req.Rating,
		PosterURL: req.PosterURL,
	})
	if err != nil {
		return respondError(c, err)
	}

	h.logger.WithFields(logrus.Fields{
		"user_id":  userID,
		"movie_id": movie.ID,
	}).Info("Movie added to favorites")
	return utils.SuccessResponse(c, fiber.StatusCreated, "Movie added successfully to your favorites!", movie)
}

// UpdateMovie godoc
// @Summary Update a favorite movie's fields
// @Description Partial update; omitted fields keep their value. Changes are visible to every user sharing the movie.
// @Tags movies
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param movieId path int true "Movie ID"
// @Param movie body models.UpdateMovieParams true "Fields to update"
// @Success 200 {object} utils.StandardResponse "Movie updated"
// @Failure 404 {object} utils.StandardResponse "Movie not in user's favorites"
// @Router /users/{id}/movies/{movieId} [put]
func (h *MovieHandler) UpdateMovie(c *fiber.Ctx) error {
	userID, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid user ID")
	}
	movieID, err := parseID(c, "movieId")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	var params models.UpdateMovieParams
	if err := c.BodyParser(&params); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	movie, err := h.service.UpdateUserMovie(c.Context(), userID, movieID, params)
	if err != nil {
		return respondError(c, err)
	}

	h.logger.WithField("movie_id", movieID).Info("Movie updated")
	return utils.SuccessResponse(c, fiber.StatusOK, "Movie updated successfully!", movie)
}

// DeleteMovie godoc
// @Summary Remove a movie from a user's favorites
// @Description Removes the association only; the shared movie record stays
// @Tags movies
// @Produce json
// @Param id path int true "User ID"
// @Param movieId path int true "Movie ID"
// @Success 200 {object} utils.StandardResponse "Movie removed"
// @Failure 404 {object} utils.StandardResponse "Movie not in user's favorites"
// @Router /users/{id}/movies/{movieId} [delete]
func (h *MovieHandler) DeleteMovie(c *fiber.Ctx) error {
	userID, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid user ID")
	}
	movieID, err := parseID(c, "movieId")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	if err := h.service.RemoveUserMovie(c.Context(), userID, movieID); err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Movie deleted successfully!", nil)
}

// LookupMovie godoc
// @Summary Preview OMDb metadata for a title
// @Description Lookup without persisting anything, for form prefill
// @Tags movies
// @Produce json
// @Param title query string true "Movie title"
// @Success 200 {object} utils.StandardResponse "Movie metadata"
// @Failure 400 {object} utils.StandardResponse "Title missing"
// @Failure 404 {object} utils.StandardResponse "Movie not found on OMDb"
// @Failure 502 {object} utils.StandardResponse "Metadata service unavailable"
// @Router /movies/lookup [get]
func (h *MovieHandler) LookupMovie(c *fiber.Ctx) error {
	info, err := h.service.LookupMovie(c.Context(), c.Query("title"))
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Movie metadata retrieved successfully", info)
}
