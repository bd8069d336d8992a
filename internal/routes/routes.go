package routes

import (
	"moviweb-backend/internal/handlers"

	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App, userHandler *handlers.UserHandler, movieHandler *handlers.MovieHandler, uploadHandler *handlers.UploadHandler) {
	// API versioning
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// User routes
	users := v1.Group("/users")
	{
		users.Get("/", userHandler.ListUsers)
		users.Post("/", userHandler.CreateUser)
		users.Get("/:id", userHandler.GetUser)
		users.Delete("/:id", userHandler.DeleteUser)
	}

	// Favorite movie routes, scoped per user
	{
		users.Get("/:id/movies", movieHandler.ListUserMovies)
		users.Post("/:id/movies", movieHandler.AddMovie)
		users.Put("/:id/movies/:movieId", movieHandler.UpdateMovie)
		users.Delete("/:id/movies/:movieId", movieHandler.DeleteMovie)
	}

	// Metadata lookup preview
	movies := v1.Group("/movies")
	{
		movies.Get("/lookup", movieHandler.LookupMovie)
	}

	// Poster uploads
	if uploadHandler != nil {
		upload := v1.Group("/upload")
		upload.Get("/presign", uploadHandler.GetPresignedURL)
	}
}
