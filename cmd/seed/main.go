// Command seed resets the database and loads a deterministic demo dataset:
// five users with five favorite movies each. Metadata is fetched from OMDb
// best-effort; entries keep just the title and imdb id when it is unavailable.
package main

import (
	"context"
	"os"
	"time"

	"moviweb-backend/internal/config"
	"moviweb-backend/internal/database"
	"moviweb-backend/internal/models"
	"moviweb-backend/internal/repository"
	"moviweb-backend/internal/services"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type seedMovie struct {
	imdbID string
	name   string
}

var seedUsers = []string{"Alice", "Bob", "Charlie", "Diana", "Eve"}

var seedMovies = map[int][]seedMovie{
	0: {
		{"tt0110912", "Pulp Fiction"},
		{"tt0109830", "Forrest Gump"},
		{"tt0120737", "The Lord of the Rings: The Fellowship of the Ring"},
		{"tt0112573", "Braveheart"},
		{"tt0120815", "Saving Private Ryan"},
	},
	1: {
		{"tt0137523", "Fight Club"},
		{"tt0167261", "The Lord of the Rings: The Two Towers"},
		{"tt0120689", "The Green Mile"},
		{"tt0102926", "The Silence of the Lambs"},
		{"tt0133093", "The Matrix"},
	},
	2: {
		{"tt0167260", "The Lord of the Rings: The Return of the King"},
		{"tt0108052", "Schindler's List"},
		{"tt0172495", "Gladiator"},
		{"tt0080684", "Star Wars: Episode V - The Empire Strikes Back"},
		{"tt0816692", "Interstellar"},
	},
	3: {
		{"tt0468569", "The Dark Knight"},
		{"tt0071562", "The Godfather: Part II"},
		{"tt0317248", "City of God"},
		{"tt0114369", "Se7en"},
		{"tt0103064", "Terminator 2: Judgment Day"},
	},
	4: {
		{"tt0068646", "The Godfather"},
		{"tt6751668", "Parasite"},
		{"tt7991608", "Jojo Rabbit"},
		{"tt0050083", "12 Angry Men"},
		{"tt8579674", "1917"},
	},
}

func main() {
	_ = godotenv.Load("envs/.env")

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{})
	log.SetOutput(os.Stdout)

	cfg := config.Load()
	if cfg.OMDb.APIKey == "" {
		log.Warn("OMDB_API_KEY not set, posters will be left empty")
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	log.Info("Resetting database...")
	if err := db.Reset(); err != nil {
		log.Fatalf("Failed to reset database: %v", err)
	}

	store := repository.NewGormStore(db)
	omdbClient := services.NewOMDbClient(cfg.OMDb, log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	totalMovies := 0
	for idx, name := range seedUsers {
		user, err := store.CreateUser(ctx, name)
		if err != nil {
			log.Fatalf("Failed to create user %s: %v", name, err)
		}

		for _, m := range seedMovies[idx] {
			movie := buildMovie(ctx, omdbClient, log, cfg.OMDb.APIKey, m)
			if _, err := store.AddMovieForUser(ctx, user.ID, movie); err != nil {
				log.Fatalf("Failed to add movie %s for %s: %v", m.name, name, err)
			}
			totalMovies++
		}
	}

	log.Infof("Inserted %d users and %d movies", len(seedUsers), totalMovies)
	log.Info("Database seeded successfully")
}

// buildMovie enriches the seed entry via OMDb when an API key is configured.
// Lookup failures fall back to the bare title and imdb id.
func buildMovie(ctx context.Context, client *services.OMDbClient, log *logrus.Logger, apiKey string, m seedMovie) *models.Movie {
	movie := &models.Movie{
		ImdbID: m.imdbID,
		Name:   m.name,
	}
	if apiKey == "" {
		return movie
	}

	info, err := client.LookupByTitle(ctx, m.name)
	if err != nil {
		log.Warnf("Failed to fetch metadata for %s: %v", m.name, err)
		return movie
	}

	movie.Director = info.Director
	movie.Genre = info.Genre
	movie.Year = info.Year
	movie.Rating = info.Rating
	movie.PosterURL = info.PosterURL
	return movie
}
