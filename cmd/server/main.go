package main

import (
	"context"
	"flag"
	"net/http"

	"movierec/internal/container"
	"movierec/internal/handlers"
	"movierec/internal/logger"

	"github.com/joho/godotenv"
)

func main() {
	logger.Init()
	log := logger.Get()

	if err := godotenv.Load(".env.local"); err != nil {
		log.Info("No .env file found, using system environment variables")
	}

	var (
		port      = flag.String("port", "8080", "HTTP listen port")
		seedPages = flag.Int("seed", 0, "import N pages of TMDB top-rated movies and exit")
	)
	flag.Parse()

	ctx := context.Background()
	c, err := container.New(ctx)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize application")
	}
	defer c.Close()

	if *seedPages > 0 {
		imported, err := c.Seeder.SeedTopRated(ctx, *seedPages)
		if err != nil {
			log.WithError(err).Fatal("Catalog seeding failed")
		}
		log.WithField("imported", imported).Info("Catalog seeding complete")
		return
	}

	http.HandleFunc("/healthz", handlers.Healthz())
	http.HandleFunc("/signup", handlers.Signup(c))
	http.HandleFunc("/login", handlers.Login(c))
	http.HandleFunc("/movies", handlers.ListMovies(c))
	http.HandleFunc("/movies/search", handlers.SearchMovies(c))
	http.HandleFunc("/movies/import", handlers.ImportMovie(c))
	http.HandleFunc("/reviews", reviewsMux(c))

	log.Infof("Server starting on port %s", *port)
	log.Fatal(http.ListenAndServe(":"+*port, nil))
}

// reviewsMux routes /reviews: POST submits, GET lists a user's reviews.
func reviewsMux(c *container.Container) http.HandlerFunc {
	submit := handlers.SubmitReview(c)
	list := handlers.ListUserReviews(c)
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			list(w, r)
			return
		}
		submit(w, r)
	}
}
