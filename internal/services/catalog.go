package services

import (
	"context"
	"fmt"

	"movierec/internal/models"
	"movierec/internal/repository"

	"github.com/sirupsen/logrus"
)

// MetadataProvider is the movie metadata source. Satisfied by TMDBClient;
// tests substitute fixed-result fakes.
type MetadataProvider interface {
	Search(ctx context.Context, query string) (*models.TMDBSearchResponse, error)
	Details(ctx context.Context, tmdbID int64) (*models.TMDBMovieDetails, error)
	Credits(ctx context.Context, tmdbID int64) (*models.TMDBCredits, error)
	TopRated(ctx context.Context, page int) (*models.TMDBSearchResponse, error)
}

// CatalogService connects the metadata provider to the catalog store: search
// passes through, import pulls details and credits and upserts them.
type CatalogService struct {
	provider MetadataProvider
	catalog  repository.CatalogRepository
	logger   *logrus.Logger
}

func NewCatalogService(provider MetadataProvider, catalog repository.CatalogRepository, logger *logrus.Logger) *CatalogService {
	return &CatalogService{provider: provider, catalog: catalog, logger: logger}
}

func (s *CatalogService) Search(ctx context.Context, query string) (*models.TMDBSearchResponse, error) {
	return s.provider.Search(ctx, query)
}

// Import fetches a movie's attributes and credits from the provider and
// upserts them into the catalog. Importing the same TMDB id again returns the
// existing movie with any new genres attached. Returns
// repository.ErrNotFound when the provider has no such movie.
func (s *CatalogService) Import(ctx context.Context, tmdbID int64) (*models.Movie, error) {
	details, err := s.provider.Details(ctx, tmdbID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch movie details: %w", err)
	}
	if details == nil {
		return nil, repository.ErrNotFound
	}

	// Missing credits degrade to empty director/cast fields.
	credits, err := s.provider.Credits(ctx, tmdbID)
	if err != nil {
		s.logger.WithError(err).WithField("tmdb_id", tmdbID).Warn("Failed to fetch credits, importing without them")
		credits = nil
	}

	movie := models.MovieFromTMDB(details, credits)
	id, err := s.catalog.Upsert(ctx, movie)
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"movie_id": id,
		"tmdb_id":  tmdbID,
		"title":    movie.Title,
	}).Info("Movie imported into catalog")

	return s.catalog.Get(ctx, id)
}

func (s *CatalogService) List(ctx context.Context) ([]models.Movie, error) {
	return s.catalog.List(ctx)
}
