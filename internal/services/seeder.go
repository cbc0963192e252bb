package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// CatalogSeeder bulk-loads TMDB's top-rated listing into the catalog so the
// fallback recommender has something to sample before organic imports pile up.
type CatalogSeeder struct {
	catalog  *CatalogService
	provider MetadataProvider
	logger   *logrus.Logger
}

func NewCatalogSeeder(catalog *CatalogService, provider MetadataProvider, logger *logrus.Logger) *CatalogSeeder {
	return &CatalogSeeder{catalog: catalog, provider: provider, logger: logger}
}

// SeedTopRated imports the first pages of the top-rated listing. Individual
// movie failures are logged and skipped; only listing-level failures abort.
func (s *CatalogSeeder) SeedTopRated(ctx context.Context, pages int) (int, error) {
	if pages < 1 {
		pages = 1
	}

	var imported int
	for page := 1; page <= pages; page++ {
		listing, err := s.provider.TopRated(ctx, page)
		if err != nil {
			return imported, fmt.Errorf("failed to fetch top rated page %d: %w", page, err)
		}

		for _, result := range listing.Results {
			if result.ID == 0 {
				continue
			}
			if _, err := s.catalog.Import(ctx, result.ID); err != nil {
				s.logger.WithError(err).WithFields(logrus.Fields{
					"tmdb_id": result.ID,
					"title":   result.Title,
				}).Warn("Skipping movie that failed to import")
				continue
			}
			imported++
		}
	}

	s.logger.WithField("imported", imported).Info("Catalog seeding finished")
	return imported, nil
}
