package recommend

import (
	"context"
	"fmt"

	"movierec/internal/models"

	"github.com/sirupsen/logrus"
)

// FallbackRecommender serves the negative-review path: an unranked uniform
// sample from the catalog.
type FallbackRecommender struct {
	catalog Catalog
	logger  *logrus.Logger
}

func NewFallbackRecommender(catalog Catalog, logger *logrus.Logger) *FallbackRecommender {
	return &FallbackRecommender{catalog: catalog, logger: logger}
}

// RecommendRandom returns up to limit movies drawn without replacement.
// An empty catalog yields an empty result, not an error.
func (r *FallbackRecommender) RecommendRandom(ctx context.Context, limit int) ([]models.Movie, error) {
	movies, err := r.catalog.Random(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to sample catalog: %w", err)
	}
	if movies == nil {
		movies = []models.Movie{}
	}

	r.logger.WithField("returned", len(movies)).Info("Sampled fallback recommendations")
	return movies, nil
}
