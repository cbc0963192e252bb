package recommend

import (
	"context"
	"fmt"
	"sort"

	"movierec/internal/models"

	"github.com/sirupsen/logrus"
)

// Catalog is the read surface the recommenders need from the movie store.
type Catalog interface {
	Get(ctx context.Context, id int64) (*models.Movie, error)
	SharingGenres(ctx context.Context, seedID int64) ([]models.Movie, error)
	Random(ctx context.Context, limit int) ([]models.Movie, error)
}

// SimilarityRecommender ranks genre-overlapping movies by TF-IDF cosine
// similarity of their synopses to a seed movie's synopsis.
type SimilarityRecommender struct {
	catalog Catalog
	logger  *logrus.Logger
}

func NewSimilarityRecommender(catalog Catalog, logger *logrus.Logger) *SimilarityRecommender {
	return &SimilarityRecommender{catalog: catalog, logger: logger}
}

// RecommendSimilar returns up to limit movies sharing at least one genre with
// the seed, ordered by descending synopsis similarity. A seed with no genres
// or no synopsis, or an empty candidate pool, yields an empty result rather
// than an error. The vector space is fitted on the candidates only and the
// seed is projected into it afterwards, so results are deterministic for a
// fixed catalog.
func (r *SimilarityRecommender) RecommendSimilar(ctx context.Context, seedID int64, limit int) ([]models.Movie, error) {
	seed, err := r.catalog.Get(ctx, seedID)
	if err != nil {
		return nil, fmt.Errorf("failed to load seed movie %d: %w", seedID, err)
	}

	if len(seed.Genres) == 0 || !seed.HasOverview() {
		r.logger.WithFields(logrus.Fields{
			"seed_id":      seedID,
			"genres":       len(seed.Genres),
			"has_overview": seed.HasOverview(),
		}).Info("Seed movie not comparable, returning no recommendations")
		return []models.Movie{}, nil
	}

	pool, err := r.catalog.SharingGenres(ctx, seedID)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidate pool for movie %d: %w", seedID, err)
	}
	if len(pool) == 0 {
		return []models.Movie{}, nil
	}

	docs := make([]string, len(pool))
	for i, m := range pool {
		if m.HasOverview() {
			docs[i] = m.Overview
		}
	}

	vectorizer := NewVectorizer()
	vectorizer.Fit(docs)
	seedVec := vectorizer.Transform(seed.Overview)

	scores := make([]float64, len(pool))
	for i, doc := range docs {
		scores[i] = cosine(seedVec, vectorizer.Transform(doc))
	}

	// Stable sort keeps ties in pool fetch order.
	order := make([]int, len(pool))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	if limit > len(order) {
		limit = len(order)
	}
	ranked := make([]models.Movie, 0, limit)
	for _, idx := range order[:limit] {
		ranked = append(ranked, pool[idx])
	}

	r.logger.WithFields(logrus.Fields{
		"seed_id":   seedID,
		"pool_size": len(pool),
		"returned":  len(ranked),
	}).Info("Computed similarity recommendations")

	return ranked, nil
}
