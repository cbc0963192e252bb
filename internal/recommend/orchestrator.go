package recommend

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"movierec/internal/models"
	"movierec/internal/repository"

	"github.com/sirupsen/logrus"
)

// ErrEmptyReview is returned before any store mutation when the submitted
// review has no text.
var ErrEmptyReview = errors.New("review text cannot be empty")

// Classifier labels free-form review text. Implementations must return an
// error when the verdict cannot be obtained; guessing a label is not allowed.
type Classifier interface {
	Classify(ctx context.Context, text string) (models.Sentiment, error)
}

// Reviews is the write surface the orchestrator needs from the review store.
type Reviews interface {
	Insert(ctx context.Context, review *models.Review) error
	Exists(ctx context.Context, userID string, movieID int64) (bool, error)
}

// DefaultLimit caps recommendation list length for both strategies.
const DefaultLimit = 5

// Orchestrator runs the review-submission pipeline: classify the review,
// persist it with its label, then pick a recommendation strategy from the
// label. Positive reviews get synopsis-similarity ranking seeded on the
// reviewed movie; negative ones get a random catalog sample.
type Orchestrator struct {
	similar    *SimilarityRecommender
	fallback   *FallbackRecommender
	reviews    Reviews
	classifier Classifier
	logger     *logrus.Logger
}

func NewOrchestrator(similar *SimilarityRecommender, fallback *FallbackRecommender, reviews Reviews, classifier Classifier, logger *logrus.Logger) *Orchestrator {
	return &Orchestrator{
		similar:    similar,
		fallback:   fallback,
		reviews:    reviews,
		classifier: classifier,
		logger:     logger,
	}
}

// SubmitReview persists a labeled review and returns the recommendations it
// triggers. Resubmitting for the same (user, movie) fails fast with
// repository.ErrDuplicateReview before spending a classifier call; the unique
// constraint at insert time settles any race the pre-check misses.
func (o *Orchestrator) SubmitReview(ctx context.Context, userID string, movieID int64, text string) (models.Sentiment, []models.Movie, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil, ErrEmptyReview
	}

	exists, err := o.reviews.Exists(ctx, userID, movieID)
	if err != nil {
		return "", nil, fmt.Errorf("failed to check for existing review: %w", err)
	}
	if exists {
		return "", nil, repository.ErrDuplicateReview
	}

	sentiment, err := o.classifier.Classify(ctx, text)
	if err != nil {
		return "", nil, fmt.Errorf("failed to classify review: %w", err)
	}

	review := &models.Review{
		UserID:    userID,
		MovieID:   movieID,
		Body:      text,
		Sentiment: sentiment,
	}
	if err := o.reviews.Insert(ctx, review); err != nil {
		return "", nil, err
	}

	o.logger.WithFields(logrus.Fields{
		"user_id":   userID,
		"movie_id":  movieID,
		"sentiment": sentiment,
	}).Info("Review persisted")

	var recommendations []models.Movie
	if sentiment == models.SentimentPositive {
		recommendations, err = o.similar.RecommendSimilar(ctx, movieID, DefaultLimit)
	} else {
		recommendations, err = o.fallback.RecommendRandom(ctx, DefaultLimit)
	}
	if err != nil {
		return sentiment, nil, fmt.Errorf("failed to compute recommendations: %w", err)
	}

	return sentiment, recommendations, nil
}
