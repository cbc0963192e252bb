package repository

import (
	"context"
	"fmt"

	"movierec/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ReviewRepository interface {
	// Insert persists a labeled review. The (user_id, movie_id) unique
	// constraint makes this safe under concurrent submission: the first insert
	// wins and every other one gets ErrDuplicateReview.
	Insert(ctx context.Context, review *models.Review) error
	Exists(ctx context.Context, userID string, movieID int64) (bool, error)
	ListByUser(ctx context.Context, userID string) ([]models.Review, error)
}

type reviewRepository struct {
	db *pgxpool.Pool
}

func NewReviewRepository(db *pgxpool.Pool) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Insert(ctx context.Context, review *models.Review) error {
	query := `
	INSERT INTO reviews (user_id, movie_id, body, sentiment, created_at)
	VALUES ($1, $2, $3, $4, now())
	RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		review.UserID, review.MovieID, review.Body, review.Sentiment).
		Scan(&review.ID, &review.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateReview
		}
		// Referenced user or movie missing.
		if isForeignKeyViolation(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to insert review: %w", err)
	}
	return nil
}

func (r *reviewRepository) Exists(ctx context.Context, userID string, movieID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM reviews WHERE user_id = $1 AND movie_id = $2)`,
		userID, movieID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check if review exists: %w", err)
	}
	return exists, nil
}

func (r *reviewRepository) ListByUser(ctx context.Context, userID string) ([]models.Review, error) {
	rows, err := r.db.Query(ctx, `
	SELECT id, user_id, movie_id, body, sentiment, created_at
	FROM reviews
	WHERE user_id = $1
	ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}
	defer rows.Close()

	var reviews []models.Review
	for rows.Next() {
		var rev models.Review
		err := rows.Scan(&rev.ID, &rev.UserID, &rev.MovieID, &rev.Body, &rev.Sentiment, &rev.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, rev)
	}
	return reviews, rows.Err()
}
