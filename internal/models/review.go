package models

import "time"

type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
)

// Valid reports whether the label is one the classifier is allowed to emit.
func (s Sentiment) Valid() bool {
	return s == SentimentPositive || s == SentimentNegative
}

type Review struct {
	ID        int64     `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	MovieID   int64     `json:"movie_id" db:"movie_id"`
	Body      string    `json:"body" db:"body"`
	Sentiment Sentiment `json:"sentiment" db:"sentiment"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
