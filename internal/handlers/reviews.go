package handlers

import (
	"encoding/json"
	"net/http"

	"movierec/internal/container"
	"movierec/internal/models"
)

type submitReviewRequest struct {
	UserID  string `json:"user_id"`
	MovieID int64  `json:"movie_id"`
	Text    string `json:"text"`
}

type submitReviewResponse struct {
	Sentiment       models.Sentiment `json:"sentiment"`
	Recommendations []models.Movie   `json:"recommendations"`
}

// SubmitReview runs the whole pipeline: classify, persist, recommend.
// A resubmission for the same (user, movie) gets 409 without touching the
// classifier again.
func SubmitReview(c *container.Container) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		var req submitReviewRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.UserID == "" || req.MovieID == 0 {
			writeError(w, http.StatusUnprocessableEntity, "user_id and movie_id are required")
			return
		}

		sentiment, recommendations, err := c.Orchestrator.SubmitReview(r.Context(), req.UserID, req.MovieID, req.Text)
		if err != nil {
			writeDomainError(c, w, err)
			return
		}
		writeJSON(w, http.StatusCreated, submitReviewResponse{
			Sentiment:       sentiment,
			Recommendations: recommendations,
		})
	}
}

func ListUserReviews(c *container.Container) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		userID := r.URL.Query().Get("user_id")
		if userID == "" {
			writeError(w, http.StatusUnprocessableEntity, "query parameter user_id is required")
			return
		}

		reviews, err := c.ReviewRepo.ListByUser(r.Context(), userID)
		if err != nil {
			writeDomainError(c, w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"reviews": reviews})
	}
}
