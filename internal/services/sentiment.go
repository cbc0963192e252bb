package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"movierec/internal/models"

	"github.com/sirupsen/logrus"
)

// ErrClassifierUnavailable is returned when the sentiment service cannot
// produce a verdict. The caller must surface it; a sentiment is never guessed.
var ErrClassifierUnavailable = errors.New("sentiment classifier unavailable")

// SentimentClient consumes the pre-trained sentiment model exposed as an HTTP
// service: POST /classify {"text": ...} -> {"sentiment": "positive"|"negative"}.
type SentimentClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *logrus.Logger
}

func NewSentimentClient(baseURL string, timeout time.Duration, logger *logrus.Logger) *SentimentClient {
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &SentimentClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

type classifyRequest struct {
	Text string `json:"text"`
}

type classifyResponse struct {
	Sentiment models.Sentiment `json:"sentiment"`
}

func (c *SentimentClient) Classify(ctx context.Context, text string) (models.Sentiment, error) {
	payload, err := json.Marshal(classifyRequest{Text: text})
	if err != nil {
		return "", fmt.Errorf("failed to marshal classify request: %w", err)
	}

	url := c.baseURL + "/classify"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WithError(err).Error("Classifier request failed")
		return "", fmt.Errorf("%w: %v", ErrClassifierUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.WithField("status", resp.StatusCode).Error("Classifier returned non-OK status")
		return "", fmt.Errorf("%w: status %d", ErrClassifierUnavailable, resp.StatusCode)
	}

	var result classifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("%w: bad response: %v", ErrClassifierUnavailable, err)
	}
	if !result.Sentiment.Valid() {
		return "", fmt.Errorf("%w: unknown label %q", ErrClassifierUnavailable, result.Sentiment)
	}

	return result.Sentiment, nil
}
