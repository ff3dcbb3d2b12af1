package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/speakgrade/speakgrade/internal/models"
)

// ScoringClient talks to the external scoring service. The service owns all
// evaluation logic; this side only speaks its request/response contract.
type ScoringClient struct {
	EvaluateURL string
	SampleURL   string
	HTTP        *http.Client
}

func NewScoringClient(evaluateURL, sampleURL string, timeout time.Duration) *ScoringClient {
	return &ScoringClient{
		EvaluateURL: evaluateURL,
		SampleURL:   sampleURL,
		HTTP:        &http.Client{Timeout: timeout},
	}
}

type evaluateResponse struct {
	Success bool                `json:"success"`
	Results *models.ScoreResult `json:"results"`
	Error   string              `json:"error"`
}

// Evaluate posts one transcript+duration pair and returns the scored result.
// Every failure mode (transport, non-success envelope, malformed body) comes
// back as a *models.ServiceError.
func (c *ScoringClient) Evaluate(ctx context.Context, req models.EvaluationRequest) (*models.ScoreResult, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, &models.ServiceError{Cause: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.EvaluateURL, bytes.NewBuffer(body))
	if err != nil {
		return nil, &models.ServiceError{Cause: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(httpReq)
	if err != nil {
		return nil, &models.ServiceError{Message: "Network error: " + err.Error(), Cause: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &models.ServiceError{Cause: err}
	}

	var envelope evaluateResponse
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, &models.ServiceError{Cause: fmt.Errorf("malformed scoring response: %w", err)}
	}

	if !envelope.Success || envelope.Results == nil {
		return nil, &models.ServiceError{Message: envelope.Error}
	}
	return envelope.Results, nil
}

// Sample fetches the predefined transcript+duration pair from the sample
// provider.
func (c *ScoringClient) Sample(ctx context.Context) (*models.Sample, error) {
	if c.SampleURL == "" {
		return nil, &models.ServiceError{Message: "No sample provider configured."}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.SampleURL, nil)
	if err != nil {
		return nil, &models.ServiceError{Cause: err}
	}

	resp, err := c.HTTP.Do(httpReq)
	if err != nil {
		return nil, &models.ServiceError{Message: "Failed to load sample: " + err.Error(), Cause: err}
	}
	defer resp.Body.Close()

	var sample models.Sample
	if err := json.NewDecoder(resp.Body).Decode(&sample); err != nil {
		return nil, &models.ServiceError{Message: "Failed to load sample.", Cause: err}
	}
	return &sample, nil
}
