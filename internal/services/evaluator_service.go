package services

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/speakgrade/speakgrade/internal/models"
	"github.com/speakgrade/speakgrade/internal/notify"
)

// Evaluator drives the evaluation lifecycle and owns the single
// latest-result slot. The slot is written only by a successful evaluation
// and always replaced whole; a failed attempt leaves it untouched.
type Evaluator struct {
	client *ScoringClient
	hub    *notify.Hub
	log    *zap.Logger

	mu     sync.Mutex
	busy   bool
	latest *models.ScoreResult
}

func NewEvaluator(client *ScoringClient, hub *notify.Hub, log *zap.Logger) *Evaluator {
	return &Evaluator{
		client: client,
		hub:    hub,
		log:    log,
	}
}

// Submit validates the input, sends it to the scoring service and stores the
// result. At most one evaluation can be outstanding; a second Submit while
// one is in flight is rejected without touching the network.
func (e *Evaluator) Submit(ctx context.Context, transcript string, duration int) (*models.ScoreResult, error) {
	req := models.EvaluationRequest{Transcript: transcript, Duration: duration}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	e.mu.Lock()
	if e.busy {
		e.mu.Unlock()
		return nil, &models.ServiceError{Message: "An evaluation is already in progress."}
	}
	e.busy = true
	e.mu.Unlock()

	defer func() {
		e.mu.Lock()
		e.busy = false
		e.mu.Unlock()
		e.hub.Loading(false)
	}()

	e.hub.Error("")
	e.hub.Loading(true)
	e.log.Info("submitting transcript for evaluation",
		zap.Int("duration_seconds", duration),
		zap.Int("transcript_bytes", len(transcript)))

	result, err := e.client.Evaluate(ctx, req)
	if err != nil {
		e.log.Warn("evaluation failed", zap.Error(err))
		e.hub.Error(err.Error())
		return nil, err
	}

	e.mu.Lock()
	e.latest = result
	e.mu.Unlock()

	e.log.Info("evaluation complete",
		zap.Float64("final_score", result.FinalScore),
		zap.String("grade", result.Grade))
	e.hub.Toast("Evaluation complete!")
	return result, nil
}

// Latest returns the most recent successful result, or a *NoResultError when
// nothing has been evaluated yet.
func (e *Evaluator) Latest() (*models.ScoreResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.latest == nil {
		return nil, &models.NoResultError{}
	}
	return e.latest, nil
}

// LoadSample fetches the predefined transcript from the sample provider,
// falling back to the built-in sample when none is configured. Failures
// never affect the stored result.
func (e *Evaluator) LoadSample(ctx context.Context) (*models.Sample, error) {
	if e.client.SampleURL == "" {
		return builtinSample(), nil
	}
	sample, err := e.client.Sample(ctx)
	if err != nil {
		e.log.Warn("sample load failed", zap.Error(err))
		return nil, err
	}
	return sample, nil
}
