package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFillPercent(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		max   float64
		want  float64
	}{
		{"full", 10, 10, 100},
		{"half", 5, 10, 50},
		{"zero", 0, 10, 0},
		{"zero max", 5, 0, 0},
		{"negative score clamps", -1, 10, 0},
		{"over max clamps", 12, 10, 100},
		{"fractional", 32, 40, 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, FillPercent(tt.score, tt.max), 0.0001)
		})
	}
}

func TestTierBoundaries(t *testing.T) {
	tests := []struct {
		percent float64
		want    string
	}{
		{100, TierStrong},
		{80, TierStrong},
		{79.9, TierModerate},
		{60, TierModerate},
		{59.9, TierWeak},
		{0, TierWeak},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Tier(tt.percent), "percent %v", tt.percent)
	}
}

func TestEvaluationRequestValidate(t *testing.T) {
	tests := []struct {
		name       string
		transcript string
		duration   int
		wantErr    bool
	}{
		{"valid", "hello", 60, false},
		{"empty transcript", "", 60, true},
		{"whitespace transcript", "   \n\t ", 60, true},
		{"zero duration", "hello", 0, true},
		{"negative duration", "hello", -5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := EvaluationRequest{Transcript: tt.transcript, Duration: tt.duration}.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var validationErr *ValidationError
			assert.ErrorAs(t, err, &validationErr)
		})
	}
}

func TestFormatScore(t *testing.T) {
	assert.Equal(t, "78", FormatScore(78))
	assert.Equal(t, "7.5", FormatScore(7.5))
	assert.Equal(t, "0", FormatScore(0))
	assert.Equal(t, "1.6", FormatScore(1.6))
}

func TestWeightsSumToFullScore(t *testing.T) {
	total := Weights.Content + Weights.SpeechRate + Weights.Grammar + Weights.Clarity + Weights.Engagement
	assert.Equal(t, float64(100), total)

	content := Weights.Salutation + Weights.Keywords + Weights.Flow
	assert.Equal(t, Weights.Content, content)

	grammar := Weights.GrammarSub + Weights.Vocabulary
	assert.Equal(t, Weights.Grammar, grammar)
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "transcript too short", (&ServiceError{Message: "transcript too short"}).Error())
	assert.Equal(t, "Evaluation failed.", (&ServiceError{}).Error())
	assert.Equal(t, "No results to share. Please evaluate a transcript first.", (&NoResultError{Action: "share"}).Error())
}
