package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/speakgrade/speakgrade/internal/models"
)

func fixtureResult() *models.ScoreResult {
	return &models.ScoreResult{
		FinalScore: 78,
		MaxScore:   100,
		Grade:      "B+",
		Metadata: models.Metadata{
			WordCount:       12,
			WPM:             16,
			SentenceCount:   2,
			DurationSeconds: 45,
		},
		Scores: models.CriterionScores{
			ContentAndStructure: models.ContentScore{
				Total: 32, Max: 40, Percentage: 80,
				SalutationScore: 4, KeywordsScore: 24, FlowScore: 4,
				Details: models.ContentDetails{
					Salutation: models.SubScoreMax{MaxScore: 5},
					Keywords:   models.SubScoreMax{MaxScore: 30},
					Flow:       models.SubScoreMax{MaxScore: 5},
				},
			},
			SpeechRate: models.SpeechRateScore{Score: 8, Max: 10, WPM: 16, Label: "Too Slow"},
			LanguageAndGrammar: models.GrammarScore{
				Total: 15, Max: 20, Percentage: 75,
				GrammarScore: 8, VocabularyScore: 7,
				Details: models.GrammarDetails{
					Grammar:    models.SubScoreMax{MaxScore: 10},
					Vocabulary: models.SubScoreMax{MaxScore: 10},
				},
			},
			Clarity:    models.ClarityScore{Score: 12, Max: 15, FillerCount: 1, FillerRate: 1.6},
			Engagement: models.EngagementScore{Score: 11, Max: 15, Interpretation: "Positive and enthusiastic"},
		},
	}
}

func TestBuildViewHeaderAndMetadata(t *testing.T) {
	view := BuildView(fixtureResult())

	assert.Equal(t, "78/100", view.FinalScore)
	assert.Equal(t, "B+", view.Grade)
	assert.Equal(t, 12, view.WordCount)
	assert.Equal(t, "16", view.WPM)
	assert.Equal(t, 2, view.SentenceCount)
}

func TestBuildViewCards(t *testing.T) {
	view := BuildView(fixtureResult())
	require.Len(t, view.Cards, 5)

	byKey := map[string]Card{}
	for _, c := range view.Cards {
		byKey[c.Key] = c
	}

	content := byKey["content"]
	assert.Equal(t, "32/40", content.ScoreText)
	assert.Equal(t, "80%", content.PercentText)
	assert.Equal(t, models.TierStrong, content.Tier)
	assert.InDelta(t, 80, content.FillPercent, 0.0001)
	assert.Equal(t, []string{"Salutation: 4/5", "Keywords: 24/30", "Flow: 4/5"}, content.Sublines)

	speech := byKey["speech"]
	assert.Equal(t, "8/10", speech.ScoreText)
	assert.Empty(t, speech.PercentText)
	assert.Equal(t, models.TierStrong, speech.Tier)
	assert.Equal(t, []string{"16 WPM (Too Slow)"}, speech.Sublines)

	grammar := byKey["grammar"]
	assert.Equal(t, "15/20", grammar.ScoreText)
	assert.Equal(t, "75%", grammar.PercentText)
	assert.Equal(t, models.TierModerate, grammar.Tier)
	assert.Equal(t, []string{"Grammar: 8/10", "Vocabulary: 7/10"}, grammar.Sublines)

	clarity := byKey["clarity"]
	assert.Equal(t, "12/15", clarity.ScoreText)
	assert.Equal(t, models.TierStrong, clarity.Tier)
	assert.Equal(t, []string{"1 fillers (1.6%)"}, clarity.Sublines)

	engagement := byKey["engagement"]
	assert.Equal(t, "11/15", engagement.ScoreText)
	assert.Equal(t, models.TierModerate, engagement.Tier)
	assert.Equal(t, []string{"Positive and enthusiastic"}, engagement.Sublines)
}

func TestBuildViewTierSpread(t *testing.T) {
	r := fixtureResult()
	r.Scores.SpeechRate.Score = 5 // 50% of 10
	view := BuildView(r)

	for _, c := range view.Cards {
		if c.Key == "speech" {
			assert.Equal(t, models.TierWeak, c.Tier)
			assert.InDelta(t, 50, c.FillPercent, 0.0001)
		}
	}
}
