// Package render maps a ScoreResult onto the view model consumed by the
// results template. The mapping is pure: same result, same view.
package render

import (
	"fmt"

	"github.com/speakgrade/speakgrade/internal/models"
)

// ResultView is everything the results section displays.
type ResultView struct {
	FinalScore    string
	Grade         string
	WordCount     int
	WPM           string
	SentenceCount int
	Cards         []Card
}

// Card is one criterion's score card. Cards are independent of each other;
// their order here is only the display order.
type Card struct {
	Key         string
	Title       string
	ScoreText   string
	PercentText string
	FillPercent float64
	Tier        string
	Sublines    []string
}

// BuildView expands a ScoreResult into the five criterion cards plus the
// header and metadata segments.
func BuildView(r *models.ScoreResult) ResultView {
	content := r.Scores.ContentAndStructure
	speech := r.Scores.SpeechRate
	grammar := r.Scores.LanguageAndGrammar
	clarity := r.Scores.Clarity
	engagement := r.Scores.Engagement

	return ResultView{
		FinalScore:    scorePair(r.FinalScore, r.MaxScore),
		Grade:         r.Grade,
		WordCount:     r.Metadata.WordCount,
		WPM:           models.FormatScore(r.Metadata.WPM),
		SentenceCount: r.Metadata.SentenceCount,
		Cards: []Card{
			cardWithPercent("content", "Content & Structure", content.Total, content.Max, content.Percentage,
				"Salutation: "+scorePair(content.SalutationScore, content.Details.Salutation.MaxScore),
				"Keywords: "+scorePair(content.KeywordsScore, content.Details.Keywords.MaxScore),
				"Flow: "+scorePair(content.FlowScore, content.Details.Flow.MaxScore),
			),
			card("speech", "Speech Rate", speech.Score, speech.Max,
				fmt.Sprintf("%s WPM (%s)", models.FormatScore(speech.WPM), speech.Label),
			),
			cardWithPercent("grammar", "Language & Grammar", grammar.Total, grammar.Max, grammar.Percentage,
				"Grammar: "+scorePair(grammar.GrammarScore, grammar.Details.Grammar.MaxScore),
				"Vocabulary: "+scorePair(grammar.VocabularyScore, grammar.Details.Vocabulary.MaxScore),
			),
			card("clarity", "Clarity", clarity.Score, clarity.Max,
				fmt.Sprintf("%d fillers (%s%%)", clarity.FillerCount, models.FormatScore(clarity.FillerRate)),
			),
			card("engagement", "Engagement", engagement.Score, engagement.Max,
				engagement.Interpretation,
			),
		},
	}
}

func card(key, title string, score, max float64, sublines ...string) Card {
	fill := models.FillPercent(score, max)
	return Card{
		Key:         key,
		Title:       title,
		ScoreText:   scorePair(score, max),
		FillPercent: fill,
		Tier:        models.Tier(fill),
		Sublines:    sublines,
	}
}

func cardWithPercent(key, title string, score, max float64, percentage int, sublines ...string) Card {
	c := card(key, title, score, max, sublines...)
	c.PercentText = fmt.Sprintf("%d%%", percentage)
	return c
}

func scorePair(score, max float64) string {
	return models.FormatScore(score) + "/" + models.FormatScore(max)
}
