// Package report derives the three export artifacts from a ScoreResult:
// the JSON snapshot, the printable HTML report and the shareable text
// summary. All three are pure transformations of the result they are given.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/speakgrade/speakgrade/internal/models"
)

// Renderer is the slice of the template engine the synthesizer needs.
// Satisfied by *html.Engine.
type Renderer interface {
	Render(w io.Writer, name string, bind interface{}, layouts ...string) error
}

// Synthesizer produces export artifacts. It holds no result state; callers
// pass the stored latest result explicitly.
type Synthesizer struct {
	views      Renderer
	printDelay time.Duration
}

func NewSynthesizer(views Renderer, printDelay time.Duration) *Synthesizer {
	return &Synthesizer{views: views, printDelay: printDelay}
}

// Snapshot serializes the result to pretty-printed JSON with stable key
// order and returns the download filename, unique per export through the
// epoch-millis stamp.
func (s *Synthesizer) Snapshot(r *models.ScoreResult, now time.Time) ([]byte, string, error) {
	if r == nil {
		return nil, "", &models.NoResultError{Action: "download"}
	}
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("evaluation_results_%d.json", now.UnixMilli())
	return data, filename, nil
}

// ReportView is the binding for the printable report template.
type ReportView struct {
	Title         string
	GeneratedAt   string
	FinalScore    string
	Grade         string
	WordCount     int
	SentenceCount int
	Duration      string
	WPM           string
	PrintDelayMs  int64
	Sections      []ReportSection
}

// ReportSection is one criterion block in the printable report.
type ReportSection struct {
	Title       string
	ScoreText   string
	PercentText string
	FillPercent float64
	Lines       []string
}

// PrintableReport renders the result into a complete, self-contained HTML
// document. Apart from the generation timestamp the output is a pure
// function of the result.
func (s *Synthesizer) PrintableReport(r *models.ScoreResult, now time.Time) ([]byte, error) {
	if r == nil {
		return nil, &models.NoResultError{Action: "export"}
	}

	var buf bytes.Buffer
	if err := s.views.Render(&buf, "report", buildReportView(r, now, s.printDelay)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func buildReportView(r *models.ScoreResult, now time.Time, printDelay time.Duration) ReportView {
	content := r.Scores.ContentAndStructure
	speech := r.Scores.SpeechRate
	grammar := r.Scores.LanguageAndGrammar
	clarity := r.Scores.Clarity
	engagement := r.Scores.Engagement
	w := models.Weights

	return ReportView{
		Title:         "Evaluation Report - " + r.Grade,
		GeneratedAt:   now.Format("Jan 2, 2006 3:04:05 PM"),
		FinalScore:    scorePair(r.FinalScore, r.MaxScore),
		Grade:         r.Grade,
		WordCount:     r.Metadata.WordCount,
		SentenceCount: r.Metadata.SentenceCount,
		Duration:      models.FormatScore(r.Metadata.DurationSeconds) + " seconds",
		WPM:           models.FormatScore(r.Metadata.WPM) + " WPM",
		PrintDelayMs:  printDelay.Milliseconds(),
		Sections: []ReportSection{
			{
				Title:       "📝 Content & Structure",
				ScoreText:   scorePair(content.Total, content.Max),
				PercentText: fmt.Sprintf("%d%%", content.Percentage),
				FillPercent: models.FillPercent(content.Total, content.Max),
				Lines: []string{
					"• Salutation: " + scorePair(content.SalutationScore, w.Salutation),
					"• Keywords: " + scorePair(content.KeywordsScore, w.Keywords),
					"• Flow: " + scorePair(content.FlowScore, w.Flow),
				},
			},
			{
				Title:       "⚡ Speech Rate",
				ScoreText:   scorePair(speech.Score, speech.Max),
				FillPercent: models.FillPercent(speech.Score, speech.Max),
				Lines: []string{
					fmt.Sprintf("• %s WPM (%s)", models.FormatScore(speech.WPM), speech.Label),
				},
			},
			{
				Title:       "📖 Language & Grammar",
				ScoreText:   scorePair(grammar.Total, grammar.Max),
				PercentText: fmt.Sprintf("%d%%", grammar.Percentage),
				FillPercent: models.FillPercent(grammar.Total, grammar.Max),
				Lines: []string{
					"• Grammar: " + scorePair(grammar.GrammarScore, w.GrammarSub),
					"• Vocabulary: " + scorePair(grammar.VocabularyScore, w.Vocabulary),
				},
			},
			{
				Title:       "✨ Clarity",
				ScoreText:   scorePair(clarity.Score, clarity.Max),
				FillPercent: models.FillPercent(clarity.Score, clarity.Max),
				Lines: []string{
					fmt.Sprintf("• Filler Words: %d (%s%%)", clarity.FillerCount, models.FormatScore(clarity.FillerRate)),
				},
			},
			{
				Title:       "💫 Engagement",
				ScoreText:   scorePair(engagement.Score, engagement.Max),
				FillPercent: models.FillPercent(engagement.Score, engagement.Max),
				Lines: []string{
					"• " + engagement.Interpretation,
				},
			},
		},
	}
}

// TextSummary builds the condensed shareable digest. Criterion lines use the
// rubric's declared weights, not the max fields of the result.
func (s *Synthesizer) TextSummary(r *models.ScoreResult) (string, error) {
	if r == nil {
		return "", &models.NoResultError{Action: "share"}
	}

	w := models.Weights
	lines := []string{
		"🎓 Student Introduction Evaluation Results",
		"",
		fmt.Sprintf("📊 Final Score: %s (Grade: %s)", scorePair(r.FinalScore, r.MaxScore), r.Grade),
		"",
		"Breakdown:",
		"• Content & Structure: " + scorePair(r.Scores.ContentAndStructure.Total, w.Content),
		"• Speech Rate: " + scorePair(r.Scores.SpeechRate.Score, w.SpeechRate),
		"• Language & Grammar: " + scorePair(r.Scores.LanguageAndGrammar.Total, w.Grammar),
		"• Clarity: " + scorePair(r.Scores.Clarity.Score, w.Clarity),
		"• Engagement: " + scorePair(r.Scores.Engagement.Score, w.Engagement),
		"",
		fmt.Sprintf("📝 Word Count: %d", r.Metadata.WordCount),
		"⚡ WPM: " + models.FormatScore(r.Metadata.WPM),
	}
	return strings.Join(lines, "\n"), nil
}

func scorePair(score, max float64) string {
	return models.FormatScore(score) + "/" + models.FormatScore(max)
}
