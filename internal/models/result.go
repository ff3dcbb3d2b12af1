package models

import (
	"strconv"
	"strings"
)

// ScoreResult is the full outcome of one evaluation as returned by the
// scoring service. It is stored as a single "latest result" and read by the
// renderer and the exporters; nothing mutates it after it arrives.
type ScoreResult struct {
	FinalScore float64         `json:"final_score"`
	MaxScore   float64         `json:"max_score"`
	Grade      string          `json:"grade"`
	Metadata   Metadata        `json:"metadata"`
	Scores     CriterionScores `json:"scores"`
}

type Metadata struct {
	WordCount       int     `json:"word_count"`
	WPM             float64 `json:"wpm"`
	SentenceCount   int     `json:"sentence_count"`
	DurationSeconds float64 `json:"duration_seconds"`
}

// CriterionScores holds the five independently scored criteria.
type CriterionScores struct {
	ContentAndStructure ContentScore    `json:"content_and_structure"`
	SpeechRate          SpeechRateScore `json:"speech_rate"`
	LanguageAndGrammar  GrammarScore    `json:"language_and_grammar"`
	Clarity             ClarityScore    `json:"clarity"`
	Engagement          EngagementScore `json:"engagement"`
}

// SubScoreMax carries the maximum for one sub-score inside a details block.
type SubScoreMax struct {
	MaxScore float64 `json:"max_score"`
}

type ContentScore struct {
	Total           float64        `json:"total"`
	Max             float64        `json:"max"`
	Percentage      int            `json:"percentage"`
	SalutationScore float64        `json:"salutation_score"`
	KeywordsScore   float64        `json:"keywords_score"`
	FlowScore       float64        `json:"flow_score"`
	Details         ContentDetails `json:"details"`
}

type ContentDetails struct {
	Salutation SubScoreMax `json:"salutation"`
	Keywords   SubScoreMax `json:"keywords"`
	Flow       SubScoreMax `json:"flow"`
}

type SpeechRateScore struct {
	Score float64 `json:"score"`
	Max   float64 `json:"max"`
	WPM   float64 `json:"wpm"`
	Label string  `json:"label"`
}

type GrammarScore struct {
	Total           float64        `json:"total"`
	Max             float64        `json:"max"`
	Percentage      int            `json:"percentage"`
	GrammarScore    float64        `json:"grammar_score"`
	VocabularyScore float64        `json:"vocabulary_score"`
	Details         GrammarDetails `json:"details"`
}

type GrammarDetails struct {
	Grammar    SubScoreMax `json:"grammar"`
	Vocabulary SubScoreMax `json:"vocabulary"`
}

type ClarityScore struct {
	Score       float64 `json:"score"`
	Max         float64 `json:"max"`
	FillerCount int     `json:"filler_count"`
	FillerRate  float64 `json:"filler_rate"`
}

type EngagementScore struct {
	Score          float64 `json:"score"`
	Max            float64 `json:"max"`
	Interpretation string  `json:"interpretation"`
}

// EvaluationRequest is the transient input pair sent to the scoring service.
// It is never retained after the request resolves.
type EvaluationRequest struct {
	Transcript string `json:"transcript"`
	Duration   int    `json:"duration"`
}

// Validate checks the request before any network call is made.
func (r EvaluationRequest) Validate() error {
	if strings.TrimSpace(r.Transcript) == "" {
		return &ValidationError{Field: "transcript", Reason: "Please provide a transcript text."}
	}
	if r.Duration <= 0 {
		return &ValidationError{Field: "duration", Reason: "Please provide a valid duration (in seconds)."}
	}
	return nil
}

// Sample is a predefined transcript+duration pair from the sample provider.
type Sample struct {
	Transcript string `json:"transcript"`
	Duration   int    `json:"duration"`
}

// Tier names for the three-step fill coloring.
const (
	TierStrong   = "strong"
	TierModerate = "moderate"
	TierWeak     = "weak"
)

// FillPercent converts a score/max pair into a bar width percentage,
// clamped to [0, 100].
func FillPercent(score, max float64) float64 {
	if max <= 0 {
		return 0
	}
	pct := score / max * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// Tier maps a fill percentage to one of the three visual tiers.
// Lower bounds are inclusive: 80 is strong, 60 is moderate.
func Tier(percent float64) string {
	switch {
	case percent >= 80:
		return TierStrong
	case percent >= 60:
		return TierModerate
	default:
		return TierWeak
	}
}

// FormatScore renders a score value without a trailing ".0" for whole
// numbers, so 78 prints as "78" and 7.5 as "7.5".
func FormatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ScoreWeights is the rubric's weighting table. The values are constants of
// the scoring scheme itself and are rendered literally in the printable
// report and the text summary; they are not derived from the max fields of a
// result.
type ScoreWeights struct {
	Content    float64
	SpeechRate float64
	Grammar    float64
	Clarity    float64
	Engagement float64

	Salutation float64
	Keywords   float64
	Flow       float64
	GrammarSub float64
	Vocabulary float64
}

// Weights is the single source for the rubric weights used by every
// exporter.
var Weights = ScoreWeights{
	Content:    40,
	SpeechRate: 10,
	Grammar:    20,
	Clarity:    15,
	Engagement: 15,

	Salutation: 5,
	Keywords:   30,
	Flow:       5,
	GrammarSub: 10,
	Vocabulary: 10,
}
