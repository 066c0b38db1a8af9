// Package detector implements the AI-vs-human text classification pipeline:
// tokenization, linguistic feature extraction, fixed-weight logistic scoring and
// the final label decision. Every stage is a pure function of its input, so the
// package is safe for concurrent use without synchronization.
package detector

import (
	"fmt"
	"math"
	"strings"
)

// Prediction labels returned by the model.
const (
	LabelAI        = "AI"
	LabelHuman     = "Human"
	LabelUncertain = "Uncertain"
	LabelUnknown   = "Unknown"
)

const insufficientInputMessage = "Text too short or invalid for analysis"

// Result is the full outcome of one prediction. Probabilities and confidence
// are on the 0-100 scale, rounded to one decimal place.
type Result struct {
	Prediction       string
	Confidence       float64
	AIProbability    float64
	HumanProbability float64
	WordCount        int
	Features         map[string]float64
	Message          string
}

// Predict classifies text as AI-generated, human-written or uncertain.
// Degenerate input (blank text, or text without words or sentences) yields the
// Unknown result rather than an error.
func (m Model) Predict(text string) Result {
	features := ExtractFeatures(text)

	if len(features) == 0 {
		return Result{
			Prediction:       LabelUnknown,
			Confidence:       0.0,
			AIProbability:    50.0,
			HumanProbability: 50.0,
			Features:         map[string]float64{},
			Message:          insufficientInputMessage,
		}
	}

	aiProbability, humanProbability := m.Score(features)
	prediction, confidence := decide(aiProbability, humanProbability)

	return Result{
		Prediction:       prediction,
		Confidence:       round1(confidence * 100),
		AIProbability:    round1(aiProbability * 100),
		HumanProbability: round1(humanProbability * 100),
		WordCount:        len(Words(text)),
		Features: map[string]float64{
			featAvgSentenceLength:  round2(features[featAvgSentenceLength]),
			featVocabularyRichness: round1(features[featVocabularyRichness] * 100),
			featFormalityScore:     round1(features[featFormalityScore] * 100),
		},
		Message: resultMessage(prediction),
	}
}

// decide applies the fixed thresholds in order: a probability must strictly
// exceed 0.6 to win its label, otherwise the call is Uncertain.
func decide(aiProbability, humanProbability float64) (prediction string, confidence float64) {
	switch {
	case aiProbability > 0.6:
		return LabelAI, aiProbability
	case humanProbability > 0.6:
		return LabelHuman, humanProbability
	default:
		return LabelUncertain, math.Max(aiProbability, humanProbability)
	}
}

func resultMessage(prediction string) string {
	suffix := "written"
	if prediction == LabelAI {
		suffix = "generated"
	}
	return fmt.Sprintf("Analysis complete. The text appears to be %s-%s.", strings.ToLower(prediction), suffix)
}

func round1(value float64) float64 {
	return math.Round(value*10) / 10
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
