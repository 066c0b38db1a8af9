package detector

import "math"

// Model is the fixed-weight logistic scorer. It holds only constants, so a
// single value can be shared freely across goroutines.
type Model struct {
	weights   map[string]float64
	intercept float64
}

// NewModel returns the detector model with its pre-trained coefficients.
// Positive weights push toward the AI label.
func NewModel() Model {
	return Model{
		weights: map[string]float64{
			featAvgSentenceLength:  0.025,
			featVocabularyRichness: -1.5,
			featPunctuationDensity: -0.5,
			featConjunctionFreq:    0.6,
			featFirstPersonFreq:    -1.5,
			featPassiveVoiceFreq:   0.8,
			featAvgWordLength:      0.4,
			featSentenceComplexity: 0.5,
			featRepetitionScore:    1.0,
			featFormalityScore:     1.2,
		},
		intercept: 0.4,
	}
}

// Score converts a non-empty feature vector into complementary probabilities on
// the [0, 1] scale.
func (m Model) Score(features FeatureVector) (aiProbability, humanProbability float64) {
	logit := m.intercept
	for name, weight := range m.weights {
		value, ok := features[name]
		if !ok {
			continue
		}
		logit += weight * normalize(name, value)
	}

	aiProbability = 1 / (1 + math.Exp(-logit))
	return aiProbability, 1 - aiProbability
}

// normalize recenters the three raw-scale features so every weight applies on a
// comparable range. All other features pass through unchanged.
func normalize(name string, value float64) float64 {
	switch name {
	case featAvgSentenceLength:
		return (value - 15) / 10
	case featAvgWordLength:
		return (value - 5) / 2
	case featSentenceComplexity:
		return (value - 1) / 2
	default:
		return value
	}
}
