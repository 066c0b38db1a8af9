package dto

import "github.com/detektor-id/detektor-api/internal/detector"

// DetectRequest is the analysis payload submitted by clients.
type DetectRequest struct {
	Text string `json:"text" validate:"required"`
}

// DetectResponse is the serialized detection result. Probabilities and
// confidence are percentages rounded to one decimal place.
type DetectResponse struct {
	Prediction       string             `json:"prediction"`
	Confidence       float64            `json:"confidence"`
	AIProbability    float64            `json:"ai_probability"`
	HumanProbability float64            `json:"human_probability"`
	WordCount        int                `json:"word_count"`
	Features         map[string]float64 `json:"features"`
	Message          string             `json:"message"`
}

// NewDetectResponse converts a detector result into its DTO.
func NewDetectResponse(result detector.Result) DetectResponse {
	return DetectResponse{
		Prediction:       result.Prediction,
		Confidence:       result.Confidence,
		AIProbability:    result.AIProbability,
		HumanProbability: result.HumanProbability,
		WordCount:        result.WordCount,
		Features:         result.Features,
		Message:          result.Message,
	}
}

// InfoResponse describes the informational payload served on GET requests.
type InfoResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Usage     string `json:"usage"`
	Reference string `json:"reference"`
}
