package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/detektor-id/detektor-api/internal/dto"
	"github.com/detektor-id/detektor-api/internal/handler"
	"github.com/detektor-id/detektor-api/internal/service"
)

type mockDetectionService struct {
	lastRequest dto.DetectRequest
	response    dto.DetectResponse
	err         error
}

func (m *mockDetectionService) Analyze(_ context.Context, req dto.DetectRequest) (dto.DetectResponse, error) {
	m.lastRequest = req
	if m.err != nil {
		return dto.DetectResponse{}, m.err
	}
	return m.response, nil
}

func newDetectApp(svc service.DetectionService) *fiber.App {
	app := fiber.New()
	handler.NewDetectHandler(svc, zerolog.New(io.Discard)).Register(app.Group("/api/detect"), nil)
	return app
}

func TestDetectHandler_Success(t *testing.T) {
	svc := &mockDetectionService{response: dto.DetectResponse{
		Prediction:       "Human",
		Confidence:       68.0,
		AIProbability:    32.0,
		HumanProbability: 68.0,
		WordCount:        14,
		Features: map[string]float64{
			"avg_sentence_length": 4.67,
			"vocabulary_richness": 78.6,
			"formality_score":     100.0,
		},
		Message: "Analysis complete. The text appears to be human-written.",
	}}
	app := newDetectApp(svc)

	body, err := json.Marshal(dto.DetectRequest{Text: strings.Repeat("I think we should go. ", 4)})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/detect", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var response dto.DetectResponse
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &response))

	require.Equal(t, "Human", response.Prediction)
	require.Equal(t, 68.0, response.HumanProbability)
	require.Equal(t, 14, response.WordCount)
	require.Contains(t, response.Features, "vocabulary_richness")
	require.NotEmpty(t, svc.lastRequest.Text)
}

func TestDetectHandler_InvalidJSON(t *testing.T) {
	app := newDetectApp(&mockDetectionService{})

	req := httptest.NewRequest(http.MethodPost, "/api/detect", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.JSONEq(t, `{"error":"Invalid JSON format"}`, string(raw))
}

func TestDetectHandler_TextTooShort(t *testing.T) {
	app := newDetectApp(&mockDetectionService{err: service.ErrTextTooShort})

	body, err := json.Marshal(dto.DetectRequest{Text: "too short"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/detect", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.JSONEq(t, `{"error":"Text must be at least 50 characters long for accurate analysis"}`, string(raw))
}

func TestDetectHandler_InternalError(t *testing.T) {
	app := newDetectApp(&mockDetectionService{err: errors.New("boom")})

	body, err := json.Marshal(dto.DetectRequest{Text: strings.Repeat("valid length text here. ", 4)})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/detect", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.JSONEq(t, `{"error":"Internal server error"}`, string(raw))
}

func TestDetectHandler_Info(t *testing.T) {
	app := newDetectApp(&mockDetectionService{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/detect", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var info dto.InfoResponse
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &info))

	require.Equal(t, "ok", info.Status)
	require.Contains(t, info.Usage, "POST /api/detect")
}
