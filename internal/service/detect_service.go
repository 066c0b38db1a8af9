package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/detektor-id/detektor-api/internal/detector"
	"github.com/detektor-id/detektor-api/internal/dto"
	"github.com/detektor-id/detektor-api/internal/observability"
)

// ErrTextTooShort indicates the submitted text does not meet the minimum length
// required for a meaningful analysis.
var ErrTextTooShort = errors.New("text too short for analysis")

// DetectionService exposes the text analysis operation.
type DetectionService interface {
	Analyze(ctx context.Context, req dto.DetectRequest) (dto.DetectResponse, error)
}

type detectionService struct {
	model     detector.Model
	cache     *redis.Client
	ttl       time.Duration
	minLength int
	validate  *validator.Validate
	logger    zerolog.Logger
	tracer    trace.Tracer
}

// NewDetectionService constructs the detection service. Passing a nil cache
// client disables result caching.
func NewDetectionService(model detector.Model, cache *redis.Client, ttl time.Duration, minLength int, validate *validator.Validate, logger zerolog.Logger) DetectionService {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	if minLength <= 0 {
		minLength = 50
	}
	return &detectionService{
		model:     model,
		cache:     cache,
		ttl:       ttl,
		minLength: minLength,
		validate:  validate,
		logger:    logger.With().Str("component", "detect_service").Logger(),
		tracer:    otel.Tracer("github.com/detektor-id/detektor-api/internal/service/detect"),
	}
}

func (s *detectionService) Analyze(ctx context.Context, req dto.DetectRequest) (dto.DetectResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return dto.DetectResponse{}, ErrTextTooShort
	}

	trimmed := strings.TrimSpace(req.Text)
	if len([]rune(trimmed)) < s.minLength {
		return dto.DetectResponse{}, ErrTextTooShort
	}

	cacheKey := ""
	if s.cache != nil {
		sum := sha256.Sum256([]byte(trimmed))
		cacheKey = fmt.Sprintf("detect:result:v1:%s", hex.EncodeToString(sum[:]))
		if cached, err := s.cache.Get(ctx, cacheKey).Result(); err == nil && cached != "" {
			var response dto.DetectResponse
			if err := json.Unmarshal([]byte(cached), &response); err == nil {
				s.logger.Debug().Msg("detection result served from cache")
				return response, nil
			}
		}
	}

	ctx, span := s.tracer.Start(ctx, "detector.predict",
		trace.WithAttributes(attribute.Int("text.chars", len(req.Text))))

	start := time.Now()
	result := s.model.Predict(req.Text)
	observability.AnalysisLatency().Observe(time.Since(start).Seconds())

	span.SetAttributes(
		attribute.String("prediction.label", result.Prediction),
		attribute.Int("text.words", result.WordCount),
	)
	span.End()

	observability.Predictions().WithLabelValues(result.Prediction).Inc()

	response := dto.NewDetectResponse(result)

	if cacheKey != "" {
		if payload, err := json.Marshal(response); err == nil {
			if err := s.cache.Set(ctx, cacheKey, payload, s.ttl).Err(); err != nil {
				s.logger.Warn().Err(err).Msg("failed to cache detection result")
			}
		}
	}

	return response, nil
}
