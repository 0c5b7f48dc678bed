// README: Completion gateway; builds prompts, calls the LLM provider and validates its JSON reply.
package planner

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"tripgen/internal/ai"
	"tripgen/internal/metrics"
	"tripgen/internal/types"
)

const (
	// DefaultTimeout bounds each completion call.
	DefaultTimeout = 20 * time.Second

	temperature = 0.2

	opPlaceList = "place_list"
	opItinerary = "travel_plan"
)

// Service turns travel-planning requests into completion calls.
type Service struct {
	provider ai.Provider
	timeout  time.Duration
	log      *zap.Logger
}

// NewService creates a gateway over provider. A non-positive timeout selects DefaultTimeout.
func NewService(provider ai.Provider, timeout time.Duration, logger *zap.Logger) *Service {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{provider: provider, timeout: timeout, log: logger.Named("planner")}
}

// ListPopularDestinations asks the model for well-known tourist cities and their countries.
func (s *Service) ListPopularDestinations(ctx context.Context) (*PlaceList, error) {
	var out PlaceList
	err := s.complete(ctx, opPlaceList, placesSystemPrompt, placesUserPrompt, func(raw string) error {
		if err := validatePlaceList(raw); err != nil {
			return err
		}
		return json.Unmarshal([]byte(raw), &out)
	})
	if err != nil {
		return nil, err
	}
	out.City = capList(out.City, "city", s.log)
	out.Country = capList(out.Country, "country", s.log)
	return &out, nil
}

// GenerateItinerary asks the model for a day-by-day plan. Empty inputs fall back to
// Bengaluru, India for 3 days.
func (s *Service) GenerateItinerary(ctx context.Context, req PlanRequest) (*types.Itinerary, error) {
	req = req.withDefaults()

	var out types.Itinerary
	err := s.complete(ctx, opItinerary, itinerarySystemPrompt, itineraryUserPrompt(req), func(raw string) error {
		if err := validateItinerary(raw); err != nil {
			return err
		}
		if err := json.Unmarshal([]byte(raw), &out); err != nil {
			return err
		}
		// gjson reads the first occurrence of a repeated key and encoding/json the
		// last, so the decoded value is checked again.
		return out.Validate()
	})
	if err != nil {
		return nil, err
	}
	if out.LocalTips == nil {
		out.LocalTips = []string{}
	}
	return &out, nil
}

// complete runs one completion under the service timeout and hands the reply to
// decode. Any decode error is reported as ErrInvalidModelOutput.
func (s *Service) complete(ctx context.Context, op, system, user string, decode func(raw string) error) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	raw, err := s.provider.Complete(ctx, ai.ChatRequest{
		Messages: []ai.Message{
			{Role: ai.RoleSystem, Content: system},
			{Role: ai.RoleUser, Content: user},
		},
		Temperature: temperature,
	})
	if err != nil {
		metrics.ObserveCompletion(op, metrics.OutcomeUpstreamError, time.Since(start))
		s.log.Error("completion call failed",
			zap.String("operation", op),
			zap.String("provider", s.provider.Name()),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	if err := decode(raw); err != nil {
		metrics.ObserveCompletion(op, metrics.OutcomeInvalidOutput, time.Since(start))
		return s.invalid(op, raw, err)
	}
	metrics.ObserveCompletion(op, metrics.OutcomeOK, time.Since(start))
	return nil
}

func (s *Service) invalid(op, raw string, cause error) error {
	s.log.Error("Invalid JSON from model",
		zap.String("operation", op),
		zap.String("provider", s.provider.Name()),
		zap.String("raw", raw),
		zap.Error(cause))
	return fmt.Errorf("%w: %v", ErrInvalidModelOutput, cause)
}

func capList(items []string, field string, log *zap.Logger) []string {
	if items == nil {
		return []string{}
	}
	if len(items) > MaxPlaces {
		log.Warn("model returned too many places; truncating",
			zap.String("field", field),
			zap.Int("count", len(items)))
		return items[:MaxPlaces]
	}
	return items
}
