package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"lucidgpt-be/internal/pkg/logger"
	"lucidgpt-be/pkg/assistcache"
	"lucidgpt-be/pkg/llm"

	"github.com/google/uuid"
)

// responseLength bounds the generated answer, matching the token budget the
// assistant persona promises to stay within.
const responseLength = 300

const assistPersona = `You are an advanced AI assistant representing Lucid Motors, a premier brand known for redefining luxury electric vehicles. You are deeply knowledgeable about the Lucid lineup, including the Air and Gravity models, and you provide personalized assistance to customers at every stage of their journey.

Key areas of expertise include:
- Articulating the luxurious features, cutting-edge technology, efficiency, build quality, and bespoke customization options of Lucid vehicles.
- Providing tailored advice on maintenance schedules, optimal performance upkeep, and addressing high-end client concerns.
- Educating customers on the benefits of electric vehicles, including environmental impact, cost savings, and advanced driving experiences.
- Offering premium support on warranties, concierge services, and seamless issue resolution.
- Guiding prospective buyers through sales processes, highlighting unique financing options, exclusive dealership experiences, and availability.
- Comparing Lucid vehicles with competitors and addressing any concerns or misconceptions.

When answering, exude sophistication, professionalism, and a client-centric approach. Always finish your response within %d tokens.`

// StreamSender pushes an opened completion stream fragment by fragment
// through forward and returns the full text once the stream completes.
type StreamSender func(forward func(string) error) (string, error)

type IAssistService interface {
	// Answer returns the assistant's reply for a query, serving from the
	// response cache when possible. The second return reports a cache hit.
	Answer(ctx context.Context, query string) (string, bool, error)

	// Stream validates the query and opens the upstream completion stream
	// (or resolves a cached answer) before any fragment is produced, so
	// open failures surface here while the caller can still pick a status
	// code. The returned sender then forwards the fragments.
	Stream(ctx context.Context, query string) (StreamSender, error)
}

type assistService struct {
	cache    *assistcache.Cache
	provider llm.LLMProvider
	log      logger.ILogger
}

func NewAssistService(cache *assistcache.Cache, provider llm.LLMProvider, log logger.ILogger) IAssistService {
	return &assistService{
		cache:    cache,
		provider: provider,
		log:      log,
	}
}

func (s *assistService) Answer(ctx context.Context, query string) (string, bool, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", false, ErrEmptyQuery
	}

	requestId := uuid.NewString()

	if answer, ok := s.cache.Lookup(query); ok {
		s.log.Info("assist", "serving cached response", map[string]interface{}{
			"request_id": requestId,
			"query":      assistcache.Normalize(query),
		})
		return answer, true, nil
	}

	start := time.Now()
	answer, err := s.provider.Chat(ctx, s.prompt(query),
		llm.WithTemperature(0.4),
		llm.WithMaxTokens(responseLength),
	)
	if err != nil {
		s.log.Error("assist", "completion request failed", map[string]interface{}{
			"request_id": requestId,
			"error":      err.Error(),
		})
		return "", false, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	s.log.Info("assist", "completion request finished", map[string]interface{}{
		"request_id": requestId,
		"elapsed":    time.Since(start).String(),
	})

	s.cache.Set(query, answer)
	return answer, false, nil
}

func (s *assistService) Stream(ctx context.Context, query string) (StreamSender, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	requestId := uuid.NewString()

	if answer, ok := s.cache.Lookup(query); ok {
		s.log.Info("assist", "serving cached response", map[string]interface{}{
			"request_id": requestId,
			"query":      assistcache.Normalize(query),
		})
		return func(forward func(string) error) (string, error) {
			if err := forward(answer); err != nil {
				return "", err
			}
			return answer, nil
		}, nil
	}

	// Streaming answers get a looser budget; the persona still asks the
	// model to wrap up within the shorter limit.
	stream, err := s.provider.ChatStream(ctx, s.prompt(query),
		llm.WithTemperature(0.4),
		llm.WithMaxTokens(2*responseLength),
	)
	if err != nil {
		s.log.Error("assist", "completion stream failed to open", map[string]interface{}{
			"request_id": requestId,
			"error":      err.Error(),
		})
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	return func(forward func(string) error) (string, error) {
		chunks := make(chan assistcache.Chunk)
		go func() {
			defer close(chunks)
			for fragment := range stream {
				if fragment.Err != nil {
					chunks <- assistcache.Chunk{Err: fragment.Err}
					return
				}
				chunks <- assistcache.Chunk{Content: fragment.Content}
			}
		}()

		answer, err := s.cache.RecordStreamed(query, chunks, forward)
		if err != nil {
			// Partial streams are absorbed (nothing cached) but still
			// logged. Drain whatever the producer has left so it can exit.
			go func() {
				for range chunks {
				}
			}()
			s.log.Error("assist", "completion stream aborted", map[string]interface{}{
				"request_id": requestId,
				"error":      err.Error(),
			})
			return "", fmt.Errorf("%w: %v", ErrUpstream, err)
		}

		return answer, nil
	}, nil
}

func (s *assistService) prompt(query string) []llm.Message {
	return []llm.Message{
		{Role: "system", Content: fmt.Sprintf(assistPersona, responseLength)},
		{Role: "user", Content: query},
	}
}
