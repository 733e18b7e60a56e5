package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/justicebuddy/backend/internal/api/metrics"
	"github.com/justicebuddy/backend/internal/core/domain"
	"github.com/justicebuddy/backend/internal/core/ports"
)

const defaultLanguage = "English"

// personaPrompt is the fixed system instruction sent with every question.
// The %s verbs are, in order, the answer language and the trimmed user
// message.
const personaPrompt = `You are "Justice Buddy", an AI legal assistant for Indian users.
Answer in %s clearly and practically. Do not replace a lawyer.
User question: %s`

// ChatService implements the assistant proxy pipeline: validate, compose the
// persona prompt, dispatch once to the AI provider and normalize the result.
// There are no retries; a transient upstream failure fails the request.
type ChatService struct {
	generator ports.Generator
	logger    zerolog.Logger
}

func NewChatService(generator ports.Generator, logger zerolog.Logger) *ChatService {
	return &ChatService{generator: generator, logger: logger}
}

func (s *ChatService) Ask(ctx context.Context, input ports.ChatInput) (string, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		metrics.ChatRequestsTotal.WithLabelValues("invalid").Inc()
		return "", domain.ErrEmptyMessage
	}

	language := strings.TrimSpace(input.Language)
	if language == "" {
		language = defaultLanguage
	}

	prompt := fmt.Sprintf(personaPrompt, language, message)

	start := time.Now()
	reply, err := s.generator.Generate(ctx, prompt)
	metrics.ChatUpstreamDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ChatRequestsTotal.WithLabelValues(outcomeLabel(err)).Inc()
		s.logger.Error().Err(err).Msg("assistant request failed")
		return "", err
	}

	metrics.ChatRequestsTotal.WithLabelValues("ok").Inc()
	return reply, nil
}

func outcomeLabel(err error) string {
	switch {
	case errors.Is(err, domain.ErrAPIKeyMissing):
		return "misconfigured"
	case errors.Is(err, domain.ErrUpstreamInvalid), errors.Is(err, domain.ErrUpstream):
		return "upstream_error"
	default:
		return "error"
	}
}
