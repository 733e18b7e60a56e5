package ports

import "context"

// Generator is the outbound port to the generative-AI provider. Failures are
// reported as domain.ErrUpstreamInvalid or wrapped domain.ErrUpstream so the
// chat pipeline stays testable without a live network dependency.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
