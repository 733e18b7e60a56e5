package domain

import "errors"

var ErrEmptyMessage = errors.New("message is required")
var ErrAPIKeyMissing = errors.New("generative AI API key not configured")

// ErrUpstreamInvalid marks a reply from the AI provider that could not be
// interpreted at all (wrong content type, e.g. an HTML error page).
var ErrUpstreamInvalid = errors.New("upstream returned invalid data")

// ErrUpstream marks a well-formed error reported by the AI provider itself.
// Wrapped errors carry the provider message when one was given.
var ErrUpstream = errors.New("upstream error")
