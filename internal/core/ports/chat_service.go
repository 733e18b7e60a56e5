package ports

import "context"

// ChatInput carries one inbound assistant request.
type ChatInput struct {
	Message  string
	Language string // empty means English
}

// ChatService validates a chat message, forwards it to the AI provider and
// normalizes the reply.
type ChatService interface {
	Ask(ctx context.Context, input ChatInput) (string, error)
}
