package utils

import "context"

// ChatClientInterface is the boundary to the text-generation provider. The
// assistant treats the provider as an opaque generator: system prompt plus
// user message in, text out.
type ChatClientInterface interface {
	GenerateReply(ctx context.Context, systemPrompt string, userMessage string) (string, error)
}
