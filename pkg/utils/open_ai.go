package utils

import (
	"context"

	openai "github.com/sashabaranov/go-openai"
)

type OpenAIChatClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIChatClient(apiKey, model string) ChatClientInterface {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIChatClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAIChatClient) GenerateReply(ctx context.Context, systemPrompt string, userMessage string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userMessage},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", ErrAssistantUnavailable
	}
	return resp.Choices[0].Message.Content, nil
}
