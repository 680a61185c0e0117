package openai

import (
	"context"
	"fmt"
	"os"
	"strings"

	goopenai "github.com/sashabaranov/go-openai"

	"github.com/ryan-the-brodsky/tastemaker/internal/logger"
)

// Client is the chat-completion surface the services use. Both methods
// return the raw response text; callers decode JSON themselves after
// StripFences.
type Client interface {
	GenerateText(ctx context.Context, system string, user string) (string, error)
	GenerateTextWithImage(ctx context.Context, prompt string, imageURL string) (string, error)
}

type client struct {
	log         *logger.Logger
	api         *goopenai.Client
	model       string
	visionModel string
}

func NewClient(log *logger.Logger) (Client, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("missing OPENAI_API_KEY")
	}

	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = "gpt-4o-mini"
	}
	visionModel := os.Getenv("OPENAI_VISION_MODEL")
	if visionModel == "" {
		visionModel = model
	}

	return &client{
		log:         log.With("client", "OpenAIClient"),
		api:         goopenai.NewClient(apiKey),
		model:       model,
		visionModel: visionModel,
	}, nil
}

func (c *client) GenerateText(ctx context.Context, system string, user string) (string, error) {
	req := goopenai.ChatCompletionRequest{
		Model: c.model,
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleSystem, Content: system},
			{Role: goopenai.ChatMessageRoleUser, Content: user},
		},
	}
	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

// GenerateTextWithImage sends a multimodal user message. imageURL may be an
// https URL or a data:image/...;base64,... payload.
func (c *client) GenerateTextWithImage(ctx context.Context, prompt string, imageURL string) (string, error) {
	req := goopenai.ChatCompletionRequest{
		Model: c.visionModel,
		Messages: []goopenai.ChatCompletionMessage{
			{
				Role: goopenai.ChatMessageRoleUser,
				MultiContent: []goopenai.ChatMessagePart{
					{Type: goopenai.ChatMessagePartTypeText, Text: prompt},
					{
						Type: goopenai.ChatMessagePartTypeImageURL,
						ImageURL: &goopenai.ChatMessageImageURL{
							URL:    imageURL,
							Detail: goopenai.ImageURLDetailAuto,
						},
					},
				},
			},
		},
	}
	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("vision chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("vision chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

// StripFences removes a markdown code fence around a JSON payload, if the
// model wrapped its response in one.
func StripFences(s string) string {
	if strings.Contains(s, "```json") {
		parts := strings.SplitN(s, "```json", 2)
		s = parts[1]
		s = strings.SplitN(s, "```", 2)[0]
	} else if strings.Contains(s, "```") {
		parts := strings.SplitN(s, "```", 3)
		if len(parts) >= 2 {
			s = parts[1]
		}
	}
	return strings.TrimSpace(s)
}
