package openaiclient

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sashabaranov/go-openai"
)

const defaultMaxTokens = 2000

type Client struct {
	client *openai.Client
	model  string
}

func NewClient(apiKey, model string) *Client {
	if model == "" {
		model = openai.GPT3Dot5Turbo1106
	}
	return &Client{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (i Client) Name() string {
	return "openai"
}

func (i Client) Model() string {
	return i.model
}

func (i Client) Complete(ctx context.Context, system, user string) (string, error) {
	resp, err := i.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model:       i.model,
			MaxTokens:   defaultMaxTokens,
			Temperature: 0.3,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: system,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: user,
				},
			},
		},
	)
	if err != nil {
		return "", errors.Wrap(err, "create chat completion")
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai вернул пустой ответ")
	}
	return resp.Choices[0].Message.Content, nil
}
