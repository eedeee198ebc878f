// Package insight asks a chat model for a short narrative of the catalog
// comparison metrics.
package insight

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"

	"catalogcmp/internal/analytics"
	"catalogcmp/internal/model"
)

// ErrDisabled is returned when no API key is configured.
var ErrDisabled = errors.New("insight narrator is disabled")

// Completer is the part of the OpenAI client the narrator uses.
type Completer interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

type Narrator struct {
	Client Completer
	Model  string
	Log    zerolog.Logger
}

// New returns a narrator backed by the OpenAI API, or nil when apiKey is empty.
// A nil *Narrator is valid and always reports ErrDisabled.
func New(apiKey, chatModel string, log zerolog.Logger) *Narrator {
	if apiKey == "" {
		return nil
	}
	if chatModel == "" {
		chatModel = openai.GPT4oMini
	}
	return &Narrator{Client: openai.NewClient(apiKey), Model: chatModel, Log: log}
}

func (n *Narrator) Enabled() bool { return n != nil && n.Client != nil }

// Summarize returns the model's narrative for the overview.
func (n *Narrator) Summarize(ctx context.Context, o analytics.Overview, labels map[model.Source]string) (string, error) {
	if !n.Enabled() {
		return "", ErrDisabled
	}
	metrics := MetricsContext(o, labels)
	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: SystemPrompt()},
		{Role: openai.ChatMessageRoleUser, Content: metrics},
	}

	// ~4 characters per token
	n.Log.Debug().
		Str("model", n.Model).
		Int("chars", len(metrics)).
		Int("tokens_estimate", len(metrics)/4).
		Msg("requesting insight")

	resp, err := n.Client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       n.Model,
		Messages:    messages,
		Temperature: 0.3,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
