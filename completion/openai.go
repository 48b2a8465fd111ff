package completion

import (
	"context"
	"fmt"
	"sync"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/tailored-agentic-units/dialogue/core/protocol"
)

// OpenAI is a Completer backed by the OpenAI chat completions API. The
// underlying client is initialized lazily on the first Complete call.
type OpenAI struct {
	apiKey string
	model  string

	once   sync.Once
	client *openai.Client
}

// NewOpenAI creates an OpenAI completer for the given credential and model.
// An empty apiKey is allowed; the completer reports unconfigured and never
// attempts a network call.
func NewOpenAI(apiKey, model string) *OpenAI {
	if model == "" {
		model = defaultModel
	}
	return &OpenAI{apiKey: apiKey, model: model}
}

func (o *OpenAI) Configured() bool {
	return o.apiKey != ""
}

func (o *OpenAI) Complete(ctx context.Context, messages []protocol.Message, params Params) (string, error) {
	if !o.Configured() {
		return "", ErrNotConfigured
	}

	o.once.Do(func() {
		client := openai.NewClient(option.WithAPIKey(o.apiKey))
		o.client = &client
	})

	req := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(o.model),
		Messages: convertMessages(messages),
	}
	if params.Temperature != 0 {
		req.Temperature = openai.Float(params.Temperature)
	}
	if params.PresencePenalty != 0 {
		req.PresencePenalty = openai.Float(params.PresencePenalty)
	}
	if params.FrequencyPenalty != 0 {
		req.FrequencyPenalty = openai.Float(params.FrequencyPenalty)
	}

	resp, err := o.client.Chat.Completions.New(ctx, req)
	if err != nil {
		return "", &ServiceError{Provider: "openai", Err: err}
	}

	if len(resp.Choices) == 0 {
		return "", &ServiceError{Provider: "openai", Err: fmt.Errorf("no response choices returned")}
	}

	return resp.Choices[0].Message.Content, nil
}

func convertMessages(messages []protocol.Message) []openai.ChatCompletionMessageParamUnion {
	converted := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, msg := range messages {
		switch msg.Role {
		case protocol.RoleSystem:
			converted = append(converted, openai.SystemMessage(msg.Content))
		case protocol.RoleUser:
			converted = append(converted, openai.UserMessage(msg.Content))
		case protocol.RoleAssistant:
			converted = append(converted, openai.AssistantMessage(msg.Content))
		}
	}
	return converted
}
