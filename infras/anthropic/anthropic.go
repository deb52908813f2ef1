package anthropic

import (
	"context"
	"fmt"
	"hauliday/config"
	"hauliday/infras/llm"
	"hauliday/infras/otel"
	"hauliday/shared/constant"
	"strings"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/rs/zerolog/log"
)

const otelAttrModel = "anthropic.model"

type anthropicImpl struct {
	client sdk.Client
	cfg    *config.Config
	otel   otel.Otel
}

// New returns a generator backed by the Anthropic Messages API. Extra options are appended after
// the API key so callers can point the client at another base URL.
func New(cfg *config.Config, otel otel.Otel, opts ...option.RequestOption) llm.Generator {
	options := append([]option.RequestOption{option.WithAPIKey(cfg.Anthropic.APIKey)}, opts...)

	return &anthropicImpl{
		client: sdk.NewClient(options...),
		cfg:    cfg,
		otel:   otel,
	}
}

func (a *anthropicImpl) Generate(ctx context.Context, req llm.Request) (reply string, err error) {
	ctx, scope := a.otel.NewScope(ctx, constant.OtelAnthropicScopeName, constant.OtelAnthropicScopeName+".Generate")
	defer scope.End()
	defer scope.TraceIfError(&err)

	scope.SetAttribute(otelAttrModel, a.cfg.Anthropic.Model)

	if a.cfg.Anthropic.APIKey == constant.Empty {
		return constant.Empty, fmt.Errorf("anthropic API key not configured")
	}

	params := sdk.MessageNewParams{
		Model:       sdk.Model(a.cfg.Anthropic.Model),
		MaxTokens:   int64(a.cfg.Bedrock.MaxTokens),
		Temperature: sdk.Float(float64(a.cfg.Bedrock.Temperature)),
		Messages:    toMessageParams(req.Messages),
	}

	if req.System != constant.Empty {
		params.System = []sdk.TextBlockParam{{Text: req.System}}
	}

	message, err := a.client.Messages.New(ctx, params)
	if err != nil {
		return constant.Empty, fmt.Errorf("anthropic request failed: %w", err)
	}

	var sb strings.Builder
	for _, block := range message.Content {
		sb.WriteString(block.Text)
	}

	reply = sb.String()
	if strings.TrimSpace(reply) == constant.Empty {
		return constant.Empty, llm.ErrEmptyResponse
	}

	log.Debug().Int("length", len(reply)).Msg("anthropic reply received")

	return reply, nil
}

func toMessageParams(messages []llm.Message) []sdk.MessageParam {
	res := make([]sdk.MessageParam, 0, len(messages))

	for _, msg := range messages {
		switch msg.Role {
		case llm.RoleUser:
			res = append(res, sdk.NewUserMessage(sdk.NewTextBlock(msg.Content)))
		case llm.RoleAssistant:
			res = append(res, sdk.NewAssistantMessage(sdk.NewTextBlock(msg.Content)))
		}
	}

	return res
}
