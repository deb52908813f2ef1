package di

import (
	"hauliday/config"
	"hauliday/infras/anthropic"
	"hauliday/infras/bedrock"
	"hauliday/infras/llm"
	"hauliday/infras/otel"
	assistantHandler "hauliday/internal/handlers/assistant"

	"github.com/rs/zerolog/log"
)

// Assistant is what the Lambda entry point needs: the handler and the tracer to flush.
type Assistant struct {
	Handler assistantHandler.Handler
	Otel    otel.Otel
}

// ProvideGenerator picks the reply generator from BEDROCK_PROVIDER. Bedrock is the default.
func ProvideGenerator(cfg *config.Config, bedrock bedrock.Bedrock, otel otel.Otel) llm.Generator {
	if cfg.Bedrock.Provider == config.ProviderAnthropic {
		log.Info().Str("model", cfg.Anthropic.Model).Msg("using anthropic api for replies")

		return anthropic.New(cfg, otel)
	}

	log.Info().Str("model", cfg.Bedrock.ModelID).Msg("using bedrock for replies")

	return bedrock
}
