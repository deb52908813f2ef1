package main

import (
	"context"
	"encoding/json"
	"hauliday/config"
	"hauliday/di"
	"hauliday/shared/logger"
	"hauliday/shared/metrics"
	"hauliday/shared/timezone"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/rs/zerolog/log"
)

const flushTimeout = 2 * time.Second

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	timezone.Init(cfg.App.Timezone)

	metrics.Register()

	app := di.InitializeAssistant()

	lambda.Start(func(ctx context.Context, event json.RawMessage) (any, error) {
		defer flush(app)

		return app.Handler.Handle(ctx, event)
	})
}

// flush exports spans before Lambda freezes the execution environment.
func flush(app *di.Assistant) {
	ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
	defer cancel()

	if err := app.Otel.Flush(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to flush spans")
	}
}
