package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"hauliday/config"
	"hauliday/shared/constant"
	"hauliday/shared/logger"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureGlobal swaps the global logger for one writing JSON to the returned buffer.
func captureGlobal(t *testing.T) *bytes.Buffer {
	t.Helper()

	originalLogger := log.Logger
	originalLevel := zerolog.GlobalLevel()

	t.Cleanup(func() {
		log.Logger = originalLogger
		zerolog.SetGlobalLevel(originalLevel)
	})

	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	return &buf
}

func TestInitLogger(t *testing.T) {
	captureGlobal(t)

	logger.InitLogger()

	assert.Equal(t, zerolog.TimeFormatUnix, zerolog.TimeFieldFormat)
	assert.Equal(t, zerolog.TraceLevel, zerolog.GlobalLevel())
}

func TestNew(t *testing.T) {
	tests := []struct {
		name         string
		functionName string
		wantJSON     bool
	}{
		{name: "lambda writes json tagged with the function", functionName: "call-center-rental-query", wantJSON: true},
		{name: "local run writes console output", functionName: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			l := logger.New(&buf, tt.functionName)
			l.Info().Str("equipment_id", "cotton-candy").Msg("availability checked")

			var line map[string]any
			err := json.Unmarshal(buf.Bytes(), &line)

			if !tt.wantJSON {
				assert.Error(t, err)
				assert.Contains(t, buf.String(), "availability checked")

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.functionName, line["function"])
			assert.Equal(t, "cotton-candy", line["equipment_id"])
		})
	}
}

func TestErrorWithStack(t *testing.T) {
	buf := captureGlobal(t)

	logger.ErrorWithStack(errors.New("reservations table unavailable"))

	assert.Contains(t, buf.String(), "reservations table unavailable")
	assert.Contains(t, buf.String(), `"level":"error"`)
}

func TestSetLogLevel(t *testing.T) {
	tests := []struct {
		logLevel string
		want     zerolog.Level
	}{
		{logLevel: "debug", want: zerolog.DebugLevel},
		{logLevel: "info", want: zerolog.InfoLevel},
		{logLevel: "warn", want: zerolog.WarnLevel},
		{logLevel: "disabled", want: zerolog.Disabled},
		{logLevel: "loud", want: zerolog.TraceLevel},
		{logLevel: "", want: zerolog.NoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.logLevel, func(t *testing.T) {
			captureGlobal(t)

			cfg := &config.Config{}
			cfg.Server.LogLevel = tt.logLevel

			logger.SetLogLevel(cfg)

			assert.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}
}

func TestWithRequest(t *testing.T) {
	buf := captureGlobal(t)

	ctx := logger.WithRequest(context.Background(), "req-1", "sess-1")
	logger.Ctx(ctx).Info().Msg("turn handled")

	assert.Contains(t, buf.String(), `"request_id":"req-1"`)
	assert.Contains(t, buf.String(), `"session_id":"sess-1"`)
	assert.Equal(t, "req-1", ctx.Value(constant.ContextKeyRequestID))
	assert.Equal(t, "sess-1", ctx.Value(constant.ContextKeySessionID))
}

func TestCtx_FallsBackToGlobalLogger(t *testing.T) {
	buf := captureGlobal(t)

	logger.Ctx(context.Background()).Info().Msg("no request attached")

	assert.Contains(t, buf.String(), "no request attached")
}
