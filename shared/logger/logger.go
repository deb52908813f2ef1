package logger

import (
	"context"
	"hauliday/config"
	"hauliday/shared/constant"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const lambdaFunctionNameEnv = "AWS_LAMBDA_FUNCTION_NAME"

func InitLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	log.Logger = New(os.Stdout, os.Getenv(lambdaFunctionNameEnv))

	log.Trace().Msg("Zerolog initialized.")
}

// New builds the process logger. Inside Lambda it writes JSON lines tagged with the
// function name for CloudWatch; elsewhere it writes human readable console output.
func New(out io.Writer, functionName string) zerolog.Logger {
	if functionName != "" {
		return zerolog.New(out).With().Timestamp().Str("function", functionName).Logger()
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}).With().Timestamp().Logger()
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

func SetLogLevel(config *config.Config) {
	level, err := zerolog.ParseLevel(config.Server.LogLevel)
	if err != nil {
		level = zerolog.TraceLevel
		log.Trace().Str("loglevel", level.String()).Msg("Environment has no log level set up, using default.")
	} else {
		log.Trace().Str("loglevel", level.String()).Msg("Desired log level detected.")
	}

	zerolog.SetGlobalLevel(level)
}

// WithRequest returns a context carrying a logger tagged with the invocation's request and session ids.
func WithRequest(ctx context.Context, requestID, sessionID string) context.Context {
	ctx = context.WithValue(ctx, constant.ContextKeyRequestID, requestID)
	ctx = context.WithValue(ctx, constant.ContextKeySessionID, sessionID)

	l := log.With().Str("request_id", requestID).Str("session_id", sessionID).Logger()

	return l.WithContext(ctx)
}

// Ctx returns the request-scoped logger, or the global one when none was attached.
func Ctx(ctx context.Context) *zerolog.Logger {
	l := zerolog.Ctx(ctx)
	if l.GetLevel() == zerolog.Disabled {
		return &log.Logger
	}

	return l
}
