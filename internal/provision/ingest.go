package provision

import (
	"context"
	"errors"
	"fmt"
	"hauliday/infras/bedrock"
	"hauliday/shared/failure"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	DefaultIngestTimeout  = 30 * time.Minute
	DefaultIngestInterval = 10 * time.Second
)

var (
	ErrIngestionFailed  = errors.New("ingestion job failed")
	ErrIngestionTimeout = errors.New("timed out waiting for ingestion job")
)

type IngestOptions struct {
	KnowledgeBaseID string
	DataSourceID    string
	Timeout         time.Duration
	Interval        time.Duration
}

// Ingest starts a knowledge base ingestion job and polls it until it completes, fails, or
// the timeout passes. A timed out job may still be running.
func Ingest(ctx context.Context, ingestion bedrock.Ingestion, opts IngestOptions) (bedrock.IngestionJob, error) {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultIngestTimeout
	}

	if opts.Interval <= 0 {
		opts.Interval = DefaultIngestInterval
	}

	started, err := ingestion.StartIngestionJob(ctx, opts.KnowledgeBaseID, opts.DataSourceID)
	if err != nil {
		return started, err
	}

	log.Info().Str("job_id", started.ID).Msg("ingestion job started")

	ctx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	for {
		job, err := ingestion.GetIngestionJob(ctx, opts.KnowledgeBaseID, opts.DataSourceID, started.ID)
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				return started, failure.Timeout("ingestion job", fmt.Errorf("%w after %s", ErrIngestionTimeout, opts.Timeout))
			}

			return started, err
		}

		log.Info().
			Str("status", job.Status).
			Int64("scanned", job.Scanned).
			Int64("indexed", job.Indexed).
			Int64("failed", job.Failed).
			Msg("ingestion status")

		switch job.Status {
		case bedrock.IngestionStatusComplete:
			return job, nil
		case bedrock.IngestionStatusFailed:
			return job, fmt.Errorf("%w: %s", ErrIngestionFailed, strings.Join(job.FailureReasons, "; "))
		case bedrock.IngestionStatusStarting, bedrock.IngestionStatusInProgress:
		default:
			log.Warn().Str("status", job.Status).Msg("unknown ingestion status")
		}

		if err := sleep(ctx, opts.Interval); err != nil {
			return job, failure.Timeout("ingestion job", fmt.Errorf("%w after %s", ErrIngestionTimeout, opts.Timeout))
		}
	}
}
