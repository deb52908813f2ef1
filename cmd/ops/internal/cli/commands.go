package cli

import (
	"errors"
	"fmt"
	"hauliday/infras/bedrock"
	"hauliday/infras/dynamodb"
	"hauliday/infras/opensearch"
	"hauliday/infras/s3"
	"hauliday/internal/domains/catalog"
	reservationRepository "hauliday/internal/domains/reservation/repository"
	"hauliday/internal/provision"
	"hauliday/shared/constant"
	"hauliday/shared/failure"

	"github.com/aws/aws-sdk-go-v2/service/connect"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lexmodelsv2"
	"github.com/aws/aws-sdk-go-v2/service/lexruntimev2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var errSmokeTestFailed = errors.New("smoke test reported failures")

// addLexCommands adds the Lex alias command
func (app *App) addLexCommands(rootCmd *cobra.Command) {
	lexAliasCmd := &cobra.Command{
		Use:   "lex-alias",
		Short: "Create or update the Lex bot alias with the Lambda code hook",
		Long: `Find the bot alias named by LEX_ALIAS_NAME, point it at the DRAFT bot version with
the Lambda in LAMBDA_ARN as its code hook, and verify the hook by reading the alias back.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := app.Config

			res, err := provision.EnsureLexAlias(cmd.Context(), lexmodelsv2.NewFromConfig(app.aws()), provision.AliasParams{
				BotID:     cfg.Lex.BotID,
				AliasName: cfg.Lex.AliasName,
				LambdaARN: cfg.Lambda.ARN,
				LocaleID:  cfg.Lex.LocaleID,
			})
			if err != nil {
				return err
			}

			log.Info().Str("alias_id", res.AliasID).Str("status", res.Status).Bool("created", res.Created).Msg("lex bot alias configured")

			return nil
		},
	}

	rootCmd.AddCommand(lexAliasCmd)
}

// addKnowledgeBaseCommands adds the index, ingestion and catalog sync commands
func (app *App) addKnowledgeBaseCommands(rootCmd *cobra.Command) {
	createIndexCmd := &cobra.Command{
		Use:   "create-index [collection-endpoint] [index-name]",
		Short: "Recreate the vector index used by the knowledge base",
		Long: `Delete the index if it exists and create it with the mapping Bedrock knowledge bases
expect. Arguments default to OPENSEARCH_COLLECTION_ENDPOINT and OPENSEARCH_INDEX_NAME.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			endpoint := argOr(args, 0, app.Config.OpenSearch.CollectionEndpoint)
			index := argOr(args, 1, app.Config.OpenSearch.IndexName)

			if endpoint == constant.Empty || index == constant.Empty {
				return fmt.Errorf("collection endpoint and index name are required: %w", failure.MissingConfigError)
			}

			search := opensearch.New(endpoint, app.Config, app.aws(), app.tracer())

			res, err := provision.RecreateIndex(cmd.Context(), search, index, provision.IndexSettleDelay)
			if err != nil {
				return err
			}

			log.Info().RawJSON("response", res).Str("index", index).Msg("index created")

			return nil
		},
	}

	var ingestOpts provision.IngestOptions

	ingestCmd := &cobra.Command{
		Use:   "ingest [knowledge-base-id] [data-source-id]",
		Short: "Start a knowledge base ingestion job and wait for it",
		Long: `Start an ingestion job and poll until it completes or fails. Arguments default to
BEDROCK_KNOWLEDGE_BASE_ID and BEDROCK_DATA_SOURCE_ID. Exits non-zero on failure or timeout.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ingestOpts.KnowledgeBaseID = argOr(args, 0, app.Config.Bedrock.KnowledgeBaseID)
			ingestOpts.DataSourceID = argOr(args, 1, app.Config.Bedrock.DataSourceID)

			if ingestOpts.KnowledgeBaseID == constant.Empty || ingestOpts.DataSourceID == constant.Empty {
				return fmt.Errorf("knowledge base and data source ids are required: %w", failure.MissingConfigError)
			}

			job, err := provision.Ingest(cmd.Context(), bedrock.NewIngestion(app.aws(), app.tracer()), ingestOpts)
			if err != nil {
				return err
			}

			log.Info().
				Str("job_id", job.ID).
				Int64("scanned", job.Scanned).
				Int64("indexed", job.Indexed).
				Int64("failed", job.Failed).
				Msg("ingestion completed")

			return nil
		},
	}

	ingestCmd.Flags().DurationVar(&ingestOpts.Timeout, "timeout", provision.DefaultIngestTimeout, "How long to wait for the job")
	ingestCmd.Flags().DurationVar(&ingestOpts.Interval, "interval", provision.DefaultIngestInterval, "How often to poll the job")

	var (
		bucket string
		prefix string
		prune  bool
	)

	syncCatalogCmd := &cobra.Command{
		Use:   "sync-catalog",
		Short: "Upload the equipment catalog to the knowledge base bucket",
		Long: `Render the embedded equipment catalog as Markdown and upload it to the knowledge
base data source bucket, so retrieval sees the same prices the assistant quotes.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if bucket == constant.Empty {
				return fmt.Errorf("bucket is required: %w", failure.MissingConfigError)
			}

			cat, err := catalog.Load()
			if err != nil {
				return err
			}

			res, err := provision.SyncCatalog(cmd.Context(), s3.New(app.Config, app.aws(), app.tracer()), cat, bucket, prefix, prune)
			if err != nil {
				return err
			}

			log.Info().Str("uri", res.URI).Strs("pruned", res.Pruned).Msg("catalog synced")

			return nil
		},
	}

	syncCatalogCmd.Flags().StringVar(&bucket, "bucket", app.Config.S3.BucketName, "Knowledge base bucket")
	syncCatalogCmd.Flags().StringVar(&prefix, "prefix", app.Config.S3.Prefix, "Key prefix of the data source")
	syncCatalogCmd.Flags().BoolVar(&prune, "prune", false, "Delete other documents in the catalog directory")

	rootCmd.AddCommand(createIndexCmd, ingestCmd, syncCatalogCmd)
}

// addSmokeTestCommand adds the deployed stack check
func (app *App) addSmokeTestCommand(rootCmd *cobra.Command) {
	smokeTestCmd := &cobra.Command{
		Use:   "smoke-test",
		Short: "Check a deployed stack end to end",
		Long: `Invoke the Lambda with canonical events, recognize utterances through the Lex bot,
probe the reservation table, verify the Connect association, and run a short
conversation. Warnings do not fail the run; failures do.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := app.Config
			awsCfg := app.aws()

			smoke := provision.NewSmokeTest(provision.SmokeClients{
				Lambda:       lambda.NewFromConfig(awsCfg),
				LexRuntime:   lexruntimev2.NewFromConfig(awsCfg),
				Connect:      connect.NewFromConfig(awsCfg),
				Reservations: reservationRepository.New(dynamodb.New(awsCfg), cfg, app.tracer()),
			}, provision.SmokeParams{
				FunctionName: cfg.Lambda.FunctionName,
				BotID:        cfg.Lex.BotID,
				AliasID:      cfg.Lex.AliasID,
				LocaleID:     cfg.Lex.LocaleID,
				InstanceID:   cfg.Connect.InstanceID,
				IntentName:   cfg.App.Conversation.IntentName,
			})

			report := smoke.Run(cmd.Context())

			if err := provision.RenderReport(cmd.OutOrStdout(), report); err != nil {
				return err
			}

			if report.Failed() {
				return errSmokeTestFailed
			}

			return nil
		},
	}

	rootCmd.AddCommand(smokeTestCmd)
}

func argOr(args []string, i int, fallback string) string {
	if len(args) > i && args[i] != constant.Empty {
		return args[i]
	}

	return fallback
}
