// Package cli provides the provisioning and verification commands for the assistant.
package cli

import (
	"context"
	"hauliday/config"
	"hauliday/infras/awscfg"
	"hauliday/infras/otel"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const flushTimeout = 5 * time.Second

// App carries configuration and lazily built shared clients for the commands.
type App struct {
	Config *config.Config

	once   sync.Once
	awsCfg aws.Config
	otel   otel.Otel
}

func NewApp(cfg *config.Config) *App {
	return &App{Config: cfg}
}

func (app *App) init() {
	app.once.Do(func() {
		app.awsCfg = awscfg.New(app.Config)
		app.otel = otel.New(app.Config)
	})
}

func (app *App) aws() aws.Config {
	app.init()

	return app.awsCfg
}

func (app *App) tracer() otel.Otel {
	app.init()

	return app.otel
}

// CreateRootCommand creates and configures the root command
func (app *App) CreateRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ops",
		Short: "Provisioning and smoke testing for the rental assistant",
		Long: `ops wires the assistant into Lex, prepares the knowledge base, and checks
a deployed stack end to end.`,
		SilenceUsage: true,
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			if app.otel == nil {
				return
			}

			ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
			defer cancel()

			if err := app.otel.Flush(ctx); err != nil {
				log.Warn().Err(err).Str("command", cmd.Name()).Msg("failed to flush spans")
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&app.Config.AWS.Region, "region", app.Config.AWS.Region, "AWS region")

	app.addLexCommands(rootCmd)
	app.addKnowledgeBaseCommands(rootCmd)
	app.addSmokeTestCommand(rootCmd)

	return rootCmd
}
