package cli_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hauliday/cmd/ops/internal/cli"
	"hauliday/config"
	"hauliday/shared/failure"
)

func TestCreateRootCommand_Subcommands(t *testing.T) {
	root := cli.NewApp(&config.Config{}).CreateRootCommand()

	var names []string
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}

	assert.Subset(t, names, []string{"lex-alias", "create-index", "ingest", "sync-catalog", "smoke-test"})
}

func TestCommands_RequireConfiguration(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "lex alias without bot", args: []string{"lex-alias"}},
		{name: "create index without endpoint", args: []string{"create-index"}},
		{name: "ingest without ids", args: []string{"ingest"}},
		{name: "sync without bucket", args: []string{"sync-catalog"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.AWS.Region = "us-west-2"

			root := cli.NewApp(cfg).CreateRootCommand()
			root.SetArgs(tt.args)
			root.SetOut(&bytes.Buffer{})
			root.SetErr(&bytes.Buffer{})

			err := root.Execute()

			require.Error(t, err)
			assert.ErrorIs(t, err, failure.MissingConfigError)
		})
	}
}

func TestIngest_Flags(t *testing.T) {
	root := cli.NewApp(&config.Config{}).CreateRootCommand()

	ingest, _, err := root.Find([]string{"ingest"})
	require.NoError(t, err)

	assert.Equal(t, "30m0s", ingest.Flag("timeout").DefValue)
	assert.Equal(t, "10s", ingest.Flag("interval").DefValue)
}
