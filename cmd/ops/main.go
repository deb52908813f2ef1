package main

import (
	"hauliday/cmd/ops/internal/cli"
	"hauliday/config"
	"hauliday/shared/failure"
	"hauliday/shared/logger"
	"os"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if err := cli.NewApp(cfg).CreateRootCommand().Execute(); err != nil {
		os.Exit(failure.ExitCode(err))
	}
}
