package main

import (
	"hauliday/config"
	"hauliday/di"
	"hauliday/shared/logger"
	"hauliday/shared/timezone"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	timezone.Init(cfg.App.Timezone)

	http := di.InitializeDevServer()
	http.Serve()
}
