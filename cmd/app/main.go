package main

import (
	"skyfare/config"
	"skyfare/di"
	"skyfare/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()

	if err := http.Scheduler.Start(0); err != nil {
		log.Warn().Err(err).Msg("Market scheduler did not start")
	}

	http.Serve()
}
