package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"vetclinic/config"
	"vetclinic/helper"
	"vetclinic/shared/logger"
)

const (
	argLength = 2
)

func main() {
	logger.InitLogger()

	if len(os.Args) < argLength {
		log.Fatal().Msg("Migration direction (up/down) is required")
	}

	cfg := config.Get()

	if err := helper.Runner(cfg, os.Args[1]); err != nil {
		log.Fatal().Err(err).Str("direction", os.Args[1]).Msg("Migration failed. Use 'up', 'down', 'drop' or 'step-up'")
	}
}
