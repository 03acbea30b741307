package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"github.com/bhatiakavisha/AI-Health-Companion/journalservice"
)

func main() {
	if err := journalservice.Run(); err != nil {
		log.Error().Err(err).Msg("health-journal service exited with error")
		os.Exit(1)
	}
}
