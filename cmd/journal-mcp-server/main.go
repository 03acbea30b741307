package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"github.com/bhatiakavisha/AI-Health-Companion/mcpserver"
)

func main() {
	if err := mcpserver.Run(); err != nil {
		log.Error().Err(err).Msg("MCP server exited with error")
		os.Exit(1)
	}
}
