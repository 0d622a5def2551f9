package main

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spendsense/backend/internal/cmd"
)

func main() {
	if err := cmd.Run(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("spendsense")
	}
}
