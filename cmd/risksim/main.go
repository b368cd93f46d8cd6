package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog/log"

	"riskdice/internal/cmd/risksim"
)

func main() {
	cfg, err := risksim.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if err := risksim.Run(cfg); err != nil {
		log.Fatal().Err(err).Msg("simulation failed")
	}
}
