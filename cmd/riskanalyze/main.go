package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog/log"

	"riskdice/internal/cmd/riskanalyze"
)

func main() {
	cfg, err := riskanalyze.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if err := riskanalyze.Run(cfg, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("analysis failed")
	}
}
