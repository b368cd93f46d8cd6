package riskanalyze

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"riskdice/analyze"
)

// Config selects the input file and which report sections to print.
type Config struct {
	File      string  `env:"RISKANALYZE_FILE"`
	Summary   bool    `env:"RISKANALYZE_SUMMARY"`
	Histogram bool    `env:"RISKANALYZE_HISTOGRAM"`
	PValue    bool    `env:"RISKANALYZE_PVALUE"`
	NullMean  float64 `env:"RISKANALYZE_NULL_MEAN"`
	Debug     bool    `env:"RISKANALYZE_DEBUG"`
}

// ParseConfig resolves the analyzer configuration from the environment and
// command-line flags.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.StringVar(&cfg.File, "f", cfg.File, "file containing simulator records")
	fs.StringVar(&cfg.File, "file", cfg.File, "file containing simulator records")
	fs.BoolVar(&cfg.Summary, "summary", cfg.Summary, "print summary statistics")
	fs.BoolVar(&cfg.Histogram, "histogram", cfg.Histogram, "print the frequency histogram")
	fs.BoolVar(&cfg.PValue, "p", cfg.PValue, "print z-score and p-value of the mean difference")
	fs.BoolVar(&cfg.PValue, "p-value", cfg.PValue, "print z-score and p-value of the mean difference")
	fs.Float64Var(&cfg.NullMean, "null-mean", cfg.NullMean, "hypothesized mean difference for the z-score")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "enable debug logging")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run analyzes one record file and prints the selected report sections to
// out. With no section selected, both print.
func Run(cfg Config, out io.Writer) error {
	level := zerolog.InfoLevel
	if cfg.Debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.File == "" {
		return errors.New("an input file is required")
	}

	f, err := os.Open(cfg.File)
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	records, err := analyze.ReadRecords(f)
	if err != nil {
		return err
	}
	log.Debug().Msgf("read %d records from %s", len(records), cfg.File)

	if len(records) == 0 {
		fmt.Fprintln(out, "No data to analyze.")
		return nil
	}

	printSummary, printHistogram := cfg.Summary, cfg.Histogram
	if !printSummary && !printHistogram {
		printSummary, printHistogram = true, true
	}

	summary := analyze.Summarize(records)
	if printSummary {
		analyze.WriteSummary(out, filepath.Base(cfg.File), summary)
		if cfg.PValue {
			z := analyze.ZScore(summary, cfg.NullMean)
			fmt.Fprintf(out, "Z-Score: %g\n", z)
			fmt.Fprintf(out, "P-Value: %g\n", analyze.PValue(z))
		}
	}
	if printHistogram {
		analyze.WriteHistogram(out, analyze.Histogram(records))
	}
	return nil
}
