package risksim

import (
	"flag"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"riskdice/battle"
	"riskdice/game"
	"riskdice/metrics"
	"riskdice/trial"
)

// Config carries one simulation run. Defaults come from the environment, a
// scenario file overrides those, and explicit flags override everything.
type Config struct {
	Attackers  int    `env:"RISKSIM_ATTACKERS" yaml:"attackers"`
	Defenders  int    `env:"RISKSIM_DEFENDERS" yaml:"defenders"`
	Capital    bool   `env:"RISKSIM_CAPITAL" yaml:"capital"`
	Trials     int    `env:"RISKSIM_TRIALS" envDefault:"1" yaml:"trials"`
	Seed       uint64 `env:"RISKSIM_SEED" yaml:"seed"`
	Precompute bool   `env:"RISKSIM_PRECOMPUTE" envDefault:"true" yaml:"precompute"`
	Output     string `env:"RISKSIM_OUTPUT" yaml:"output"`
	Header     bool   `env:"RISKSIM_HEADER" yaml:"header"`
	Debug      bool   `env:"RISKSIM_DEBUG" yaml:"debug"`

	Scenario string `env:"RISKSIM_SCENARIO" yaml:"-"`
}

// Validate rejects configurations no run can use.
func (c Config) Validate() error {
	if c.Trials < 1 {
		return fmt.Errorf("trials must be positive, got %d", c.Trials)
	}
	return battle.ValidateTroopCounts(c.Attackers, c.Defenders)
}

// Rules returns the battle mode the configuration selects.
func (c Config) Rules() game.Rules {
	if c.Capital {
		return game.NewCapitalRules()
	}
	return game.NewStandardRules()
}

// ParseConfig resolves the run configuration from the environment, an
// optional scenario file, and command-line flags, in rising precedence.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var base Config
	if err := env.Parse(&base); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	cfg := base
	fs.IntVar(&cfg.Attackers, "a", cfg.Attackers, "number of attacking troops")
	fs.IntVar(&cfg.Attackers, "attackers", cfg.Attackers, "number of attacking troops")
	fs.IntVar(&cfg.Defenders, "d", cfg.Defenders, "number of defending troops")
	fs.IntVar(&cfg.Defenders, "defenders", cfg.Defenders, "number of defending troops")
	fs.BoolVar(&cfg.Capital, "c", cfg.Capital, "defender holds a capital and rolls up to three dice")
	fs.BoolVar(&cfg.Capital, "capital", cfg.Capital, "defender holds a capital and rolls up to three dice")
	fs.IntVar(&cfg.Trials, "t", cfg.Trials, "number of trials to simulate")
	fs.IntVar(&cfg.Trials, "trials", cfg.Trials, "number of trials to simulate")
	fs.Uint64Var(&cfg.Seed, "r", cfg.Seed, "random seed, 0 means randomized")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed, 0 means randomized")
	fs.StringVar(&cfg.Output, "o", cfg.Output, "output file, empty means stdout")
	fs.StringVar(&cfg.Output, "output", cfg.Output, "output file, empty means stdout")
	fs.BoolVar(&cfg.Header, "header", cfg.Header, "write the column header before records")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "enable debug logging")
	noPrecompute := fs.Bool("no-precomputed-rolls", !cfg.Precompute, "skip precomputing maximal dice outcomes (slower)")
	fs.StringVar(&cfg.Scenario, "f", cfg.Scenario, "scenario file (YAML)")
	fs.StringVar(&cfg.Scenario, "scenario", cfg.Scenario, "scenario file (YAML)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	cfg.Precompute = !*noPrecompute

	if cfg.Scenario == "" {
		return cfg, nil
	}

	merged, err := loadScenario(cfg.Scenario, base)
	if err != nil {
		return Config{}, err
	}
	merged.Scenario = cfg.Scenario

	// Explicitly passed flags still beat the scenario file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "a", "attackers":
			merged.Attackers = cfg.Attackers
		case "d", "defenders":
			merged.Defenders = cfg.Defenders
		case "c", "capital":
			merged.Capital = cfg.Capital
		case "t", "trials":
			merged.Trials = cfg.Trials
		case "r", "seed":
			merged.Seed = cfg.Seed
		case "no-precomputed-rolls":
			merged.Precompute = cfg.Precompute
		case "o", "output":
			merged.Output = cfg.Output
		case "header":
			merged.Header = cfg.Header
		case "debug":
			merged.Debug = cfg.Debug
		}
	})
	return merged, nil
}

func loadScenario(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read scenario file: %w", err)
	}
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse scenario file: %w", err)
	}
	return cfg, nil
}

// Run executes the configured simulation, streaming one record per trial
// to the configured output.
func Run(cfg Config) error {
	level := zerolog.InfoLevel
	if cfg.Debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	if err := cfg.Validate(); err != nil {
		return err
	}
	log.Debug().Msgf("configuration: %+v", cfg)

	writer, err := newWriter(cfg)
	if err != nil {
		return err
	}

	collector := metrics.NewCollector()
	options := []battle.Option{battle.WithCollector(collector)}
	if !cfg.Precompute {
		options = append(options, battle.WithoutPrecompute())
	}
	sim := battle.NewSimulator(cfg.Rules(), game.NewRoller(cfg.Seed), options...)

	if err := trial.NewDriver(sim).Run(cfg.Attackers, cfg.Defenders, cfg.Trials, writer); err != nil {
		writer.Close()
		return err
	}
	if err := writer.Close(); err != nil {
		return err
	}

	snapshot := collector.Complete()
	log.Info().Msgf("resolved %d rounds: %d from the outcome table, %d rolled live",
		snapshot.Rounds(), snapshot.TableRounds, snapshot.LiveRounds)
	return nil
}

func newWriter(cfg Config) (*trial.Writer, error) {
	if cfg.Output == "" {
		return trial.NewWriter(os.Stdout, cfg.Header)
	}
	return trial.NewFileWriter(cfg.Output, cfg.Header)
}
