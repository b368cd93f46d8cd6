package battle

import (
	"time"

	"github.com/rs/zerolog/log"

	"riskdice/game"
	"riskdice/metrics"
)

// Result aggregates a whole battle: total losses, how many rounds ran at
// the maximal dice counts, and the wall-clock time spent.
type Result struct {
	AttackerLosses   int
	DefenderLosses   int
	MaximalRounds    int
	NonMaximalRounds int
	Elapsed          time.Duration
}

// Rounds returns the total rounds fought.
func (r Result) Rounds() int {
	return r.MaximalRounds + r.NonMaximalRounds
}

type Option func(s *Simulator)

// WithoutPrecompute disables the outcome table so every round rolls live
// dice. Slower, but uses no table memory.
func WithoutPrecompute() Option {
	return func(s *Simulator) {
		s.precompute = false
	}
}

// WithCollector attaches a metrics collector to the simulator's rounds and
// battles.
func WithCollector(collector metrics.Collector) Option {
	return func(s *Simulator) {
		if collector != nil {
			s.collector = collector
		}
	}
}

// Simulator drives battles round by round until one side is eliminated.
// The rules, table, and roller are fixed at construction; battles share no
// other state.
type Simulator struct {
	resolver   *Resolver
	collector  metrics.Collector
	precompute bool
}

// NewSimulator builds a simulator for one battle mode. The outcome table
// for the rules is precomputed unless disabled by option.
func NewSimulator(rules game.Rules, roller game.Roller, options ...Option) *Simulator {
	s := &Simulator{
		collector:  metrics.NewDummyCollector(),
		precompute: true,
	}
	for _, option := range options {
		option(s)
	}

	var table *game.OutcomeTable
	if s.precompute {
		start := time.Now()
		table = game.BuildOutcomeTable(rules)
		log.Debug().Msgf("precomputed %d maximal dice outcomes in %s", table.Size(), time.Since(start))
	}
	s.resolver = NewResolver(rules, roller, table, s.collector)

	return s
}

// Run simulates one battle from the given starting troops until the
// attacker is down to the reserved troop or the defender is eliminated.
// Each round excludes the reserved troop from dice selection but subtracts
// losses from the real totals. An attacker already at one troop fights
// zero rounds.
func (s *Simulator) Run(attacking, defending int) Result {
	var result Result
	start := time.Now()

	for attacking > 1 && defending > 0 {
		round := s.resolver.Resolve(attacking-1, defending)
		result.AttackerLosses += round.AttackerLosses
		result.DefenderLosses += round.DefenderLosses
		if round.Maximal {
			result.MaximalRounds++
		} else {
			result.NonMaximalRounds++
		}
		attacking -= round.AttackerLosses
		defending -= round.DefenderLosses
	}

	result.Elapsed = time.Since(start)
	s.collector.AddBattle()
	return result
}
