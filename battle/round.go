package battle

import (
	"github.com/rs/zerolog/log"

	"riskdice/game"
	"riskdice/metrics"
)

// RoundResult reports one combat round: troops lost by each side and
// whether the round was maximal, meaning both sides rolled their full dice
// allowance.
type RoundResult struct {
	AttackerLosses int
	DefenderLosses int
	Maximal        bool
}

// Resolver turns participating troop counts into per-round losses. A
// maximal round is served from the outcome table when one is attached;
// everything else is rolled live.
type Resolver struct {
	rules     game.Rules
	roller    game.Roller
	table     *game.OutcomeTable
	collector metrics.Collector
}

// NewResolver builds a resolver. A nil table disables precomputed lookups;
// a nil collector disables metrics.
func NewResolver(rules game.Rules, roller game.Roller, table *game.OutcomeTable, collector metrics.Collector) *Resolver {
	if collector == nil {
		collector = metrics.NewDummyCollector()
	}
	return &Resolver{
		rules:     rules,
		roller:    roller,
		table:     table,
		collector: collector,
	}
}

// Resolve executes one round for the given participating troops. The
// caller has already excluded the attacker's reserved troop. A maximal
// round is reported as such even when the table is disabled and the dice
// are rolled live.
func (r *Resolver) Resolve(attacking, defending int) RoundResult {
	attackers := min(attacking, r.rules.MaxAttackDice())
	defenders := min(defending, r.rules.MaxDefendDice())
	maximal := attackers == r.rules.MaxAttackDice() && defenders == r.rules.MaxDefendDice()

	if r.table != nil && maximal {
		pair := r.table.Lookup(r.roller)
		r.collector.AddTableRound()
		log.Debug().Msgf("table round: losses %d,%d", pair.Attacker, pair.Defender)
		return RoundResult{AttackerLosses: pair.Attacker, DefenderLosses: pair.Defender, Maximal: true}
	}

	attackerRolls := r.rollDice(attackers)
	defenderRolls := r.rollDice(defenders)
	attackerLosses, defenderLosses := game.ComputeLosses(attackerRolls, defenderRolls)
	r.collector.AddLiveRound()
	log.Debug().Msgf("live round: attacker %v defender %v losses %d,%d", attackerRolls, defenderRolls, attackerLosses, defenderLosses)
	return RoundResult{AttackerLosses: attackerLosses, DefenderLosses: defenderLosses, Maximal: maximal}
}

func (r *Resolver) rollDice(num int) []int {
	rolls := make([]int, num)
	for i := range rolls {
		rolls[i] = r.roller.Die()
	}
	return rolls
}
