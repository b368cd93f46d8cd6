package trial

import (
	"time"

	"github.com/rs/zerolog/log"

	"riskdice/battle"
)

// Driver runs independent battles back to back and emits one record per
// battle. Trials share nothing but the simulator's roller and outcome
// table.
type Driver struct {
	sim *battle.Simulator
}

func NewDriver(sim *battle.Simulator) *Driver {
	return &Driver{sim: sim}
}

// Run validates the starting troops, then simulates trials battles and
// writes each record as it completes. The first validation or write
// failure aborts the run.
func (d *Driver) Run(attacking, defending, trials int, out *Writer) error {
	if err := battle.ValidateTroopCounts(attacking, defending); err != nil {
		return err
	}

	log.Info().Msgf("starting %d trials: %d attackers vs %d defenders...", trials, attacking, defending)
	start := time.Now()

	for i := 0; i < trials; i++ {
		record := NewRecord(d.sim.Run(attacking, defending))
		log.Debug().Msgf("trial %d of %d: attacker losses %d, defender losses %d, difference %d",
			i+1, trials, record.AttackerLosses, record.DefenderLosses, record.Difference)
		if err := out.Write(record); err != nil {
			return err
		}
	}

	log.Info().Msgf("completed %d trials in %s", trials, time.Since(start))
	return nil
}
