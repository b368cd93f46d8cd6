package trial

import (
	"strconv"
	"time"

	"riskdice/battle"
)

// Header labels the record columns for outputs that request one.
var Header = []string{"Attacker Losses", "Defender Losses", "Difference", "Max Rolls", "Non-Max Rolls", "Elapsed Time"}

// Record is one finished battle in the shape consumers read: total losses,
// the defender-minus-attacker difference, round tallies, and elapsed
// milliseconds.
type Record struct {
	AttackerLosses int
	DefenderLosses int
	Difference     int
	MaxRolls       int
	NonMaxRolls    int
	ElapsedMS      float64
}

// NewRecord converts a battle result into its trial record.
func NewRecord(result battle.Result) Record {
	return Record{
		AttackerLosses: result.AttackerLosses,
		DefenderLosses: result.DefenderLosses,
		Difference:     result.DefenderLosses - result.AttackerLosses,
		MaxRolls:       result.MaximalRounds,
		NonMaxRolls:    result.NonMaximalRounds,
		ElapsedMS:      float64(result.Elapsed) / float64(time.Millisecond),
	}
}

// Fields renders the record as CSV fields, elapsed fixed to two decimals.
func (r Record) Fields() []string {
	return []string{
		strconv.Itoa(r.AttackerLosses),
		strconv.Itoa(r.DefenderLosses),
		strconv.Itoa(r.Difference),
		strconv.Itoa(r.MaxRolls),
		strconv.Itoa(r.NonMaxRolls),
		strconv.FormatFloat(r.ElapsedMS, 'f', 2, 64),
	}
}
