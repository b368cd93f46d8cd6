package game

import "sort"

// LossPair is the outcome of one combat round: troops lost by each side.
type LossPair struct {
	Attacker int
	Defender int
}

// ComputeLosses pairs the highest attacker die against the highest
// defender die, then the next highest, and so on. The defender loses a
// troop when the attacker's die is strictly greater; ties go to the
// defender. Dice without a counterpart are ignored. The input slices are
// left untouched.
func ComputeLosses(attackerRolls, defenderRolls []int) (attackerLosses, defenderLosses int) {
	attacker := sortedDescending(attackerRolls)
	defender := sortedDescending(defenderRolls)

	battles := min(len(attacker), len(defender))
	for i := 0; i < battles; i++ {
		if attacker[i] > defender[i] {
			defenderLosses++
		} else {
			attackerLosses++
		}
	}
	return attackerLosses, defenderLosses
}

func sortedDescending(rolls []int) []int {
	sorted := make([]int, len(rolls))
	copy(sorted, rolls)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
	return sorted
}
