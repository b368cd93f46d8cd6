package game

// OutcomeTable caches the loss pair for every maximal dice combination so
// that a maximal round costs one random index instead of five or six dice
// rolls. Entries keep the multiplicity of the full enumeration: a loss
// pair produced by many dice combinations appears once per combination, so
// a uniform index reproduces the true outcome distribution.
type OutcomeTable struct {
	pairs []LossPair
}

// BuildOutcomeTable enumerates every combination of maximal attacker and
// defender dice for the given rules, attacker dice varying slowest, and
// records each combination's losses in enumeration order. The table is
// immutable once built.
func BuildOutcomeTable(rules Rules) *OutcomeTable {
	attackDice := rules.MaxAttackDice()
	totalDice := attackDice + rules.MaxDefendDice()

	table := &OutcomeTable{pairs: make([]LossPair, 0, pow(DiceSides, totalDice))}

	rolls := make([]int, totalDice)
	var walk func(pos int)
	walk = func(pos int) {
		if pos == len(rolls) {
			attackerLosses, defenderLosses := ComputeLosses(rolls[:attackDice], rolls[attackDice:])
			table.pairs = append(table.pairs, LossPair{Attacker: attackerLosses, Defender: defenderLosses})
			return
		}
		for face := 1; face <= DiceSides; face++ {
			rolls[pos] = face
			walk(pos + 1)
		}
	}
	walk(0)

	return table
}

// Size returns the entry count: 6^5 under standard rules, 6^6 under
// capital rules.
func (t *OutcomeTable) Size() int {
	return len(t.pairs)
}

// Entry returns the loss pair at position i in enumeration order.
func (t *OutcomeTable) Entry(i int) LossPair {
	return t.pairs[i]
}

// Lookup draws one uniform index from the roller and returns that entry.
func (t *OutcomeTable) Lookup(r Roller) LossPair {
	return t.pairs[r.Index(len(t.pairs))]
}

func pow(base, exp int) int {
	result := 1
	for i := 0; i < exp; i++ {
		result *= base
	}
	return result
}
