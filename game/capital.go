package game

// CapitalRules is combat over a capital territory: the defender holds
// fortifications and rolls up to three dice instead of two.
type CapitalRules struct {
	AttackDice int
	DefendDice int
}

func NewCapitalRules() *CapitalRules {
	return &CapitalRules{
		AttackDice: 3,
		DefendDice: 3,
	}
}

func (cr *CapitalRules) MaxAttackDice() int {
	return cr.AttackDice
}

func (cr *CapitalRules) MaxDefendDice() int {
	return cr.DefendDice
}
