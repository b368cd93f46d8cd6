package game

// Rules fixes the dice allowances for a battle mode. The caps decide how
// many dice each side may roll in a round and the shape of the outcome
// table; they are constant for the life of a process.
type Rules interface {
	MaxAttackDice() int
	MaxDefendDice() int
}
