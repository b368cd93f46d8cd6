package game

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputeLossesScenarios(t *testing.T) {
	tests := []struct {
		name           string
		attackerRolls  []int
		defenderRolls  []int
		attackerLosses int
		defenderLosses int
	}{
		{
			name:           "attacker wins both pairs",
			attackerRolls:  []int{6, 5, 4},
			defenderRolls:  []int{4, 3},
			attackerLosses: 0,
			defenderLosses: 2,
		},
		{
			name:           "split outcome",
			attackerRolls:  []int{6, 4, 2},
			defenderRolls:  []int{5, 5},
			attackerLosses: 1,
			defenderLosses: 1,
		},
		{
			name:           "defender wins both pairs",
			attackerRolls:  []int{3, 2, 1},
			defenderRolls:  []int{6, 3},
			attackerLosses: 2,
			defenderLosses: 0,
		},
		{
			name:           "unsorted inputs are paired by rank",
			attackerRolls:  []int{2, 6, 4},
			defenderRolls:  []int{5, 5},
			attackerLosses: 1,
			defenderLosses: 1,
		},
		{
			name:           "single attacker die against two defenders",
			attackerRolls:  []int{6},
			defenderRolls:  []int{5, 5},
			attackerLosses: 0,
			defenderLosses: 1,
		},
		{
			name:           "extra attacker dice are ignored",
			attackerRolls:  []int{6, 6, 6},
			defenderRolls:  []int{1},
			attackerLosses: 0,
			defenderLosses: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attackerLosses, defenderLosses := ComputeLosses(tt.attackerRolls, tt.defenderRolls)
			require.Equal(t, tt.attackerLosses, attackerLosses, "attacker losses for %v vs %v", tt.attackerRolls, tt.defenderRolls)
			require.Equal(t, tt.defenderLosses, defenderLosses, "defender losses for %v vs %v", tt.attackerRolls, tt.defenderRolls)
		})
	}
}

func TestComputeLossesTieFavorsDefender(t *testing.T) {
	attackerLosses, defenderLosses := ComputeLosses([]int{3}, []int{3})
	require.Equal(t, 1, attackerLosses, "a tied pair must cost the attacker a troop")
	require.Equal(t, 0, defenderLosses, "a tied pair must cost the defender nothing")
}

func TestComputeLossesLossSumMatchesPairedDice(t *testing.T) {
	// Every combination of dice counts and faces settles exactly one loss
	// per paired die, no more and no less.
	for attackerCount := 1; attackerCount <= 3; attackerCount++ {
		for defenderCount := 1; defenderCount <= 3; defenderCount++ {
			t.Run(fmt.Sprintf("%dv%d", attackerCount, defenderCount), func(t *testing.T) {
				total := attackerCount + defenderCount
				combos := 1
				for i := 0; i < total; i++ {
					combos *= DiceSides
				}

				want := min(attackerCount, defenderCount)
				for c := 0; c < combos; c++ {
					rolls := make([]int, total)
					rest := c
					for i := total - 1; i >= 0; i-- {
						rolls[i] = rest%DiceSides + 1
						rest /= DiceSides
					}

					attackerLosses, defenderLosses := ComputeLosses(rolls[:attackerCount], rolls[attackerCount:])
					require.Equal(t, want, attackerLosses+defenderLosses, "losses must cover every paired die for rolls %v", rolls)
				}
			})
		}
	}
}

func TestComputeLossesLeavesInputsUnchanged(t *testing.T) {
	attackerRolls := []int{2, 6, 4}
	defenderRolls := []int{1, 5}

	ComputeLosses(attackerRolls, defenderRolls)

	require.Equal(t, []int{2, 6, 4}, attackerRolls, "attacker rolls must keep their order")
	require.Equal(t, []int{1, 5}, defenderRolls, "defender rolls must keep their order")
}
