package battle

import (
	"errors"
	"fmt"
)

// ErrInvalidTroopCount rejects starting troop counts the rules cannot
// express.
var ErrInvalidTroopCount = errors.New("invalid troop count")

// ValidateTroopCounts checks starting counts before any simulation. The
// attacker needs at least one troop; the defender may start at zero.
func ValidateTroopCounts(attacking, defending int) error {
	if attacking < 1 {
		return fmt.Errorf("%w: attacking troops must be positive, got %d", ErrInvalidTroopCount, attacking)
	}
	if defending < 0 {
		return fmt.Errorf("%w: defending troops cannot be negative, got %d", ErrInvalidTroopCount, defending)
	}
	return nil
}
