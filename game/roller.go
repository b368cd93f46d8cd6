package game

import (
	"time"

	"golang.org/x/exp/rand"
)

// DiceSides is the number of faces on a battle die.
const DiceSides = 6

// Roller is the randomness capability battles draw from. Die returns one
// uniform die face in [1,6]; Index returns a uniform table index in [0,n).
// Implementations are not safe for concurrent use; each process runs its
// battles on a single roller.
type Roller interface {
	Die() int
	Index(n int) int
}

type diceRoller struct {
	rng *rand.Rand
}

// NewRoller returns a Roller backed by a seedable generator. A zero seed
// derives the state from the current time, so runs are not reproducible;
// any other seed fully determines every subsequent Die and Index draw.
func NewRoller(seed uint64) Roller {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &diceRoller{rng: rand.New(rand.NewSource(seed))}
}

func (r *diceRoller) Die() int {
	return r.rng.Intn(DiceSides) + 1
}

func (r *diceRoller) Index(n int) int {
	return r.rng.Intn(n)
}
