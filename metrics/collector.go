package metrics

import "sync/atomic"

// Snapshot is a point-in-time view of the resolution counters.
type Snapshot struct {
	Battles     int
	TableRounds int
	LiveRounds  int
}

// Rounds returns the total rounds resolved either way.
func (s Snapshot) Rounds() int {
	return s.TableRounds + s.LiveRounds
}

// Collector counts how rounds get resolved: served from the outcome table
// or rolled live. Implementations are safe for concurrent use.
type Collector interface {
	AddBattle()
	AddTableRound()
	AddLiveRound()
	Complete() Snapshot
}

type collector struct {
	battles     atomic.Int64
	tableRounds atomic.Int64
	liveRounds  atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) AddBattle() {
	c.battles.Add(1)
}

func (c *collector) AddTableRound() {
	c.tableRounds.Add(1)
}

func (c *collector) AddLiveRound() {
	c.liveRounds.Add(1)
}

func (c *collector) Complete() Snapshot {
	return Snapshot{
		Battles:     int(c.battles.Load()),
		TableRounds: int(c.tableRounds.Load()),
		LiveRounds:  int(c.liveRounds.Load()),
	}
}

type dummyCollector struct{}

// NewDummyCollector returns a collector that records nothing, for callers
// that do not want resolution metrics.
func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (c *dummyCollector) AddBattle()         {}
func (c *dummyCollector) AddTableRound()     {}
func (c *dummyCollector) AddLiveRound()      {}
func (c *dummyCollector) Complete() Snapshot { return Snapshot{} }
