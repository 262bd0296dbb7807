package capture

import "sync/atomic"

// Meter records how many times the states in one family were created,
// duplicated, transferred, and discarded. Every State descended from the same
// family shares one Meter, so the total cost of moving a payload from its
// origin into a deferred task is observable in a single snapshot.
//
// A Meter is safe for concurrent use; states owned by pool workers record
// into it while the originating goroutine reads snapshots.
type Meter struct {
	creates    atomic.Int64
	duplicates atomic.Int64
	transfers  atomic.Int64
	discards   atomic.Int64
}

// NewMeter creates a Meter with all counters at zero.
func NewMeter() *Meter {
	return &Meter{}
}

// Counts is a point-in-time snapshot of a Meter's counters.
type Counts struct {
	Creates    int64
	Duplicates int64
	Transfers  int64
	Discards   int64
}

// Counts returns a snapshot of the current counter values.
func (m *Meter) Counts() Counts {
	return Counts{
		Creates:    m.creates.Load(),
		Duplicates: m.duplicates.Load(),
		Transfers:  m.transfers.Load(),
		Discards:   m.discards.Load(),
	}
}
