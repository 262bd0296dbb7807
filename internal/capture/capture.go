package capture

// State holds a payload with observable duplication and transfer semantics.
// The payload is modeled as a text buffer; its size stands in for arbitrary
// captured data.
//
// A State has exactly one owner at a time and is not safe for concurrent use.
// Duplicated copies are fully independent owners; a transferred-from State
// remains valid but empty until reassigned with Set.
type State struct {
	meter     *Meter
	payload   string
	emptied   bool
	discarded bool
}

// New creates a State holding payload and records the creation on meter.
// A nil meter gets a fresh one so the State is always observable.
// The payload is well-formed after this call; there is no failure condition.
func New(meter *Meter, payload string) *State {
	if meter == nil {
		meter = NewMeter()
	}
	meter.creates.Add(1)
	return &State{
		meter:   meter,
		payload: payload,
	}
}

// DuplicateFrom creates an independent copy of src's payload. src is never
// mutated. The copy shares src's Meter, and the duplication is recorded on it.
func DuplicateFrom(src *State) (*State, error) {
	if src == nil {
		return nil, ErrNilState
	}
	src.meter.duplicates.Add(1)
	return &State{
		meter:   src.meter,
		payload: src.payload,
	}, nil
}

// TransferFrom moves src's payload into a new State. Afterward src is emptied:
// it remains valid and non-crashing, but reading it without reassignment
// fails with ErrUseAfterEmpty. The transfer is recorded on the shared Meter.
func TransferFrom(src *State) (*State, error) {
	if src == nil {
		return nil, ErrNilState
	}
	src.meter.transfers.Add(1)
	dst := &State{
		meter:   src.meter,
		payload: src.payload,
	}
	src.payload = ""
	src.emptied = true
	return dst, nil
}

// Read returns the current payload. It fails with ErrUseAfterEmpty when the
// State was the source of a TransferFrom and was never reassigned.
//
// Read does NOT guard against use after Discard: a discarded State returns
// its zeroed payload without error. That is the dangling-reference hazard a
// by-reference capture carries, and it is deliberately left unchecked here —
// detecting it in general would require tracking scope lifetimes this
// package has no visibility into. Discarded offers a best-effort tombstone
// for callers that want debug-grade checks.
func (s *State) Read() (string, error) {
	if s.emptied {
		return "", ErrUseAfterEmpty
	}
	return s.payload, nil
}

// Set reassigns the payload, making an emptied State readable again.
func (s *State) Set(payload string) {
	s.payload = payload
	s.emptied = false
}

// Discard models the end of the owning scope: the payload is zeroed and the
// State is tombstoned. Any later access through a retained reference observes
// the zeroed payload, not the original value. Discard is idempotent.
func (s *State) Discard() {
	if s.discarded {
		return
	}
	s.payload = ""
	s.discarded = true
	s.meter.discards.Add(1)
}

// Discarded reports whether Discard was called. This is a best-effort
// tombstone for debug checks only; it cannot detect every lifetime violation
// and callers must not rely on it for correctness.
func (s *State) Discarded() bool {
	return s.discarded
}

// Meter returns the instrumentation meter shared by this State's family.
func (s *State) Meter() *Meter {
	return s.meter
}
