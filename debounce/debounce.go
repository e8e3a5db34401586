// Package debounce applies temporal filtering to a raw pressed-set,
// converting bitmap deltas into a deterministic stream of press/release
// events, per spec.md §4.3.
package debounce

import "github.com/gokeyb/gokeyb/matrix"

// Event is a single debounced transition at one matrix position.
type Event struct {
	Press bool // true = Press, false = Release
	Row   int
	Col   int
}

// Debouncer requires a sample to hold stable for N consecutive Update
// calls before it is published, per spec.md §4.3. N is typically 5 at a
// 1 kHz tick rate (5 ms).
type Debouncer struct {
	n             int
	candidate     matrix.PressedKeys
	stable        matrix.PressedKeys
	since         int
	pendingEvents []Event
}

// New returns a Debouncer requiring n consecutive stable ticks, sized for
// an R x C board.
func New(n, rows, cols int) *Debouncer {
	return &Debouncer{
		n:         n,
		candidate: matrix.NewPressedKeys(rows, cols),
		stable:    matrix.NewPressedKeys(rows, cols),
	}
}

// Update feeds one raw sample and reports whether stable changed. since
// counts the sample that establishes a new candidate as its first stable
// occurrence, so n consecutive identical samples (the transitioning one
// plus n-1 repeats) are what it takes to publish — and since saturates
// at n regardless of how long the candidate keeps holding afterward.
func (d *Debouncer) Update(sample matrix.PressedKeys) bool {
	if sample.Equal(d.candidate) {
		if d.since < d.n {
			d.since++
		}
	} else {
		d.candidate = sample
		d.since = 1
	}

	d.pendingEvents = nil
	if d.since >= d.n && !d.candidate.Equal(d.stable) {
		previous := d.stable
		d.stable = d.candidate
		d.pendingEvents = eventsBetween(previous, d.stable)
		return true
	}
	return false
}

// Events yields, in row-major deterministic order, the Press/Release
// events produced by the most recent Update call that returned true.
// Calling Events after an Update that returned false yields nothing.
func (d *Debouncer) Events() []Event {
	return d.pendingEvents
}

// eventsBetween computes the row-major XOR-set between previous and next,
// emitting Press where next has the bit set, Release otherwise.
func eventsBetween(previous, next matrix.PressedKeys) []Event {
	var out []Event
	rows, cols := next.Rows(), next.Cols()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			was, is := previous.Get(r, c), next.Get(r, c)
			if was == is {
				continue
			}
			out = append(out, Event{Press: is, Row: r, Col: c})
		}
	}
	return out
}
