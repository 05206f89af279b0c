package schwarz

import "fmt"

// OutcomeTable is the precomputed per-impact-parameter record of ray fates.
// Slot i holds the outcome of the ray whose impact parameter is the linear
// interpolation of the table's [min, max] range at fraction i/(len-1).
//
// A table is immutable once built. [Renderer.Render] only reads it, so one
// table can be shared by any number of frames.
type OutcomeTable struct {
	angles   []float32
	outcomes []Outcome
}

// NewOutcomeTable builds a table from precomputed slices. Both slices must
// have the same length, at least 2. Intended for synthetic tables in tests
// and for callers that persist tables; normal use goes through
// [ComputeOutcomes].
func NewOutcomeTable(angles []float32, outcomes []Outcome) *OutcomeTable {
	if len(angles) != len(outcomes) {
		panic(fmt.Sprintf("schwarz: outcome table slice lengths differ: %d angles, %d outcomes",
			len(angles), len(outcomes)))
	}
	if len(angles) < 2 {
		panic(fmt.Sprintf("schwarz: outcome table needs at least 2 slots, got %d", len(angles)))
	}
	return &OutcomeTable{angles: angles, outcomes: outcomes}
}

// Len returns the number of slots.
func (t *OutcomeTable) Len() int {
	return len(t.angles)
}

// At returns slot i.
func (t *OutcomeTable) At(i int) (float32, Outcome) {
	return t.angles[i], t.outcomes[i]
}

// Lookup returns the angle and outcome at fractional position pos.
//
// Between two slots with the same outcome the angle is interpolated
// linearly. Across a capture/escape boundary the lower slot is returned
// as-is: blending angles from physically different fates is meaningless.
//
// pos is clamped to [0, len-2] first (NaN clamps to 0). Pixels at the screen
// corners can map past the table's covered radius, so out-of-range queries
// are normal; clamping extends the outermost sample.
func (t *OutcomeTable) Lookup(pos float32) (float32, Outcome) {
	if !(pos > 0) {
		pos = 0
	} else if hi := float32(len(t.angles) - 2); pos > hi {
		pos = hi
	}

	posi := int(pos)
	frac := pos - float32(posi)

	if t.outcomes[posi] != t.outcomes[posi+1] {
		return t.angles[posi], t.outcomes[posi]
	}
	return (1-frac)*t.angles[posi] + frac*t.angles[posi+1], t.outcomes[posi]
}
