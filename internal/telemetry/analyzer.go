package telemetry

// Analyzer is the detector contract from spec.md §4.1: stateful,
// single-threaded, fed one Sample at a time in arrival order. Detect
// never blocks and never allocates beyond what a single call needs; a
// missing required field yields a nil/empty return rather than an
// error, and a detector's rolling state is preserved across the call so
// later samples still see a consistent baseline. A sample with
// is_pit_limiter_engaged or is_in_pit_lane true is gated out before any
// other check: Detect returns an empty list and must not touch rolling
// windows or prev* fields for it, so a pit stop never poisons the
// baseline the next on-track sample is compared against.
type Analyzer interface {
	// Detect inspects sample in the context of the current session and
	// returns the annotations (zero or more) this detector produces for
	// it. prev is the immediately preceding sample the detector last
	// saw, or nil for the first sample of a session.
	Detect(session *SessionInfo, prev, sample *Sample) []Annotation

	// Reset clears all rolling state. Chain.Reset calls it on every
	// analyzer; the Collector does not call either, so detector state
	// carries across SessionChange records within one stream.
	Reset()
}

// Chain runs a fixed ordered list of Analyzers against one sample and
// concatenates their annotations. Per spec.md §5 each detector's stage
// budget is independent; Chain does not itself enforce timing (the
// collector's caller is responsible for budget accounting).
type Chain struct {
	analyzers []Analyzer
}

// NewChain builds a Chain that runs analyzers in the order given.
func NewChain(analyzers ...Analyzer) *Chain {
	return &Chain{analyzers: analyzers}
}

func (c *Chain) Reset() {
	for _, a := range c.analyzers {
		a.Reset()
	}
}

func (c *Chain) Detect(session *SessionInfo, prev, sample *Sample) []Annotation {
	var out []Annotation
	for _, a := range c.analyzers {
		out = append(out, a.Detect(session, prev, sample)...)
	}
	return out
}
