package telemetry

// SlipDetector flags a coasting, steered car that is losing speed
// faster than expected: no brake, non-decreasing throttle, meaningful
// steering angle, yet current speed below the previous sample's speed
// (spec.md §4.4). Stateless beyond needing the previous sample, which
// the Chain already threads through.
type SlipDetector struct {
	SteeringGateRad float64 // default 0.08
}

func NewSlipDetector() *SlipDetector {
	return &SlipDetector{SteeringGateRad: 0.08}
}

func (d *SlipDetector) Reset() {}

func (d *SlipDetector) Detect(session *SessionInfo, prev, sample *Sample) []Annotation {
	if sample.InPit() {
		return nil
	}
	if prev == nil {
		return nil
	}
	if sample.BrakePct == nil || sample.ThrottlePct == nil || prev.ThrottlePct == nil ||
		sample.SteeringRad == nil || sample.SpeedMps == nil || prev.SpeedMps == nil {
		return nil
	}
	if *sample.BrakePct != 0 {
		return nil
	}
	if *sample.ThrottlePct < *prev.ThrottlePct {
		return nil
	}
	if absf(*sample.SteeringRad) <= d.SteeringGateRad {
		return nil
	}
	if *sample.SpeedMps >= *prev.SpeedMps {
		return nil
	}
	return []Annotation{{
		Kind:        AnnSlip,
		CornerPhase: cornerPhaseOf(sample),
		CornerIndex: cornerIndexOf(sample),
		Severity:    0.5,
	}}
}
