package telemetry

// TrailbrakeSteeringDetector flags braking combined with steering input
// beyond a configured threshold (spec.md §4.5, "ExcessiveTrailbraking").
// Gated out entirely when the session has no known max steering angle,
// or when the sample's own steering angle exceeds that max (treated as
// a sensor fault, not a finding).
type TrailbrakeSteeringDetector struct {
	MinBrake        float64 // default 0.2
	MaxSteeringPct  float64 // default 0.1
}

func NewTrailbrakeSteeringDetector() *TrailbrakeSteeringDetector {
	return &TrailbrakeSteeringDetector{MinBrake: 0.2, MaxSteeringPct: 0.1}
}

func (d *TrailbrakeSteeringDetector) Reset() {}

func (d *TrailbrakeSteeringDetector) Detect(session *SessionInfo, prev, sample *Sample) []Annotation {
	if sample.InPit() {
		return nil
	}
	if session == nil || sample.SteeringRad == nil || sample.BrakePct == nil || sample.SteeringPct == nil {
		return nil
	}
	if session.MaxSteeringAngleRad == 0 || absf(*sample.SteeringRad) > session.MaxSteeringAngleRad {
		return nil
	}
	if *sample.BrakePct > d.MinBrake && absf(*sample.SteeringPct) > d.MaxSteeringPct {
		return []Annotation{{
			Kind:        AnnTrailbrakeSteering,
			CornerPhase: cornerPhaseOf(sample),
			CornerIndex: cornerIndexOf(sample),
			Severity:    0.5,
		}}
	}
	return nil
}
