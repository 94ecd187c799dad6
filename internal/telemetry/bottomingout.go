package telemetry

// BottomingOutDetector flags chassis bottoming: a sudden pitch change
// together with a sharp speed drop, while the car is close to
// straight-line (spec.md §4.6). A missing steering_pct is treated as
// 0.0 (satisfies the gate), and prev_pitch/prev_speed always update
// whenever both are present, independent of the steering gate,
// following original_source/src/telemetry/bottoming_out_analyzer.rs
// (spec.md is silent on both points; see DESIGN.md).
type BottomingOutDetector struct {
	PitchDeltaGateRad float64 // default 0.05
	SpeedDropGateMps  float64 // default 0.5
	SteeringGatePct   float64 // default 0.2

	havePrev  bool
	prevPitch float64
	prevSpeed float64
}

func NewBottomingOutDetector() *BottomingOutDetector {
	return &BottomingOutDetector{PitchDeltaGateRad: 0.05, SpeedDropGateMps: 0.5, SteeringGatePct: 0.2}
}

func (d *BottomingOutDetector) Reset() {
	d.havePrev = false
}

func (d *BottomingOutDetector) Detect(session *SessionInfo, prev, sample *Sample) []Annotation {
	if sample.InPit() {
		return nil
	}
	if sample.PitchRad == nil || sample.SpeedMps == nil {
		return nil
	}
	steering := 0.0
	if sample.SteeringPct != nil {
		steering = *sample.SteeringPct
	}

	pitch, speed := *sample.PitchRad, *sample.SpeedMps

	var out []Annotation
	if d.havePrev && absf(steering) <= d.SteeringGatePct {
		if absf(pitch-d.prevPitch) > d.PitchDeltaGateRad && d.prevSpeed-speed > d.SpeedDropGateMps {
			out = append(out, Annotation{
				Kind:        AnnBottomingOut,
				CornerPhase: cornerPhaseOf(sample),
				CornerIndex: cornerIndexOf(sample),
				Severity:    0.5,
			})
		}
	}

	d.prevPitch = pitch
	d.prevSpeed = speed
	d.havePrev = true
	return out
}
