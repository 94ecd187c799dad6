package telemetry

// ScrubDetector flags tire scrub: steering input running ahead of the
// yaw rate the car is actually generating, while braking or off
// throttle (spec.md §4.3). Gated on (brake >= 0.4 or throttle <= 0.4)
// and |steering_pct| > 0.1.
type ScrubDetector struct {
	WindowSize  int // default 100
	MinSamples  int // default 50
	BrakeGate   float64
	ThrottleGate float64
	SteeringGate float64

	w *rollingWindow
}

func NewScrubDetector() *ScrubDetector {
	return &ScrubDetector{
		WindowSize:   100,
		MinSamples:   50,
		BrakeGate:    0.4,
		ThrottleGate: 0.4,
		SteeringGate: 0.1,
	}
}

func (d *ScrubDetector) Reset() {
	d.w = nil
}

func (d *ScrubDetector) Detect(session *SessionInfo, prev, sample *Sample) []Annotation {
	if sample.InPit() {
		return nil
	}
	if sample.BrakePct == nil || sample.ThrottlePct == nil || sample.SteeringPct == nil || sample.YawRateRps == nil {
		return nil
	}
	brake, throttle, steering := *sample.BrakePct, *sample.ThrottlePct, *sample.SteeringPct
	if !(brake >= d.BrakeGate || throttle <= d.ThrottleGate) {
		return nil
	}
	if absf(steering) <= d.SteeringGate {
		return nil
	}

	if d.w == nil {
		d.w = newRollingWindow(d.WindowSize)
	}
	value := absf(steering) - absf(*sample.YawRateRps)

	var out []Annotation
	if d.w.count() >= d.MinSamples {
		if value > d.w.mean() {
			out = append(out, Annotation{
				Kind:        AnnScrub,
				CornerPhase: cornerPhaseOf(sample),
				CornerIndex: cornerIndexOf(sample),
				Severity:    0.5,
			})
		}
	}
	d.w.add(value)
	return out
}
