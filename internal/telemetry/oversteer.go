package telemetry

// yawExcess is the shared "current instantaneous yaw response exceeds
// 1.5x its rolling mean" test used by both EntryOversteer and
// MidCorner (spec.md §4.5).
func yawExcess(w *rollingWindow, yawRate, steeringPct float64) bool {
	if !w.full() {
		return false
	}
	return absf(yawRate) > w.mean()*absf(steeringPct)*1.5
}

// EntryOversteerDetector flags yaw rate running ahead of steering input
// under braking (spec.md §4.5). Maintains a rolling mean of
// |yaw_rate|/|steering_pct|; the sample is added to the window after
// the detection test.
type EntryOversteerDetector struct {
	WindowSize  int // default 100
	BrakeGate   float64
	SteeringGate float64

	w *rollingWindow
}

func NewEntryOversteerDetector() *EntryOversteerDetector {
	return &EntryOversteerDetector{WindowSize: 100, BrakeGate: 0.3, SteeringGate: 0.1}
}

func (d *EntryOversteerDetector) Reset() { d.w = nil }

func (d *EntryOversteerDetector) Detect(session *SessionInfo, prev, sample *Sample) []Annotation {
	if sample.InPit() {
		return nil
	}
	if sample.BrakePct == nil || sample.SteeringPct == nil || sample.YawRateRps == nil {
		return nil
	}
	if *sample.BrakePct <= d.BrakeGate || absf(*sample.SteeringPct) <= d.SteeringGate {
		return nil
	}
	if d.w == nil {
		d.w = newRollingWindow(d.WindowSize)
	}
	steering := *sample.SteeringPct
	yaw := *sample.YawRateRps

	var out []Annotation
	if yawExcess(d.w, yaw, steering) {
		out = append(out, Annotation{
			Kind:        AnnEntryOversteer,
			CornerPhase: cornerPhaseOf(sample),
			CornerIndex: cornerIndexOf(sample),
			Severity:    0.5,
		})
	}
	if absf(steering) > 0 {
		d.w.add(absf(yaw) / absf(steering))
	}
	return out
}

// MidCornerDetector flags mid-corner speed bleed (understeer) and
// excess yaw response (oversteer) off-throttle, off-brake, with
// meaningful steering (spec.md §4.5). Both findings can fire
// independently from the same call.
type MidCornerDetector struct {
	WindowSize   int // default 100
	ThrottleGate float64
	BrakeGate    float64
	SteeringGate float64

	w *rollingWindow
}

func NewMidCornerDetector() *MidCornerDetector {
	return &MidCornerDetector{WindowSize: 100, ThrottleGate: 0.15, BrakeGate: 0.15, SteeringGate: 0.1}
}

func (d *MidCornerDetector) Reset() { d.w = nil }

func (d *MidCornerDetector) Detect(session *SessionInfo, prev, sample *Sample) []Annotation {
	if sample.InPit() {
		return nil
	}
	if sample.ThrottlePct == nil || sample.BrakePct == nil || sample.SteeringPct == nil || sample.YawRateRps == nil || sample.SpeedMps == nil {
		return nil
	}
	if *sample.ThrottlePct >= d.ThrottleGate || *sample.BrakePct >= d.BrakeGate || absf(*sample.SteeringPct) <= d.SteeringGate {
		return nil
	}

	var out []Annotation
	if prev != nil && prev.SpeedMps != nil {
		if *prev.SpeedMps-*sample.SpeedMps > 0.5 {
			out = append(out, Annotation{
				Kind:        AnnMidCornerUndersteer,
				CornerPhase: cornerPhaseOf(sample),
				CornerIndex: cornerIndexOf(sample),
				Severity:    0.5,
			})
		}
	}

	if d.w == nil {
		d.w = newRollingWindow(d.WindowSize)
	}
	steering := *sample.SteeringPct
	yaw := *sample.YawRateRps
	if yawExcess(d.w, yaw, steering) {
		out = append(out, Annotation{
			Kind:        AnnMidCornerOversteer,
			CornerPhase: cornerPhaseOf(sample),
			CornerIndex: cornerIndexOf(sample),
			Severity:    0.5,
		})
	}
	if absf(steering) > 0 {
		d.w.add(absf(yaw) / absf(steering))
	}
	return out
}
