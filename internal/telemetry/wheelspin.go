package telemetry

// WheelspinDetector flags excess per-gear RPM rise under heavy
// throttle (spec.md §4.2). It keeps one rolling window of
// throttle-gated delta-RPM per gear; a gear change resets the previous
// RPM reference without contributing a delta for that tick.
type WheelspinDetector struct {
	WindowSize      int     // default 500
	ThrottleGate    float64 // default 0.8
	Multiplier      float64 // default 1.1

	windows map[int]*rollingWindow
	prevRPM map[int]float64
	haveRPM map[int]bool
	lastGear int
	haveGear bool
}

// NewWheelspinDetector builds a detector with spec.md's default constants.
func NewWheelspinDetector() *WheelspinDetector {
	return &WheelspinDetector{
		WindowSize:   500,
		ThrottleGate: 0.8,
		Multiplier:   1.1,
	}
}

func (d *WheelspinDetector) Reset() {
	d.windows = nil
	d.prevRPM = nil
	d.haveRPM = nil
	d.haveGear = false
}

func (d *WheelspinDetector) window(gear int) *rollingWindow {
	if d.windows == nil {
		d.windows = make(map[int]*rollingWindow)
	}
	w, ok := d.windows[gear]
	if !ok {
		w = newRollingWindow(d.WindowSize)
		d.windows[gear] = w
	}
	return w
}

func (d *WheelspinDetector) Detect(session *SessionInfo, prev, sample *Sample) []Annotation {
	if sample.InPit() {
		return nil
	}
	if sample.ThrottlePct == nil || sample.RpmHz == nil || sample.Gear == nil {
		return nil
	}
	gear := *sample.Gear
	if d.haveGear && gear != d.lastGear {
		if d.prevRPM != nil {
			delete(d.prevRPM, d.lastGear)
		}
		delete(d.haveRPM, d.lastGear)
	}
	d.lastGear = gear
	d.haveGear = true

	if gear <= 0 {
		return nil
	}

	if *sample.ThrottlePct <= d.ThrottleGate {
		return nil
	}

	if d.prevRPM == nil {
		d.prevRPM = make(map[int]float64)
		d.haveRPM = make(map[int]bool)
	}
	if !d.haveRPM[gear] {
		d.prevRPM[gear] = *sample.RpmHz
		d.haveRPM[gear] = true
		return nil
	}

	delta := *sample.RpmHz - d.prevRPM[gear]
	d.prevRPM[gear] = *sample.RpmHz

	w := d.window(gear)
	var out []Annotation
	if w.full() {
		mean := w.mean()
		if delta > d.Multiplier*mean {
			out = append(out, Annotation{
				Kind:                  AnnWheelspin,
				CornerPhase:           cornerPhaseOf(sample),
				CornerIndex:           cornerIndexOf(sample),
				Severity:              0.5,
				AvgRPMIncreasePerGear: mean,
			})
		}
	}
	w.add(delta)
	return out
}

func cornerPhaseOf(s *Sample) CornerPhase {
	brake, throttle, steering := 0.0, 0.0, 0.0
	if s.BrakePct != nil {
		brake = *s.BrakePct
	}
	if s.ThrottlePct != nil {
		throttle = *s.ThrottlePct
	}
	if s.SteeringPct != nil {
		steering = *s.SteeringPct
	}
	return ClassifyCornerPhase(brake, throttle, steering)
}

func cornerIndexOf(s *Sample) int {
	if s.CornerIndex != nil {
		return *s.CornerIndex
	}
	return 0
}
