package telemetry

// ShortShiftingDetector flags an upshift taken well below the car's
// ideal shift RPM (spec.md §4.2 detector set; the resulting
// ShortShift annotation has no setup recommendation and is surfaced to
// the aggregator only as a driving-technique signal, per §4.8's
// mapping table: "ShortShifting: not a setup issue; ignored").
// Grounded on original_source/src/telemetry/short_shifting_analyzer.rs.
type ShortShiftingDetector struct {
	Sensitivity float64 // default 100 rpm

	havePrev bool
	prevRPM  float64
	prevGear int
}

func NewShortShiftingDetector() *ShortShiftingDetector {
	return &ShortShiftingDetector{Sensitivity: 100}
}

func (d *ShortShiftingDetector) Reset() {
	d.havePrev = false
}

func (d *ShortShiftingDetector) Detect(session *SessionInfo, prev, sample *Sample) []Annotation {
	if sample.InPit() {
		return nil
	}
	if sample.Gear == nil || sample.RpmHz == nil || sample.ShiftPointRpm == nil {
		return nil
	}
	gear, rpm := *sample.Gear, *sample.RpmHz

	var out []Annotation
	if d.havePrev && d.prevRPM > 0 && gear > d.prevGear && d.prevRPM < *sample.ShiftPointRpm-d.Sensitivity {
		out = append(out, Annotation{
			Kind:        AnnShortShift,
			CornerPhase: cornerPhaseOf(sample),
			CornerIndex: cornerIndexOf(sample),
			Severity:    0.5,
		})
	}
	d.prevGear = gear
	d.prevRPM = rpm
	d.havePrev = true
	return out
}
