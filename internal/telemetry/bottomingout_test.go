package telemetry

import "testing"

func TestBottomingOutDetectorFiresOnSharpDrop(t *testing.T) {
	d := NewBottomingOutDetector()
	prev := &Sample{PitchRad: f(0.0), SpeedMps: f(30), SteeringPct: f(0.0)}
	d.Detect(nil, nil, prev)
	cur := &Sample{PitchRad: f(0.2), SpeedMps: f(29), SteeringPct: f(0.0)}
	anns := d.Detect(nil, prev, cur)
	if len(anns) != 1 || anns[0].Kind != AnnBottomingOut {
		t.Fatalf("expected a BottomingOut annotation, got %v", anns)
	}
}

func TestBottomingOutDetectorFirstSampleNoOp(t *testing.T) {
	d := NewBottomingOutDetector()
	s := &Sample{PitchRad: f(0.2), SpeedMps: f(29)}
	if anns := d.Detect(nil, nil, s); len(anns) != 0 {
		t.Fatalf("expected no annotation on the first sample, got %v", anns)
	}
}

func TestBottomingOutDetectorGatedBySteering(t *testing.T) {
	d := NewBottomingOutDetector()
	prev := &Sample{PitchRad: f(0.0), SpeedMps: f(30), SteeringPct: f(0.0)}
	d.Detect(nil, nil, prev)
	cur := &Sample{PitchRad: f(0.2), SpeedMps: f(29), SteeringPct: f(0.5)}
	if anns := d.Detect(nil, prev, cur); len(anns) != 0 {
		t.Fatalf("expected no annotation while steering exceeds the gate, got %v", anns)
	}
}

func TestBottomingOutDetectorMissingSteeringDefaultsToZero(t *testing.T) {
	d := NewBottomingOutDetector()
	prev := &Sample{PitchRad: f(0.0), SpeedMps: f(30)}
	d.Detect(nil, nil, prev)
	cur := &Sample{PitchRad: f(0.2), SpeedMps: f(29)}
	anns := d.Detect(nil, prev, cur)
	if len(anns) != 1 {
		t.Fatalf("expected a BottomingOut annotation with absent steering treated as zero, got %v", anns)
	}
}
