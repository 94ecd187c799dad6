package telemetry

import "testing"

func TestSlipDetectorFires(t *testing.T) {
	d := NewSlipDetector()
	prev := &Sample{ThrottlePct: f(0.3), SpeedMps: f(30)}
	cur := &Sample{BrakePct: f(0), ThrottlePct: f(0.3), SteeringRad: f(0.2), SpeedMps: f(29)}
	anns := d.Detect(nil, prev, cur)
	if len(anns) != 1 || anns[0].Kind != AnnSlip {
		t.Fatalf("expected a Slip annotation, got %v", anns)
	}
}

func TestSlipDetectorRequiresBrakeZero(t *testing.T) {
	d := NewSlipDetector()
	prev := &Sample{ThrottlePct: f(0.3), SpeedMps: f(30)}
	cur := &Sample{BrakePct: f(0.1), ThrottlePct: f(0.3), SteeringRad: f(0.2), SpeedMps: f(29)}
	if anns := d.Detect(nil, prev, cur); len(anns) != 0 {
		t.Fatalf("expected no annotation with nonzero brake, got %v", anns)
	}
}

func TestSlipDetectorRequiresSpeedDecreasing(t *testing.T) {
	d := NewSlipDetector()
	prev := &Sample{ThrottlePct: f(0.3), SpeedMps: f(29)}
	cur := &Sample{BrakePct: f(0), ThrottlePct: f(0.3), SteeringRad: f(0.2), SpeedMps: f(30)}
	if anns := d.Detect(nil, prev, cur); len(anns) != 0 {
		t.Fatalf("expected no annotation when speed is not decreasing, got %v", anns)
	}
}

func TestSlipDetectorNilPrev(t *testing.T) {
	d := NewSlipDetector()
	cur := &Sample{BrakePct: f(0), ThrottlePct: f(0.3), SteeringRad: f(0.2), SpeedMps: f(29)}
	if anns := d.Detect(nil, nil, cur); len(anns) != 0 {
		t.Fatalf("expected no annotation on first sample, got %v", anns)
	}
}
