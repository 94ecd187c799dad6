package telemetry

import "testing"

func TestScrubDetectorGateBlocksWhenNotBrakingOrCoasting(t *testing.T) {
	d := NewScrubDetector()
	s := &Sample{BrakePct: f(0.1), ThrottlePct: f(0.9), SteeringPct: f(0.5), YawRateRps: f(0.1)}
	if anns := d.Detect(nil, nil, s); len(anns) != 0 {
		t.Fatalf("expected no annotation outside the brake/throttle gate, got %v", anns)
	}
}

func TestScrubDetectorFiresAboveRunningMean(t *testing.T) {
	d := NewScrubDetector()
	d.WindowSize = 5
	d.MinSamples = 3

	// Feed a low, stable scrub value to build a low mean.
	for n := 0; n < 3; n++ {
		s := &Sample{BrakePct: f(0.5), ThrottlePct: f(0.0), SteeringPct: f(0.2), YawRateRps: f(0.19)}
		d.Detect(nil, nil, s)
	}
	// Now a sample whose scrub value (|steering|-|yaw|) is much larger than the mean.
	s := &Sample{BrakePct: f(0.5), ThrottlePct: f(0.0), SteeringPct: f(0.9), YawRateRps: f(0.0)}
	anns := d.Detect(nil, nil, s)
	if len(anns) != 1 || anns[0].Kind != AnnScrub {
		t.Fatalf("expected a Scrub annotation, got %v", anns)
	}
}
