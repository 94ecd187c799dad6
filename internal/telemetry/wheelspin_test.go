package telemetry

import "testing"

func TestWheelspinDetectorNoFindingBelowWindowFull(t *testing.T) {
	d := NewWheelspinDetector()
	d.WindowSize = 5

	gear := 3
	for n := 0; n < 4; n++ {
		s := &Sample{ThrottlePct: f(0.9), RpmHz: f(float64(4000 + n*10)), Gear: &gear}
		anns := d.Detect(nil, nil, s)
		if len(anns) != 0 {
			t.Fatalf("expected no annotation before window is full, got %v", anns)
		}
	}
}

func TestWheelspinDetectorFiresOnSpike(t *testing.T) {
	d := NewWheelspinDetector()
	d.WindowSize = 3
	gear := 3

	rpm := 4000.0
	for n := 0; n < 4; n++ {
		rpm += 10
		s := &Sample{ThrottlePct: f(0.9), RpmHz: f(rpm), Gear: &gear}
		d.Detect(nil, nil, s)
	}

	// Now a big spike: window full, mean delta ~10, 1.1x threshold easily exceeded.
	rpm += 500
	s := &Sample{ThrottlePct: f(0.9), RpmHz: f(rpm), Gear: &gear}
	anns := d.Detect(nil, nil, s)
	if len(anns) != 1 || anns[0].Kind != AnnWheelspin {
		t.Fatalf("expected a Wheelspin annotation, got %v", anns)
	}
}

func TestWheelspinDetectorIgnoresLowThrottle(t *testing.T) {
	d := NewWheelspinDetector()
	gear := 2
	s := &Sample{ThrottlePct: f(0.5), RpmHz: f(5000), Gear: &gear}
	if anns := d.Detect(nil, nil, s); len(anns) != 0 {
		t.Fatalf("expected no annotation under throttle gate, got %v", anns)
	}
}

func TestWheelspinDetectorIgnoresNeutralAndReverse(t *testing.T) {
	d := NewWheelspinDetector()
	d.WindowSize = 2

	for _, gear := range []int{0, -1} {
		rpm := 4000.0
		for n := 0; n < 5; n++ {
			rpm += 500 // would easily exceed the spike threshold in a forward gear
			g := gear
			anns := d.Detect(nil, nil, &Sample{ThrottlePct: f(0.9), RpmHz: f(rpm), Gear: &g})
			if len(anns) != 0 {
				t.Fatalf("expected no Wheelspin annotation in gear %d, got %v", gear, anns)
			}
		}
	}
}

func TestWheelspinDetectorGearChangeResetsDelta(t *testing.T) {
	d := NewWheelspinDetector()
	d.WindowSize = 2
	gearA, gearB := 2, 3

	d.Detect(nil, nil, &Sample{ThrottlePct: f(0.9), RpmHz: f(4000), Gear: &gearA})
	// Switch gears: no delta should be computed across the change.
	anns := d.Detect(nil, nil, &Sample{ThrottlePct: f(0.9), RpmHz: f(8000), Gear: &gearB})
	if len(anns) != 0 {
		t.Fatalf("expected no annotation across a gear change, got %v", anns)
	}
}
