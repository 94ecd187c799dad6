package telemetry

import "testing"

func TestShortShiftingDetectorFires(t *testing.T) {
	d := NewShortShiftingDetector()
	gear2 := 2
	d.Detect(nil, nil, &Sample{Gear: &gear2, RpmHz: f(5000), ShiftPointRpm: f(6200)})
	gear3 := 3
	anns := d.Detect(nil, nil, &Sample{Gear: &gear3, RpmHz: f(5100), ShiftPointRpm: f(6200)})
	if len(anns) != 1 || anns[0].Kind != AnnShortShift {
		t.Fatalf("expected a ShortShift annotation, got %v", anns)
	}
}

func TestShortShiftingDetectorNoAnnotationNearIdealRPM(t *testing.T) {
	d := NewShortShiftingDetector()
	gear2 := 2
	d.Detect(nil, nil, &Sample{Gear: &gear2, RpmHz: f(5100), ShiftPointRpm: f(5200)})
	gear3 := 3
	anns := d.Detect(nil, nil, &Sample{Gear: &gear3, RpmHz: f(5110), ShiftPointRpm: f(5200)})
	if len(anns) != 0 {
		t.Fatalf("expected no annotation near the ideal shift point, got %v", anns)
	}
}
