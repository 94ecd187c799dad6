package telemetry

import "testing"

func tireSample(temp float64) *Sample {
	return &Sample{FLTempC: f(temp), FRTempC: f(temp), RLTempC: f(temp), RRTempC: f(temp)}
}

func TestTireTemperatureDetectorRequiresAllFourTires(t *testing.T) {
	d := NewTireTemperatureDetector()
	d.ProducerRateHz = 1
	s := &Sample{FLTempC: f(90)}
	if anns := d.Detect(nil, nil, s); len(anns) != 0 {
		t.Fatalf("expected no annotation with incomplete tire data, got %v", anns)
	}
}

func TestTireTemperatureDetectorOverheating(t *testing.T) {
	d := NewTireTemperatureDetector()
	d.ProducerRateHz = 1
	d.MinHistory = 3

	var last []Annotation
	for n := 0; n < 3; n++ {
		last = d.Detect(nil, nil, tireSample(110))
	}
	if len(last) != 1 || last[0].Kind != AnnTireOverheating {
		t.Fatalf("expected a TireOverheating annotation, got %v", last)
	}
}

func TestTireTemperatureDetectorCold(t *testing.T) {
	d := NewTireTemperatureDetector()
	d.ProducerRateHz = 1
	d.MinHistory = 3

	var last []Annotation
	for n := 0; n < 3; n++ {
		last = d.Detect(nil, nil, tireSample(50))
	}
	if len(last) != 1 || last[0].Kind != AnnTireCold {
		t.Fatalf("expected a TireCold annotation, got %v", last)
	}
}

func TestTireTemperatureDetectorDownsamples(t *testing.T) {
	d := NewTireTemperatureDetector()
	d.ProducerRateHz = 60
	d.MinHistory = 1

	for n := 0; n < 59; n++ {
		if anns := d.Detect(nil, nil, tireSample(110)); len(anns) != 0 {
			t.Fatalf("expected no annotation before the 60th sample, got %v", anns)
		}
	}
	anns := d.Detect(nil, nil, tireSample(110))
	if len(anns) != 1 {
		t.Fatalf("expected an annotation on the 60th sample, got %v", anns)
	}
}
