package telemetry

import "testing"

func TestTrailbrakeSteeringDetectorNoMaxAngle(t *testing.T) {
	d := NewTrailbrakeSteeringDetector()
	session := &SessionInfo{MaxSteeringAngleRad: 0}
	s := &Sample{SteeringRad: f(0.3), BrakePct: f(0.5), SteeringPct: f(0.3)}
	if anns := d.Detect(session, nil, s); len(anns) != 0 {
		t.Fatalf("expected no annotation with zero max steering angle, got %v", anns)
	}
}

func TestTrailbrakeSteeringDetectorOverMax(t *testing.T) {
	d := NewTrailbrakeSteeringDetector()
	session := &SessionInfo{MaxSteeringAngleRad: 0.5}
	s := &Sample{SteeringRad: f(0.6), BrakePct: f(0.5), SteeringPct: f(0.3)}
	if anns := d.Detect(session, nil, s); len(anns) != 0 {
		t.Fatalf("expected no annotation when steering exceeds max, got %v", anns)
	}
}

func TestTrailbrakeSteeringDetectorFires(t *testing.T) {
	d := NewTrailbrakeSteeringDetector()
	session := &SessionInfo{MaxSteeringAngleRad: 1.0}
	s := &Sample{SteeringRad: f(0.4), BrakePct: f(0.5), SteeringPct: f(0.3)}
	anns := d.Detect(session, nil, s)
	if len(anns) != 1 || anns[0].Kind != AnnTrailbrakeSteering {
		t.Fatalf("expected a TrailbrakeSteering annotation, got %v", anns)
	}
}
