package telemetry

import "testing"

func TestDecodeRecordDataPoint(t *testing.T) {
	line := []byte(`{"DataPoint":{"timestamp_ms":1000,"speed_mps":30.0}}`)
	rec, err := DecodeRecord(line)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.DataPoint == nil || rec.DataPoint.TimestampMs != 1000 {
		t.Fatalf("expected a decoded DataPoint, got %+v", rec)
	}
}

func TestDecodeRecordSessionChange(t *testing.T) {
	line := []byte(`{"SessionChange":{"game_source":"iracing","track_name":"Spa"}}`)
	rec, err := DecodeRecord(line)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.SessionChange == nil || rec.SessionChange.TrackName != "Spa" {
		t.Fatalf("expected a decoded SessionChange, got %+v", rec)
	}
}

func TestDecodeRecordRejectsLegacyFormat(t *testing.T) {
	// The legacy format has no DataPoint/SessionChange tagged wrapper
	// and no game_source key at all.
	line := []byte(`{"cur_gear":2,"cur_rpm":5000,"lap_dist":100,"car_shift_ideal_rpm":6200}`)
	_, err := DecodeRecord(line)
	if err == nil {
		t.Fatal("expected an error for legacy-format input")
	}
	pe, ok := err.(*PipelineError)
	if !ok || pe.Kind != KindLoadFailure {
		t.Fatalf("expected a KindLoadFailure PipelineError, got %v", err)
	}
}

func TestDecodeRecordRejectsMalformedJSON(t *testing.T) {
	_, err := DecodeRecord([]byte(`not json`))
	if err == nil {
		t.Fatal("expected an error for malformed JSON")
	}
}

func TestDecodeRecordRejectsMissingKey(t *testing.T) {
	_, err := DecodeRecord([]byte(`{"Other":{}}`))
	if err == nil {
		t.Fatal("expected an error for a record with neither known key")
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	s := &Sample{TimestampMs: 42, SpeedMps: f(10)}
	data, err := EncodeDataPoint(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rec, err := DecodeRecord(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.DataPoint.TimestampMs != 42 || *rec.DataPoint.SpeedMps != 10 {
		t.Fatalf("round trip mismatch: %+v", rec.DataPoint)
	}
}
