package producer

import (
	"context"
	"strings"
	"testing"
)

func TestReplayProducerReadsSessionThenSamples(t *testing.T) {
	data := strings.Join([]string{
		`{"SessionChange":{"game_source":"iracing","track_name":"Spa"}}`,
		`{"DataPoint":{"timestamp_ms":1}}`,
		`{"DataPoint":{"timestamp_ms":2}}`,
	}, "\n")

	p := NewReplayProducer(strings.NewReader(data))
	ctx := context.Background()

	if err := p.Start(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	si, err := p.SessionInfo(ctx)
	if err != nil || si.TrackName != "Spa" {
		t.Fatalf("expected session info with track Spa, got %+v, err=%v", si, err)
	}

	s1, err := p.NextSample(ctx)
	if err != nil || s1 == nil || s1.TimestampMs != 1 {
		t.Fatalf("expected first sample, got %+v, err=%v", s1, err)
	}
	s2, err := p.NextSample(ctx)
	if err != nil || s2 == nil || s2.TimestampMs != 2 {
		t.Fatalf("expected second sample, got %+v, err=%v", s2, err)
	}
	s3, err := p.NextSample(ctx)
	if err != nil || s3 != nil {
		t.Fatalf("expected end of stream, got %+v, err=%v", s3, err)
	}
}

func TestReplayProducerRejectsLegacyFormat(t *testing.T) {
	data := `{"cur_gear":2,"cur_rpm":5000,"lap_dist":100,"car_shift_ideal_rpm":6200}`
	p := NewReplayProducer(strings.NewReader(data))
	if err := p.Start(context.Background()); err == nil {
		t.Fatal("expected an error for legacy-format replay source")
	}
}
