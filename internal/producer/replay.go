package producer

import (
	"bufio"
	"context"
	"io"

	"github.com/psybedev/trackassist/internal/telemetry"
)

// ReplayProducer turns a JSONL stream back into an ordered Sample
// sequence, preserving bit-for-bit determinism for golden tests. This
// is the "mock producer" spec.md §9's design notes call for, not the
// out-of-scope persistent writer/loader: it only ever reads, never
// writes.
type ReplayProducer struct {
	scanner *bufio.Scanner
	session *telemetry.SessionInfo
}

func NewReplayProducer(r io.Reader) *ReplayProducer {
	return &ReplayProducer{scanner: bufio.NewScanner(r)}
}

func (p *ReplayProducer) GameSource() telemetry.GameSource {
	if p.session != nil {
		return p.session.GameSource
	}
	return ""
}

// Start reads forward until the first SessionChange record, which
// establishes the replay's session info, leaving the scanner
// positioned for NextSample to continue from the following line.
func (p *ReplayProducer) Start(ctx context.Context) error {
	for p.scanner.Scan() {
		rec, err := telemetry.DecodeRecord(p.scanner.Bytes())
		if err != nil {
			return err
		}
		if rec.SessionChange != nil {
			p.session = rec.SessionChange
			return nil
		}
	}
	if err := p.scanner.Err(); err != nil {
		return telemetry.NewPipelineError(telemetry.KindLoadFailure, "failed reading replay source", err)
	}
	return telemetry.NewPipelineError(telemetry.KindLoadFailure, "replay source has no SessionChange record", nil)
}

func (p *ReplayProducer) SessionInfo(ctx context.Context) (*telemetry.SessionInfo, error) {
	return p.session, nil
}

// NextSample returns (nil, nil) at end of stream, per the Producer
// contract for finite sources.
func (p *ReplayProducer) NextSample(ctx context.Context) (*telemetry.Sample, error) {
	for p.scanner.Scan() {
		rec, err := telemetry.DecodeRecord(p.scanner.Bytes())
		if err != nil {
			return nil, err
		}
		if rec.DataPoint != nil {
			return rec.DataPoint, nil
		}
		if rec.SessionChange != nil {
			p.session = rec.SessionChange
			continue
		}
	}
	if err := p.scanner.Err(); err != nil {
		return nil, telemetry.NewPipelineError(telemetry.KindLoadFailure, "failed reading replay source", err)
	}
	return nil, nil
}
