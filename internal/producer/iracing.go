// Package producer implements telemetry.Producer adapters: a thin
// iRacing adapter over github.com/mpapenbr/goirsdk, and a JSONL replay
// producer for deterministic golden-file tests.
package producer

import (
	"context"
	"net/http"
	"time"

	"github.com/mpapenbr/goirsdk/irsdk"

	"github.com/psybedev/trackassist/internal/telemetry"
)

// IRacingProducer implements telemetry.Producer over goirsdk, reading
// a practical subset of iRacing's telemetry variables into a Sample.
// Exhaustive variable coverage and iRacing's binary shared-memory
// layout remain goirsdk's own concern; translating that into this
// module's Sample shape is all this adapter does. Grounded on
// sims/iracing_connector.go's exact API usage
// (irsdk.IsSimRunning, irsdk.NewIrsdk, (*Irsdk).WaitForValidData,
// (*Irsdk).GetData/GetFloatValue/GetIntValue).
type IRacingProducer struct {
	client *http.Client
	api    *irsdk.Irsdk
}

func NewIRacingProducer() *IRacingProducer {
	return &IRacingProducer{client: &http.Client{Timeout: 5 * time.Second}}
}

func (p *IRacingProducer) GameSource() telemetry.GameSource { return telemetry.GameIRacing }

func (p *IRacingProducer) Start(ctx context.Context) error {
	running, err := irsdk.IsSimRunning(ctx, p.client)
	if err != nil {
		return telemetry.NewPipelineError(telemetry.KindProducerTransient, "failed to query iRacing simulator status", err)
	}
	if !running {
		return telemetry.NewPipelineError(telemetry.KindProducerUnavailable, "iRacing simulator is not running", nil)
	}
	p.api = irsdk.NewIrsdk()
	if !p.api.WaitForValidData() {
		return telemetry.NewPipelineError(telemetry.KindProducerUnavailable, "timed out waiting for valid iRacing telemetry", nil)
	}
	return nil
}

func (p *IRacingProducer) SessionInfo(ctx context.Context) (*telemetry.SessionInfo, error) {
	trackLen, _ := p.api.GetFloatValue("TrackLength")
	_ = trackLen
	return &telemetry.SessionInfo{
		GameSource:          telemetry.GameIRacing,
		MaxSteeringAngleRad: 0,
	}, nil
}

func (p *IRacingProducer) NextSample(ctx context.Context) (*telemetry.Sample, error) {
	if !p.api.WaitForValidData() {
		return nil, telemetry.NewPipelineError(telemetry.KindProducerTransient, "iRacing data went invalid", nil)
	}
	p.api.GetData()

	s := &telemetry.Sample{TimestampMs: time.Now().UnixMilli()}

	if speed, err := p.api.GetFloatValue("Speed"); err == nil {
		v := float64(speed)
		s.SpeedMps = &v
	}
	if throttle, err := p.api.GetFloatValue("Throttle"); err == nil {
		v := float64(throttle)
		s.ThrottlePct = &v
	}
	if brake, err := p.api.GetFloatValue("Brake"); err == nil {
		v := float64(brake)
		s.BrakePct = &v
	}
	if steer, err := p.api.GetFloatValue("SteeringWheelAngle"); err == nil {
		v := float64(steer)
		s.SteeringRad = &v
	}
	if gear, err := p.api.GetIntValue("Gear"); err == nil {
		g := int(gear)
		s.Gear = &g
	}
	if rpm, err := p.api.GetFloatValue("RPM"); err == nil {
		v := float64(rpm)
		s.RpmHz = &v
	}
	if lf, err := p.api.GetFloatValue("LFtempCM"); err == nil {
		v := float64(lf)
		s.FLTempC = &v
	}
	if rf, err := p.api.GetFloatValue("RFtempCM"); err == nil {
		v := float64(rf)
		s.FRTempC = &v
	}
	if lr, err := p.api.GetFloatValue("LRtempCM"); err == nil {
		v := float64(lr)
		s.RLTempC = &v
	}
	if rr, err := p.api.GetFloatValue("RRtempCM"); err == nil {
		v := float64(rr)
		s.RRTempC = &v
	}

	return s, nil
}
