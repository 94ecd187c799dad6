// Package pipeline wires a Producer, the detector Chain, the
// Aggregator, and the Recommendation engine into one owned lifecycle.
// Grounded on strategy.StrategyManager (strategy/manager.go): a
// mutex-guarded running flag, a cancellable context, and a background
// worker goroutine, adapted from request/response analysis requests to
// a single drive-to-completion collector goroutine.
package pipeline

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/psybedev/trackassist/internal/aggregator"
	"github.com/psybedev/trackassist/internal/recommend"
	"github.com/psybedev/trackassist/internal/telemetry"
)

// Pipeline owns one Producer/Collector/Aggregator/Engine quadruple for
// the lifetime of one session.
type Pipeline struct {
	config    *Config
	collector *telemetry.Collector
	aggregator *aggregator.Aggregator
	engine    *recommend.Engine

	ctx      context.Context
	cancelFn context.CancelFunc
	mutex    sync.RWMutex
	isRunning bool

	drainDone     chan struct{}
	collectorDone chan struct{}
	runErr        error
}

// New builds a Pipeline around producer using the ten detectors in
// spec.md §4 order.
func New(producer telemetry.Producer, config *Config) *Pipeline {
	if config == nil {
		config = DefaultConfig()
	}
	chain := telemetry.NewChain(
		telemetry.NewWheelspinDetector(),
		telemetry.NewScrubDetector(),
		telemetry.NewSlipDetector(),
		telemetry.NewTrailbrakeSteeringDetector(),
		telemetry.NewShortShiftingDetector(),
		telemetry.NewEntryOversteerDetector(),
		telemetry.NewMidCornerDetector(),
		telemetry.NewBrakeLockDetector(),
		telemetry.NewTireTemperatureDetector(),
		telemetry.NewBottomingOutDetector(),
	)
	return &Pipeline{
		config:     config,
		collector:  telemetry.NewCollector(producer, chain, config.Collector),
		aggregator: aggregator.New(),
		engine:     recommend.NewEngine(),
	}
}

// Start launches the collector goroutine and an aggregation goroutine
// that drains the collector's lossless writer channel, so every sample
// reaches the aggregator and the collector's blocking writer send never
// stalls. Records still buffered when the pipeline is cancelled are
// processed before the aggregation goroutine exits. Returns once both
// are running; use Wait to block until the producer reaches end of
// stream or ctx is cancelled.
func (p *Pipeline) Start(ctx context.Context) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	if p.isRunning {
		return fmt.Errorf("pipeline already running")
	}

	p.ctx, p.cancelFn = context.WithCancel(ctx)
	p.drainDone = make(chan struct{})
	p.collectorDone = make(chan struct{})

	go func() {
		defer close(p.drainDone)
		records := p.collector.Writer()
		handle := func(rec telemetry.Record) {
			if rec.DataPoint != nil {
				p.aggregator.Process(rec.DataPoint)
			}
			if rec.SessionChange != nil {
				log.Printf("pipeline: session change: track=%s car=%s", rec.SessionChange.TrackName, rec.SessionChange.CarName)
			}
		}
		for {
			select {
			case <-p.ctx.Done():
				for {
					select {
					case rec := <-records:
						handle(rec)
					default:
						return
					}
				}
			case rec, ok := <-records:
				if !ok {
					return
				}
				handle(rec)
			}
		}
	}()

	go func() {
		defer close(p.collectorDone)
		p.runErr = p.collector.Start(p.ctx)
	}()

	p.isRunning = true
	log.Println("telemetry pipeline started")
	return nil
}

// Wait blocks until the producer reaches end of stream (a finite
// replay source) or the pipeline's context is cancelled, then performs
// the same shutdown Close would.
func (p *Pipeline) Wait() error {
	<-p.collectorDone
	return p.Close()
}

// Close cancels the pipeline and waits for its goroutines to exit.
func (p *Pipeline) Close() error {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	if !p.isRunning {
		return nil
	}
	p.isRunning = false
	p.cancelFn()
	<-p.drainDone
	log.Println("telemetry pipeline stopped")
	return p.runErr
}

// Findings returns the current aggregated findings.
func (p *Pipeline) Findings() map[aggregator.FindingType]aggregator.Finding {
	return p.aggregator.Findings()
}

// ToggleConfirmation flips confirmation state for ft.
func (p *Pipeline) ToggleConfirmation(ft aggregator.FindingType) {
	p.aggregator.ToggleConfirmation(ft)
}

// Recommendations runs the recommendation engine over the currently
// confirmed findings.
func (p *Pipeline) Recommendations() []recommend.Processed {
	return p.engine.Process(p.aggregator.Confirmed())
}

// ClearSession resets aggregator state for a new session.
func (p *Pipeline) ClearSession() {
	p.aggregator.ClearSession()
}

// Snapshot and Restore expose the aggregator's persistence boundary.
func (p *Pipeline) Snapshot() aggregator.Snapshot { return p.aggregator.ToSnapshot() }
func (p *Pipeline) Restore(snap aggregator.Snapshot) { p.aggregator.Restore(snap) }
