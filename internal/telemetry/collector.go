package telemetry

import (
	"context"
	"log"
	"time"
)

// CollectorConfig controls the producer retry budget and channel
// capacities (spec.md §5). Grounded on sims.PollingConfig's shape.
type CollectorConfig struct {
	RetryDelay      time.Duration // default 200ms
	RetryBudget     time.Duration // default 600s total before giving up
	LiveBufferSize  int           // default 16
	WriterBufferSize int          // default 256
}

func DefaultCollectorConfig() *CollectorConfig {
	return &CollectorConfig{
		RetryDelay:       200 * time.Millisecond,
		RetryBudget:      600 * time.Second,
		LiveBufferSize:   16,
		WriterBufferSize: 256,
	}
}

// Collector drives a Producer's blocking NextSample on a dedicated
// goroutine, runs every sample through a detector Chain, and fans the
// annotated sample out to a lossy live channel and a lossless writer
// channel (spec.md §4.7, §5). Grounded on
// sims.DataPollingSystem's ticker/select/context shape
// (sims/polling_system.go), generalized from a polling loop driven by
// a ticker to one driven by the producer's own blocking read.
type Collector struct {
	producer Producer
	chain    *Chain
	config   *CollectorConfig

	live   chan Record
	writer chan Record

	session *SessionInfo
	prev    *Sample
}

func NewCollector(producer Producer, chain *Chain, config *CollectorConfig) *Collector {
	if config == nil {
		config = DefaultCollectorConfig()
	}
	return &Collector{
		producer: producer,
		chain:    chain,
		config:   config,
		live:     make(chan Record, config.LiveBufferSize),
		writer:   make(chan Record, config.WriterBufferSize),
	}
}

func (c *Collector) Live() <-chan Record   { return c.live }
func (c *Collector) Writer() <-chan Record { return c.writer }

// Start connects the producer with retry-with-backoff up to
// RetryBudget, then runs the collect loop until ctx is cancelled or
// the producer reaches end of stream. Cancellation only takes effect
// between samples; a sample already in flight through the detector
// chain always completes and is published before Start returns.
func (c *Collector) Start(ctx context.Context) error {
	if err := c.connectWithRetry(ctx); err != nil {
		return err
	}

	session, err := c.producer.SessionInfo(ctx)
	if err != nil {
		return NewPipelineError(KindProducerUnavailable, "failed to read session info", err)
	}
	c.session = session
	c.publish(Record{SessionChange: session})

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		sample, err := c.producer.NextSample(ctx)
		if err != nil {
			log.Printf("telemetry: producer error, retrying next tick: %v", err)
			continue
		}
		if sample == nil {
			return nil // end of stream
		}

		annotations := c.chain.Detect(c.session, c.prev, sample)
		sample.Annotations = annotations
		c.prev = sample

		c.publish(Record{DataPoint: sample})
	}
}

func (c *Collector) connectWithRetry(ctx context.Context) error {
	deadline := time.Now().Add(c.config.RetryBudget)
	for {
		err := c.producer.Start(ctx)
		if err == nil {
			return nil
		}
		if time.Now().After(deadline) {
			return NewPipelineError(KindProducerUnavailable, "producer connection retry budget exhausted", err)
		}
		log.Printf("telemetry: producer start failed, retrying in %s: %v", c.config.RetryDelay, err)
		select {
		case <-ctx.Done():
			return NewPipelineError(KindProducerUnavailable, "cancelled while connecting to producer", ctx.Err())
		case <-time.After(c.config.RetryDelay):
		}
	}
}

func (c *Collector) publish(rec Record) {
	select {
	case c.live <- rec:
	default:
	}
	c.writer <- rec
}
