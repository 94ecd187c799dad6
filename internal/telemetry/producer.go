package telemetry

import "context"

// Producer is the external data source contract from spec.md §6.
// start() is allowed to block while retrying; next_sample() blocks
// until a sample is ready and returns io.EOF-style completion for
// finite sources by returning (nil, nil).
type Producer interface {
	Start(ctx context.Context) error
	SessionInfo(ctx context.Context) (*SessionInfo, error)
	NextSample(ctx context.Context) (*Sample, error)
	GameSource() GameSource
}

// Sink receives Records fanned out by the Collector. LiveSink is
// lossy (non-blocking send, drop on a full channel); WriterSink is
// lossless (blocking send, back-pressures the collector). Both are
// just channel wrappers; spec.md places the actual UI render and file
// write on the other side of these channels out of scope.
type LiveSink chan<- Record
type WriterSink chan<- Record
