package telemetry

import "fmt"

// ErrorKind is the closed taxonomy from spec.md §7. Grounded on
// strategy.StrategyError's ErrorType enum (strategy/error_handling.go),
// adapted from API-request error kinds to the telemetry pipeline's own.
type ErrorKind int

const (
	// KindProducerUnavailable: the producer could not be reached at
	// all (simulator not running, connection refused after the retry
	// budget is exhausted). Propagates to the caller. The detector
	// chain is built before the producer connects, so it already
	// exists and simply never receives a sample.
	KindProducerUnavailable ErrorKind = iota
	// KindProducerTransient: a single next_sample() call failed but
	// the producer is expected to recover. Logged and retried on the
	// next tick; detector state stays live.
	KindProducerTransient
	// KindMissingField: a detector's required field was absent on a
	// sample. Not propagated as an error to the caller; the detector
	// itself returns an empty annotation list and preserves its
	// rolling state. Reserved here for completeness of the taxonomy
	// and for diagnostic logging.
	KindMissingField
	// KindPersistenceWrite: the writer sink's consumer could not
	// accept or flush a record. Nothing in this module returns this
	// kind. The Collector always publishes to the writer channel with
	// a blocking send; it has no live-only mode for a failed writer.
	KindPersistenceWrite
	// KindLoadFailure: a snapshot or replay source was legacy-format
	// or otherwise corrupt and could not be parsed.
	KindLoadFailure
	// KindSnapshotMismatch: a snapshot carried unknown FindingType
	// values or out-of-range priorities. Such entries are skipped
	// silently during restoration; this kind exists for callers that
	// want to log the occurrence.
	KindSnapshotMismatch
)

func (k ErrorKind) String() string {
	switch k {
	case KindProducerUnavailable:
		return "producer_unavailable"
	case KindProducerTransient:
		return "producer_transient"
	case KindMissingField:
		return "missing_field"
	case KindPersistenceWrite:
		return "persistence_write"
	case KindLoadFailure:
		return "load_failure"
	case KindSnapshotMismatch:
		return "snapshot_mismatch"
	default:
		return "unknown"
	}
}

// PipelineError is the error type returned across the producer,
// collector, and persistence boundaries. Grounded on
// strategy.StrategyError's shape: a typed Kind, a message, an optional
// wrapped cause, and a Retryable flag a caller can act on without
// string-matching the message.
type PipelineError struct {
	Kind      ErrorKind
	Message   string
	Cause     error
	retryable bool
}

func NewPipelineError(kind ErrorKind, message string, cause error) *PipelineError {
	return &PipelineError{
		Kind:      kind,
		Message:   message,
		Cause:     cause,
		retryable: kind == KindProducerTransient,
	}
}

func (e *PipelineError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *PipelineError) Unwrap() error {
	return e.Cause
}

func (e *PipelineError) Retryable() bool {
	return e.retryable
}
