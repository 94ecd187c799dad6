package aggregator

import "github.com/psybedev/trackassist/internal/telemetry"

// Finding is one deduplicated, accumulating observation (spec.md §3).
type Finding struct {
	FindingType      FindingType
	OccurrenceCount  int
	CornerPhase      telemetry.CornerPhase
	LastDetectedMs   int64
	Severity         float64
}

// Aggregator maps detector annotations into Findings, tracks which
// findings the driver has confirmed for recommendation purposes, and
// supports session clearing and snapshot/restore. Grounded on
// original_source/src/setup_assistant/mod.rs's SetupAssistant (the
// method names below mirror its process_telemetry /
// toggle_confirmation / is_confirmed / clear_session /
// get_findings_for_persistence / restore_findings API one-for-one).
type Aggregator struct {
	findings  map[FindingType]*Finding
	confirmed map[FindingType]struct{}
}

func New() *Aggregator {
	return &Aggregator{
		findings:  make(map[FindingType]*Finding),
		confirmed: make(map[FindingType]struct{}),
	}
}

// Process folds one sample's annotations into the Findings collection.
// occurrence_count always increments on a match; last_detected_ms is
// always refreshed to the sample's timestamp; corner_phase is frozen
// at first insertion (spec.md §4.8, invariant in §3).
func (a *Aggregator) Process(sample *telemetry.Sample) {
	for _, ann := range sample.Annotations {
		ft, ok := annotationToFindingType(ann, sample)
		if !ok {
			continue
		}
		f, exists := a.findings[ft]
		if !exists {
			f = &Finding{
				FindingType: ft,
				CornerPhase: ann.CornerPhase,
				Severity:    ann.Severity,
			}
			a.findings[ft] = f
		}
		f.OccurrenceCount++
		f.LastDetectedMs = sample.TimestampMs
	}
}

// ToggleConfirmation flips whether ft is in the confirmed set.
func (a *Aggregator) ToggleConfirmation(ft FindingType) {
	if _, ok := a.confirmed[ft]; ok {
		delete(a.confirmed, ft)
	} else {
		a.confirmed[ft] = struct{}{}
	}
}

func (a *Aggregator) IsConfirmed(ft FindingType) bool {
	_, ok := a.confirmed[ft]
	return ok
}

// Findings returns a snapshot copy of the current findings keyed by type.
func (a *Aggregator) Findings() map[FindingType]Finding {
	out := make(map[FindingType]Finding, len(a.findings))
	for k, v := range a.findings {
		out[k] = *v
	}
	return out
}

// Confirmed returns a snapshot copy of the confirmed-finding set.
func (a *Aggregator) Confirmed() map[FindingType]struct{} {
	out := make(map[FindingType]struct{}, len(a.confirmed))
	for k := range a.confirmed {
		out[k] = struct{}{}
	}
	return out
}

// ClearSession resets all per-session state: findings and confirmations
// alike (spec.md §3 invariant: "clear_session resets all per-session
// state in aggregator and detectors").
func (a *Aggregator) ClearSession() {
	a.findings = make(map[FindingType]*Finding)
	a.confirmed = make(map[FindingType]struct{})
}

// Snapshot is the persisted shape of an Aggregator's state (spec.md
// §6): no schema version, best-effort tolerant restoration.
type Snapshot struct {
	Findings  map[string]Finding `json:"findings"`
	Confirmed []string           `json:"confirmed"`
}

// ToSnapshot serializes current state keyed by FindingType name.
func (a *Aggregator) ToSnapshot() Snapshot {
	findings := make(map[string]Finding, len(a.findings))
	for k, v := range a.findings {
		findings[k.String()] = *v
	}
	confirmed := make([]string, 0, len(a.confirmed))
	for k := range a.confirmed {
		confirmed = append(confirmed, k.String())
	}
	return Snapshot{Findings: findings, Confirmed: confirmed}
}

// Restore replaces current state wholesale from a Snapshot. Unknown
// FindingType names (from a newer or differently-versioned writer) are
// skipped silently rather than failing the whole restore (spec.md §7
// kind 6). The remaining fields of each finding are taken as stored,
// without range checks.
func (a *Aggregator) Restore(snap Snapshot) {
	findings := make(map[FindingType]*Finding, len(snap.Findings))
	for name, f := range snap.Findings {
		ft, ok := ParseFindingType(name)
		if !ok {
			continue
		}
		cp := f
		cp.FindingType = ft
		findings[ft] = &cp
	}
	confirmed := make(map[FindingType]struct{}, len(snap.Confirmed))
	for _, name := range snap.Confirmed {
		ft, ok := ParseFindingType(name)
		if !ok {
			continue
		}
		confirmed[ft] = struct{}{}
	}
	a.findings = findings
	a.confirmed = confirmed
}
