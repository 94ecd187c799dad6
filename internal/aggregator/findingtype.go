// Package aggregator maps detector annotations into deduplicated
// Findings, tracks which findings the driver has confirmed, and
// supports session clearing and snapshot/restore (spec.md §4.8).
// Grounded on original_source/src/setup_assistant/mod.rs's
// SetupAssistant.
package aggregator

import "github.com/psybedev/trackassist/internal/telemetry"

// FindingType is the closed enumeration spec.md §4.8's annotation
// mapping table names — exactly the 12 types reachable from the
// detector set. original_source/'s FindingType enum carries three
// additional variants (CornerEntryInstability, CornerExitSnapOversteer,
// BrakingInstability) that no annotation-mapping rule ever produces;
// they are intentionally absent here (see DESIGN.md).
type FindingType int

const (
	CornerEntryUndersteer FindingType = iota
	CornerEntryOversteer
	MidCornerUndersteer
	MidCornerOversteer
	CornerExitUndersteer
	CornerExitPowerOversteer
	FrontBrakeLock
	RearBrakeLock
	TireOverheating
	TireCold
	BottomingOut
	ExcessiveTrailbraking
)

func (f FindingType) String() string {
	switch f {
	case CornerEntryUndersteer:
		return "CornerEntryUndersteer"
	case CornerEntryOversteer:
		return "CornerEntryOversteer"
	case MidCornerUndersteer:
		return "MidCornerUndersteer"
	case MidCornerOversteer:
		return "MidCornerOversteer"
	case CornerExitUndersteer:
		return "CornerExitUndersteer"
	case CornerExitPowerOversteer:
		return "CornerExitPowerOversteer"
	case FrontBrakeLock:
		return "FrontBrakeLock"
	case RearBrakeLock:
		return "RearBrakeLock"
	case TireOverheating:
		return "TireOverheating"
	case TireCold:
		return "TireCold"
	case BottomingOut:
		return "BottomingOut"
	case ExcessiveTrailbraking:
		return "ExcessiveTrailbraking"
	default:
		return "Unknown"
	}
}

// ParseFindingType is the inverse of String, used by snapshot
// restoration. It returns ok=false for any name outside the 12-member
// enumeration, which the caller treats as a KindSnapshotMismatch to
// skip rather than fail on (spec.md §7 kind 6).
func ParseFindingType(name string) (FindingType, bool) {
	for ft := CornerEntryUndersteer; ft <= ExcessiveTrailbraking; ft++ {
		if ft.String() == name {
			return ft, true
		}
	}
	return 0, false
}

// annotationToFindingType implements spec.md §4.8's mapping table
// exactly. Slip's three rows are keyed off the sample's own brake and
// throttle values at the moment of the annotation, not the annotation
// itself (the Slip detector's own gate forces brake==0, so the first
// row is unreachable in practice but is still evaluated literally, as
// the table specifies it). ShortShift maps to nothing.
func annotationToFindingType(a telemetry.Annotation, sample *telemetry.Sample) (FindingType, bool) {
	switch a.Kind {
	case telemetry.AnnScrub:
		return CornerEntryUndersteer, true
	case telemetry.AnnSlip:
		brake, throttle := 0.0, 0.0
		if sample.BrakePct != nil {
			brake = *sample.BrakePct
		}
		if sample.ThrottlePct != nil {
			throttle = *sample.ThrottlePct
		}
		switch {
		case brake > 0.1:
			return CornerEntryUndersteer, true
		case throttle > 0.1 && brake <= 0.1:
			return CornerExitUndersteer, true
		default:
			return MidCornerUndersteer, true
		}
	case telemetry.AnnWheelspin:
		return CornerExitPowerOversteer, true
	case telemetry.AnnTrailbrakeSteering:
		return ExcessiveTrailbraking, true
	case telemetry.AnnEntryOversteer:
		return CornerEntryOversteer, true
	case telemetry.AnnMidCornerUndersteer:
		return MidCornerUndersteer, true
	case telemetry.AnnMidCornerOversteer:
		return MidCornerOversteer, true
	case telemetry.AnnFrontBrakeLock:
		return FrontBrakeLock, true
	case telemetry.AnnRearBrakeLock:
		return RearBrakeLock, true
	case telemetry.AnnTireOverheating:
		return TireOverheating, true
	case telemetry.AnnTireCold:
		return TireCold, true
	case telemetry.AnnBottomingOut:
		return BottomingOut, true
	default:
		return 0, false
	}
}
