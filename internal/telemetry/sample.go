// Package telemetry defines the wire-level data model shared by every
// producer, detector, and sink in the analysis core: Sample, SessionInfo,
// and the Annotation values detectors attach to a Sample.
package telemetry

// GameSource identifies which simulator produced a Sample.
type GameSource string

const (
	GameIRacing GameSource = "iracing"
	GameACC     GameSource = "acc"
)

// TireBlock carries the four-corner values the tire detectors need.
// All fields are required together: Sample.Tires returns nil unless all
// four corner temperatures are present, and a detector that needs tire
// data treats a nil TireBlock as "field absent".
type TireBlock struct {
	FrontLeft  float64
	FrontRight float64
	RearLeft   float64
	RearRight  float64
}

// Sample is one tick of telemetry. Optional fields are pointers so
// "absent" is distinguishable from "present and zero", matching the
// JSONL schema's treatment of missing keys.
type Sample struct {
	TimestampMs int64 `json:"timestamp_ms"`

	SpeedMps       *float64 `json:"speed_mps,omitempty"`
	ThrottlePct    *float64 `json:"throttle_pct,omitempty"`
	BrakePct       *float64 `json:"brake_pct,omitempty"`
	SteeringPct    *float64 `json:"steering_pct,omitempty"`
	SteeringRad    *float64 `json:"steering_angle_rad,omitempty"`
	YawRateRps     *float64 `json:"yaw_rate_rps,omitempty"`
	PitchRad       *float64 `json:"pitch_rad,omitempty"`
	Gear           *int     `json:"gear,omitempty"`
	RpmHz          *float64 `json:"rpm,omitempty"`
	ShiftPointRpm  *float64 `json:"shift_point_rpm,omitempty"`
	AbsActive      *bool    `json:"abs_active,omitempty"`
	CornerIndex    *int     `json:"corner_index,omitempty"`
	FLTempC        *float64 `json:"fl_surface_temp_deg,omitempty"`
	FRTempC        *float64 `json:"fr_surface_temp_deg,omitempty"`
	RLTempC        *float64 `json:"rl_surface_temp_deg,omitempty"`
	RRTempC        *float64 `json:"rr_surface_temp_deg,omitempty"`

	PitLimiterEngaged *bool `json:"is_pit_limiter_engaged,omitempty"`
	InPitLane         *bool `json:"is_in_pit_lane,omitempty"`

	// Annotations is populated by the Collector after running the
	// detector Chain; absent on samples read straight from a producer.
	Annotations []Annotation `json:"annotations,omitempty"`
}

// InPit reports whether sample should be excluded from analysis per
// spec.md §4.1: true while the pit limiter is engaged or the car is in
// the pit lane. A nil flag is treated as false (field absent).
func (s *Sample) InPit() bool {
	if s.PitLimiterEngaged != nil && *s.PitLimiterEngaged {
		return true
	}
	if s.InPitLane != nil && *s.InPitLane {
		return true
	}
	return false
}

// Tires builds a TireBlock from the four per-corner pointer fields,
// returning nil unless all four are present (spec.md §4.5: the tire
// temperature detector requires all four TireBlocks present).
func (s *Sample) Tires() *TireBlock {
	if s.FLTempC == nil || s.FRTempC == nil || s.RLTempC == nil || s.RRTempC == nil {
		return nil
	}
	return &TireBlock{
		FrontLeft:  *s.FLTempC,
		FrontRight: *s.FRTempC,
		RearLeft:   *s.RLTempC,
		RearRight:  *s.RRTempC,
	}
}

// SessionInfo is emitted once per session and whenever the simulator
// reports a session change (track/car swap, session-type transition).
type SessionInfo struct {
	GameSource        GameSource `json:"game_source"`
	TrackName         string     `json:"track_name"`
	CarName           string     `json:"car_name"`
	MaxSteeringAngleRad float64  `json:"max_steering_angle_rad"`
}

// CornerPhase classifies where in a corner a sample falls, per spec.md
// §4.8, checked in this exact order: Entry, Exit, Mid, Straight, else
// Unknown.
type CornerPhase int

const (
	PhaseUnknown CornerPhase = iota
	PhaseEntry
	PhaseMid
	PhaseExit
	PhaseStraight
)

func (p CornerPhase) String() string {
	switch p {
	case PhaseEntry:
		return "entry"
	case PhaseMid:
		return "mid"
	case PhaseExit:
		return "exit"
	case PhaseStraight:
		return "straight"
	default:
		return "unknown"
	}
}

// ClassifyCornerPhase applies spec.md §4.8's thresholds in order.
func ClassifyCornerPhase(brakePct, throttlePct, steeringPct float64) CornerPhase {
	steering := absf(steeringPct)
	switch {
	case brakePct > 0.1 && steering > 0.05:
		return PhaseEntry
	case throttlePct > 0.1 && steering > 0.05:
		return PhaseExit
	case steering > 0.05 && brakePct < 0.1 && throttlePct < 0.1:
		return PhaseMid
	case steering < 0.05:
		return PhaseStraight
	default:
		return PhaseUnknown
	}
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// AnnotationKind is the closed set of events a detector can attach to a
// Sample. One Sample may carry zero or more Annotations, possibly of
// different kinds from different detectors in the same tick (for
// example Scrub and EntryOversteer under braking, or MidCornerUndersteer
// and MidCornerOversteer from the same MidCorner call).
type AnnotationKind int

const (
	AnnWheelspin AnnotationKind = iota
	AnnScrub
	AnnSlip
	AnnTrailbrakeSteering
	AnnShortShift
	AnnEntryOversteer
	AnnMidCornerUndersteer
	AnnMidCornerOversteer
	AnnFrontBrakeLock
	AnnRearBrakeLock
	AnnTireOverheating
	AnnTireCold
	AnnBottomingOut

	// Reserved annotation kinds carried over from original_source/ that
	// no rule in this detector set currently emits. Kept only as named
	// constants so a future detector can reuse the identifier rather
	// than invent a new one; they intentionally have no FindingType
	// mapping (see aggregator package) and no detector produces them.
	annCornerEntryInstabilityReserved
	annCornerExitSnapOversteerReserved
	annBrakingInstabilityReserved
)

// Annotation is the output of a single detector for a single Sample.
type Annotation struct {
	Kind        AnnotationKind
	CornerIndex int
	CornerPhase CornerPhase
	Severity    float64

	// Detector-specific payload fields, populated only by the detector
	// that needs them; zero value otherwise.
	AvgRPMIncreasePerGear float64
	IsFrontLock           bool
	IsRearLock            bool
	AbsActivationCount    int
	MeanSurfaceTempC      float64
}
