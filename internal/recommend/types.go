// Package recommend implements the static finding -> recommendation
// knowledge base and the conflict-aware ranking engine (spec.md §4.9).
// Grounded on original_source/src/setup_assistant/recommendations.rs.
package recommend

import "github.com/psybedev/trackassist/internal/aggregator"

// SetupCategory is the closed enumeration from spec.md §3.
type SetupCategory int

const (
	CategoryAerodynamics SetupCategory = iota
	CategorySuspension
	CategoryAntiRollBar
	CategoryDampers
	CategoryBrakes
	CategoryDrivetrain
	CategoryElectronics
	CategoryAlignment
	CategoryTireManagement
)

func (c SetupCategory) String() string {
	switch c {
	case CategoryAerodynamics:
		return "Aero"
	case CategorySuspension:
		return "Suspension"
	case CategoryAntiRollBar:
		return "Antirollbar"
	case CategoryDampers:
		return "Dampers"
	case CategoryBrakes:
		return "Brakes"
	case CategoryDrivetrain:
		return "Drivetrain"
	case CategoryElectronics:
		return "Electronics"
	case CategoryAlignment:
		return "Alignment"
	case CategoryTireManagement:
		return "Tire Mgmt"
	default:
		return "Unknown"
	}
}

// Recommendation is one static knowledge-base entry (spec.md §3).
// Priority is always in 1..5.
type Recommendation struct {
	Category    SetupCategory
	Parameter   string
	Adjustment  string
	Description string
	Priority    int
}

// Processed pairs a Recommendation with the conflict information the
// engine's Process computed for it (spec.md §4.9).
type Processed struct {
	Recommendation Recommendation
	HasConflict    bool
	Conflicts      []Recommendation
}

// ForFindingType returns the static recommendations for ft, or nil if
// ft has none (every one of the 12 FindingTypes this module produces
// has at least one entry; see DESIGN.md).
func ForFindingType(ft aggregator.FindingType) []Recommendation {
	return table[ft]
}
