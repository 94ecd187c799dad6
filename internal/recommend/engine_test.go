package recommend

import (
	"testing"

	"github.com/psybedev/trackassist/internal/aggregator"
)

func TestEveryFindingTypeHasAtLeastOneRecommendation(t *testing.T) {
	types := []aggregator.FindingType{
		aggregator.CornerEntryUndersteer, aggregator.CornerEntryOversteer,
		aggregator.MidCornerUndersteer, aggregator.MidCornerOversteer,
		aggregator.CornerExitUndersteer, aggregator.CornerExitPowerOversteer,
		aggregator.FrontBrakeLock, aggregator.RearBrakeLock,
		aggregator.TireOverheating, aggregator.TireCold,
		aggregator.BottomingOut, aggregator.ExcessiveTrailbraking,
	}
	for _, ft := range types {
		if len(ForFindingType(ft)) == 0 {
			t.Errorf("expected at least one recommendation for %v", ft)
		}
	}
}

func TestAllPrioritiesInRange(t *testing.T) {
	for ft, recs := range table {
		for _, r := range recs {
			if r.Priority < 1 || r.Priority > 5 {
				t.Errorf("%v: priority %d out of range 1..5", ft, r.Priority)
			}
		}
	}
}

func TestProcessSingleFindingNoConflict(t *testing.T) {
	e := NewEngine()
	confirmed := map[aggregator.FindingType]struct{}{aggregator.TireOverheating: {}}
	out := e.Process(confirmed)
	if len(out) == 0 {
		t.Fatal("expected at least one recommendation")
	}
	for _, p := range out {
		if p.HasConflict {
			t.Errorf("did not expect a conflict with a single confirmed finding: %+v", p)
		}
	}
}

func TestProcessDetectsConflict(t *testing.T) {
	// CornerEntryUndersteer has a "Brake Bias"/"Move Rearward" entry;
	// CornerEntryOversteer has a "Brake Bias"/"Move Forward" entry.
	// Confirming both should surface the conflict (spec.md §8 S6).
	e := NewEngine()
	confirmed := map[aggregator.FindingType]struct{}{
		aggregator.CornerEntryUndersteer: {},
		aggregator.CornerEntryOversteer:  {},
	}
	out := e.Process(confirmed)

	var sawConflict bool
	for _, p := range out {
		if p.Recommendation.Parameter == "Brake Bias" && p.HasConflict {
			sawConflict = true
			if len(p.Conflicts) == 0 {
				t.Errorf("expected conflict list to be populated for %+v", p)
			}
		}
	}
	if !sawConflict {
		t.Fatal("expected a Brake Bias conflict between CornerEntryUndersteer and CornerEntryOversteer")
	}
}

func TestProcessOrderingIsPriorityDescThenParameterAsc(t *testing.T) {
	e := NewEngine()
	confirmed := map[aggregator.FindingType]struct{}{aggregator.CornerEntryUndersteer: {}}
	out := e.Process(confirmed)
	for i := 1; i < len(out); i++ {
		prev, cur := out[i-1].Recommendation, out[i].Recommendation
		if prev.Priority < cur.Priority {
			t.Fatalf("expected non-increasing priority order, got %d then %d", prev.Priority, cur.Priority)
		}
		if prev.Priority == cur.Priority && prev.Parameter > cur.Parameter {
			t.Fatalf("expected ascending parameter order within a priority tier, got %q then %q", prev.Parameter, cur.Parameter)
		}
	}
}

func TestFormatWithCorners(t *testing.T) {
	cases := []struct {
		corners []int
		want    string
	}{
		{nil, "base"},
		{[]int{3}, "base (corner 3)"},
		{[]int{1, 2, 3}, "base (corners 1, 2, 3)"},
		{[]int{1, 2, 3, 4, 5}, "base (corners 1, 2, 3 and 2 others)"},
	}
	for _, c := range cases {
		got := FormatWithCorners("base", c.corners)
		if got != c.want {
			t.Errorf("FormatWithCorners(%v) = %q, want %q", c.corners, got, c.want)
		}
	}
}
