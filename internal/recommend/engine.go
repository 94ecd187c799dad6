package recommend

import (
	"sort"
	"strconv"
	"strings"

	"github.com/psybedev/trackassist/internal/aggregator"
)

// opposingPairs lists the adjustment-token pairs recommendations.rs
// treats as conflicting, matched case-insensitively on substrings of
// the two recommendations' Adjustment strings.
var opposingPairs = [][2]string{
	{"increase", "reduce"},
	{"increase", "decrease"},
	{"stiffen", "soften"},
	{"open", "close"},
	{"forward", "rearward"},
	{"forward", "backward"},
}

func isConflicting(a, b Recommendation) bool {
	la, lb := strings.ToLower(a.Adjustment), strings.ToLower(b.Adjustment)
	for _, pair := range opposingPairs {
		if (strings.Contains(la, pair[0]) && strings.Contains(lb, pair[1])) ||
			(strings.Contains(la, pair[1]) && strings.Contains(lb, pair[0])) {
			return true
		}
	}
	return false
}

// Engine turns a set of confirmed findings into a priority-ordered,
// conflict-annotated recommendation list (spec.md §4.9). Grounded on
// RecommendationEngine::process_recommendations /
// RecommendationEngine::detect_conflicts in recommendations.rs.
type Engine struct{}

func NewEngine() *Engine { return &Engine{} }

// Process gathers every static recommendation for the confirmed
// findings, groups them by Parameter, resolves non-conflicting groups
// down to their single highest-priority entry, and for conflicting
// groups keeps every entry annotated with the others it conflicts
// with. The final list is sorted by (priority desc, parameter asc).
func (e *Engine) Process(confirmed map[aggregator.FindingType]struct{}) []Processed {
	var all []Recommendation
	for ft := range confirmed {
		all = append(all, ForFindingType(ft)...)
	}

	byParam := make(map[string][]Recommendation)
	var order []string
	for _, r := range all {
		if _, ok := byParam[r.Parameter]; !ok {
			order = append(order, r.Parameter)
		}
		byParam[r.Parameter] = append(byParam[r.Parameter], r)
	}

	var out []Processed
	for _, param := range order {
		group := byParam[param]
		if len(group) == 1 {
			out = append(out, Processed{Recommendation: group[0]})
			continue
		}

		conflicts := make([][]Recommendation, len(group))
		anyConflict := false
		for i, r := range group {
			for j, other := range group {
				if i == j {
					continue
				}
				if isConflicting(r, other) {
					anyConflict = true
					conflicts[i] = append(conflicts[i], other)
				}
			}
		}

		if !anyConflict {
			best := group[0]
			for _, r := range group[1:] {
				if r.Priority > best.Priority {
					best = r
				}
			}
			out = append(out, Processed{Recommendation: best})
			continue
		}

		for i, r := range group {
			others := make([]Recommendation, 0, len(conflicts[i]))
			for _, c := range conflicts[i] {
				if c.Adjustment != r.Adjustment {
					others = append(others, c)
				}
			}
			out = append(out, Processed{
				Recommendation: r,
				HasConflict:    true,
				Conflicts:      others,
			})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Recommendation.Priority != out[j].Recommendation.Priority {
			return out[i].Recommendation.Priority > out[j].Recommendation.Priority
		}
		return out[i].Recommendation.Parameter < out[j].Recommendation.Parameter
	})
	return out
}

// FormatWithCorners formats a recommendation's corner context the way
// original_source/src/setup_assistant/recommendations.rs's
// format_recommendation_with_corners does: no suffix for zero corners,
// "corner N" for one, "corners a, b, c" for up to three, and
// "corners a, b, c and K others" beyond that. This is the optional
// consumer-facing helper spec.md §4.9 names; callers that don't need
// corner context can ignore it entirely.
func FormatWithCorners(base string, corners []int) string {
	if len(corners) == 0 {
		return base
	}
	if len(corners) == 1 {
		return base + " (corner " + strconv.Itoa(corners[0]) + ")"
	}
	if len(corners) <= 3 {
		parts := make([]string, len(corners))
		for i, c := range corners {
			parts[i] = strconv.Itoa(c)
		}
		return base + " (corners " + strings.Join(parts, ", ") + ")"
	}
	shown := corners[:3]
	parts := make([]string, len(shown))
	for i, c := range shown {
		parts[i] = strconv.Itoa(c)
	}
	rest := len(corners) - 3
	return base + " (corners " + strings.Join(parts, ", ") + " and " + strconv.Itoa(rest) + " others)"
}
