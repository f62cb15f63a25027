package analysis

import "math"

// AggregateScore combines the independent sub-scores into the final ATS
// score. Each component is a linear ramp capped at its weight; the total is
// rounded and clamped to [0, 100]. The result is monotonic non-decreasing
// in every metric.
func AggregateScore(m Metrics, w Weights) int {
	score := ramp(m.WordCount, w.WordCountTarget, w.WordCountCap) +
		ramp(m.SkillsCount, w.SkillsTarget, w.SkillsCap) +
		ramp(m.ExperienceYears, w.ExperienceTarget, w.ExperienceCap)

	total := int(math.Round(score))
	if total > 100 {
		total = 100
	}
	if total < 0 {
		total = 0
	}

	return total
}

// ramp scales value linearly against target, capping at max once the target
// is met.
func ramp(value, target int, max float64) float64 {
	if value <= 0 {
		return 0
	}
	if target <= 0 || value >= target {
		return max
	}
	return float64(value) / float64(target) * max
}
