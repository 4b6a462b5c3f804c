package life

import "math"

// Clamp rounds to the nearest integer and truncates to [0,100].
func Clamp(v float64) int {
	return clampInt(int(math.Round(v)))
}

func clampInt(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// ApplyEffects returns a copy of stats with the delta map applied and every
// touched value clamped. Stats the map does not mention are untouched; a
// touched stat missing from the vector starts from 50.
func ApplyEffects(stats Stats, effects map[Stat]int) Stats {
	next := stats.Clone()
	for stat, delta := range effects {
		base, ok := next[stat]
		if !ok {
			base = 50
		}
		next[stat] = clampInt(base + delta)
	}
	return next
}

// ApplyAction applies the named catalog action. An unknown name is a silent
// no-op: the input vector is returned unchanged and no error is signaled.
func ApplyAction(stats Stats, name string) Stats {
	action, ok := LookupAction(name)
	if !ok {
		return stats
	}
	return ApplyEffects(stats, action.Effects)
}

// PassiveAdvance applies the fixed drift for entering the given phase.
// Deterministic: no randomness, same inputs always yield the same vector.
func PassiveAdvance(stats Stats, phase Phase) Stats {
	drift, ok := phaseDrift[phase]
	if !ok {
		return stats.Clone()
	}
	return ApplyEffects(stats, drift)
}

var phaseDrift = map[Phase]map[Stat]int{
	PhaseDay:     {StatHunger: -12, StatEnergy: -10, StatStress: +4},
	PhaseEvening: {StatHunger: -18, StatEnergy: -16, StatStress: +6},
	PhaseNight:   {StatHunger: -8, StatEnergy: -8, StatStress: +2},
	PhaseMorning: {StatEnergy: +4, StatStress: -2},
}

// ComputeStability reduces a stat vector to a single 0-100 score: the
// average of the positive stats minus half of Stress. Missing keys count
// as 50 so the score stays total over sparse vectors.
func ComputeStability(stats Stats) int {
	sum := 0
	for _, stat := range scoredStats {
		sum += clampInt(statOr(stats, stat, 50))
	}
	avg := float64(sum) / float64(len(scoredStats))
	penalty := float64(clampInt(statOr(stats, StatStress, 50))) * 0.5
	return Clamp(avg - penalty)
}

// Rank buckets the stability score into a discrete label.
type Rank string

const (
	RankBalanced  Rank = "Balanced"
	RankStable    Rank = "Stable"
	RankUnsettled Rank = "Unsettled"
	RankStrained  Rank = "Strained"
	RankBurnedOut Rank = "BurnedOut"
)

// RankForStability evaluates the threshold ladder top-down, first match wins.
func RankForStability(score int) Rank {
	switch {
	case score >= 90:
		return RankBalanced
	case score >= 70:
		return RankStable
	case score >= 50:
		return RankUnsettled
	case score >= 30:
		return RankStrained
	default:
		return RankBurnedOut
	}
}

// Diff reports the realized per-stat change between two vectors, keyed by
// the stats present after the update. Zero deltas are omitted.
func Diff(before, after Stats) map[Stat]int {
	out := map[Stat]int{}
	for stat, v := range after {
		if d := v - before[stat]; d != 0 {
			out[stat] = d
		}
	}
	return out
}

func statOr(stats Stats, stat Stat, fallback int) int {
	if v, ok := stats[stat]; ok {
		return v
	}
	return fallback
}
