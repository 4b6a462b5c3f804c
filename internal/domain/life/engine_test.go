package life

import "testing"

func TestClamp_RoundsThenTruncates(t *testing.T) {
	cases := []struct {
		in   float64
		want int
	}{
		{-5, 0},
		{0, 0},
		{49.5, 50},
		{49.4, 49},
		{100, 100},
		{137.2, 100},
	}
	for _, c := range cases {
		if got := Clamp(c.in); got != c.want {
			t.Fatalf("Clamp(%v) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestApplyAction_StaysInBounds(t *testing.T) {
	vectors := []Stats{
		DefaultStats(),
		{StatSleep: 0, StatEnergy: 0, StatHunger: 0, StatStress: 100, StatRoutine: 0, StatSocial: 0},
		{StatSleep: 100, StatEnergy: 100, StatHunger: 100, StatStress: 0, StatRoutine: 100, StatSocial: 100},
	}
	for _, v := range vectors {
		for _, name := range ActionNames() {
			next := ApplyAction(v, name)
			for stat, val := range next {
				if val < 0 || val > 100 {
					t.Fatalf("action %s pushed %s out of bounds: %d", name, stat, val)
				}
			}
		}
	}
}

func TestApplyAction_UnknownIsNoOp(t *testing.T) {
	stats := DefaultStats()
	next := ApplyAction(stats, "nonexistent")
	for _, stat := range allStats {
		if next[stat] != stats[stat] {
			t.Fatalf("unknown action changed %s: %d -> %d", stat, stats[stat], next[stat])
		}
	}
}

func TestApplyAction_SleepFromDefaults(t *testing.T) {
	next := ApplyAction(DefaultStats(), "Sleep")

	want := Stats{
		StatSleep:   100,
		StatEnergy:  100,
		StatHunger:  50,
		StatStress:  8,
		StatRoutine: 70,
		StatSocial:  50,
	}
	for stat, val := range want {
		if next[stat] != val {
			t.Fatalf("%s = %d, want %d", stat, next[stat], val)
		}
	}

	stability := ComputeStability(next)
	if stability != 70 {
		t.Fatalf("stability = %d, want 70", stability)
	}
	if rank := RankForStability(stability); rank != RankStable {
		t.Fatalf("rank = %s, want %s", rank, RankStable)
	}
}

func TestApplyAction_MissingStatDefaultsTo50(t *testing.T) {
	next := ApplyAction(Stats{}, "Socialize")
	if next[StatSocial] != 68 {
		t.Fatalf("Social = %d, want 68 (50+18)", next[StatSocial])
	}
}

func TestPassiveAdvance_EveningFromDefaults(t *testing.T) {
	next := PassiveAdvance(DefaultStats(), PhaseEvening)

	if next[StatHunger] != 32 {
		t.Fatalf("Hunger = %d, want 32", next[StatHunger])
	}
	if next[StatEnergy] != 64 {
		t.Fatalf("Energy = %d, want 64", next[StatEnergy])
	}
	if next[StatStress] != 26 {
		t.Fatalf("Stress = %d, want 26", next[StatStress])
	}
	for _, stat := range []Stat{StatSleep, StatRoutine, StatSocial} {
		if next[stat] != DefaultStats()[stat] {
			t.Fatalf("%s changed unexpectedly: %d", stat, next[stat])
		}
	}
}

func TestPassiveAdvance_MorningClampAbsorbsDelta(t *testing.T) {
	stats := DefaultStats()
	stats[StatEnergy] = 100
	stats[StatStress] = 0

	next := PassiveAdvance(stats, PhaseMorning)
	if next[StatEnergy] != 100 {
		t.Fatalf("Energy = %d, want 100", next[StatEnergy])
	}
	if next[StatStress] != 0 {
		t.Fatalf("Stress = %d, want 0", next[StatStress])
	}
}

func TestPassiveAdvance_AllPhasesStayInBounds(t *testing.T) {
	stats := Stats{StatSleep: 2, StatEnergy: 3, StatHunger: 1, StatStress: 99, StatRoutine: 0, StatSocial: 0}
	for _, phase := range Phases() {
		next := PassiveAdvance(stats, phase)
		for stat, val := range next {
			if val < 0 || val > 100 {
				t.Fatalf("phase %s pushed %s out of bounds: %d", phase, stat, val)
			}
		}
	}
}

func TestComputeStability_Monotonicity(t *testing.T) {
	base := DefaultStats()
	baseScore := ComputeStability(base)

	for _, stat := range scoredStats {
		bumped := base.Clone()
		bumped[stat] += 10
		if ComputeStability(bumped) < baseScore {
			t.Fatalf("raising %s lowered stability", stat)
		}
	}

	stressed := base.Clone()
	stressed[StatStress] += 10
	if ComputeStability(stressed) > baseScore {
		t.Fatalf("raising Stress raised stability")
	}
}

func TestComputeStability_MissingKeysDefaultTo50(t *testing.T) {
	// All positives default to 50, Stress defaults to 50: 50 - 25 = 25.
	if got := ComputeStability(Stats{}); got != 25 {
		t.Fatalf("stability of empty vector = %d, want 25", got)
	}
}

func TestRankForStability_TotalOverRange(t *testing.T) {
	for score := 0; score <= 100; score++ {
		rank := RankForStability(score)
		switch {
		case score >= 90 && rank != RankBalanced,
			score >= 70 && score < 90 && rank != RankStable,
			score >= 50 && score < 70 && rank != RankUnsettled,
			score >= 30 && score < 50 && rank != RankStrained,
			score < 30 && rank != RankBurnedOut:
			t.Fatalf("score %d ranked %s", score, rank)
		}
	}
}

func TestDiff_ReportsRealizedDeltas(t *testing.T) {
	before := DefaultStats()
	after := ApplyAction(before, "Sleep")
	d := Diff(before, after)

	if d[StatSleep] != 20 {
		t.Fatalf("Sleep delta = %d, want 20 (clamped at 100)", d[StatSleep])
	}
	if d[StatEnergy] != 20 {
		t.Fatalf("Energy delta = %d, want 20 (clamped at 100)", d[StatEnergy])
	}
	if d[StatStress] != -12 {
		t.Fatalf("Stress delta = %d, want -12", d[StatStress])
	}
	if _, ok := d[StatHunger]; ok {
		t.Fatalf("expected untouched Hunger to be omitted from diff")
	}
}
