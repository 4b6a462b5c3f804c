package life

import "strings"

// Phase is one quarter of the simulated day cycle. Passive stat drift is
// keyed by phase, not by wall-clock time; callers advance it explicitly.
type Phase string

const (
	PhaseMorning Phase = "Morning"
	PhaseDay     Phase = "Day"
	PhaseEvening Phase = "Evening"
	PhaseNight   Phase = "Night"
)

var phaseOrder = [...]Phase{PhaseMorning, PhaseDay, PhaseEvening, PhaseNight}

func Phases() []Phase {
	out := make([]Phase, len(phaseOrder))
	copy(out, phaseOrder[:])
	return out
}

// Next returns the following phase in the cycle, wrapping Night back to
// Morning. Unknown phases restart at Morning.
func (p Phase) Next() Phase {
	for i, phase := range phaseOrder {
		if phase == p {
			return phaseOrder[(i+1)%len(phaseOrder)]
		}
	}
	return PhaseMorning
}

// ParsePhase matches a phase name case-insensitively.
func ParsePhase(s string) (Phase, bool) {
	for _, phase := range phaseOrder {
		if strings.EqualFold(string(phase), strings.TrimSpace(s)) {
			return phase, true
		}
	}
	return "", false
}
