package life

import "strings"

// Scenario is a quick-sim preset: a bundle of deltas applied in one step and
// recorded in history under its label, like a regular action.
type Scenario struct {
	ID      string
	Label   string
	Effects map[Stat]int
}

var scenarioCatalog = []Scenario{
	{
		ID:      "rough_day",
		Label:   "Simulate rough day",
		Effects: map[Stat]int{StatSleep: -30, StatEnergy: -30, StatHunger: -40, StatStress: +30},
	},
	{
		ID:      "recovery",
		Label:   "Simulate recovery",
		Effects: map[Stat]int{StatSleep: +30, StatEnergy: +30, StatHunger: +20, StatStress: -25},
	},
}

func LookupScenario(id string) (Scenario, bool) {
	trimmed := strings.TrimSpace(id)
	for _, sc := range scenarioCatalog {
		if strings.EqualFold(sc.ID, trimmed) {
			return sc, true
		}
	}
	return Scenario{}, false
}

func ScenarioIDs() []string {
	out := make([]string, len(scenarioCatalog))
	for i, sc := range scenarioCatalog {
		out[i] = sc.ID
	}
	return out
}
