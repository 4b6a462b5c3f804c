package life

import "strings"

// Action is a named, immutable delta map from the fixed catalog. The set is
// closed: nothing registers new actions at runtime.
type Action struct {
	Name    string
	Effects map[Stat]int
}

var actionCatalog = []Action{
	{Name: "Sleep", Effects: map[Stat]int{StatSleep: +20, StatEnergy: +25, StatStress: -12}},
	{Name: "Eat", Effects: map[Stat]int{StatHunger: +35, StatEnergy: +6, StatStress: -4}},
	{Name: "Exercise", Effects: map[Stat]int{StatEnergy: -15, StatStress: -8, StatRoutine: +4, StatSocial: +1}},
	{Name: "Socialize", Effects: map[Stat]int{StatSocial: +18, StatStress: -6, StatRoutine: +2}},
	{Name: "Study", Effects: map[Stat]int{StatRoutine: +6, StatStress: +6, StatEnergy: -8}},
	{Name: "Leisure", Effects: map[Stat]int{StatStress: -10, StatEnergy: +6, StatRoutine: +1}},
}

// LookupAction matches a catalog entry by name, case-insensitively.
func LookupAction(name string) (Action, bool) {
	trimmed := strings.TrimSpace(name)
	for _, action := range actionCatalog {
		if strings.EqualFold(action.Name, trimmed) {
			return action, true
		}
	}
	return Action{}, false
}

func ActionNames() []string {
	out := make([]string, len(actionCatalog))
	for i, action := range actionCatalog {
		out[i] = action.Name
	}
	return out
}
