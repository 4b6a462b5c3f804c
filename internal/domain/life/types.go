package life

import "time"

// Stat names a single bounded [0,100] attribute of the simulated life state.
type Stat string

const (
	StatSleep   Stat = "Sleep"
	StatEnergy  Stat = "Energy"
	StatHunger  Stat = "Hunger"
	StatStress  Stat = "Stress"
	StatRoutine Stat = "Routine"
	StatSocial  Stat = "Social"
)

var allStats = [...]Stat{StatSleep, StatEnergy, StatHunger, StatStress, StatRoutine, StatSocial}

// scoredStats feed the stability average; Stress enters as a penalty instead.
var scoredStats = [...]Stat{StatSleep, StatEnergy, StatHunger, StatRoutine, StatSocial}

// Stats maps stat names to integers in [0,100]. Every mutation goes through
// clamping, so out-of-range values never survive an update.
type Stats map[Stat]int

func DefaultStats() Stats {
	return Stats{
		StatSleep:   80,
		StatEnergy:  80,
		StatHunger:  50,
		StatStress:  20,
		StatRoutine: 70,
		StatSocial:  50,
	}
}

func (s Stats) Clone() Stats {
	out := make(Stats, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// HistoryCap bounds the audit log; oldest entries fall off the tail.
const HistoryCap = 200

// HistoryEntry records one performed action with its realized post-clamp
// deltas. Purely an audit trail, it never feeds back into the engine.
type HistoryEntry struct {
	Time    time.Time    `json:"time"`
	Phase   Phase        `json:"phase"`
	Action  string       `json:"action"`
	Effects map[Stat]int `json:"effects"`
}

// Profile is the single persisted record: one user's stats plus the bounded
// history, current phase, and free-form notes. It is rewritten wholesale.
type Profile struct {
	Name      string         `json:"name"`
	Stats     Stats          `json:"stats"`
	History   []HistoryEntry `json:"history"`
	LastPhase Phase          `json:"last_phase"`
	LastTime  time.Time      `json:"last_time"`
	Notes     string         `json:"notes"`
}

func NewProfile(now time.Time) Profile {
	return Profile{
		Name:      "Alex",
		Stats:     DefaultStats(),
		History:   []HistoryEntry{},
		LastPhase: PhaseMorning,
		LastTime:  now.UTC(),
	}
}

// Normalize repairs a partially loaded record by back-filling missing fields
// with defaults instead of rejecting it.
func (p *Profile) Normalize(now time.Time) {
	if p.Name == "" {
		p.Name = "Alex"
	}
	if p.Stats == nil {
		p.Stats = DefaultStats()
	}
	for k, v := range p.Stats {
		p.Stats[k] = clampInt(v)
	}
	if p.History == nil {
		p.History = []HistoryEntry{}
	}
	if len(p.History) > HistoryCap {
		p.History = p.History[:HistoryCap]
	}
	if _, ok := ParsePhase(string(p.LastPhase)); !ok {
		p.LastPhase = PhaseMorning
	}
	if p.LastTime.IsZero() {
		p.LastTime = now.UTC()
	}
}

// Record prepends an entry, newest first, trimming past HistoryCap.
func (p *Profile) Record(entry HistoryEntry) {
	p.History = append([]HistoryEntry{entry}, p.History...)
	if len(p.History) > HistoryCap {
		p.History = p.History[:HistoryCap]
	}
}
