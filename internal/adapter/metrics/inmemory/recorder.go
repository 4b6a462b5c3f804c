package inmemory

import (
	"sync"

	"lifeos/internal/domain/life"
)

type Snapshot struct {
	ActionTotal     uint64            `json:"action_total"`
	ActionApplied   uint64            `json:"action_applied"`
	ActionUnknown   uint64            `json:"action_unknown"`
	AdvanceTotal    uint64            `json:"advance_total"`
	ByRank          map[string]uint64 `json:"by_rank"`
	ByFeedback      map[string]uint64 `json:"by_feedback"`
	AdvancesByPhase map[string]uint64 `json:"advances_by_phase"`
}

type Recorder struct {
	mu         sync.Mutex
	applied    uint64
	unknown    uint64
	advances   uint64
	byRank     map[string]uint64
	byFeedback map[string]uint64
	byPhase    map[string]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		byRank:     map[string]uint64{},
		byFeedback: map[string]uint64{},
		byPhase:    map[string]uint64{},
	}
}

func (r *Recorder) RecordAction(applied bool, rank life.Rank, feedback life.FeedbackKey) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if applied {
		r.applied++
	} else {
		r.unknown++
	}
	r.byRank[string(rank)]++
	r.byFeedback[string(feedback)]++
}

func (r *Recorder) RecordAdvance(phase life.Phase) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.advances++
	r.byPhase[string(phase)]++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		ActionApplied:   r.applied,
		ActionUnknown:   r.unknown,
		ActionTotal:     r.applied + r.unknown,
		AdvanceTotal:    r.advances,
		ByRank:          make(map[string]uint64, len(r.byRank)),
		ByFeedback:      make(map[string]uint64, len(r.byFeedback)),
		AdvancesByPhase: make(map[string]uint64, len(r.byPhase)),
	}
	for k, v := range r.byRank {
		out.ByRank[k] = v
	}
	for k, v := range r.byFeedback {
		out.ByFeedback[k] = v
	}
	for k, v := range r.byPhase {
		out.AdvancesByPhase[k] = v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
