package advance

import "lifeos/internal/domain/life"

type Request struct {
	// Phase to advance into. Empty means the next phase in the cycle.
	Phase string
}

type Response struct {
	Phase     life.Phase        `json:"phase"`
	Drift     map[life.Stat]int `json:"drift"`
	Stats     life.Stats        `json:"stats"`
	Stability int               `json:"stability"`
	Rank      life.Rank         `json:"rank"`
	Feedback  life.FeedbackKey  `json:"feedback"`
	Message   string            `json:"message"`
}
