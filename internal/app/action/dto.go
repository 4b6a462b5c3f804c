package action

import "lifeos/internal/domain/life"

type Request struct {
	Action string
}

type Response struct {
	Action     string            `json:"action"`
	Unknown    bool              `json:"unknown,omitempty"`
	Suggestion string            `json:"suggestion,omitempty"`
	Effects    map[life.Stat]int `json:"effects"`
	Stats      life.Stats        `json:"stats"`
	Stability  int               `json:"stability"`
	Rank       life.Rank         `json:"rank"`
	Feedback   life.FeedbackKey  `json:"feedback"`
	Message    string            `json:"message"`
}
