package sim

import "lifeos/internal/domain/life"

type Request struct {
	// Scenario is "reset", "rough_day", or "recovery".
	Scenario string
}

type Response struct {
	Scenario  string            `json:"scenario"`
	Effects   map[life.Stat]int `json:"effects"`
	Stats     life.Stats        `json:"stats"`
	Stability int               `json:"stability"`
	Rank      life.Rank         `json:"rank"`
	Feedback  life.FeedbackKey  `json:"feedback"`
	Message   string            `json:"message"`
}
