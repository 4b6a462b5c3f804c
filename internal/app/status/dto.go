package status

import (
	"time"

	"lifeos/internal/domain/life"
)

type Response struct {
	Name      string           `json:"name"`
	Stats     life.Stats       `json:"stats"`
	LastPhase life.Phase       `json:"last_phase"`
	LastTime  time.Time        `json:"last_time"`
	Stability int              `json:"stability"`
	Rank      life.Rank        `json:"rank"`
	Feedback  life.FeedbackKey `json:"feedback"`
	Message   string           `json:"message"`
	Tips      []string         `json:"tips,omitempty"`
	Notes     string           `json:"notes,omitempty"`
}
