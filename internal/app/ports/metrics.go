package ports

import "lifeos/internal/domain/life"

// EngineMetrics counts engine operations for the /ops/kpi snapshot.
type EngineMetrics interface {
	RecordAction(applied bool, rank life.Rank, feedback life.FeedbackKey)
	RecordAdvance(phase life.Phase)
}
