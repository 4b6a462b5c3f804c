package history

import "lifeos/internal/domain/life"

type Request struct {
	Limit int
}

type Response struct {
	Entries []life.HistoryEntry `json:"entries"`
	Total   int                 `json:"total"`
}
