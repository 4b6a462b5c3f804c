package history

import (
	"context"
	"errors"

	"lifeos/internal/app/ports"
	"lifeos/internal/domain/life"
)

var ErrInvalidRequest = errors.New("invalid history request")

// DefaultLimit matches the dashboard's recent-activity pane.
const DefaultLimit = 12

type UseCase struct {
	Profiles ports.ProfileRepository
}

// Execute lists recorded actions, newest first. Limit 0 means DefaultLimit;
// anything past the history cap is truncated to it.
func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if req.Limit < 0 {
		return Response{}, ErrInvalidRequest
	}
	limit := req.Limit
	if limit == 0 {
		limit = DefaultLimit
	}
	if limit > life.HistoryCap {
		limit = life.HistoryCap
	}

	profile, err := u.Profiles.Load(ctx)
	if err != nil {
		return Response{}, err
	}

	entries := profile.History
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return Response{Entries: entries, Total: len(profile.History)}, nil
}
