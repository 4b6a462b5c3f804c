package status

import (
	"context"

	"lifeos/internal/app/ports"
	"lifeos/internal/domain/life"
)

type UseCase struct {
	Profiles ports.ProfileRepository
}

// Execute returns the current profile with its derived view: stability,
// rank, the advisory message, and contextual tips. Read-only.
func (u UseCase) Execute(ctx context.Context) (Response, error) {
	profile, err := u.Profiles.Load(ctx)
	if err != nil {
		return Response{}, err
	}

	stability := life.ComputeStability(profile.Stats)
	feedback := life.FeedbackFor(profile.Stats, stability)
	return Response{
		Name:      profile.Name,
		Stats:     profile.Stats,
		LastPhase: profile.LastPhase,
		LastTime:  profile.LastTime,
		Stability: stability,
		Rank:      life.RankForStability(stability),
		Feedback:  feedback,
		Message:   life.MessageFor(feedback),
		Tips:      life.Tips(profile.Stats),
		Notes:     profile.Notes,
	}, nil
}
