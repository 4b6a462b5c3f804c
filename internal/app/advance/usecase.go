package advance

import (
	"context"
	"errors"
	"time"

	"lifeos/internal/app/ports"
	"lifeos/internal/domain/life"
)

var ErrInvalidPhase = errors.New("invalid phase")

type UseCase struct {
	Tx       ports.TxManager
	Profiles ports.ProfileRepository
	Metrics  ports.EngineMetrics
	Now      func() time.Time
}

// Execute applies the passive drift for the requested phase (or the next one
// in the cycle when the request names none) and stamps last_phase/last_time.
// Passive drift is never recorded in history; only actions are.
func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}

	var out Response
	err := u.Tx.RunInTx(ctx, func(txCtx context.Context) error {
		profile, err := u.Profiles.Load(txCtx)
		if err != nil {
			return err
		}

		phase := profile.LastPhase.Next()
		if req.Phase != "" {
			parsed, ok := life.ParsePhase(req.Phase)
			if !ok {
				return ErrInvalidPhase
			}
			phase = parsed
		}

		before := profile.Stats
		profile.Stats = life.PassiveAdvance(profile.Stats, phase)
		profile.LastPhase = phase
		profile.LastTime = nowFn().UTC()

		if err := u.Profiles.Save(txCtx, profile); err != nil {
			return err
		}

		stability := life.ComputeStability(profile.Stats)
		feedback := life.FeedbackFor(profile.Stats, stability)
		out = Response{
			Phase:     phase,
			Drift:     life.Diff(before, profile.Stats),
			Stats:     profile.Stats,
			Stability: stability,
			Rank:      life.RankForStability(stability),
			Feedback:  feedback,
			Message:   life.MessageFor(feedback),
		}
		return nil
	})
	if err != nil {
		return Response{}, err
	}

	if u.Metrics != nil {
		u.Metrics.RecordAdvance(out.Phase)
	}
	return out, nil
}
