package action

import (
	"context"
	"errors"
	"strings"
	"time"

	"lifeos/internal/app/ports"
	"lifeos/internal/domain/life"
)

var ErrInvalidRequest = errors.New("invalid action request")

type UseCase struct {
	Tx       ports.TxManager
	Profiles ports.ProfileRepository
	Metrics  ports.EngineMetrics
	Now      func() time.Time
}

// Execute applies one catalog action to the profile, records the realized
// deltas in history, and persists the whole record. An unknown action name
// is not an error: the profile is left untouched and the response carries
// the unknown flag so the shell can surface a notice if it wants to.
func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	name := strings.TrimSpace(req.Action)
	if name == "" {
		return Response{}, ErrInvalidRequest
	}

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

		act, ok := life.LookupAction(name)
		if !ok {
			out = derive(name, profile.Stats, nil)
			out.Unknown = true
			out.Suggestion = suggest(name)
			return nil
		}

		before := profile.Stats
		profile.Stats = life.ApplyAction(profile.Stats, act.Name)
		effects := life.Diff(before, profile.Stats)

		now := nowFn().UTC()
		profile.Record(life.HistoryEntry{
			Time:    now,
			Phase:   profile.LastPhase,
			Action:  act.Name,
			Effects: effects,
		})
		profile.LastTime = now

		if err := u.Profiles.Save(txCtx, profile); err != nil {
			return err
		}

		out = derive(act.Name, profile.Stats, effects)
		return nil
	})
	if err != nil {
		return Response{}, err
	}

	if u.Metrics != nil {
		u.Metrics.RecordAction(!out.Unknown, out.Rank, out.Feedback)
	}
	return out, nil
}

func derive(name string, stats life.Stats, effects map[life.Stat]int) Response {
	stability := life.ComputeStability(stats)
	feedback := life.FeedbackFor(stats, stability)
	if effects == nil {
		effects = map[life.Stat]int{}
	}
	return Response{
		Action:    name,
		Effects:   effects,
		Stats:     stats,
		Stability: stability,
		Rank:      life.RankForStability(stability),
		Feedback:  feedback,
		Message:   life.MessageFor(feedback),
	}
}
