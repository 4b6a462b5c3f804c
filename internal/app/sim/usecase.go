package sim

import (
	"context"
	"errors"
	"strings"
	"time"

	"lifeos/internal/app/ports"
	"lifeos/internal/domain/life"
)

var ErrUnknownScenario = errors.New("unknown scenario")

// ScenarioReset restores the profile to first-run defaults.
const ScenarioReset = "reset"

type UseCase struct {
	Tx       ports.TxManager
	Profiles ports.ProfileRepository
	Now      func() time.Time
}

// Execute runs a quick-sim control: reset wipes the profile back to
// defaults, the preset scenarios apply their delta bundle clamped and get
// recorded in history under their label.
func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	id := strings.TrimSpace(strings.ToLower(req.Scenario))

	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}

	var out Response
	err := u.Tx.RunInTx(ctx, func(txCtx context.Context) error {
		if id == ScenarioReset {
			profile := life.NewProfile(nowFn())
			if err := u.Profiles.Save(txCtx, profile); err != nil {
				return err
			}
			out = derive(id, profile.Stats, nil)
			return nil
		}

		scenario, ok := life.LookupScenario(id)
		if !ok {
			return ErrUnknownScenario
		}

		profile, err := u.Profiles.Load(txCtx)
		if err != nil {
			return err
		}

		before := profile.Stats
		profile.Stats = life.ApplyEffects(profile.Stats, scenario.Effects)
		effects := life.Diff(before, profile.Stats)

		now := nowFn().UTC()
		profile.Record(life.HistoryEntry{
			Time:    now,
			Phase:   profile.LastPhase,
			Action:  scenario.Label,
			Effects: effects,
		})
		profile.LastTime = now

		if err := u.Profiles.Save(txCtx, profile); err != nil {
			return err
		}
		out = derive(id, profile.Stats, effects)
		return nil
	})
	if err != nil {
		return Response{}, err
	}
	return out, nil
}

func derive(id string, stats life.Stats, effects map[life.Stat]int) Response {
	stability := life.ComputeStability(stats)
	feedback := life.FeedbackFor(stats, stability)
	if effects == nil {
		effects = map[life.Stat]int{}
	}
	return Response{
		Scenario:  id,
		Effects:   effects,
		Stats:     stats,
		Stability: stability,
		Rank:      life.RankForStability(stability),
		Feedback:  feedback,
		Message:   life.MessageFor(feedback),
	}
}
