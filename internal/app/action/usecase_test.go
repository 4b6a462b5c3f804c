package action

import (
	"context"
	"errors"
	"testing"
	"time"

	"lifeos/internal/app/ports"
	"lifeos/internal/domain/life"
)

func TestUseCase_AppliesActionAndRecordsHistory(t *testing.T) {
	repo := &fakeProfileRepo{profile: life.NewProfile(time.Now())}
	uc := UseCase{Tx: noopTx{}, Profiles: repo, Now: func() time.Time { return time.Unix(1000, 0) }}

	resp, err := uc.Execute(context.Background(), Request{Action: "Sleep"})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	if resp.Unknown {
		t.Fatalf("Sleep should be a known action")
	}
	if resp.Stats[life.StatSleep] != 100 || resp.Stats[life.StatEnergy] != 100 {
		t.Fatalf("expected Sleep/Energy clamped to 100, got %d/%d", resp.Stats[life.StatSleep], resp.Stats[life.StatEnergy])
	}
	if resp.Stability != 70 || resp.Rank != life.RankStable {
		t.Fatalf("stability/rank = %d/%s, want 70/Stable", resp.Stability, resp.Rank)
	}
	if repo.saves != 1 {
		t.Fatalf("expected one save, got %d", repo.saves)
	}
	if len(repo.profile.History) != 1 {
		t.Fatalf("expected one history entry, got %d", len(repo.profile.History))
	}
	entry := repo.profile.History[0]
	if entry.Action != "Sleep" || entry.Effects[life.StatSleep] != 20 {
		t.Fatalf("unexpected history entry: %+v", entry)
	}
	if !repo.profile.LastTime.Equal(time.Unix(1000, 0).UTC()) {
		t.Fatalf("expected last_time stamped, got %v", repo.profile.LastTime)
	}
}

func TestUseCase_UnknownActionLeavesProfileUntouched(t *testing.T) {
	repo := &fakeProfileRepo{profile: life.NewProfile(time.Now())}
	uc := UseCase{Tx: noopTx{}, Profiles: repo}

	resp, err := uc.Execute(context.Background(), Request{Action: "nonexistent"})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if !resp.Unknown {
		t.Fatalf("expected unknown flag")
	}
	if repo.saves != 0 {
		t.Fatalf("unknown action must not save, got %d saves", repo.saves)
	}
	if len(resp.Effects) != 0 {
		t.Fatalf("expected empty effects, got %v", resp.Effects)
	}
}

func TestUseCase_SuggestsNearestActionForTypo(t *testing.T) {
	repo := &fakeProfileRepo{profile: life.NewProfile(time.Now())}
	uc := UseCase{Tx: noopTx{}, Profiles: repo}

	resp, err := uc.Execute(context.Background(), Request{Action: "Sleeep"})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if !resp.Unknown || resp.Suggestion != "Sleep" {
		t.Fatalf("unknown/suggestion = %v/%q, want true/Sleep", resp.Unknown, resp.Suggestion)
	}

	resp, err = uc.Execute(context.Background(), Request{Action: "zzzzzz"})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if resp.Suggestion != "" {
		t.Fatalf("expected no suggestion for %q, got %q", "zzzzzz", resp.Suggestion)
	}
}

func TestUseCase_RejectsEmptyAction(t *testing.T) {
	uc := UseCase{Tx: noopTx{}, Profiles: &fakeProfileRepo{}}
	if _, err := uc.Execute(context.Background(), Request{Action: "  "}); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}

func TestUseCase_PropagatesRepoError(t *testing.T) {
	wantErr := errors.New("store down")
	uc := UseCase{Tx: noopTx{}, Profiles: &fakeProfileRepo{loadErr: wantErr}}
	if _, err := uc.Execute(context.Background(), Request{Action: "Eat"}); !errors.Is(err, wantErr) {
		t.Fatalf("expected store error, got %v", err)
	}
}

func TestUseCase_ReportsMetrics(t *testing.T) {
	repo := &fakeProfileRepo{profile: life.NewProfile(time.Now())}
	metrics := &fakeMetrics{}
	uc := UseCase{Tx: noopTx{}, Profiles: repo, Metrics: metrics}

	if _, err := uc.Execute(context.Background(), Request{Action: "Eat"}); err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if _, err := uc.Execute(context.Background(), Request{Action: "nope"}); err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	if metrics.applied != 1 || metrics.unknown != 1 {
		t.Fatalf("metrics applied/unknown = %d/%d, want 1/1", metrics.applied, metrics.unknown)
	}
}

type fakeProfileRepo struct {
	profile life.Profile
	loadErr error
	saveErr error
	saves   int
}

func (r *fakeProfileRepo) Load(_ context.Context) (life.Profile, error) {
	if r.loadErr != nil {
		return life.Profile{}, r.loadErr
	}
	return r.profile, nil
}

func (r *fakeProfileRepo) Save(_ context.Context, profile life.Profile) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.profile = profile
	r.saves++
	return nil
}

type noopTx struct{}

func (noopTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeMetrics struct {
	applied int
	unknown int
}

func (m *fakeMetrics) RecordAction(applied bool, _ life.Rank, _ life.FeedbackKey) {
	if applied {
		m.applied++
	} else {
		m.unknown++
	}
}

func (m *fakeMetrics) RecordAdvance(_ life.Phase) {}

var _ ports.ProfileRepository = (*fakeProfileRepo)(nil)
var _ ports.TxManager = noopTx{}
var _ ports.EngineMetrics = (*fakeMetrics)(nil)
