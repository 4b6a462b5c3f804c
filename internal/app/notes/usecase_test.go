package notes

import (
	"context"
	"testing"
	"time"

	"lifeos/internal/app/ports"
	"lifeos/internal/domain/life"
)

func TestUseCase_ReplacesNotes(t *testing.T) {
	repo := &fakeProfileRepo{profile: life.NewProfile(time.Now())}
	uc := UseCase{Tx: noopTx{}, Profiles: repo}

	resp, err := uc.Execute(context.Background(), Request{Notes: "buy groceries"})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if resp.Notes != "buy groceries" {
		t.Fatalf("notes = %q", resp.Notes)
	}
	if repo.profile.Notes != "buy groceries" {
		t.Fatalf("notes not persisted")
	}

	if _, err := uc.Execute(context.Background(), Request{}); err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if repo.profile.Notes != "" {
		t.Fatalf("empty request should clear notes, got %q", repo.profile.Notes)
	}
}

type fakeProfileRepo struct {
	profile life.Profile
}

func (r *fakeProfileRepo) Load(_ context.Context) (life.Profile, error) {
	return r.profile, nil
}

func (r *fakeProfileRepo) Save(_ context.Context, profile life.Profile) error {
	r.profile = profile
	return nil
}

type noopTx struct{}

func (noopTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

var _ ports.ProfileRepository = (*fakeProfileRepo)(nil)
var _ ports.TxManager = noopTx{}
