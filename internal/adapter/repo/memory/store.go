package memory

import (
	"context"
	"sync"
	"time"

	"lifeos/internal/app/ports"
	"lifeos/internal/domain/life"
)

// Store is an in-memory ProfileRepository for tests and throwaway runs.
type Store struct {
	mu      sync.RWMutex
	profile *life.Profile
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Seed(profile life.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = &profile
}

func (s *Store) Load(_ context.Context) (life.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.profile == nil {
		return life.NewProfile(time.Now()), nil
	}
	out := *s.profile
	out.Stats = s.profile.Stats.Clone()
	out.History = append([]life.HistoryEntry(nil), s.profile.History...)
	return out, nil
}

func (s *Store) Save(_ context.Context, profile life.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = &profile
	return nil
}

type TxManager struct{}

func (TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

var _ ports.ProfileRepository = (*Store)(nil)
var _ ports.TxManager = TxManager{}
