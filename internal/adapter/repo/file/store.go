package filerepo

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"lifeos/internal/app/ports"
	"lifeos/internal/domain/life"
)

// ProfileStore persists the profile as a single JSON file, rewritten
// wholesale on every save. A missing or malformed file is repaired by
// defaulting, never rejected.
type ProfileStore struct {
	path string
	name string
}

func NewProfileStore(path string) *ProfileStore {
	return &ProfileStore{path: path}
}

// WithDefaultName sets the name given to freshly created profiles.
func (s *ProfileStore) WithDefaultName(name string) *ProfileStore {
	s.name = name
	return s
}

func (s *ProfileStore) Load(_ context.Context) (life.Profile, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return s.fresh(), nil
	}

	var profile life.Profile
	if err := json.Unmarshal(raw, &profile); err != nil {
		return s.fresh(), nil
	}
	profile.Normalize(time.Now())
	return profile, nil
}

func (s *ProfileStore) fresh() life.Profile {
	profile := life.NewProfile(time.Now())
	if s.name != "" {
		profile.Name = s.name
	}
	return profile
}

func (s *ProfileStore) Save(_ context.Context, profile life.Profile) error {
	raw, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}

	// Write-then-rename keeps the record whole even if the process dies
	// mid-save.
	tmp := s.path + ".tmp"
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create data dir: %w", err)
		}
	}
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write profile: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace profile: %w", err)
	}
	return nil
}

// TxManager is a no-op: the file store has a single synchronous writer and
// every save is already an atomic wholesale rewrite.
type TxManager struct{}

func (TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

var _ ports.ProfileRepository = (*ProfileStore)(nil)
var _ ports.TxManager = TxManager{}
