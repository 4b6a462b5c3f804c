package ports

import (
	"context"

	"lifeos/internal/domain/life"
)

// ProfileRepository persists the single local profile. Load never fails on a
// missing or malformed record: the adapter repairs by defaulting, so callers
// always receive a normalized profile. Save rewrites the record wholesale.
type ProfileRepository interface {
	Load(ctx context.Context) (life.Profile, error)
	Save(ctx context.Context, profile life.Profile) error
}
