package gormrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"lifeos/internal/app/ports"
	"lifeos/internal/domain/life"

	"gorm.io/gorm"
)

// profileRowID pins the single local profile; there is exactly one row.
const profileRowID = 1

// ProfileRow stores the profile with stats and history as JSON columns, the
// same shapes the flat-file record uses.
type ProfileRow struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"not null"`
	Stats     string    `gorm:"type:jsonb;not null"`
	History   string    `gorm:"type:jsonb;not null"`
	LastPhase string    `gorm:"not null"`
	LastTime  time.Time `gorm:"not null"`
	Notes     string
	UpdatedAt time.Time
}

func (ProfileRow) TableName() string {
	return "profiles"
}

type ProfileRepo struct {
	db *gorm.DB
}

func NewProfileRepo(db *gorm.DB) ProfileRepo {
	return ProfileRepo{db: db}
}

func (r ProfileRepo) Load(ctx context.Context) (life.Profile, error) {
	var row ProfileRow
	err := getDBFromCtx(ctx, r.db).Where("id = ?", profileRowID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return life.NewProfile(time.Now()), nil
		}
		return life.Profile{}, fmt.Errorf("load profile: %w", err)
	}

	profile := life.Profile{
		Name:      row.Name,
		LastPhase: life.Phase(row.LastPhase),
		LastTime:  row.LastTime,
		Notes:     row.Notes,
	}
	// Malformed columns fall back to defaults via Normalize, matching the
	// flat-file repair policy.
	_ = json.Unmarshal([]byte(row.Stats), &profile.Stats)
	_ = json.Unmarshal([]byte(row.History), &profile.History)
	profile.Normalize(time.Now())
	return profile, nil
}

func (r ProfileRepo) Save(ctx context.Context, profile life.Profile) error {
	stats, err := json.Marshal(profile.Stats)
	if err != nil {
		return fmt.Errorf("encode stats: %w", err)
	}
	history, err := json.Marshal(profile.History)
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}

	row := ProfileRow{
		ID:        profileRowID,
		Name:      profile.Name,
		Stats:     string(stats),
		History:   string(history),
		LastPhase: string(profile.LastPhase),
		LastTime:  profile.LastTime,
		Notes:     profile.Notes,
	}
	if err := getDBFromCtx(ctx, r.db).Save(&row).Error; err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

var _ ports.ProfileRepository = ProfileRepo{}
var _ ports.TxManager = TxManager{}
