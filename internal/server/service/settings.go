package service

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/timeworld/internal/server/domain"
	"github.com/aussiebroadwan/timeworld/internal/server/store"
)

var ErrInvalidTimezoneMode = errors.New("invalid_timezone_mode")

type SettingsService struct {
	Store store.Store
}

// Get returns the user's settings, falling back to the defaults when no row
// exists yet (a user who never saved anything still gets a full object).
func (s *SettingsService) Get(ctx context.Context, userID string) (domain.Settings, error) {
	settings, err := s.Store.Settings().GetSettings(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.DefaultSettings(), nil
		}
		return domain.Settings{}, err
	}
	return settings, nil
}

// Update applies a partial patch. Fields left nil keep their stored values.
// A missing row is created with defaults first so the patch has a base.
func (s *SettingsService) Update(ctx context.Context, userID string, patch domain.SettingsPatch) error {
	if patch.TimezoneMode != nil && !domain.ValidTimezoneMode(*patch.TimezoneMode) {
		return ErrInvalidTimezoneMode
	}
	if patch.Empty() {
		return nil
	}

	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		err := tx.Settings().UpdateSettings(ctx, userID, patch)
		if !errors.Is(err, store.ErrNotFound) {
			return err
		}
		if err := tx.Settings().CreateDefaultSettings(ctx, userID); err != nil {
			return err
		}
		return tx.Settings().UpdateSettings(ctx, userID, patch)
	})
}
