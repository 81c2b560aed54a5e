package repository

import (
	"context"
	"errors"

	"github.com/rosterdesk/shift-planner/backend/internal/store"
)

// DefaultTimezone is used whenever no display timezone has been stored.
const DefaultTimezone = "UTC"

// The single settings record lives under a fixed well-known key.
const timezoneSettingKey = "timezone"

// GetTimezone returns the configured display timezone, falling back to
// DefaultTimezone when the setting was never written.
func (r *Repository) GetTimezone(ctx context.Context) (string, error) {
	props, err := r.store.Get(ctx, kindSettings, timezoneSettingKey)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return DefaultTimezone, nil
		}
		return "", err
	}

	id, ok := props["timezone"].(string)
	if !ok || id == "" {
		return DefaultTimezone, nil
	}

	return id, nil
}

// SetTimezone validates the identifier against the timezone database and
// persists it. A rejected identifier leaves the stored value untouched.
func (r *Repository) SetTimezone(ctx context.Context, id string) (string, error) {
	if err := r.timezones.Validate(id); err != nil {
		return "", err
	}

	if err := r.store.Put(ctx, kindSettings, timezoneSettingKey, store.Properties{"timezone": id}); err != nil {
		return "", err
	}

	return id, nil
}
