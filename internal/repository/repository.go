// Package repository maps entities from the store into typed domain records.
// Untyped property maps never leave this boundary.
package repository

import (
	"github.com/rosterdesk/shift-planner/backend/internal/config"
	"github.com/rosterdesk/shift-planner/backend/internal/store"
	"github.com/rosterdesk/shift-planner/backend/internal/timezone"
)

// Entity kinds. They mirror the record names of the persisted data model.
const (
	kindSettings = "Settings"
	kindWorker   = "Worker"
	kindShift    = "Shift"
)

type Repository struct {
	cfg       *config.Config
	store     store.EntityStore
	timezones *timezone.Catalog
}

func NewRepository(cfg *config.Config, entityStore store.EntityStore, timezones *timezone.Catalog) *Repository {
	return &Repository{
		cfg:       cfg,
		store:     entityStore,
		timezones: timezones,
	}
}
