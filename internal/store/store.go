// Package store provides a generic schemaless entity store: entities are
// grouped by kind, addressed either by a store-assigned numeric id or by a
// well-known name, and carry an open set of properties.
package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a lookup misses. It is a first-class result,
// callers are expected to branch on it rather than treat it as a failure.
var ErrNotFound = errors.New("entity not found")

// Properties is the schemaless payload of an entity.
type Properties map[string]any

type Entity struct {
	ID         int64
	Name       string
	Properties Properties
}

type EntityStore interface {
	// Get retrieves a named entity.
	Get(ctx context.Context, kind, name string) (Properties, error)
	// Put upserts a named entity, replacing all properties.
	Put(ctx context.Context, kind, name string, props Properties) error

	GetByID(ctx context.Context, kind string, id int64) (Properties, error)
	PutWithAutoID(ctx context.Context, kind string, props Properties) (int64, error)
	UpdateByID(ctx context.Context, kind string, id int64, props Properties) error
	DeleteByID(ctx context.Context, kind string, id int64) error

	ListAll(ctx context.Context, kind string) ([]Entity, error)
	ListByProperty(ctx context.Context, kind, property string, value any) ([]Entity, error)
}
