package repository

import (
	"context"

	"github.com/rosterdesk/shift-planner/backend/internal/domain"
	"github.com/rosterdesk/shift-planner/backend/internal/store"
)

func workerFromProperties(id int64, props store.Properties) *domain.Worker {
	name, _ := props["name"].(string)
	return &domain.Worker{
		ID:   id,
		Name: name,
	}
}

func (r *Repository) GetAllWorkers(ctx context.Context) ([]*domain.Worker, error) {
	entities, err := r.store.ListAll(ctx, kindWorker)
	if err != nil {
		return nil, err
	}

	workers := make([]*domain.Worker, 0, len(entities))
	for _, entity := range entities {
		workers = append(workers, workerFromProperties(entity.ID, entity.Properties))
	}

	return workers, nil
}

func (r *Repository) CreateWorker(ctx context.Context, name string) (*domain.Worker, error) {
	id, err := r.store.PutWithAutoID(ctx, kindWorker, store.Properties{"name": name})
	if err != nil {
		return nil, err
	}

	return &domain.Worker{ID: id, Name: name}, nil
}

func (r *Repository) GetWorker(ctx context.Context, id int64) (*domain.Worker, error) {
	props, err := r.store.GetByID(ctx, kindWorker, id)
	if err != nil {
		return nil, err
	}

	return workerFromProperties(id, props), nil
}

func (r *Repository) UpdateWorker(ctx context.Context, id int64, name string) (*domain.Worker, error) {
	if err := r.store.UpdateByID(ctx, kindWorker, id, store.Properties{"name": name}); err != nil {
		return nil, err
	}

	return &domain.Worker{ID: id, Name: name}, nil
}

func (r *Repository) DeleteWorker(ctx context.Context, id int64) error {
	// shifts referencing this worker are left in place, see the data model
	// notes in DESIGN.md
	return r.store.DeleteByID(ctx, kindWorker, id)
}
