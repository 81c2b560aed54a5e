package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rosterdesk/shift-planner/backend/internal/store"
)

func TestCreateWorker_AssignsFreshIDs(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	first, err := repo.CreateWorker(ctx, "John Doe")
	require.NoError(t, err)
	second, err := repo.CreateWorker(ctx, "Jane Smith")
	require.NoError(t, err)

	assert.NotZero(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, "John Doe", first.Name)
}

func TestGetWorker(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	created, err := repo.CreateWorker(ctx, "John Doe")
	require.NoError(t, err)

	got, err := repo.GetWorker(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	_, err = repo.GetWorker(ctx, 999)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestGetAllWorkers(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	workers, err := repo.GetAllWorkers(ctx)
	require.NoError(t, err)
	assert.Empty(t, workers)

	_, err = repo.CreateWorker(ctx, "John Doe")
	require.NoError(t, err)
	_, err = repo.CreateWorker(ctx, "Jane Smith")
	require.NoError(t, err)

	workers, err = repo.GetAllWorkers(ctx)
	require.NoError(t, err)
	require.Len(t, workers, 2)
	assert.Equal(t, "John Doe", workers[0].Name)
	assert.Equal(t, "Jane Smith", workers[1].Name)
}

func TestUpdateWorker(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	created, err := repo.CreateWorker(ctx, "John Doe")
	require.NoError(t, err)

	updated, err := repo.UpdateWorker(ctx, created.ID, "John Doe Updated")
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "John Doe Updated", updated.Name)

	got, err := repo.GetWorker(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "John Doe Updated", got.Name)

	_, err = repo.UpdateWorker(ctx, 999, "Nobody")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestDeleteWorker(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	created, err := repo.CreateWorker(ctx, "John Doe")
	require.NoError(t, err)

	require.NoError(t, repo.DeleteWorker(ctx, created.ID))

	_, err = repo.GetWorker(ctx, created.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	assert.ErrorIs(t, repo.DeleteWorker(ctx, created.ID), store.ErrNotFound)
}

func TestDeleteWorker_LeavesShiftsInPlace(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	worker, err := repo.CreateWorker(ctx, "John Doe")
	require.NoError(t, err)

	record := testShiftRecord(worker.ID)
	created, err := repo.CreateShift(ctx, record)
	require.NoError(t, err)

	require.NoError(t, repo.DeleteWorker(ctx, worker.ID))

	// no cascade: the shift still exists and still references the worker
	got, err := repo.GetShift(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, worker.ID, got.WorkerID)
}
