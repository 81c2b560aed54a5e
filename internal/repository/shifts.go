package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/rosterdesk/shift-planner/backend/internal/domain"
	"github.com/rosterdesk/shift-planner/backend/internal/store"
)

// Property names of the persisted shift record. Instants are stored as
// RFC 3339 strings in UTC.
const (
	propWorkerID = "worker_id"
	propStartUTC = "start_utc"
	propEndUTC   = "end_utc"
)

func shiftRecordFromProperties(id int64, props store.Properties) (*domain.ShiftRecord, error) {
	workerID, ok := props[propWorkerID].(float64)
	if !ok {
		return nil, fmt.Errorf("shift %d: missing or malformed %s", id, propWorkerID)
	}

	start, err := instantFromProperty(props, propStartUTC)
	if err != nil {
		return nil, fmt.Errorf("shift %d: %w", id, err)
	}
	end, err := instantFromProperty(props, propEndUTC)
	if err != nil {
		return nil, fmt.Errorf("shift %d: %w", id, err)
	}

	return &domain.ShiftRecord{
		ID:       id,
		WorkerID: int64(workerID),
		StartUTC: start,
		EndUTC:   end,
	}, nil
}

func instantFromProperty(props store.Properties, property string) (time.Time, error) {
	raw, ok := props[property].(string)
	if !ok {
		return time.Time{}, fmt.Errorf("missing or malformed %s", property)
	}

	instant, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("malformed %s: %w", property, err)
	}

	return instant.UTC(), nil
}

func shiftRecordProperties(record *domain.ShiftRecord) store.Properties {
	return store.Properties{
		propWorkerID: record.WorkerID,
		propStartUTC: record.StartUTC.UTC().Format(time.RFC3339Nano),
		propEndUTC:   record.EndUTC.UTC().Format(time.RFC3339Nano),
	}
}

func (r *Repository) GetAllShifts(ctx context.Context) ([]*domain.ShiftRecord, error) {
	entities, err := r.store.ListAll(ctx, kindShift)
	if err != nil {
		return nil, err
	}

	return shiftRecordsFromEntities(entities)
}

// GetShiftsByWorker returns every shift assigned to the worker, the input of
// the overlap scan.
func (r *Repository) GetShiftsByWorker(ctx context.Context, workerID int64) ([]*domain.ShiftRecord, error) {
	entities, err := r.store.ListByProperty(ctx, kindShift, propWorkerID, workerID)
	if err != nil {
		return nil, err
	}

	return shiftRecordsFromEntities(entities)
}

func shiftRecordsFromEntities(entities []store.Entity) ([]*domain.ShiftRecord, error) {
	records := make([]*domain.ShiftRecord, 0, len(entities))
	for _, entity := range entities {
		record, err := shiftRecordFromProperties(entity.ID, entity.Properties)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

func (r *Repository) GetShift(ctx context.Context, id int64) (*domain.ShiftRecord, error) {
	props, err := r.store.GetByID(ctx, kindShift, id)
	if err != nil {
		return nil, err
	}

	return shiftRecordFromProperties(id, props)
}

func (r *Repository) CreateShift(ctx context.Context, record *domain.ShiftRecord) (*domain.ShiftRecord, error) {
	id, err := r.store.PutWithAutoID(ctx, kindShift, shiftRecordProperties(record))
	if err != nil {
		return nil, err
	}

	created := *record
	created.ID = id

	return &created, nil
}

func (r *Repository) UpdateShift(ctx context.Context, record *domain.ShiftRecord) error {
	return r.store.UpdateByID(ctx, kindShift, record.ID, shiftRecordProperties(record))
}

func (r *Repository) DeleteShift(ctx context.Context, id int64) error {
	return r.store.DeleteByID(ctx, kindShift, id)
}
