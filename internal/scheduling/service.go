// Package scheduling owns the shift domain logic: interval validation, the
// per-worker overlap check, and the conversion between stored UTC instants
// and the configured display timezone.
package scheduling

import (
	"context"
	"errors"
	"time"

	"github.com/rosterdesk/shift-planner/backend/internal/domain"
	"github.com/rosterdesk/shift-planner/backend/internal/repository"
	"github.com/rosterdesk/shift-planner/backend/internal/store"
)

const isoLayout = "2006-01-02T15:04:05-07:00"

type Service struct {
	repository *repository.Repository
}

func NewService(repo *repository.Repository) *Service {
	return &Service{
		repository: repo,
	}
}

// displayLocation resolves the display timezone fresh from settings. The
// result is reused within a single call but never cached across calls.
func (s *Service) displayLocation(ctx context.Context) (*time.Location, error) {
	id, err := s.repository.GetTimezone(ctx)
	if err != nil {
		return nil, err
	}

	return time.LoadLocation(id)
}

func localize(record *domain.ShiftRecord, loc *time.Location) *domain.Shift {
	start := record.StartUTC.In(loc)
	end := record.EndUTC.In(loc)

	return &domain.Shift{
		ID:            record.ID,
		WorkerID:      record.WorkerID,
		Start:         start.Format(isoLayout),
		End:           end.Format(isoLayout),
		DurationHours: end.Sub(start).Seconds() / 3600,
	}
}

func (s *Service) List(ctx context.Context) ([]*domain.Shift, error) {
	records, err := s.repository.GetAllShifts(ctx)
	if err != nil {
		return nil, err
	}

	loc, err := s.displayLocation(ctx)
	if err != nil {
		return nil, err
	}

	shifts := make([]*domain.Shift, 0, len(records))
	for _, record := range records {
		shifts = append(shifts, localize(record, loc))
	}

	return shifts, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Shift, error) {
	record, err := s.repository.GetShift(ctx, id)
	if err != nil {
		return nil, err
	}

	loc, err := s.displayLocation(ctx)
	if err != nil {
		return nil, err
	}

	return localize(record, loc), nil
}

func (s *Service) Create(ctx context.Context, workerID int64, start, end string) (*domain.Shift, error) {
	record, err := s.validate(ctx, 0, workerID, start, end)
	if err != nil {
		return nil, err
	}

	created, err := s.repository.CreateShift(ctx, record)
	if err != nil {
		return nil, err
	}

	loc, err := s.displayLocation(ctx)
	if err != nil {
		return nil, err
	}

	return localize(created, loc), nil
}

// Update replaces the shift's worker and interval wholesale, running the same
// validation as Create except that the shift's own prior record is excluded
// from the overlap scan.
func (s *Service) Update(ctx context.Context, id, workerID int64, start, end string) (*domain.Shift, error) {
	if _, err := s.repository.GetShift(ctx, id); err != nil {
		return nil, err
	}

	record, err := s.validate(ctx, id, workerID, start, end)
	if err != nil {
		return nil, err
	}

	record.ID = id
	if err := s.repository.UpdateShift(ctx, record); err != nil {
		return nil, err
	}

	loc, err := s.displayLocation(ctx)
	if err != nil {
		return nil, err
	}

	return localize(record, loc), nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repository.DeleteShift(ctx, id)
}

// validate runs the full write-side check chain and returns the record ready
// to persist. excludeID removes the shift's own prior record from the overlap
// scan on updates; it is zero on creates.
//
// The interval checks are repeated here even though the API layer already
// rejects malformed payloads: the service does not assume its callers did.
func (s *Service) validate(ctx context.Context, excludeID, workerID int64, start, end string) (*domain.ShiftRecord, error) {
	startUTC, err := ParseTimestamp(start)
	if err != nil {
		return nil, err
	}
	endUTC, err := ParseTimestamp(end)
	if err != nil {
		return nil, err
	}

	if err := ValidateInterval(startUTC, endUTC); err != nil {
		return nil, err
	}

	if _, err := s.repository.GetWorker(ctx, workerID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrWorkerNotFound
		}
		return nil, err
	}

	// linear scan over this worker's shifts; a single worker's shift count is
	// small enough that an interval structure would not pay for itself
	existing, err := s.repository.GetShiftsByWorker(ctx, workerID)
	if err != nil {
		return nil, err
	}
	for _, other := range existing {
		if other.ID == excludeID {
			continue
		}
		if overlaps(startUTC, endUTC, other.StartUTC, other.EndUTC) {
			return nil, ErrShiftOverlap
		}
	}

	// NOTE: the overlap check and the subsequent write are separate store
	// calls with no transaction between them; two concurrent creates for the
	// same worker can both pass the scan. Closing the race needs a
	// conditional write in the store itself.
	return &domain.ShiftRecord{
		WorkerID: workerID,
		StartUTC: startUTC,
		EndUTC:   endUTC,
	}, nil
}
