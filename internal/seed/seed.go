package seed

import (
	"context"
	"log/slog"
	"time"

	"github.com/rosterdesk/shift-planner/backend/internal/repository"
	"github.com/rosterdesk/shift-planner/backend/internal/scheduling"
	"github.com/rosterdesk/shift-planner/backend/internal/utils"
)

// SeedWorkers inserts n randomly named workers.
func SeedWorkers(ctx context.Context, repo *repository.Repository, n int) {
	for i := 0; i < n; i++ {
		worker, err := repo.CreateWorker(ctx, utils.GenerateRandomWorkerName())
		if err != nil {
			slog.Error("unable to create worker", "error", err)
			return
		}
		slog.Info("created worker", "id", worker.ID, "name", worker.Name)
	}
}

// SeedShifts assigns each worker up to shiftsPerWorker consecutive day shifts
// starting tomorrow. Going through the service keeps the seeded data inside
// the overlap and duration invariants.
func SeedShifts(ctx context.Context, repo *repository.Repository, shifts *scheduling.Service, shiftsPerWorker int) {
	workers, err := repo.GetAllWorkers(ctx)
	if err != nil {
		slog.Error("unable to list workers", "error", err)
		return
	}

	day := time.Now().UTC().AddDate(0, 0, 1).Truncate(24 * time.Hour)

	for _, worker := range workers {
		for i := 0; i < shiftsPerWorker; i++ {
			start := day.AddDate(0, 0, i).Add(9 * time.Hour)
			end := start.Add(8 * time.Hour)

			shift, err := shifts.Create(ctx, worker.ID, start.Format(time.RFC3339), end.Format(time.RFC3339))
			if err != nil {
				slog.Error("unable to create shift", "workerID", worker.ID, "error", err)
				continue
			}
			slog.Info("created shift", "id", shift.ID, "workerID", worker.ID, "start", shift.Start, "end", shift.End)
		}
	}
}
