package jobs

import (
	"context"
	"log/slog"

	"hireboard/internal/core/application/board"

	"github.com/robfig/cron/v3"
)

// BoardRefreshJob periodically re-fetches the loaded date range so the board
// converges on server state: moves made elsewhere appear, and any optimistic
// state that never resolved is superseded by the authoritative records.
type BoardRefreshJob struct {
	store    *board.Store
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewBoardRefreshJob creates a refresh job on the given cron schedule,
// e.g. "@every 1m".
func NewBoardRefreshJob(store *board.Store, schedule string, logger *slog.Logger) *BoardRefreshJob {
	return &BoardRefreshJob{
		store:    store,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "board_refresh_job"),
	}
}

// Start begins the periodic refresh.
func (j *BoardRefreshJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		rng := j.store.DateRange()
		if rng.Validate() != nil {
			// Nothing loaded yet; nothing to refresh.
			return
		}

		if refreshErr := j.store.LoadRange(ctx, rng); refreshErr != nil {
			// The store keeps its previous state on a failed load, so a
			// transient fetch failure costs nothing but this log line.
			j.logger.ErrorContext(ctx, "Board refresh failed", "range", rng, "error", refreshErr)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Board refresh job started", "schedule", j.schedule)
	return nil
}

// Stop stops the refresh job.
func (j *BoardRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Board refresh job stopped")
}
