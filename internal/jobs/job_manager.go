package jobs

import (
	"fmt"
	"log/slog"

	"foodservice/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	settlementSummaryJob *SettlementSummaryJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	dailyProfitHandler queries.DailyPlatformProfitQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		settlementSummaryJob: NewSettlementSummaryJob(dailyProfitHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.settlementSummaryJob.Start(); err != nil {
		return fmt.Errorf("failed to start settlement summary job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.settlementSummaryJob.Stop()
}
