package jobs

import (
	"context"
	"log/slog"
	"time"

	"foodservice/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// settlementSummarySchedule fires at 00:05 so the previous day is
// complete when the summary runs.
const settlementSummarySchedule = "0 5 0 * * *"

// SettlementSummaryJob logs the platform's commission totals for the
// previous calendar day. The numbers come from the same query the
// reporting API serves, so the log line and the API never disagree.
type SettlementSummaryJob struct {
	handler queries.DailyPlatformProfitQueryHandler
	cron    *cron.Cron
	clock   func() time.Time
	logger  *slog.Logger
}

// NewSettlementSummaryJob creates the nightly settlement summary job.
func NewSettlementSummaryJob(handler queries.DailyPlatformProfitQueryHandler, logger *slog.Logger) *SettlementSummaryJob {
	return &SettlementSummaryJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		clock:   time.Now,
		logger:  logger.With("component", "settlement_summary_job"),
	}
}

// Start schedules the job to run nightly.
func (j *SettlementSummaryJob) Start() error {
	_, err := j.cron.AddFunc(settlementSummarySchedule, j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Settlement summary job started (running nightly)")
	return nil
}

// Stop stops the job.
func (j *SettlementSummaryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Settlement summary job stopped")
}

func (j *SettlementSummaryJob) run() {
	ctx := context.Background()
	day := j.clock().AddDate(0, 0, -1)

	query, err := queries.NewDailyPlatformProfitQuery(day)
	if err != nil {
		j.logger.ErrorContext(ctx, "Settlement summary job failed to build query", "error", err)
		return
	}

	summary, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Settlement summary job failed", "error", err)
		return
	}

	j.logger.InfoContext(ctx, "Daily settlement summary",
		"date", day.Format("2006-01-02"),
		"food_profit", summary.FoodProfit,
		"delivery_profit", summary.DeliveryProfit,
		"total_profit", summary.TotalProfit,
		"order_count", summary.OrderCount,
	)
}
