package queries

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// PlatformProfitRangeQueryHandler aggregates the platform's commission
// per calendar day. The SQL groups the day's orders; days with no rows
// are filled in afterwards so the caller always gets a contiguous
// series.
type PlatformProfitRangeQueryHandler struct {
	db *gorm.DB
}

// NewPlatformProfitRangeQueryHandler creates a handler for ranged profit
// reports.
func NewPlatformProfitRangeQueryHandler(db *gorm.DB) PlatformProfitRangeQueryHandler {
	return PlatformProfitRangeQueryHandler{db: db}
}

// Handle executes the aggregation and zero-fills missing days.
func (h PlatformProfitRangeQueryHandler) Handle(
	ctx context.Context,
	query PlatformProfitRangeQuery,
) ([]DailyPlatformProfitQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			created_at::date,
			COALESCE(SUM(admin_share_food), 0),
			COALESCE(SUM(admin_share_delivery), 0),
			COALESCE(SUM(total_admin_share), 0),
			COUNT(*)
		FROM orders
		WHERE created_at::date BETWEEN ? AND ?
		GROUP BY created_at::date
		ORDER BY created_at::date
	`, query.From().Format("2006-01-02"),
		query.To().Format("2006-01-02"),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byDay := make(map[string]DailyPlatformProfitQueryResponse)
	for rows.Next() {
		var (
			day  time.Time
			resp DailyPlatformProfitQueryResponse
		)

		if err = rows.Scan(&day, &resp.FoodProfit, &resp.DeliveryProfit,
			&resp.TotalProfit, &resp.OrderCount); err != nil {
			return nil, err
		}

		resp.Date = day
		byDay[day.Format("2006-01-02")] = resp
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	from := query.From().Truncate(24 * time.Hour)
	to := query.To().Truncate(24 * time.Hour)

	series := make([]DailyPlatformProfitQueryResponse, 0)
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		if resp, ok := byDay[day.Format("2006-01-02")]; ok {
			resp.Date = day
			series = append(series, resp)
			continue
		}
		series = append(series, DailyPlatformProfitQueryResponse{Date: day})
	}

	return series, nil
}
