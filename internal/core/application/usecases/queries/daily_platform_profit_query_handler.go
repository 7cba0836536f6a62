package queries

import (
	"context"

	"gorm.io/gorm"
)

// DailyPlatformProfitQueryHandler aggregates the platform's commission
// for one day from the settlement snapshots stored on each order.
type DailyPlatformProfitQueryHandler struct {
	db *gorm.DB
}

// NewDailyPlatformProfitQueryHandler creates a handler for daily profit
// reports.
func NewDailyPlatformProfitQueryHandler(db *gorm.DB) DailyPlatformProfitQueryHandler {
	return DailyPlatformProfitQueryHandler{db: db}
}

// Handle executes the aggregation. A day without orders yields zero
// totals, not an error.
func (h DailyPlatformProfitQueryHandler) Handle(
	ctx context.Context,
	query DailyPlatformProfitQuery,
) (DailyPlatformProfitQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return DailyPlatformProfitQueryResponse{}, err
	}

	resp := DailyPlatformProfitQueryResponse{Date: query.Date()}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(admin_share_food), 0),
			COALESCE(SUM(admin_share_delivery), 0),
			COALESCE(SUM(total_admin_share), 0),
			COUNT(*)
		FROM orders
		WHERE created_at::date = ?
	`, query.Date().Format("2006-01-02")).Row()

	err := row.Scan(&resp.FoodProfit, &resp.DeliveryProfit, &resp.TotalProfit, &resp.OrderCount)
	if err != nil {
		return DailyPlatformProfitQueryResponse{}, err
	}

	return resp, nil
}
