package queries

import (
	"context"

	"foodservice/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// RestaurantIncomeQueryHandler aggregates a restaurant's gross takings
// and the commission withheld from them.
type RestaurantIncomeQueryHandler struct {
	db *gorm.DB
}

// NewRestaurantIncomeQueryHandler creates a handler for restaurant
// income reports.
func NewRestaurantIncomeQueryHandler(db *gorm.DB) RestaurantIncomeQueryHandler {
	return RestaurantIncomeQueryHandler{db: db}
}

// Handle executes the aggregation over delivered orders.
func (h RestaurantIncomeQueryHandler) Handle(
	ctx context.Context,
	query RestaurantIncomeQuery,
) (RestaurantIncomeQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return RestaurantIncomeQueryResponse{}, err
	}

	restaurantID, err := restaurantIDForOwner(ctx, h.db, query.OwnerID())
	if err != nil {
		return RestaurantIncomeQueryResponse{}, err
	}

	resp := RestaurantIncomeQueryResponse{RestaurantID: restaurantID}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(total_admin_share + total_restaurant_share), 0),
			COALESCE(SUM(total_admin_share), 0),
			COALESCE(SUM(total_restaurant_share), 0),
			COUNT(*)
		FROM orders
		WHERE restaurant_id = ? AND status = ?
	`, restaurantID.Bytes(), order.Delivered.String()).Row()

	if err = row.Scan(&resp.GrossIncome, &resp.Commission, &resp.NetIncome, &resp.OrderCount); err != nil {
		return RestaurantIncomeQueryResponse{}, err
	}

	return resp, nil
}
