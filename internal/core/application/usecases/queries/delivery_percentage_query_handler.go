package queries

import (
	"context"

	"foodservice/internal/core/domain/model/order"
	"foodservice/internal/pkg/errs"

	"gorm.io/gorm"
)

// DeliveryPercentageQueryHandler computes the delivered share of a
// restaurant's orders.
type DeliveryPercentageQueryHandler struct {
	db *gorm.DB
}

// NewDeliveryPercentageQueryHandler creates a handler for delivery rate
// reports.
func NewDeliveryPercentageQueryHandler(db *gorm.DB) DeliveryPercentageQueryHandler {
	return DeliveryPercentageQueryHandler{db: db}
}

// Handle executes the query. A restaurant with no orders at all has no
// meaningful percentage, so the report is a not-found error rather than
// a division by zero hidden as 0%.
func (h DeliveryPercentageQueryHandler) Handle(
	ctx context.Context,
	query DeliveryPercentageQuery,
) (DeliveryPercentageQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return DeliveryPercentageQueryResponse{}, err
	}

	restaurantID, err := restaurantIDForOwner(ctx, h.db, query.OwnerID())
	if err != nil {
		return DeliveryPercentageQueryResponse{}, err
	}

	resp := DeliveryPercentageQueryResponse{RestaurantID: restaurantID}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = ?)
		FROM orders
		WHERE restaurant_id = ?
	`, order.Delivered.String(), restaurantID.Bytes()).Row()

	if err = row.Scan(&resp.TotalOrders, &resp.DeliveredCount); err != nil {
		return DeliveryPercentageQueryResponse{}, err
	}

	if resp.TotalOrders == 0 {
		return DeliveryPercentageQueryResponse{}, errs.NewObjectNotFoundError("orders", restaurantID)
	}

	resp.Percentage = 100 * float64(resp.DeliveredCount) / float64(resp.TotalOrders)
	return resp, nil
}
