package queries

import (
	"context"
	"database/sql"
	"errors"

	"foodservice/internal/core/domain/model/kernel"
	"foodservice/internal/core/domain/model/order"
	"foodservice/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RestaurantProfitQueryHandler aggregates a restaurant's net share over
// delivered orders.
type RestaurantProfitQueryHandler struct {
	db *gorm.DB
}

// NewRestaurantProfitQueryHandler creates a handler for restaurant
// profit reports.
func NewRestaurantProfitQueryHandler(db *gorm.DB) RestaurantProfitQueryHandler {
	return RestaurantProfitQueryHandler{db: db}
}

// Handle resolves the owner's restaurant and aggregates its delivered
// orders. An account without a restaurant gets a not-found error.
func (h RestaurantProfitQueryHandler) Handle(
	ctx context.Context,
	query RestaurantProfitQuery,
) (RestaurantProfitQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return RestaurantProfitQueryResponse{}, err
	}

	restaurantID, err := restaurantIDForOwner(ctx, h.db, query.OwnerID())
	if err != nil {
		return RestaurantProfitQueryResponse{}, err
	}

	resp := RestaurantProfitQueryResponse{RestaurantID: restaurantID}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(restaurant_share_food), 0),
			COALESCE(SUM(restaurant_share_delivery), 0),
			COALESCE(SUM(total_restaurant_share), 0),
			COUNT(*)
		FROM orders
		WHERE restaurant_id = ? AND status = ?
	`, restaurantID.Bytes(), order.Delivered.String()).Row()

	if err = row.Scan(&resp.FoodProfit, &resp.DeliveryProfit, &resp.TotalProfit, &resp.OrderCount); err != nil {
		return RestaurantProfitQueryResponse{}, err
	}

	return resp, nil
}

// restaurantIDForOwner maps an owner account to its restaurant. Shared
// by the owner-scoped report handlers.
func restaurantIDForOwner(ctx context.Context, db *gorm.DB, ownerID kernel.UUID) (kernel.UUID, error) {
	var id uuid.UUID

	err := db.WithContext(ctx).Raw(
		`SELECT id FROM restaurants WHERE owner_id = ?`, ownerID.Bytes(),
	).Row().Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return kernel.UUID{}, errs.NewObjectNotFoundError("ownerID", ownerID)
		}
		return kernel.UUID{}, err
	}

	return kernel.UUIDFromBytes(id[:])
}
