package queries

import (
	"context"

	"foodservice/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListCustomerRestaurantOrdersQueryHandler retrieves a customer's orders
// at one restaurant, newest first.
type ListCustomerRestaurantOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListCustomerRestaurantOrdersQueryHandler creates a handler for
// customer order history.
func NewListCustomerRestaurantOrdersQueryHandler(db *gorm.DB) ListCustomerRestaurantOrdersQueryHandler {
	return ListCustomerRestaurantOrdersQueryHandler{db: db}
}

// Handle executes the query.
func (h ListCustomerRestaurantOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListCustomerRestaurantOrdersQuery,
) ([]ListCustomerRestaurantOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]ListCustomerRestaurantOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			f.name,
			o.status,
			o.total_admin_share + o.total_restaurant_share,
			o.created_at
		FROM orders o
		JOIN foods f ON f.id = o.food_id
		WHERE o.customer_id = ? AND o.restaurant_id = ?
		ORDER BY o.created_at DESC
	`, query.CustomerID().Bytes(), query.RestaurantID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resp ListCustomerRestaurantOrdersQueryResponse
			id   uuid.UUID
		)

		if err = rows.Scan(&id, &resp.FoodName, &resp.Status, &resp.TotalPrice, &resp.CreatedAt); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
