package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"foodservice/internal/core/domain/model/kernel"
	"foodservice/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderDetailsQueryHandler reads a customer's order with the food and
// restaurant names resolved. An order placed by a different customer is
// reported as not found.
type GetOrderDetailsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderDetailsQueryHandler creates a handler for order detail reads.
func NewGetOrderDetailsQueryHandler(db *gorm.DB) GetOrderDetailsQueryHandler {
	return GetOrderDetailsQueryHandler{db: db}
}

// Handle executes the query.
func (h GetOrderDetailsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderDetailsQuery,
) (GetOrderDetailsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			f.name,
			r.name,
			o.status,
			o.total_admin_share + o.total_restaurant_share,
			o.created_at,
			o.modified_at
		FROM orders o
		JOIN foods f ON f.id = o.food_id
		JOIN restaurants r ON r.id = o.restaurant_id
		WHERE o.id = ? AND o.customer_id = ?
	`, query.OrderID().Bytes(), query.CustomerID().Bytes()).Row()

	var (
		id         uuid.UUID
		resp       GetOrderDetailsQueryResponse
		createdAt  time.Time
		modifiedAt time.Time
	)

	err := row.Scan(&id, &resp.FoodName, &resp.RestaurantName, &resp.Status, &resp.TotalPrice, &createdAt, &modifiedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderDetailsQueryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
		}
		return GetOrderDetailsQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}

	resp.ID = orderID
	resp.CreatedAt = createdAt
	resp.ModifiedAt = modifiedAt
	return resp, nil
}
