package queries

import (
	"context"

	"foodservice/internal/core/domain/model/kernel"
	"foodservice/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RestaurantInvoiceQueryHandler builds the per-order payout statement
// for one day.
type RestaurantInvoiceQueryHandler struct {
	db *gorm.DB
}

// NewRestaurantInvoiceQueryHandler creates a handler for invoice reads.
func NewRestaurantInvoiceQueryHandler(db *gorm.DB) RestaurantInvoiceQueryHandler {
	return RestaurantInvoiceQueryHandler{db: db}
}

// Handle executes the query. A day without delivered orders produces an
// empty invoice with a zero total.
func (h RestaurantInvoiceQueryHandler) Handle(
	ctx context.Context,
	query RestaurantInvoiceQuery,
) (RestaurantInvoiceQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return RestaurantInvoiceQueryResponse{}, err
	}

	restaurantID, err := restaurantIDForOwner(ctx, h.db, query.OwnerID())
	if err != nil {
		return RestaurantInvoiceQueryResponse{}, err
	}

	resp := RestaurantInvoiceQueryResponse{
		RestaurantID: restaurantID,
		Date:         query.Date(),
		Lines:        make([]RestaurantInvoiceLine, 0),
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			f.name,
			o.total_restaurant_share,
			o.created_at
		FROM orders o
		JOIN foods f ON f.id = o.food_id
		WHERE o.restaurant_id = ?
		  AND o.status = ?
		  AND o.created_at::date = ?
		ORDER BY o.created_at
	`, restaurantID.Bytes(), order.Delivered.String(), query.Date().Format("2006-01-02")).Rows()
	if err != nil {
		return RestaurantInvoiceQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			line RestaurantInvoiceLine
			id   uuid.UUID
		)

		if err = rows.Scan(&id, &line.FoodName, &line.Amount, &line.CreatedAt); err != nil {
			return RestaurantInvoiceQueryResponse{}, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return RestaurantInvoiceQueryResponse{}, idErr
		}
		line.OrderID = orderID

		resp.Lines = append(resp.Lines, line)
		resp.Total += line.Amount
	}

	if err = rows.Err(); err != nil {
		return RestaurantInvoiceQueryResponse{}, err
	}

	return resp, nil
}
