package queries

import (
	"context"
	"database/sql"
	"errors"

	"foodservice/internal/core/domain/model/kernel"
	"foodservice/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListRestaurantFoodsQueryHandler retrieves a restaurant's menu items.
// An unknown restaurant is reported as not found rather than an empty
// menu.
type ListRestaurantFoodsQueryHandler struct {
	db *gorm.DB
}

// NewListRestaurantFoodsQueryHandler creates a handler for menu listings.
func NewListRestaurantFoodsQueryHandler(db *gorm.DB) ListRestaurantFoodsQueryHandler {
	return ListRestaurantFoodsQueryHandler{db: db}
}

// Handle executes the query.
func (h ListRestaurantFoodsQueryHandler) Handle(
	ctx context.Context,
	query ListRestaurantFoodsQuery,
) ([]ListRestaurantFoodsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var exists int
	err := h.db.WithContext(ctx).Raw(
		`SELECT 1 FROM restaurants WHERE id = ?`, query.RestaurantID().Bytes(),
	).Row().Scan(&exists)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NewObjectNotFoundError("restaurantID", query.RestaurantID())
		}
		return nil, err
	}

	foods := make([]ListRestaurantFoodsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, price, prep_minutes
		FROM foods
		WHERE restaurant_id = ?
		ORDER BY name
	`, query.RestaurantID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resp ListRestaurantFoodsQueryResponse
			id   uuid.UUID
		)

		if err = rows.Scan(&id, &resp.Name, &resp.Price, &resp.PrepMinutes); err != nil {
			return nil, err
		}

		foodID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = foodID

		foods = append(foods, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return foods, nil
}
