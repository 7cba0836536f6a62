package queries

import (
	"context"

	"foodservice/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SearchFoodsQueryHandler searches menu items by name substring.
type SearchFoodsQueryHandler struct {
	db *gorm.DB
}

// NewSearchFoodsQueryHandler creates a handler for food search.
func NewSearchFoodsQueryHandler(db *gorm.DB) SearchFoodsQueryHandler {
	return SearchFoodsQueryHandler{db: db}
}

// Handle executes the search. Matching is case-insensitive and the term
// may appear anywhere in the name.
func (h SearchFoodsQueryHandler) Handle(
	ctx context.Context,
	query SearchFoodsQuery,
) ([]SearchFoodsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	foods := make([]SearchFoodsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			f.id,
			f.name,
			f.price,
			f.prep_minutes,
			r.id,
			r.name
		FROM foods f
		JOIN restaurants r ON r.id = f.restaurant_id
		WHERE f.name ILIKE ?
		ORDER BY f.name, r.name
	`, "%"+query.Name()+"%").Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resp         SearchFoodsQueryResponse
			foodID       uuid.UUID
			restaurantID uuid.UUID
		)

		if err = rows.Scan(&foodID, &resp.Name, &resp.Price, &resp.PrepMinutes,
			&restaurantID, &resp.RestaurantName); err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(foodID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = id

		rid, idErr := kernel.UUIDFromBytes(restaurantID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.RestaurantID = rid

		foods = append(foods, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return foods, nil
}
