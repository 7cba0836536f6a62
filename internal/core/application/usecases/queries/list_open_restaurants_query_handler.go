package queries

import (
	"context"

	"foodservice/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListOpenRestaurantsQueryHandler retrieves currently open restaurants.
// The minute-of-day comparison runs in SQL so the filter uses the index
// instead of hydrating every restaurant.
type ListOpenRestaurantsQueryHandler struct {
	db *gorm.DB
}

// NewListOpenRestaurantsQueryHandler creates a handler for open
// restaurant listings.
func NewListOpenRestaurantsQueryHandler(db *gorm.DB) ListOpenRestaurantsQueryHandler {
	return ListOpenRestaurantsQueryHandler{db: db}
}

// Handle executes the query. A window whose closing minute precedes its
// opening minute spans midnight, so the check inverts to an OR.
func (h ListOpenRestaurantsQueryHandler) Handle(
	ctx context.Context,
	query ListOpenRestaurantsQuery,
) ([]ListOpenRestaurantsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	minute := query.At().Hour()*60 + query.At().Minute()
	restaurants := make([]ListOpenRestaurantsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			restaurant_type,
			opens_at_minutes,
			closes_at_minutes,
			delivery_cost,
			delivery_minutes
		FROM restaurants
		WHERE (opens_at_minutes <= closes_at_minutes AND ? BETWEEN opens_at_minutes AND closes_at_minutes)
		   OR (opens_at_minutes > closes_at_minutes AND (? >= opens_at_minutes OR ? <= closes_at_minutes))
		ORDER BY name
	`, minute, minute, minute).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resp        ListOpenRestaurantsQueryResponse
			id          uuid.UUID
			opensAt     int
			closesAt    int
		)

		if err = rows.Scan(&id, &resp.Name, &resp.RestaurantType, &opensAt, &closesAt,
			&resp.DeliveryCost, &resp.DeliveryMinutes); err != nil {
			return nil, err
		}

		restaurantID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = restaurantID

		open, todErr := kernel.TimeOfDayFromMinutes(opensAt)
		if todErr != nil {
			return nil, todErr
		}
		closeAt, todErr := kernel.TimeOfDayFromMinutes(closesAt)
		if todErr != nil {
			return nil, todErr
		}
		resp.OpensAt = open.String()
		resp.ClosesAt = closeAt.String()

		restaurants = append(restaurants, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return restaurants, nil
}
