// Package orderrepo provides data transfer objects and mapping functions
// for order persistence. It implements the repository pattern for the
// order aggregate, handling the conversion between domain entities and
// database rows.
package orderrepo

import (
	"time"

	"foodservice/internal/core/domain/model/kernel"
	"foodservice/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order
// aggregates. Indexed for the lookups the lifecycle and the reports
// need: by customer, by restaurant, by status, and by creation date.
type OrderDTO struct {
	ID           uuid.UUID     `gorm:"type:uuid;primaryKey"`
	CustomerID   uuid.UUID     `gorm:"type:uuid;index"`
	FoodID       uuid.UUID     `gorm:"type:uuid"`
	RestaurantID uuid.UUID     `gorm:"type:uuid;index"`
	Status       string        `gorm:"type:varchar(16);index"`
	Settlement   SettlementDTO `gorm:"embedded"`
	CreatedAt    time.Time     `gorm:"index"`
	ModifiedAt   time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// SettlementDTO stores the six share fields computed at order creation.
// Column names match the report queries' aggregation targets.
type SettlementDTO struct {
	AdminShareFood          float64
	AdminShareDelivery      float64
	TotalAdminShare         float64
	RestaurantShareFood     float64
	RestaurantShareDelivery float64
	TotalRestaurantShare    float64
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	s := aggregate.Settlement()

	return OrderDTO{
		ID:           aggregate.ID().Bytes(),
		CustomerID:   aggregate.CustomerID().Bytes(),
		FoodID:       aggregate.FoodID().Bytes(),
		RestaurantID: aggregate.RestaurantID().Bytes(),
		Status:       aggregate.Status().String(),
		Settlement: SettlementDTO{
			AdminShareFood:          s.AdminShareFood,
			AdminShareDelivery:      s.AdminShareDelivery,
			TotalAdminShare:         s.TotalAdminShare,
			RestaurantShareFood:     s.RestaurantShareFood,
			RestaurantShareDelivery: s.RestaurantShareDelivery,
			TotalRestaurantShare:    s.TotalRestaurantShare,
		},
		CreatedAt:  aggregate.CreatedAt(),
		ModifiedAt: aggregate.ModifiedAt(),
	}
}

// toDomain converts a database row to an order aggregate, re-validating
// identifiers, status, and settlement consistency via RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	foodID, err := kernel.UUIDFromBytes(dto.FoodID[:])
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	settlement := order.Settlement{
		AdminShareFood:          dto.Settlement.AdminShareFood,
		AdminShareDelivery:      dto.Settlement.AdminShareDelivery,
		TotalAdminShare:         dto.Settlement.TotalAdminShare,
		RestaurantShareFood:     dto.Settlement.RestaurantShareFood,
		RestaurantShareDelivery: dto.Settlement.RestaurantShareDelivery,
		TotalRestaurantShare:    dto.Settlement.TotalRestaurantShare,
	}

	return order.RestoreOrder(id, customerID, foodID, restaurantID, settlement, status, dto.CreatedAt, dto.ModifiedAt)
}
