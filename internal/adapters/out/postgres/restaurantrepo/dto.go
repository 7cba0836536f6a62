// Package restaurantrepo provides data transfer objects and mapping
// functions for restaurant and food persistence.
package restaurantrepo

import (
	"foodservice/internal/core/domain/model/kernel"
	"foodservice/internal/core/domain/model/restaurant"

	"github.com/google/uuid"
)

// RestaurantDTO represents the database structure for restaurant
// aggregates. The operating window is stored as minute-of-day counts so
// the open-restaurants query can compare against the current time in SQL.
type RestaurantDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID         uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Name            string
	RestaurantType  string `gorm:"type:varchar(20)"`
	OpensAtMinutes  int    `gorm:"type:smallint"`
	ClosesAtMinutes int    `gorm:"type:smallint"`
	DeliveryCost    float64
	DeliveryMinutes int
}

// TableName specifies the database table name for restaurant entities.
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// FoodDTO represents the database structure for menu items.
type FoodDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID `gorm:"type:uuid;index"`
	Name         string    `gorm:"index"`
	Price        float64
	PrepMinutes  int
}

// TableName specifies the database table name for food entities.
func (FoodDTO) TableName() string {
	return "foods"
}

func restaurantFromDomain(aggregate *restaurant.Restaurant) RestaurantDTO {
	return RestaurantDTO{
		ID:              aggregate.ID().Bytes(),
		OwnerID:         aggregate.OwnerID().Bytes(),
		Name:            aggregate.Name(),
		RestaurantType:  string(aggregate.RestaurantType()),
		OpensAtMinutes:  aggregate.OpensAt().Minutes(),
		ClosesAtMinutes: aggregate.ClosesAt().Minutes(),
		DeliveryCost:    aggregate.DeliveryCost(),
		DeliveryMinutes: aggregate.DeliveryMinutes(),
	}
}

func restaurantToDomain(dto RestaurantDTO) (*restaurant.Restaurant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	opensAt, err := kernel.TimeOfDayFromMinutes(dto.OpensAtMinutes)
	if err != nil {
		return nil, err
	}
	closesAt, err := kernel.TimeOfDayFromMinutes(dto.ClosesAtMinutes)
	if err != nil {
		return nil, err
	}

	return restaurant.RestoreRestaurant(
		id, ownerID, dto.Name, restaurant.Type(dto.RestaurantType),
		opensAt, closesAt, dto.DeliveryCost, dto.DeliveryMinutes,
	)
}

func foodFromDomain(food *restaurant.Food) FoodDTO {
	return FoodDTO{
		ID:           food.ID().Bytes(),
		RestaurantID: food.RestaurantID().Bytes(),
		Name:         food.Name(),
		Price:        food.Price(),
		PrepMinutes:  food.PrepMinutes(),
	}
}

func foodToDomain(dto FoodDTO) (*restaurant.Food, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	return restaurant.RestoreFood(id, restaurantID, dto.Name, dto.Price, dto.PrepMinutes)
}
