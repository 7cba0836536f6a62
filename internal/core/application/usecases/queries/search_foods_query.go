package queries

import (
	"errors"

	"foodservice/internal/core/domain/model/kernel"
	"foodservice/internal/pkg/errs"
	"foodservice/internal/pkg/guard"
)

var ErrSearchFoodsQueryIsNotConstructed = errors.New(
	"SearchFoodsQuery must be created via NewSearchFoodsQuery constructor",
)

// SearchFoodsQuery finds menu items by name substring across all
// restaurants.
type SearchFoodsQuery struct {
	name string

	guard guard.ConstructorGuard
}

// NewSearchFoodsQuery creates a case-insensitive food search.
func NewSearchFoodsQuery(name string) (SearchFoodsQuery, error) {
	if name == "" {
		return SearchFoodsQuery{}, errs.NewValueIsRequiredError("name")
	}

	return SearchFoodsQuery{
		name:  name,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q SearchFoodsQuery) Validate() error {
	return q.guard.Validate(ErrSearchFoodsQueryIsNotConstructed)
}

// Name returns the search term.
func (q SearchFoodsQuery) Name() string {
	return q.name
}

// SearchFoodsQueryResponse describes one matching menu item with the
// restaurant serving it.
type SearchFoodsQueryResponse struct {
	ID             kernel.UUID
	Name           string
	Price          float64
	PrepMinutes    int
	RestaurantID   kernel.UUID
	RestaurantName string
}
