package queries

import (
	"errors"
	"time"

	"foodservice/internal/core/domain/model/kernel"
	"foodservice/internal/pkg/errs"
	"foodservice/internal/pkg/guard"
)

var ErrRestaurantInvoiceQueryIsNotConstructed = errors.New(
	"RestaurantInvoiceQuery must be created via NewRestaurantInvoiceQuery constructor",
)

// RestaurantInvoiceQuery produces a per-order payout statement for one
// calendar day: every delivered order with the restaurant's share of it,
// plus the day's total.
type RestaurantInvoiceQuery struct {
	ownerID kernel.UUID
	date    time.Time

	guard guard.ConstructorGuard
}

// NewRestaurantInvoiceQuery creates an invoice query for the owner's
// restaurant on the given day.
func NewRestaurantInvoiceQuery(ownerID kernel.UUID, date time.Time) (RestaurantInvoiceQuery, error) {
	if err := ownerID.Validate(); err != nil {
		return RestaurantInvoiceQuery{}, err
	}
	if date.IsZero() {
		return RestaurantInvoiceQuery{}, errs.NewValueIsRequiredError("date")
	}

	return RestaurantInvoiceQuery{
		ownerID: ownerID,
		date:    date,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q RestaurantInvoiceQuery) Validate() error {
	return q.guard.Validate(ErrRestaurantInvoiceQueryIsNotConstructed)
}

// OwnerID returns the authenticated restaurant owner.
func (q RestaurantInvoiceQuery) OwnerID() kernel.UUID {
	return q.ownerID
}

// Date returns the day the invoice covers.
func (q RestaurantInvoiceQuery) Date() time.Time {
	return q.date
}

// RestaurantInvoiceLine is one delivered order on the invoice.
type RestaurantInvoiceLine struct {
	OrderID   kernel.UUID
	FoodName  string
	Amount    float64
	CreatedAt time.Time
}

// RestaurantInvoiceQueryResponse is the day's payout statement.
type RestaurantInvoiceQueryResponse struct {
	RestaurantID kernel.UUID
	Date         time.Time
	Lines        []RestaurantInvoiceLine
	Total        float64
}
