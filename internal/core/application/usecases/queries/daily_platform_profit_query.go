package queries

import (
	"errors"
	"time"

	"foodservice/internal/pkg/errs"
	"foodservice/internal/pkg/guard"
)

var ErrDailyPlatformProfitQueryIsNotConstructed = errors.New(
	"DailyPlatformProfitQuery must be created via NewDailyPlatformProfitQuery constructor",
)

// DailyPlatformProfitQuery computes the platform's commission total
// over every order created on one calendar day. The commission is
// fixed at order creation, so the status the order later reaches does
// not change it.
type DailyPlatformProfitQuery struct {
	date time.Time

	guard guard.ConstructorGuard
}

// NewDailyPlatformProfitQuery creates a profit query for the given day.
// Only the date part of the argument is used.
func NewDailyPlatformProfitQuery(date time.Time) (DailyPlatformProfitQuery, error) {
	if date.IsZero() {
		return DailyPlatformProfitQuery{}, errs.NewValueIsRequiredError("date")
	}

	return DailyPlatformProfitQuery{
		date:  date,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q DailyPlatformProfitQuery) Validate() error {
	return q.guard.Validate(ErrDailyPlatformProfitQueryIsNotConstructed)
}

// Date returns the day the profit is computed for.
func (q DailyPlatformProfitQuery) Date() time.Time {
	return q.date
}

// DailyPlatformProfitQueryResponse carries the commission total for one
// day, broken down by source.
type DailyPlatformProfitQueryResponse struct {
	Date           time.Time
	FoodProfit     float64
	DeliveryProfit float64
	TotalProfit    float64
	OrderCount     int
}
