package queries

import (
	"errors"
	"time"

	"foodservice/internal/pkg/errs"
	"foodservice/internal/pkg/guard"
)

var ErrPlatformProfitRangeQueryIsNotConstructed = errors.New(
	"PlatformProfitRangeQuery must be created via NewPlatformProfitRangeQuery constructor",
)

// PlatformProfitRangeQuery computes the platform's commission per day
// over an inclusive date range, counting every order created on each
// day. Days without orders appear in the result with zero totals.
type PlatformProfitRangeQuery struct {
	from time.Time
	to   time.Time

	guard guard.ConstructorGuard
}

// NewPlatformProfitRangeQuery creates a per-day profit query. The range
// is inclusive on both ends and from must not be after to.
func NewPlatformProfitRangeQuery(from, to time.Time) (PlatformProfitRangeQuery, error) {
	if from.IsZero() {
		return PlatformProfitRangeQuery{}, errs.NewValueIsRequiredError("from")
	}
	if to.IsZero() {
		return PlatformProfitRangeQuery{}, errs.NewValueIsRequiredError("to")
	}
	if from.After(to) {
		return PlatformProfitRangeQuery{}, errs.NewValueIsInvalidError("from")
	}

	return PlatformProfitRangeQuery{
		from:  from,
		to:    to,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q PlatformProfitRangeQuery) Validate() error {
	return q.guard.Validate(ErrPlatformProfitRangeQueryIsNotConstructed)
}

// From returns the first day of the range.
func (q PlatformProfitRangeQuery) From() time.Time {
	return q.from
}

// To returns the last day of the range.
func (q PlatformProfitRangeQuery) To() time.Time {
	return q.to
}
