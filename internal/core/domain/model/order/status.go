package order

import (
	"fmt"

	"foodservice/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions:
//
//	Initial ──> Preparing ──┬──> Delivered
//	                        └──> Canceled
//
// Delivered and Canceled are terminal; no transition leaves them.
// Status is a value object that validates transitions and provides the
// string forms used for persistence and the API.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Initial is the status of a freshly created order, before the
	// kitchen picks it up.
	Initial

	// Preparing indicates the restaurant is preparing the food.
	// Orders auto-advance here after the initial delay elapses.
	Preparing

	// Delivered indicates the order reached the customer. Terminal.
	Delivered

	// Canceled indicates the order was canceled. Terminal.
	Canceled
)

// getStatusStrings returns a map of Status values to their string forms.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Initial:   "initial",
		Preparing: "preparing",
		Delivered: "delivered",
		Canceled:  "canceled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Initial:   "initial",
		Preparing: "preparing",
		Delivered: "delivered",
		Canceled:  "canceled",
	}
}

// ParseStatus converts a string form into a Status.
// Returns a ValueIsInvalidError for anything outside the legal set, so a
// malformed status supplied by a client surfaces as a bad request.
func ParseStatus(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is valid.
// Valid statuses are: Initial, Preparing, Delivered, Canceled.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase name of the status, "unknown" for invalid
// values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further lifecycle transition is expected.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Canceled
}

// Advance transitions the status from Initial to Preparing.
//
// Valid transitions:
//   - Initial -> Preparing
//
// Returns (0, error) when the order is not in Initial status.
func (s Status) Advance() (Status, error) {
	if s != Initial {
		return 0, errs.NewPreconditionFailedErrorWithCause(
			"order cannot advance to preparing",
			fmt.Errorf("%s is not a valid status to advance from", s.String()),
		)
	}
	return Preparing, nil
}

// Cancel transitions the status from Preparing to Canceled.
//
// Valid transitions:
//   - Preparing -> Canceled
//
// Returns (0, error) when the order is not in Preparing status; an order
// already in a terminal state reports the same precondition failure.
func (s Status) Cancel() (Status, error) {
	if s != Preparing {
		return 0, errs.NewPreconditionFailedErrorWithCause(
			"order cannot be canceled",
			fmt.Errorf("%s is not a valid status to cancel from", s.String()),
		)
	}
	return Canceled, nil
}

// Change validates a restaurant-initiated transition to target.
//
// The target must be a valid status, and the current status must not be
// terminal. Within those bounds any target is accepted, since restaurants
// correct statuses out of band (e.g. marking a stuck order delivered).
func (s Status) Change(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}
	if s.IsTerminal() {
		return 0, errs.NewPreconditionFailedErrorWithCause(
			"order status cannot be changed",
			fmt.Errorf("%s is a terminal status", s.String()),
		)
	}
	return target, nil
}
