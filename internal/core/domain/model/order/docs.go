// Package order provides the aggregate at the center of the food-ordering
// domain: the Order with its lifecycle state machine and its settlement,
// the monetary split between the platform and the restaurant.
//
// The package includes:
//   - Order: the aggregate root managing identity, settlement, and lifecycle
//   - Status: a state machine enforcing valid status transitions
//   - Settlement and SettlementPolicy: the pure split calculator
//
// Key business rules:
//   - An order starts in the initial status with its settlement computed
//     once from the food price and delivery cost at that instant
//   - A status check moves an initial order to preparing after a fixed
//     delay; the transition is read-triggered, not scheduled
//   - A preparing order becomes cancelable once the food's preparation
//     time plus a grace period have elapsed
//   - Delivered and canceled are terminal; nothing transitions out of them
//
// The package follows Domain-Driven Design principles, providing rich
// domain behavior, encapsulation, and validation so business rules are
// enforced by the aggregate itself.
package order
