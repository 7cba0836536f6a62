// Package account provides the Account aggregate: a customer or a
// restaurant owner identity with bcrypt-hashed credentials. The ownership
// checks of the order lifecycle (customer-owned cancellation, restaurant
// owner status changes) resolve to these identities.
package account
