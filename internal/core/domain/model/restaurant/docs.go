// Package restaurant provides the Restaurant aggregate and its Food menu
// items. A restaurant carries the delivery pricing that feeds order
// settlement and an operating window (which may wrap past midnight) that
// gates order creation. Foods carry the price and preparation duration
// snapshotted into each order.
package restaurant
