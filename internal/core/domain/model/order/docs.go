// Package order provides the Order aggregate and its status state machine.
//
// An order records one buyer purchasing a quantity of one product. The total price is
// a snapshot taken when the order is placed; later price changes on the product never
// reach existing orders.
//
// Key business rules:
//   - quantity must be at least 1
//   - status follows Pending -> Confirmed -> Delivered, one step at a time
//   - a rejected transition returns *InvalidTransitionError and leaves the order unchanged
package order
