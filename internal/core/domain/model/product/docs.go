// Package product provides the Product aggregate: a farmer's listing with a unit price
// and the stock on hand.
//
// Stock only leaves through Reserve, which refuses to take more than is available, so
// the quantity never goes negative. Callers must hold the product row lock while they
// reserve and persist, otherwise two reservations can both pass the check.
package product
