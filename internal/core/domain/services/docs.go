// Package services provides domain services whose rules span more than one aggregate.
//
// The package includes:
//   - OrderAccessPolicy: role and ownership rules for orders, products and farmer verification
package services
